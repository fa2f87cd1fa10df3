package attentive

import (
	"context"
	"net/http"

	"github.com/smsflow/attentive-adapter/utils"
)

// SignUpUnitResource reads sign-up units (the forms and keywords that grow
// the subscriber list) and their stats.
type SignUpUnitResource struct {
	provider *Provider
}

func NewSignUpUnitResource(p *Provider) *SignUpUnitResource {
	return &SignUpUnitResource{provider: p}
}

func (r *SignUpUnitResource) Name() string {
	return "signUpUnit"
}

func (r *SignUpUnitResource) Operations() []string {
	return []string{"get", "getAll", "getStats"}
}

func (r *SignUpUnitResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	switch operation {
	case "get":
		return r.get(ctx, params)
	case "getAll":
		return r.getAll(ctx, params)
	case "getStats":
		return r.getStats(ctx, params)
	default:
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}
}

func (r *SignUpUnitResource) get(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	resp, err := r.provider.Send(ctx, http.MethodGet, "/sign-up-units/"+params.GetString("signUpUnitId"), nil, nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *SignUpUnitResource) getAll(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	return r.provider.fetchList(ctx, "/sign-up-units", params, nil, "signUpUnits")
}

func (r *SignUpUnitResource) getStats(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	query, err := dateRangeQuery(params)
	if err != nil {
		return nil, err
	}

	resp, err := r.provider.Send(ctx, http.MethodGet, "/sign-up-units/"+params.GetString("signUpUnitId")+"/stats", nil, query)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}
