package attentive

import (
	"context"
	"net/http"

	"github.com/smsflow/attentive-adapter/utils"
)

// KeywordResource reads the SMS keywords configured on the account.
type KeywordResource struct {
	provider *Provider
}

func NewKeywordResource(p *Provider) *KeywordResource {
	return &KeywordResource{provider: p}
}

func (r *KeywordResource) Name() string {
	return "keyword"
}

func (r *KeywordResource) Operations() []string {
	return []string{"get", "getAll"}
}

func (r *KeywordResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	switch operation {
	case "get":
		return r.get(ctx, params)
	case "getAll":
		return r.getAll(ctx, params)
	default:
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}
}

func (r *KeywordResource) get(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	resp, err := r.provider.Send(ctx, http.MethodGet, "/keywords/"+params.GetString("keywordId"), nil, nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *KeywordResource) getAll(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	query := map[string]any{}
	if status := params.GetString("status"); status != "" {
		query["status"] = status
	}
	return r.provider.fetchList(ctx, "/keywords", params, query, "keywords")
}
