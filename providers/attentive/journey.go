package attentive

import (
	"context"
	"net/http"

	"github.com/smsflow/attentive-adapter/utils"
)

// JourneyResource reads automation journeys and their performance stats.
// Journeys are managed in the platform UI, so this resource is read-only.
type JourneyResource struct {
	provider *Provider
}

func NewJourneyResource(p *Provider) *JourneyResource {
	return &JourneyResource{provider: p}
}

func (r *JourneyResource) Name() string {
	return "journey"
}

func (r *JourneyResource) Operations() []string {
	return []string{"get", "getAll", "getStats"}
}

func (r *JourneyResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
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

func (r *JourneyResource) get(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	resp, err := r.provider.Send(ctx, http.MethodGet, "/journeys/"+params.GetString("journeyId"), nil, nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *JourneyResource) getAll(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	query := map[string]any{}
	if status := params.GetString("status"); status != "" {
		query["status"] = status
	}
	return r.provider.fetchList(ctx, "/journeys", params, query, "journeys")
}

func (r *JourneyResource) getStats(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	query, err := dateRangeQuery(params)
	if err != nil {
		return nil, err
	}

	resp, err := r.provider.Send(ctx, http.MethodGet, "/journeys/"+params.GetString("journeyId")+"/stats", nil, query)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

// dateRangeQuery normalizes optional startDate/endDate filters to the
// ISO-8601 shape the API expects.
func dateRangeQuery(params utils.Params) (map[string]any, error) {
	query := map[string]any{}

	for _, key := range []string{"startDate", "endDate"} {
		raw := params.GetString(key)
		if raw == "" {
			continue
		}
		normalized, err := utils.ResolveTimestamp(raw)
		if err != nil {
			return nil, err
		}
		query[key] = normalized
	}

	return query, nil
}
