package attentive

import (
	"context"
	"net/http"

	"github.com/smsflow/attentive-adapter/utils"
)

// SubscriberResource manages SMS/email marketing subscriptions.
type SubscriberResource struct {
	provider *Provider
}

func NewSubscriberResource(p *Provider) *SubscriberResource {
	return &SubscriberResource{provider: p}
}

func (r *SubscriberResource) Name() string {
	return "subscriber"
}

func (r *SubscriberResource) Operations() []string {
	return []string{"subscribe", "unsubscribe", "get", "update"}
}

func (r *SubscriberResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	switch operation {
	case "subscribe":
		return r.subscribe(ctx, params)
	case "unsubscribe":
		return r.unsubscribe(ctx, params)
	case "get":
		return r.get(ctx, params)
	case "update":
		return r.update(ctx, params)
	default:
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}
}

func (r *SubscriberResource) subscribe(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	user, err := identifier(params)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"user":           user,
		"signUpSourceId": params.GetString("signUpSourceId"),
		"locale":         params.GetString("locale"),
	}
	if attrs := utils.ParseAttributeList(params["customAttributes"]); len(attrs) > 0 {
		body["customAttributes"] = attrs
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/subscriptions", utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *SubscriberResource) unsubscribe(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	user, err := identifier(params)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"user": user,
		// Restricts the opt-out to one notification type when given;
		// empty means all subscriptions.
		"subscriptionType": params.GetString("subscriptionType"),
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/subscriptions/unsubscribe", utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		resp = map[string]any{"success": true}
		for k, v := range user {
			resp[k] = v
		}
	}
	return utils.ToResultList(resp), nil
}

func (r *SubscriberResource) get(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	user, err := identifier(params)
	if err != nil {
		return nil, err
	}

	// Identifier goes on the query string; query parameters are never
	// cleaned.
	query := map[string]any{}
	for k, v := range user {
		query[k] = v
	}

	resp, err := r.provider.Send(ctx, http.MethodGet, "/subscriptions", nil, query)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *SubscriberResource) update(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	user, err := identifier(params)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"user":       user,
		"properties": utils.ParseAttributeList(params["customAttributes"]),
	}

	resp, err := r.provider.Send(ctx, http.MethodPatch, "/subscribers", utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}
