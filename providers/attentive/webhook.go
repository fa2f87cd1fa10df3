package attentive

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/smsflow/attentive-adapter/utils"
	"github.com/spf13/cast"
)

// WebhookEvents is the fixed vocabulary of event types the platform can
// deliver to a webhook subscription.
var WebhookEvents = []string{
	"subscription.created",
	"subscription.opted_out",
	"message.sent",
	"message.delivered",
	"message.clicked",
	"message.replied",
	"message.failed",
}

// IsWebhookEvent reports whether eventType belongs to the vocabulary.
func IsWebhookEvent(eventType string) bool {
	for _, known := range WebhookEvents {
		if known == eventType {
			return true
		}
	}
	return false
}

// WebhookResource manages webhook subscriptions on the platform side.
type WebhookResource struct {
	provider *Provider
	validate *validator.Validate
}

func NewWebhookResource(p *Provider) *WebhookResource {
	return &WebhookResource{
		provider: p,
		validate: validator.New(),
	}
}

func (r *WebhookResource) Name() string {
	return "webhook"
}

func (r *WebhookResource) Operations() []string {
	return []string{"create", "getAll", "delete"}
}

func (r *WebhookResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	switch operation {
	case "create":
		return r.create(ctx, params)
	case "getAll":
		return r.getAll(ctx, params)
	case "delete":
		return r.delete(ctx, params)
	default:
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}
}

func (r *WebhookResource) create(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	target := params.GetString("url")
	if err := r.validate.Var(target, "required,url"); err != nil {
		return nil, &utils.ValidationError{
			Field:  "url",
			Value:  target,
			Reason: "a valid webhook target URL is required",
		}
	}

	events := cast.ToStringSlice(params.GetSlice("events"))
	if len(events) == 0 {
		events = WebhookEvents
	}
	for _, event := range events {
		if !IsWebhookEvent(event) {
			return nil, &utils.ValidationError{
				Field:  "events",
				Value:  event,
				Reason: "unknown event type, expected one of: " + strings.Join(WebhookEvents, ", "),
			}
		}
	}

	body := map[string]any{
		"url":    target,
		"events": events,
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/webhooks", body, nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *WebhookResource) getAll(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	return r.provider.fetchList(ctx, "/webhooks", params, nil, "webhooks")
}

func (r *WebhookResource) delete(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	webhookID := params.GetString("webhookId")

	resp, err := r.provider.Send(ctx, http.MethodDelete, "/webhooks/"+webhookID, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		resp = map[string]any{"success": true, "webhookId": webhookID}
	}
	return utils.ToResultList(resp), nil
}
