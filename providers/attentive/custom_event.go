package attentive

import (
	"context"
	"net/http"

	"github.com/smsflow/attentive-adapter/utils"
)

// CustomEventResource records bespoke subscriber activity on the platform
// timeline, one event or a whole batch at a time.
type CustomEventResource struct {
	provider *Provider
}

func NewCustomEventResource(p *Provider) *CustomEventResource {
	return &CustomEventResource{provider: p}
}

func (r *CustomEventResource) Name() string {
	return "customEvent"
}

func (r *CustomEventResource) Operations() []string {
	return []string{"send", "sendBatch"}
}

func (r *CustomEventResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	switch operation {
	case "send":
		return r.send(ctx, params)
	case "sendBatch":
		return r.sendBatch(ctx, params)
	default:
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}
}

func (r *CustomEventResource) send(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	event, err := r.buildEvent(params)
	if err != nil {
		return nil, err
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/events/custom", event, nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *CustomEventResource) sendBatch(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	rawEvents := params.GetSlice("events")
	if len(rawEvents) == 0 {
		return nil, &utils.ValidationError{
			Field:  "events",
			Value:  "",
			Reason: "a batch needs at least one event",
		}
	}

	events := make([]map[string]any, 0, len(rawEvents))
	for _, raw := range rawEvents {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		event, err := r.buildEvent(utils.Params(entry))
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/events/custom/batch", map[string]any{"events": events}, nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *CustomEventResource) buildEvent(params utils.Params) (map[string]any, error) {
	eventType := params.GetString("type")
	if eventType == "" {
		return nil, &utils.ValidationError{
			Field:  "type",
			Value:  "",
			Reason: "a custom event needs a type",
		}
	}

	user, err := identifier(params)
	if err != nil {
		return nil, err
	}

	occurredAt, err := utils.ResolveTimestamp(params.GetString("occurredAt"))
	if err != nil {
		return nil, err
	}

	event := map[string]any{
		"type":            eventType,
		"user":            user,
		"externalEventId": params.GetString("externalEventId"),
		"occurredAt":      occurredAt,
	}
	if props := utils.ParseAttributeList(params["properties"]); len(props) > 0 {
		event["properties"] = props
	}

	return utils.Clean(event), nil
}
