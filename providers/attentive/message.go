package attentive

import (
	"context"
	"net/http"
	"strings"

	"github.com/smsflow/attentive-adapter/utils"
	"github.com/spf13/cast"
)

// MessageResource sends SMS messages: single, bulk and transactional.
type MessageResource struct {
	provider *Provider
}

func NewMessageResource(p *Provider) *MessageResource {
	return &MessageResource{provider: p}
}

func (r *MessageResource) Name() string {
	return "message"
}

func (r *MessageResource) Operations() []string {
	return []string{"send", "sendBulk", "sendTransactional"}
}

func (r *MessageResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	switch operation {
	case "send":
		return r.send(ctx, params)
	case "sendBulk":
		return r.sendBulk(ctx, params)
	case "sendTransactional":
		return r.sendTransactional(ctx, params)
	default:
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}
}

func (r *MessageResource) send(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	to, err := utils.RequirePhone(params.GetString("to"))
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"to":       to,
		"body":     params.GetString("body"),
		"mediaUrl": params.GetString("mediaUrl"),
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/messages/send", utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

// sendBulk delivers the same message body to a list of recipients. The
// host may bind the list as an actual array or as a comma-separated string.
func (r *MessageResource) sendBulk(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	recipients, err := r.recipients(params)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"to":       recipients,
		"body":     params.GetString("body"),
		"mediaUrl": params.GetString("mediaUrl"),
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/messages/bulk", utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *MessageResource) sendTransactional(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	to, err := utils.RequirePhone(params.GetString("to"))
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"to":         to,
		"templateId": params.GetString("templateId"),
		"properties": utils.ParseAttributeList(params["properties"]),
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/messages/transactional", utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *MessageResource) recipients(params utils.Params) ([]string, error) {
	var rawList []string
	if slice := params.GetSlice("to"); slice != nil {
		rawList = cast.ToStringSlice(slice)
	} else {
		rawList = strings.Split(params.GetString("to"), ",")
	}

	recipients := make([]string, 0, len(rawList))
	for _, raw := range rawList {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		phone, err := utils.RequirePhone(raw)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, phone)
	}

	if len(recipients) == 0 {
		return nil, &utils.ValidationError{
			Field:  "to",
			Value:  params.GetString("to"),
			Reason: "at least one recipient phone number is required",
		}
	}
	return recipients, nil
}
