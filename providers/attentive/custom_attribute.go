package attentive

import (
	"context"
	"net/http"

	"github.com/smsflow/attentive-adapter/utils"
	"github.com/spf13/cast"
)

// CustomAttributeResource sets and deletes subscriber profile attributes.
type CustomAttributeResource struct {
	provider *Provider
}

func NewCustomAttributeResource(p *Provider) *CustomAttributeResource {
	return &CustomAttributeResource{provider: p}
}

func (r *CustomAttributeResource) Name() string {
	return "customAttribute"
}

func (r *CustomAttributeResource) Operations() []string {
	return []string{"set", "setBatch", "delete"}
}

func (r *CustomAttributeResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	switch operation {
	case "set":
		return r.set(ctx, params)
	case "setBatch":
		return r.setBatch(ctx, params)
	case "delete":
		return r.delete(ctx, params)
	default:
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}
}

func (r *CustomAttributeResource) set(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	user, err := identifier(params)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"user":       user,
		"properties": utils.ParseAttributeList(params["attributes"]),
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/attributes/custom", utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *CustomAttributeResource) setBatch(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	rawEntries := params.GetSlice("entries")
	if len(rawEntries) == 0 {
		return nil, &utils.ValidationError{
			Field:  "entries",
			Value:  "",
			Reason: "a batch needs at least one entry",
		}
	}

	entries := make([]map[string]any, 0, len(rawEntries))
	for _, raw := range rawEntries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		user, err := identifier(utils.Params(entry))
		if err != nil {
			return nil, err
		}
		entries = append(entries, map[string]any{
			"user":       user,
			"properties": utils.ParseAttributeList(entry["attributes"]),
		})
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/attributes/custom/batch", map[string]any{"entries": entries}, nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *CustomAttributeResource) delete(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	user, err := identifier(params)
	if err != nil {
		return nil, err
	}

	names := cast.ToStringSlice(params.GetSlice("attributeNames"))
	if len(names) == 0 {
		return nil, &utils.ValidationError{
			Field:  "attributeNames",
			Value:  "",
			Reason: "at least one attribute name is required",
		}
	}

	body := map[string]any{
		"user":       user,
		"properties": names,
	}

	resp, err := r.provider.Send(ctx, http.MethodDelete, "/attributes/custom", body, nil)
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		resp = map[string]any{"success": true, "deleted": names}
		for k, v := range user {
			resp[k] = v
		}
	}
	return utils.ToResultList(resp), nil
}
