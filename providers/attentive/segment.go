package attentive

import (
	"context"
	"net/http"

	"github.com/smsflow/attentive-adapter/utils"
)

// SegmentResource manages audience segments and their membership.
type SegmentResource struct {
	provider *Provider
}

func NewSegmentResource(p *Provider) *SegmentResource {
	return &SegmentResource{provider: p}
}

func (r *SegmentResource) Name() string {
	return "segment"
}

func (r *SegmentResource) Operations() []string {
	return []string{"create", "get", "getAll", "update", "delete", "getMembers"}
}

func (r *SegmentResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	switch operation {
	case "create":
		return r.create(ctx, params)
	case "get":
		return r.get(ctx, params)
	case "getAll":
		return r.getAll(ctx, params)
	case "update":
		return r.update(ctx, params)
	case "delete":
		return r.delete(ctx, params)
	case "getMembers":
		return r.getMembers(ctx, params)
	default:
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}
}

func (r *SegmentResource) create(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	name := params.GetString("name")
	if name == "" {
		return nil, &utils.ValidationError{Field: "name", Value: "", Reason: "a segment needs a name"}
	}

	body := map[string]any{
		"name":        name,
		"description": params.GetString("description"),
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/segments", utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *SegmentResource) get(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	resp, err := r.provider.Send(ctx, http.MethodGet, "/segments/"+params.GetString("segmentId"), nil, nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *SegmentResource) getAll(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	return r.provider.fetchList(ctx, "/segments", params, nil, "segments")
}

func (r *SegmentResource) update(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	body := map[string]any{
		"name":        params.GetString("name"),
		"description": params.GetString("description"),
	}

	resp, err := r.provider.Send(ctx, http.MethodPatch, "/segments/"+params.GetString("segmentId"), utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}

func (r *SegmentResource) delete(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	segmentID := params.GetString("segmentId")

	resp, err := r.provider.Send(ctx, http.MethodDelete, "/segments/"+segmentID, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		resp = map[string]any{"success": true, "segmentId": segmentID}
	}
	return utils.ToResultList(resp), nil
}

func (r *SegmentResource) getMembers(ctx context.Context, params utils.Params) ([]map[string]any, error) {
	path := "/segments/" + params.GetString("segmentId") + "/members"
	return r.provider.fetchList(ctx, path, params, nil, "members")
}
