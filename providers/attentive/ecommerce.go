package attentive

import (
	"context"
	"net/http"

	"github.com/smsflow/attentive-adapter/utils"
)

// ecommerceSlugs maps operation names onto the event endpoint slugs.
var ecommerceSlugs = map[string]string{
	"productView":    "product-view",
	"addToCart":      "add-to-cart",
	"removeFromCart": "remove-from-cart",
	"purchase":       "purchase",
	"abandoned":      "abandoned-cart",
}

// EcommerceResource reports shopping activity (views, cart changes,
// purchases) tied to a subscriber.
type EcommerceResource struct {
	provider *Provider
}

func NewEcommerceResource(p *Provider) *EcommerceResource {
	return &EcommerceResource{provider: p}
}

func (r *EcommerceResource) Name() string {
	return "ecommerce"
}

func (r *EcommerceResource) Operations() []string {
	return []string{"productView", "addToCart", "removeFromCart", "purchase", "abandoned"}
}

func (r *EcommerceResource) Execute(ctx context.Context, operation string, params utils.Params) ([]map[string]any, error) {
	slug, known := ecommerceSlugs[operation]
	if !known {
		return nil, &UnsupportedOperationError{Resource: r.Name(), Operation: operation}
	}

	user, err := identifier(params)
	if err != nil {
		return nil, err
	}

	occurredAt, err := utils.ResolveTimestamp(params.GetString("occurredAt"))
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"user":       user,
		"items":      utils.ParseLineItems(params["items"]),
		"occurredAt": occurredAt,
	}

	if operation == "purchase" {
		body["orderId"] = params.GetString("orderId")
		if params.Has("totalPrice") {
			body["totalPrice"] = utils.Money{
				Value:    params.GetFloat("totalPrice"),
				Currency: params.GetString("currency"),
			}
		}
	}

	resp, err := r.provider.Send(ctx, http.MethodPost, "/events/ecommerce/"+slug, utils.Clean(body), nil)
	if err != nil {
		return nil, err
	}
	return utils.ToResultList(resp), nil
}
