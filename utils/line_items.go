package utils

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Money is the {value, currency} shape the platform expects for prices.
type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// LineItem is one product entry in an ecommerce event payload. Built once
// from raw host input and never mutated afterwards.
type LineItem struct {
	ProductID        string   `json:"productId"`
	Name             string   `json:"name"`
	Price            Money    `json:"price"`
	Quantity         int      `json:"quantity"`
	ProductVariantID string   `json:"productVariantId,omitempty"`
	ProductImage     string   `json:"productImage,omitempty"`
	ProductURL       string   `json:"productUrl,omitempty"`
	Categories       []string `json:"categories,omitempty"`
}

// ParseLineItems maps raw host input to line items. Prices are parsed as
// decimals and default to 0 when unparseable; quantity defaults to 1. A bare
// category string is wrapped into a single-element list.
func ParseLineItems(input any) []LineItem {
	raw := toMapSlice(input)
	items := make([]LineItem, 0, len(raw))

	for _, entry := range raw {
		item := LineItem{
			ProductID:        cast.ToString(entry["productId"]),
			Name:             cast.ToString(entry["name"]),
			Quantity:         1,
			ProductVariantID: cast.ToString(entry["productVariantId"]),
			ProductImage:     cast.ToString(entry["productImage"]),
			ProductURL:       cast.ToString(entry["productUrl"]),
		}

		item.Price = Money{Currency: cast.ToString(entry["currency"])}
		if price, err := decimal.NewFromString(cast.ToString(entry["price"])); err == nil {
			item.Price.Value = price.InexactFloat64()
		}

		if qty, err := cast.ToIntE(entry["quantity"]); err == nil && qty > 0 {
			item.Quantity = qty
		}

		switch cat := entry["category"].(type) {
		case string:
			if cat != "" {
				item.Categories = []string{cat}
			}
		case []any:
			item.Categories = cast.ToStringSlice(cat)
		case []string:
			item.Categories = cat
		}

		items = append(items, item)
	}

	return items
}
