package checkout

import "github.com/medicart/medicart-client/internal/models"

// FlatShippingFee applies below the free-shipping threshold.
const (
	FlatShippingFee       = 45.0
	FreeShippingThreshold = 500.0
)

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

func Subtotal(items []models.CartItem) float64 {

	var subtotal float64

	for _, item := range items {
		subtotal += item.LineTotal()
	}

	return subtotal
}

// Shipping is free above 500 (exclusive) and for an empty cart; otherwise a
// flat 45. The displayed total is advisory; the order-creation response is
// authoritative.
func Shipping(subtotal float64) float64 {

	if subtotal > FreeShippingThreshold || subtotal == 0 {
		return 0
	}

	return FlatShippingFee
}

func Summarize(items []models.CartItem) Summary {

	subtotal := Subtotal(items)
	shipping := Shipping(subtotal)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
