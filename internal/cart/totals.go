package cart

import (
	"strconv"

	"github.com/printfood/storefront/internal/discount"
)

const (
	taxRate     = 0.08
	shippingFee = 4.99
)

// Totals is the price breakdown shown with the cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ComputeTotals derives the breakdown from the cart lines and an optional
// applied discount. The discount reduces the subtotal only and is capped
// so the discounted subtotal never goes negative; tax and shipping are
// charged on top of the floored amount.
func ComputeTotals(items []Item, applied *discount.Discount) Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.UnitPrice() * float64(it.Quantity)
	}

	discountValue := 0.0
	if applied != nil {
		if applied.DiscountType == discount.TypePercent {
			discountValue = subtotal * applied.Value / 100
		} else {
			discountValue = applied.Value
		}
		if discountValue > subtotal {
			discountValue = subtotal
		}
	}

	tax := subtotal * taxRate
	return Totals{
		Subtotal: subtotal,
		Discount: discountValue,
		Tax:      tax,
		Shipping: shippingFee,
		Total:    subtotal - discountValue + tax + shippingFee,
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
