package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DeliveryMethod is how the customer receives the order.
type DeliveryMethod string

const (
	Pickup   DeliveryMethod = "pickup"
	Delivery DeliveryMethod = "delivery"
)

// ParseDeliveryMethod converts a request value into a DeliveryMethod.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch DeliveryMethod(strings.ToLower(strings.TrimSpace(s))) {
	case Pickup:
		return Pickup, nil
	case Delivery:
		return Delivery, nil
	}
	return "", fmt.Errorf("unknown delivery method %q", s)
}

var (
	// TaxRate is applied to the subtotal.
	TaxRate = decimal.RequireFromString("0.08")
	// DeliveryFee is charged only for DeliveryMethod Delivery.
	DeliveryFee = decimal.RequireFromString("3.99")
)

// Totals are derived from a cart and are never stored.
type Totals struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// ComputeTotals derives the order totals for lines.
// Arithmetic is exact; rounding happens only in FormatMoney.
//
//	subtotal = Σ unit_price × quantity
//	tax      = subtotal × TaxRate
//	total    = subtotal + tax + fee
func ComputeTotals(lines []Line, method DeliveryMethod) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	fee := decimal.Zero
	if method == Delivery {
		fee = DeliveryFee
	}

	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
	}
}

// FormatMoney renders an amount with two decimal places, rounding half away from zero.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
