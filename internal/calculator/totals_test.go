package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func scenarioLines() []Line {
	return []Line{
		{ItemID: 2, Name: "Cappuccino", UnitPrice: d("4.50"), Quantity: 2},
		{ItemID: 7, Name: "Almond Croissant", UnitPrice: d("5.25"), Quantity: 1},
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []Line
		method       DeliveryMethod
		wantSubtotal string
		wantTax      string
		wantFee      string
		wantTotal    string
	}{
		{
			name:         "pickup",
			lines:        scenarioLines(),
			method:       Pickup,
			wantSubtotal: "14.25",
			wantTax:      "1.14",
			wantFee:      "0.00",
			wantTotal:    "15.39",
		},
		{
			name:         "delivery adds the fee",
			lines:        scenarioLines(),
			method:       Delivery,
			wantSubtotal: "14.25",
			wantTax:      "1.14",
			wantFee:      "3.99",
			wantTotal:    "19.38",
		},
		{
			name:         "empty cart with pickup",
			lines:        nil,
			method:       Pickup,
			wantSubtotal: "0.00",
			wantTax:      "0.00",
			wantFee:      "0.00",
			wantTotal:    "0.00",
		},
		{
			name:         "empty cart with delivery still charges the fee",
			lines:        nil,
			method:       Delivery,
			wantSubtotal: "0.00",
			wantTax:      "0.00",
			wantFee:      "3.99",
			wantTotal:    "3.99",
		},
		{
			name: "default seeded cart",
			lines: []Line{
				{ItemID: 2, UnitPrice: d("4.50"), Quantity: 2},
				{ItemID: 7, UnitPrice: d("5.25"), Quantity: 1},
				{ItemID: 8, UnitPrice: d("4.75"), Quantity: 1},
			},
			method:       Pickup,
			wantSubtotal: "19.00",
			wantTax:      "1.52",
			wantFee:      "0.00",
			wantTotal:    "20.52",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines, tt.method)
			if s := FormatMoney(got.Subtotal); s != tt.wantSubtotal {
				t.Errorf("subtotal = %s, want %s", s, tt.wantSubtotal)
			}
			if s := FormatMoney(got.Tax); s != tt.wantTax {
				t.Errorf("tax = %s, want %s", s, tt.wantTax)
			}
			if s := FormatMoney(got.DeliveryFee); s != tt.wantFee {
				t.Errorf("delivery fee = %s, want %s", s, tt.wantFee)
			}
			if s := FormatMoney(got.Total); s != tt.wantTotal {
				t.Errorf("total = %s, want %s", s, tt.wantTotal)
			}
		})
	}
}

func TestComputeTotals_TotalIdentities(t *testing.T) {
	carts := [][]Line{
		scenarioLines(),
		{{ItemID: 1, UnitPrice: d("3.50"), Quantity: 7}},
		{
			{ItemID: 5, UnitPrice: d("5.50"), Quantity: 3},
			{ItemID: 13, UnitPrice: d("6.50"), Quantity: 11},
			{ItemID: 16, UnitPrice: d("6.75"), Quantity: 1},
		},
	}
	factor := d("1.08")

	for i, lines := range carts {
		pickup := ComputeTotals(lines, Pickup)
		if !pickup.DeliveryFee.IsZero() {
			t.Errorf("cart %d: pickup fee = %s, want 0", i, pickup.DeliveryFee)
		}
		if want := pickup.Subtotal.Mul(factor); !pickup.Total.Equal(want) {
			t.Errorf("cart %d: pickup total = %s, want %s", i, pickup.Total, want)
		}

		delivery := ComputeTotals(lines, Delivery)
		if want := delivery.Subtotal.Mul(factor).Add(DeliveryFee); !delivery.Total.Equal(want) {
			t.Errorf("cart %d: delivery total = %s, want %s", i, delivery.Total, want)
		}
	}
}

func TestComputeTotals_NoCompoundingRounding(t *testing.T) {
	// 0.05 × 8% = 0.004 per unit, which would vanish if rounded per step.
	c := NewCart(Line{ItemID: 1, UnitPrice: d("0.05"), Quantity: 1})
	for i := 0; i < 99; i++ {
		c.Increase(1)
	}
	got := ComputeTotals(c.Lines(), Pickup)
	if s := FormatMoney(got.Tax); s != "0.40" {
		t.Errorf("tax = %s, want 0.40", s)
	}
}

func TestParseDeliveryMethod(t *testing.T) {
	for _, in := range []string{"pickup", " Delivery "} {
		if _, err := ParseDeliveryMethod(in); err != nil {
			t.Errorf("ParseDeliveryMethod(%q) error = %v", in, err)
		}
	}
	if _, err := ParseDeliveryMethod("drone"); err == nil {
		t.Error("expected error for unknown method")
	}
}
