package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/brewandbake/internal/calculator"
	"github.com/mmynk/brewandbake/internal/catalog"
	"github.com/mmynk/brewandbake/internal/session"
	"github.com/mmynk/brewandbake/pkg/api"
)

func toAPIMenuItem(item catalog.Item) api.MenuItem {
	return api.MenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       calculator.FormatMoney(item.Price),
		Category:    string(item.Category),
		Color:       item.Color,
	}
}

func toAPIOrder(snap session.Snapshot) api.Order {
	lines := make([]api.OrderLine, len(snap.Lines))
	for i, l := range snap.Lines {
		lines[i] = api.OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: calculator.FormatMoney(l.UnitPrice),
			Quantity:  l.Quantity,
			LineTotal: calculator.FormatMoney(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))),
		}
	}

	return api.Order{
		SessionID: snap.ID,
		Lines:     lines,
		ItemCount: snap.ItemCount,
		Totals: api.OrderTotals{
			Subtotal:    calculator.FormatMoney(snap.Totals.Subtotal),
			Tax:         calculator.FormatMoney(snap.Totals.Tax),
			DeliveryFee: calculator.FormatMoney(snap.Totals.DeliveryFee),
			Total:       calculator.FormatMoney(snap.Totals.Total),
		},
		Step:            snap.Step.String(),
		StepNumber:      int(snap.Step),
		DeliveryMethod:  string(snap.DeliveryMethod),
		DeliveryAddress: snap.DeliveryAddress,
		PaymentMethod:   string(snap.PaymentMethod),
	}
}
