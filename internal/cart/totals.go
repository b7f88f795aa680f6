package cart

import "github.com/shopspring/decimal"

// DefaultTaxRate is 8%. The rate is configurable; zero disables tax.
const DefaultTaxRate = 0.08

// Calculator computes cart totals for a given tax rate.
type Calculator struct {
	taxRate decimal.Decimal
}

func NewCalculator(taxRate float64) Calculator {
	return Calculator{taxRate: decimal.NewFromFloat(taxRate)}
}

// Totals derives subtotal, tax, total and item count from the given lines.
// Each monetary figure is rounded to two places independently, half away from
// zero; tax and total are computed from the unrounded subtotal. Known quirk:
// round(subtotal)+round(tax) can differ from round(total) by one cent.
func (c Calculator) Totals(items []Item) Totals {
	subtotal := decimal.Zero
	itemCount := 0
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
		itemCount += item.Quantity
	}

	tax := subtotal.Mul(c.taxRate)
	total := subtotal.Add(tax)

	return Totals{
		Subtotal:  subtotal.Round(2).InexactFloat64(),
		Tax:       tax.Round(2).InexactFloat64(),
		Total:     total.Round(2).InexactFloat64(),
		ItemCount: itemCount,
	}
}
