// Package billing computes deterministic billing totals.
package billing

import (
	"github.com/shopspring/decimal"
)

// ComputeTotal sums the service prices, subtracts the optional discount,
// adds the optional tax and rounds the result to 2 decimal places half-up.
// Tax and discount are absolute amounts, not percentages. The result is
// invariant under permutation of the prices. A negative total is not clamped.
func ComputeTotal(prices []decimal.Decimal, tax, discount decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, price := range prices {
		total = total.Add(price)
	}
	if discount.Valid {
		total = total.Sub(discount.Decimal)
	}
	if tax.Valid {
		total = total.Add(tax.Decimal)
	}
	return total.Round(2)
}
