package item

import "github.com/shopspring/decimal"

// TotalAmount derives an item's total from its base amount and discount: the
// discount is subtracted only when strictly positive. The discount is not
// capped at the base amount, so an oversized discount yields a negative total.
func TotalAmount(baseAmt, discount decimal.Decimal) decimal.Decimal {
	if discount.IsPositive() {
		return baseAmt.Sub(discount)
	}
	return baseAmt
}
