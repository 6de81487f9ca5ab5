package item

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name     string
		baseAmt  string
		discount string
		want     string
	}{
		{name: "positive discount subtracted", baseAmt: "500", discount: "50", want: "450"},
		{name: "zero discount keeps base", baseAmt: "100", discount: "0", want: "100"},
		{name: "fractional amounts", baseAmt: "9.99", discount: "0.99", want: "9.00"},
		{name: "discount exceeding base goes negative", baseAmt: "10", discount: "25", want: "-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalAmount(
				decimal.RequireFromString(tt.baseAmt),
				decimal.RequireFromString(tt.discount),
			)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"got %s, want %s", got, tt.want)
		})
	}
}
