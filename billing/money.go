package billing

import "github.com/shopspring/decimal"

// CurrencySymbol is printed in front of every formatted amount.
const CurrencySymbol = "₱"

// round2 rounds to the currency's minor unit (half up). All money math in
// this package goes through decimals so repeated additions never drift the
// way raw float64 sums do.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// lineTotal is quantity × unit price, rounded to two decimals.
func lineTotal(quantity int, unitPrice float64) decimal.Decimal {
	return round2(decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))))
}

// FormatAmount renders a money value the same way the bill builder rounds
// it: two decimals, currency symbol in front.
func FormatAmount(v float64) string {
	return CurrencySymbol + decimal.NewFromFloat(v).StringFixed(2)
}
