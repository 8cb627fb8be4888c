// Package bonds adapts engine cashflows to exact-decimal rows for I/O
// boundaries (JSON schedules, reports), where binary floats would leak
// artifacts like 24.999999999999996 into rendered amounts.
package bonds

import (
	"github.com/danielyekini/FinCraftr/bond"
	"github.com/shopspring/decimal"
)

// ScheduleRow is a single cashflow with its amount held as an exact
// decimal, rounded to cents.
type ScheduleRow struct {
	Time   float64         `json:"time"`
	Amount decimal.Decimal `json:"amount"`
}

// FromCashflows converts engine cashflows to schedule rows, rounding
// amounts to two decimal places.
func FromCashflows(in []bond.Cashflow) []ScheduleRow {
	out := make([]ScheduleRow, 0, len(in))
	for _, cf := range in {
		out = append(out, ScheduleRow{
			Time:   cf.Time,
			Amount: decimal.NewFromFloat(cf.Amount).Round(2),
		})
	}
	return out
}

// ToCashflows converts schedule rows back to engine cashflows.
func ToCashflows(in []ScheduleRow) []bond.Cashflow {
	out := make([]bond.Cashflow, 0, len(in))
	for _, row := range in {
		out = append(out, bond.Cashflow{
			Time:   row.Time,
			Amount: row.Amount.InexactFloat64(),
		})
	}
	return out
}
