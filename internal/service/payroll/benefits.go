package payroll

import "github.com/shopspring/decimal"

// ProrateBenefit sizes a daily allowance by the business-day count of the
// following month. Benefits are paid in advance for the next period, so the
// proration target is month M+1 even though the payroll is for month M.
func ProrateBenefit(dailyRate decimal.Decimal, workingDaysNextMonth int) decimal.Decimal {
	if !dailyRate.IsPositive() || workingDaysNextMonth <= 0 {
		return decimal.Zero
	}
	return dailyRate.Mul(decimal.NewFromInt(int64(workingDaysNextMonth))).Round(2)
}
