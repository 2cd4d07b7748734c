package payroll

import (
	"time"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/vacation"
	"github.com/shopspring/decimal"
)

var three = decimal.NewFromInt(3)

// VacationDaysInPeriod sums the approved-vacation days intersecting the
// period.
func VacationDaysInPeriod(vacations []vacation.Vacation, from, to time.Time) int {
	days := 0
	for _, v := range vacations {
		if v.Status != vacation.StatusApproved {
			continue
		}
		days += v.DaysWithin(from, to)
	}
	return days
}

// VacationContributionBase derives the incremental social-security base for
// vacation days taken in the month: a proportional salary slice
// (base x days/30) plus the constitutional one-third bonus.
func VacationContributionBase(monthlyBase decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 || !monthlyBase.IsPositive() {
		return decimal.Zero
	}
	slice := monthlyBase.Mul(decimal.NewFromInt(int64(days))).Div(thirty)
	return slice.Add(slice.Div(three)).Round(2)
}

// VacationINSS is the contribution increment attributable to the vacation
// base: INSS(ordinary + vacation) - INSS(ordinary), never negative.
func VacationINSS(ordinaryBase, vacationBase decimal.Decimal) decimal.Decimal {
	if !vacationBase.IsPositive() {
		return decimal.Zero
	}
	diff := CalculateINSS(ordinaryBase.Add(vacationBase)).Sub(CalculateINSS(ordinaryBase))
	if diff.IsNegative() {
		return decimal.Zero
	}
	return diff
}
