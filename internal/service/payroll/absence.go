package payroll

import (
	"strings"
	"time"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

var thirty = decimal.NewFromInt(30)

// Protected leave categories. Absences whose reason matches one of these are
// never treated as deductible faults.
var protectedLeaveReasons = []string{
	"maternidade",
	"paternidade",
	"acidente de trabalho",
}

func isProtectedLeave(reason *string) bool {
	if reason == nil {
		return false
	}
	r := strings.ToLower(*reason)
	for _, p := range protectedLeaveReasons {
		if strings.Contains(r, p) {
			return true
		}
	}
	return false
}

// CountDeductibleAbsences filters protected-leave records out and returns the
// deductible count plus the known calendar dates. Legacy records without a
// date still count but cannot participate in per-week DSR math.
func CountDeductibleAbsences(absences []attendance.JustifiedAbsence) (int, []time.Time) {
	count := 0
	var dates []time.Time
	for _, a := range absences {
		if isProtectedLeave(a.Reason) {
			continue
		}
		count++
		if a.Date != nil {
			dates = append(dates, *a.Date)
		}
	}
	return count, dates
}

// PeriodDivisor returns the days-in-period divisor for absence deductions:
// 30 by default, 31 only when the employee was hired inside this month and
// the month has 31 days.
func PeriodDivisor(admission time.Time, month, year int) int {
	adm := admission.In(referenceTZ)
	if adm.Year() != year || int(adm.Month()) != month {
		return 30
	}
	_, last := periodBounds(month, year)
	if last.Day() == 31 {
		return 31
	}
	return 30
}

// AbsenceDeduction is (monthly base / divisor) x deductible absence count.
func AbsenceDeduction(monthlyBase decimal.Decimal, absences int, divisor int) decimal.Decimal {
	if absences <= 0 || !monthlyBase.IsPositive() {
		return decimal.Zero
	}
	return monthlyBase.
		Div(decimal.NewFromInt(int64(divisor))).
		Mul(decimal.NewFromInt(int64(absences))).
		Round(2)
}

// weekStart collapses a date to the Sunday that starts its week, in the
// reference timezone.
func weekStart(t time.Time) string {
	d := t.In(referenceTZ)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, referenceTZ)
	d = d.AddDate(0, 0, -int(d.Weekday()))
	return d.Format("2006-01-02")
}

// DSRLossUnits computes weekly-rest-day loss units. With full date coverage,
// each Sunday-start week containing at least one absence loses one unit plus
// one per holiday falling Monday-Saturday in that same week. When any absence
// date is unknown the conservative fallback applies: every absence occupies
// its own week, so units = absence count + holiday count.
func DSRLossUnits(absenceCount int, absenceDates []time.Time, holidays []time.Time) int {
	if absenceCount <= 0 {
		return 0
	}

	if len(absenceDates) < absenceCount {
		return absenceCount + len(holidays)
	}

	weeks := make(map[string]struct{})
	for _, d := range absenceDates {
		weeks[weekStart(d)] = struct{}{}
	}

	units := len(weeks)
	for _, h := range holidays {
		wd := h.In(referenceTZ).Weekday()
		if wd == time.Sunday {
			continue
		}
		if _, ok := weeks[weekStart(h)]; ok {
			units++
		}
	}
	return units
}

// DSRLoss converts loss units into money: units x (base salary / 30).
func DSRLoss(baseSalary decimal.Decimal, units int) decimal.Decimal {
	if units <= 0 || !baseSalary.IsPositive() {
		return decimal.Zero
	}
	return baseSalary.Div(thirty).Mul(decimal.NewFromInt(int64(units))).Round(2)
}
