package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// JustifiedAbsence is a single absence record for an employee inside a
// payroll period. Date is nil when the record was imported without the exact
// calendar day (legacy data), in which case downstream DSR math falls back to
// a conservative per-absence approximation.
type JustifiedAbsence struct {
	ID         string
	EmployeeID string
	Date       *time.Time
	Reason     *string
}

// MonthlyFacts aggregates the attendance data a payroll run needs for one
// employee in one period.
type MonthlyFacts struct {
	EmployeeID   string
	ClockInCount int
	Absences     []JustifiedAbsence
}

// OvertimeSummary is the pre-computed overtime projection for an employee in
// one month. It is produced by the time-clock pipeline; payroll only reads it.
type OvertimeSummary struct {
	EmployeeID string
	Month      int
	Year       int
	Hours50    decimal.Decimal
	Value50    decimal.Decimal
	Hours100   decimal.Decimal
	Value100   decimal.Decimal
	DSRValue   decimal.Decimal
}
