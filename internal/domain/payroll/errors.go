package payroll

import "errors"

var (
	ErrInvalidPeriod           = errors.New("invalid payroll period")
	ErrPeriodNotFinalized      = errors.New("payroll period not finalized")
	ErrManualOverrideNotFound  = errors.New("manual override not found")
	ErrOvertimeSummaryNotFound = errors.New("overtime summary not found")
)
