package payroll

import "context"

type ManualOverrideRepository interface {
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (ManualOverride, error)
	Upsert(ctx context.Context, override ManualOverride) (ManualOverride, error)
}

type PeriodStatusRepository interface {
	// IsFinalized reports whether the given payroll period has been closed
	// for edits. Unknown periods are not finalized.
	IsFinalized(ctx context.Context, month, year int) (bool, error)
}
