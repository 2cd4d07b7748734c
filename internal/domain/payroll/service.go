package payroll

import "context"

type PayrollService interface {
	// GenerateMonthlyPayroll recomputes the payroll for every employee
	// matching the filters. Employees whose computation fails are dropped
	// from the result and logged; the request still succeeds.
	GenerateMonthlyPayroll(ctx context.Context, filters PayrollFilters) (GeneratePayrollResponse, error)

	// ComputeRecords is the raw form of GenerateMonthlyPayroll used by the
	// remittance encoder: same computation, domain entities out.
	ComputeRecords(ctx context.Context, filters PayrollFilters) ([]PayrollRecord, error)

	UpsertOverride(ctx context.Context, req UpsertOverrideRequest) (ManualOverrideResponse, error)
}
