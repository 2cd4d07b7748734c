package postgresql

import (
	"context"
	"fmt"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type manualOverrideRepository struct {
	db *database.DB
}

func NewManualOverrideRepository(db *database.DB) payroll.ManualOverrideRepository {
	return &manualOverrideRepository{db: db}
}

const overrideColumns = `
	id, employee_id, period_month, period_year,
	inss_rescisao, inss_13, absence_deduction, dsr_loss,
	overtime_value, overtime_dsr_value, updated_by, created_at, updated_at
`

func scanOverride(row pgx.Row) (payroll.ManualOverride, error) {
	var o payroll.ManualOverride
	err := row.Scan(
		&o.ID, &o.EmployeeID, &o.Month, &o.Year,
		&o.INSSRescisao, &o.INSS13, &o.AbsenceDeduction, &o.DSRLoss,
		&o.OvertimeValue, &o.OvertimeDSRValue, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *manualOverrideRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.ManualOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overrideColumns + `
		FROM payroll_manual_overrides
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	o, err := scanOverride(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ManualOverride{}, payroll.ErrManualOverrideNotFound
		}
		return payroll.ManualOverride{}, fmt.Errorf("failed to get manual override: %w", err)
	}

	return o, nil
}

func (r *manualOverrideRepository) Upsert(ctx context.Context, override payroll.ManualOverride) (payroll.ManualOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_manual_overrides (
			id, employee_id, period_month, period_year,
			inss_rescisao, inss_13, absence_deduction, dsr_loss,
			overtime_value, overtime_dsr_value, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			inss_rescisao = EXCLUDED.inss_rescisao,
			inss_13 = EXCLUDED.inss_13,
			absence_deduction = EXCLUDED.absence_deduction,
			dsr_loss = EXCLUDED.dsr_loss,
			overtime_value = EXCLUDED.overtime_value,
			overtime_dsr_value = EXCLUDED.overtime_dsr_value,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING ` + overrideColumns + `
	`

	o, err := scanOverride(q.QueryRow(ctx, query,
		override.ID, override.EmployeeID, override.Month, override.Year,
		override.INSSRescisao, override.INSS13, override.AbsenceDeduction, override.DSRLoss,
		override.OvertimeValue, override.OvertimeDSRValue, override.UpdatedBy,
	))
	if err != nil {
		return payroll.ManualOverride{}, fmt.Errorf("failed to upsert manual override: %w", err)
	}

	return o, nil
}
