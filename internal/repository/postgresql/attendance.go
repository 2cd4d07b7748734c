package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/attendance"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetMonthlyFacts reads clock-in counts and justified absences on a single
// transaction so both views reflect the same snapshot of the period.
func (r *attendanceRepository) GetMonthlyFacts(ctx context.Context, employeeID string, from, to time.Time) (attendance.MonthlyFacts, error) {
	facts := attendance.MonthlyFacts{EmployeeID: employeeID}

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		countQuery := `
			SELECT COUNT(*)
			FROM time_entries
			WHERE employee_id = $1
			  AND entry_type = 'clock_in'
			  AND recorded_at >= $2 AND recorded_at < $3
		`
		err := q.QueryRow(txCtx, countQuery, employeeID, from, to.AddDate(0, 0, 1)).Scan(&facts.ClockInCount)
		if err != nil {
			return fmt.Errorf("failed to count clock-ins: %w", err)
		}

		absenceQuery := `
			SELECT id, employee_id, absence_date, reason
			FROM absences
			WHERE employee_id = $1
			  AND (absence_date IS NULL OR (absence_date >= $2 AND absence_date <= $3))
			  AND period_month = $4 AND period_year = $5
		`
		rows, err := q.Query(txCtx, absenceQuery, employeeID, from, to, int(from.Month()), from.Year())
		if err != nil {
			return fmt.Errorf("failed to list absences: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var a attendance.JustifiedAbsence
			if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Reason); err != nil {
				return fmt.Errorf("failed to scan absence: %w", err)
			}
			facts.Absences = append(facts.Absences, a)
		}
		return rows.Err()
	})
	if err != nil {
		return attendance.MonthlyFacts{}, err
	}

	return facts, nil
}

func (r *attendanceRepository) GetOvertimeSummary(ctx context.Context, employeeID string, month, year int) (attendance.OvertimeSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, period_month, period_year,
		       hours_50, value_50, hours_100, value_100, dsr_value
		FROM overtime_summaries
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	var s attendance.OvertimeSummary
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&s.EmployeeID, &s.Month, &s.Year,
		&s.Hours50, &s.Value50, &s.Hours100, &s.Value100, &s.DSRValue,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.OvertimeSummary{}, payroll.ErrOvertimeSummaryNotFound
		}
		return attendance.OvertimeSummary{}, fmt.Errorf("failed to get overtime summary: %w", err)
	}

	return s, nil
}
