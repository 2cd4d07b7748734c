package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/vacation"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/database"
)

type vacationRepository struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepository{db: db}
}

func (r *vacationRepository) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, status, created_at, updated_at
		FROM vacations
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		var v vacation.Vacation
		if err := rows.Scan(&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vacation: %w", err)
		}
		vacations = append(vacations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vacations: %w", err)
	}

	return vacations, nil
}
