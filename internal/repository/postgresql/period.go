package postgresql

import (
	"context"
	"fmt"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type periodStatusRepository struct {
	db *database.DB
}

func NewPeriodStatusRepository(db *database.DB) payroll.PeriodStatusRepository {
	return &periodStatusRepository{db: db}
}

func (r *periodStatusRepository) IsFinalized(ctx context.Context, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT finalized
		FROM payroll_periods
		WHERE period_month = $1 AND period_year = $2
	`

	var finalized bool
	err := q.QueryRow(ctx, query, month, year).Scan(&finalized)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Unknown periods are open by definition.
			return false, nil
		}
		return false, fmt.Errorf("failed to get period status: %w", err)
	}

	return finalized, nil
}
