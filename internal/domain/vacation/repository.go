package vacation

import (
	"context"
	"time"
)

type VacationRepository interface {
	// ListApprovedOverlapping returns approved vacations intersecting the
	// [from, to] range for one employee.
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]Vacation, error)
}
