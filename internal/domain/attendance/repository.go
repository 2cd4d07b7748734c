package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetMonthlyFacts returns the clock-in count and absence records for one
	// employee inside [from, to].
	GetMonthlyFacts(ctx context.Context, employeeID string, from, to time.Time) (MonthlyFacts, error)

	// GetOvertimeSummary returns the pre-computed overtime projection for the
	// employee and month.
	GetOvertimeSummary(ctx context.Context, employeeID string, month, year int) (OvertimeSummary, error)
}
