package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	ListActiveBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
