package vacation

import "time"

type Vacation struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusRequested Status = "requested"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// DaysWithin returns how many vacation days fall inside [from, to], both
// bounds inclusive, counted by calendar day.
func (v Vacation) DaysWithin(from, to time.Time) int {
	start := v.StartDate
	if start.Before(from) {
		start = from
	}
	end := v.EndDate
	if end.After(to) {
		end = to
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
