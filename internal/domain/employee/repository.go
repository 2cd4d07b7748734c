package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListByFilters(ctx context.Context, filters Filters) ([]Employee, error)
}
