package postgresql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/employee"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, cpf, position, department, cost_center, client,
	legal_entity, regional_hub, modality, benefit_modality, admission_date,
	base_salary, hazard_pay_percent, unhealthy_percent, family_salary,
	daily_meal_rate, daily_transport_rate,
	bank_name, bank_agency, bank_account, bank_account_digit,
	bank_account_type, pix_key_type, pix_key,
	requires_attendance_tracking, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.CPF, &e.Position, &e.Department, &e.CostCenter, &e.Client,
		&e.LegalEntity, &e.RegionalHub, &e.Modality, &e.BenefitModality, &e.AdmissionDate,
		&e.BaseSalary, &e.HazardPayPercent, &e.UnhealthyPercent, &e.FamilySalary,
		&e.DailyMealRate, &e.DailyTransportRate,
		&e.BankName, &e.BankAgency, &e.BankAccount, &e.BankAccountDigit,
		&e.BankAccountType, &e.PixKeyType, &e.PixKey,
		&e.RequiresAttendanceTracking, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) ListByFilters(ctx context.Context, filters employee.Filters) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	conditions = append(conditions, "deleted_at IS NULL")

	addEquals := func(column string, value *string) {
		if value == nil || strings.TrimSpace(*value) == "" {
			return
		}
		args = append(args, *value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}

	if filters.Search != nil && strings.TrimSpace(*filters.Search) != "" {
		args = append(args, "%"+strings.TrimSpace(*filters.Search)+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(full_name ILIKE $"+n+" OR cpf ILIKE $"+n+")")
	}
	addEquals("legal_entity", filters.LegalEntity)
	addEquals("department", filters.Department)
	addEquals("position", filters.Position)
	addEquals("cost_center", filters.CostCenter)
	addEquals("client", filters.Client)
	addEquals("benefit_modality", filters.BenefitModality)
	addEquals("bank_name", filters.Bank)
	addEquals("bank_account_type", filters.AccountType)
	addEquals("regional_hub", filters.RegionalHub)

	if filters.ForAllocation {
		conditions = append(conditions, "requires_attendance_tracking = TRUE")
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}
