package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/validator"
)

func TestPayrollFilters_Validate(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		f := PayrollFilters{Month: 6, Year: 2025}
		assert.NoError(t, f.Validate())
	})

	t.Run("invalid month and year accumulate", func(t *testing.T) {
		f := PayrollFilters{Month: 0, Year: 1999}
		err := f.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		m := errs.ToMap()
		assert.Contains(t, m, "month")
		assert.Contains(t, m, "year")
	})
}

func TestUpsertOverrideRequest_Validate(t *testing.T) {
	amount := decimal.RequireFromString("100.00")

	t.Run("valid request", func(t *testing.T) {
		r := UpsertOverrideRequest{EmployeeID: "e1", Month: 6, Year: 2025, INSS13: &amount}
		assert.NoError(t, r.Validate())
	})

	t.Run("missing employee", func(t *testing.T) {
		r := UpsertOverrideRequest{Month: 6, Year: 2025}
		err := r.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "employee_id")
	})

	t.Run("negative amount", func(t *testing.T) {
		neg := decimal.RequireFromString("-0.01")
		r := UpsertOverrideRequest{EmployeeID: "e1", Month: 6, Year: 2025, OvertimeValue: &neg}
		err := r.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "overtime_value")
	})
}
