package response

import (
	"errors"
	"net/http"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/employee"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/remittance"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrPeriodNotFinalized):
		UnprocessableState(w, "PERIOD_NOT_FINALIZED", "Payroll period is not finalized")
	case errors.Is(err, payroll.ErrManualOverrideNotFound):
		NotFound(w, "Manual override not found")

	// Remittance domain errors
	case errors.Is(err, remittance.ErrNoEligiblePayments):
		UnprocessableState(w, "NO_ELIGIBLE_PAYMENTS", "No eligible payments for remittance")
	case errors.Is(err, remittance.ErrRecordLength):
		InternalServerError(w, "Remittance record layout defect")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
