package payroll

import (
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/employee"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PayrollFilters selects the period and narrows the employee set.
type PayrollFilters struct {
	Month    int `json:"month"`
	Year     int `json:"year"`
	Employee employee.Filters
}

func (f *PayrollFilters) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if f.Year < 2020 || f.Year > 2030 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2020 and 2030"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertOverrideRequest struct {
	EmployeeID       string           `json:"employee_id"`
	Month            int              `json:"month"`
	Year             int              `json:"year"`
	INSSRescisao     *decimal.Decimal `json:"inss_rescisao,omitempty"`
	INSS13           *decimal.Decimal `json:"inss_13,omitempty"`
	AbsenceDeduction *decimal.Decimal `json:"absence_deduction,omitempty"`
	DSRLoss          *decimal.Decimal `json:"dsr_loss,omitempty"`
	OvertimeValue    *decimal.Decimal `json:"overtime_value,omitempty"`
	OvertimeDSRValue *decimal.Decimal `json:"overtime_dsr_value,omitempty"`
	UpdatedBy        *string          `json:"updated_by,omitempty"`
}

func (r *UpsertOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2020 || r.Year > 2030 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2020 and 2030"})
	}
	for field, v := range map[string]*decimal.Decimal{
		"inss_rescisao":      r.INSSRescisao,
		"inss_13":            r.INSS13,
		"absence_deduction":  r.AbsenceDeduction,
		"dsr_loss":           r.DSRLoss,
		"overtime_value":     r.OvertimeValue,
		"overtime_dsr_value": r.OvertimeDSRValue,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ManualOverrideResponse struct {
	ID               string           `json:"id"`
	EmployeeID       string           `json:"employee_id"`
	Month            int              `json:"month"`
	Year             int              `json:"year"`
	INSSRescisao     *decimal.Decimal `json:"inss_rescisao,omitempty"`
	INSS13           *decimal.Decimal `json:"inss_13,omitempty"`
	AbsenceDeduction *decimal.Decimal `json:"absence_deduction,omitempty"`
	DSRLoss          *decimal.Decimal `json:"dsr_loss,omitempty"`
	OvertimeValue    *decimal.Decimal `json:"overtime_value,omitempty"`
	OvertimeDSRValue *decimal.Decimal `json:"overtime_dsr_value,omitempty"`
}

type PayrollRecordResponse struct {
	EmployeeID  string  `json:"employee_id"`
	FullName    string  `json:"full_name"`
	CPF         string  `json:"cpf"`
	Position    string  `json:"position"`
	Department  string  `json:"department"`
	CostCenter  *string `json:"cost_center,omitempty"`
	Client      *string `json:"client,omitempty"`
	LegalEntity string  `json:"legal_entity"`
	RegionalHub *string `json:"regional_hub,omitempty"`
	Modality    string  `json:"modality"`

	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`

	BaseSalary   decimal.Decimal `json:"base_salary"`
	HazardPay    decimal.Decimal `json:"hazard_pay"`
	UnhealthyPay decimal.Decimal `json:"unhealthy_pay"`
	FamilySalary decimal.Decimal `json:"family_salary"`

	BusinessDaysWorked   int             `json:"business_days_worked"`
	BusinessDaysInPeriod int             `json:"business_days_in_period"`
	AbsenceCount         int             `json:"absence_count"`
	AbsenceDeduction     decimal.Decimal `json:"absence_deduction"`
	DSRLoss              decimal.Decimal `json:"dsr_loss"`

	MealAllowanceTotal      decimal.Decimal `json:"meal_allowance_total"`
	TransportAllowanceTotal decimal.Decimal `json:"transport_allowance_total"`

	OvertimeHours50    decimal.Decimal `json:"overtime_hours_50"`
	OvertimeValue50    decimal.Decimal `json:"overtime_value_50"`
	OvertimeHours100   decimal.Decimal `json:"overtime_hours_100"`
	OvertimeValue100   decimal.Decimal `json:"overtime_value_100"`
	OvertimeValueTotal decimal.Decimal `json:"overtime_value_total"`
	OvertimeDSRValue   decimal.Decimal `json:"overtime_dsr_value"`

	VacationDays             int             `json:"vacation_days"`
	VacationContributionBase decimal.Decimal `json:"vacation_contribution_base"`
	VacationINSS             decimal.Decimal `json:"vacation_inss"`

	INSSOrdinary  decimal.Decimal `json:"inss_ordinary"`
	INSSRescisao  decimal.Decimal `json:"inss_rescisao"`
	INSS13        decimal.Decimal `json:"inss_13"`
	TotalINSS     decimal.Decimal `json:"total_inss"`
	FGTSOrdinary  decimal.Decimal `json:"fgts_ordinary"`
	FGTSVacation  decimal.Decimal `json:"fgts_vacation"`
	TotalFGTS     decimal.Decimal `json:"total_fgts"`
	IRRFBase      decimal.Decimal `json:"irrf_base"`
	IRRF          decimal.Decimal `json:"irrf"`
	IRRFVacation  decimal.Decimal `json:"irrf_vacation"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	NetSalary     decimal.Decimal `json:"net_salary"`

	BankName        *string `json:"bank_name,omitempty"`
	BankAgency      *string `json:"bank_agency,omitempty"`
	BankAccount     *string `json:"bank_account,omitempty"`
	BankAccountType *string `json:"bank_account_type,omitempty"`
	PixKeyType      *string `json:"pix_key_type,omitempty"`
	PixKey          *string `json:"pix_key,omitempty"`
}

type PayrollTotals struct {
	EmployeeCount  int             `json:"employee_count"`
	TotalBenefits  decimal.Decimal `json:"total_benefits"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	TotalNet       decimal.Decimal `json:"total_net"`
}

type GeneratePayrollResponse struct {
	Employees []PayrollRecordResponse `json:"employees"`
	Period    string                  `json:"period"`
	Totals    PayrollTotals           `json:"totals"`
}
