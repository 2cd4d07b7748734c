package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord - one financial row per employee per (month, year).
// All monetary sub-totals are non-negative by construction.
type PayrollRecord struct {
	EmployeeID  string
	FullName    string
	CPF         string
	Position    string
	Department  string
	CostCenter  *string
	Client      *string
	LegalEntity string
	RegionalHub *string
	Modality    string

	PeriodMonth int
	PeriodYear  int

	// Raw compensation inputs.
	BaseSalary   decimal.Decimal
	HazardPay    decimal.Decimal
	UnhealthyPay decimal.Decimal
	FamilySalary decimal.Decimal

	// Attendance-derived figures.
	BusinessDaysWorked   int
	BusinessDaysInPeriod int
	AbsenceCount         int
	AbsenceDeduction     decimal.Decimal
	DSRLoss              decimal.Decimal

	// Benefits, prorated over the next month's business days.
	MealAllowanceTotal      decimal.Decimal
	TransportAllowanceTotal decimal.Decimal

	// Overtime projection.
	OvertimeHours50    decimal.Decimal
	OvertimeValue50    decimal.Decimal
	OvertimeHours100   decimal.Decimal
	OvertimeValue100   decimal.Decimal
	OvertimeValueTotal decimal.Decimal
	OvertimeDSRValue   decimal.Decimal

	// Vacation slice inside the period.
	VacationDays             int
	VacationContributionBase decimal.Decimal
	VacationINSS             decimal.Decimal

	// Contributions.
	INSSOrdinary  decimal.Decimal
	INSSRescisao  decimal.Decimal
	INSS13        decimal.Decimal
	TotalINSS     decimal.Decimal
	FGTSOrdinary  decimal.Decimal
	FGTSVacation  decimal.Decimal
	TotalFGTS     decimal.Decimal
	IRRFBase      decimal.Decimal
	IRRF          decimal.Decimal
	IRRFVacation  decimal.Decimal
	NetSalary     decimal.Decimal
	TotalEarnings decimal.Decimal
	TotalDiscount decimal.Decimal

	// Payment destination, carried through for the remittance view.
	BankName         *string
	BankAgency       *string
	BankAccount      *string
	BankAccountDigit *string
	BankAccountType  *string
	PixKeyType       *string
	PixKey           *string
}

// ManualOverride pins computed payroll figures for one employee and period.
// Nil fields leave the computed value untouched.
type ManualOverride struct {
	ID               string
	EmployeeID       string
	Month            int
	Year             int
	INSSRescisao     *decimal.Decimal
	INSS13           *decimal.Decimal
	AbsenceDeduction *decimal.Decimal
	DSRLoss          *decimal.Decimal
	OvertimeValue    *decimal.Decimal
	OvertimeDSRValue *decimal.Decimal
	UpdatedBy        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PeriodStatus tracks the workflow state of a payroll period. Remittance and
// report generation refuse to run until the period is finalized.
type PeriodStatus struct {
	Month       int
	Year        int
	Finalized   bool
	FinalizedAt *time.Time
	FinalizedBy *string
}
