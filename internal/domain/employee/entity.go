package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                 string
	FullName           string
	CPF                string
	Position           string
	Department         string
	CostCenter         *string
	Client             *string
	LegalEntity        string
	RegionalHub        *string
	Modality           Modality
	BenefitModality    *string
	AdmissionDate      time.Time
	BaseSalary         decimal.Decimal
	HazardPayPercent   decimal.Decimal
	UnhealthyPercent   decimal.Decimal
	FamilySalary       decimal.Decimal
	DailyMealRate      decimal.Decimal
	DailyTransportRate decimal.Decimal

	// Payment destination. Nil bank/agency/account means the employee is
	// not eligible for bank remittance.
	BankName         *string
	BankAgency       *string
	BankAccount      *string
	BankAccountDigit *string
	BankAccountType  *string
	PixKeyType       *string
	PixKey           *string

	RequiresAttendanceTracking bool
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  *time.Time
}

type Modality string

const (
	ModalityCLT    Modality = "CLT"
	ModalityMEI    Modality = "MEI"
	ModalityIntern Modality = "ESTAGIARIO"
)

// ExemptFromContributions reports whether the employment modality accrues
// neither social security (INSS) nor withholding tax (IRRF) bases.
func (m Modality) ExemptFromContributions() bool {
	return m == ModalityMEI || m == ModalityIntern
}

// HazardPay returns the monthly hazard-pay amount derived from the base salary.
func (e Employee) HazardPay() decimal.Decimal {
	return e.BaseSalary.Mul(e.HazardPayPercent).Div(decimal.NewFromInt(100))
}

// UnhealthyPay returns the monthly unhealthy-conditions amount derived from
// the base salary.
func (e Employee) UnhealthyPay() decimal.Decimal {
	return e.BaseSalary.Mul(e.UnhealthyPercent).Div(decimal.NewFromInt(100))
}

// ActiveDuring reports whether the employee was already hired at any point of
// the given period (admission date on or before the period's last day).
func (e Employee) ActiveDuring(periodEnd time.Time) bool {
	return !e.AdmissionDate.After(periodEnd)
}
