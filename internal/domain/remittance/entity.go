package remittance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cnab400Config carries the originating-company metadata stamped into the
// remittance header and details.
type Cnab400Config struct {
	CompanyCode    string
	CompanyName    string
	CompanyCNPJ    string
	Agency         string
	Account        string
	AccountDigit   string
	SequenceNumber int
}

// Cnab400Document is an ordered list of 400-character lines: one header, one
// detail per eligible payment, one trailer. The byte content is deterministic
// for identical inputs.
type Cnab400Document struct {
	FileName    string
	Lines       []string
	GeneratedAt time.Time
}

// Content joins the lines with CR+LF, including a trailing CR+LF after the
// trailer, as the bank layout requires.
func (d Cnab400Document) Content() string {
	var out string
	for _, line := range d.Lines {
		out += line + "\r\n"
	}
	return out
}

// BankPaymentLine is the payment-ready projection of a payroll record used by
// the remittance preview and the CNAB detail encoder.
type BankPaymentLine struct {
	EmployeeID      string
	FullName        string
	CPF             string
	NetAmount       decimal.Decimal
	BankName        string
	BankAgency      string
	BankAccount     string
	AccountDigit    string
	BankAccountType string
	PixKeyType      *string
	PixKey          *string
}

// Eligible reports whether the line qualifies for the remittance file:
// non-empty bank destination and a strictly positive net amount.
func (l BankPaymentLine) Eligible() bool {
	return l.BankName != "" && l.BankAgency != "" && l.BankAccount != "" && l.NetAmount.IsPositive()
}
