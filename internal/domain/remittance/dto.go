package remittance

import "github.com/shopspring/decimal"

type BankPaymentLineResponse struct {
	EmployeeID      string          `json:"employee_id"`
	FullName        string          `json:"full_name"`
	CPF             string          `json:"cpf"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	BankName        string          `json:"bank_name"`
	BankAgency      string          `json:"bank_agency"`
	BankAccount     string          `json:"bank_account"`
	AccountDigit    string          `json:"account_digit"`
	BankAccountType string          `json:"bank_account_type"`
	PixKeyType      *string         `json:"pix_key_type,omitempty"`
	PixKey          *string         `json:"pix_key,omitempty"`
}

type BankDataResponse struct {
	Period   string                    `json:"period"`
	Payments []BankPaymentLineResponse `json:"payments"`
	Total    decimal.Decimal           `json:"total"`
}
