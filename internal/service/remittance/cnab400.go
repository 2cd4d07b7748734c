package remittance

import (
	"fmt"
	"time"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/remittance"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/fixedwidth"
	"golang.org/x/text/encoding/charmap"
)

const (
	recordWidth = 400

	bankCodeItau = "341"
	bankNameItau = "BANCO ITAU SA"

	currencyCode  = "09"
	operationCode = "01"
)

// buildHeader renders the single header record. The trailing sequential is
// always "000001": the header occupies slot 1.
func buildHeader(cfg remittance.Cnab400Config, generatedAt time.Time) (string, error) {
	return fixedwidth.NewLine(recordWidth).
		Num(1, "0").             // record type: header
		Num(1, "1").             // operation: remessa
		Alpha(7, "REMESSA").     // operation literal
		Num(2, "01").            // service code
		Alpha(15, "PAGAMENTOS"). // service literal
		Num(20, cfg.CompanyCode).
		Alpha(30, cfg.CompanyName).
		Num(3, bankCodeItau).
		Alpha(15, bankNameItau).
		Num(6, generatedAt.Format("020106")).
		Int(5, cfg.SequenceNumber).
		Blank(289).
		Int(6, 1).
		Build()
}

// buildDetail renders one payment record. seq is the record's position in the
// file: the first detail is 2 because the header holds slot 1.
func buildDetail(cfg remittance.Cnab400Config, p remittance.BankPaymentLine, dueDate time.Time, seq int) (string, error) {
	return fixedwidth.NewLine(recordWidth).
		Num(1, "1").  // record type: detail
		Num(2, "02"). // originating inscription type: CNPJ
		Num(14, cfg.CompanyCNPJ).
		Num(4, cfg.Agency).
		Num(6, cfg.Account).
		Num(1, cfg.AccountDigit).
		Blank(25). // company internal use
		Num(3, bankCodeItau).
		Num(4, p.BankAgency).
		Num(8, p.BankAccount).
		Num(1, p.AccountDigit).
		Alpha(30, p.FullName).
		Num(6, dueDate.Format("020106")).
		Cents(13, p.NetAmount).
		Num(1, accountTypeFlag(p.BankAccountType)).
		Num(2, currencyCode).
		Num(2, operationCode).
		Num(11, p.CPF).
		Num(6, dueDate.Format("020106")). // repeated date required by the layout
		Cents(13, p.NetAmount).           // repeated amount required by the layout
		Blank(241).
		Int(6, seq).
		Build()
}

// buildTrailer renders the closing record. Its sequential equals the detail
// count plus two (header and trailer).
func buildTrailer(detailCount int) (string, error) {
	return fixedwidth.NewLine(recordWidth).
		Num(1, "9").
		Blank(393).
		Int(6, detailCount+2).
		Build()
}

// accountTypeFlag maps the stored account type to the layout's checking (1)
// versus savings (2) flag. Unknown types default to checking.
func accountTypeFlag(accountType string) string {
	switch accountType {
	case "poupanca", "POUPANCA", "savings":
		return "2"
	}
	return "1"
}

// BuildDocument folds the eligible payments into the ordered record list.
// Every line must be exactly 400 characters; any mismatch aborts the whole
// document rather than emitting a malformed file.
func BuildDocument(cfg remittance.Cnab400Config, payments []remittance.BankPaymentLine, month, year int, generatedAt time.Time) (remittance.Cnab400Document, error) {
	if len(payments) == 0 {
		return remittance.Cnab400Document{}, remittance.ErrNoEligiblePayments
	}

	lines := make([]string, 0, len(payments)+2)

	header, err := buildHeader(cfg, generatedAt)
	if err != nil {
		return remittance.Cnab400Document{}, fmt.Errorf("%w: header: %v", remittance.ErrRecordLength, err)
	}
	lines = append(lines, header)

	due := paymentDueDate(month, year)
	for i, p := range payments {
		detail, err := buildDetail(cfg, p, due, i+2)
		if err != nil {
			return remittance.Cnab400Document{}, fmt.Errorf("%w: detail %d: %v", remittance.ErrRecordLength, i+1, err)
		}
		lines = append(lines, detail)
	}

	trailer, err := buildTrailer(len(payments))
	if err != nil {
		return remittance.Cnab400Document{}, fmt.Errorf("%w: trailer: %v", remittance.ErrRecordLength, err)
	}
	lines = append(lines, trailer)

	return remittance.Cnab400Document{
		FileName:    fmt.Sprintf("CNAB400-%02d-%04d.txt", month, year),
		Lines:       lines,
		GeneratedAt: generatedAt,
	}, nil
}

// paymentDueDate is the fifth calendar day of the month following the payroll
// period, the legal deadline for wage payment.
func paymentDueDate(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 4)
}

// EncodeLatin1 converts the document content to the ISO8859-1 byte stream the
// bank expects, lines joined by CR+LF.
func EncodeLatin1(doc remittance.Cnab400Document) ([]byte, error) {
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(doc.Content()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode remittance file: %w", err)
	}
	return encoded, nil
}
