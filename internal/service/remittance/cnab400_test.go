package remittance

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/remittance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testConfig() remittance.Cnab400Config {
	return remittance.Cnab400Config{
		CompanyCode:    "12345",
		CompanyName:    "Gennesis Engenharia",
		CompanyCNPJ:    "12345678000190",
		Agency:         "0912",
		Account:        "34567",
		AccountDigit:   "8",
		SequenceNumber: 1,
	}
}

func testPayment(id, name, cpf, amount string) remittance.BankPaymentLine {
	return remittance.BankPaymentLine{
		EmployeeID:      id,
		FullName:        name,
		CPF:             cpf,
		NetAmount:       dec(amount),
		BankName:        "Itau",
		BankAgency:      "1234",
		BankAccount:     "567890",
		AccountDigit:    "1",
		BankAccountType: "corrente",
	}
}

var generatedAt = time.Date(2025, time.July, 1, 10, 30, 0, 0, time.UTC)

func TestBuildDocument(t *testing.T) {
	payments := []remittance.BankPaymentLine{
		testPayment("e1", "Ana Souza", "52998224725", "2546.59"),
		testPayment("e2", "José da Silva Ação", "11144477735", "3100.00"),
	}

	doc, err := BuildDocument(testConfig(), payments, 6, 2025, generatedAt)
	require.NoError(t, err)

	assert.Equal(t, "CNAB400-06-2025.txt", doc.FileName)
	require.Len(t, doc.Lines, 4)

	t.Run("every record is exactly 400 characters", func(t *testing.T) {
		for i, line := range doc.Lines {
			assert.Len(t, line, 400, "line %d", i)
		}
	})

	t.Run("header shape", func(t *testing.T) {
		header := doc.Lines[0]
		assert.True(t, strings.HasPrefix(header, "01REMESSA"), "header prefix %q", header[:20])
		assert.Contains(t, header, "GENNESIS ENGENHARIA")
		assert.Contains(t, header, "BANCO ITAU SA")
		assert.Contains(t, header, generatedAt.Format("020106"))
		assert.True(t, strings.HasSuffix(header, "000001"), "header sequential %q", header[394:])
	})

	t.Run("detail sequentials start at two", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(doc.Lines[1], "000002"))
		assert.True(t, strings.HasSuffix(doc.Lines[2], "000003"))
	})

	t.Run("detail carries amount in cents and sanitized name", func(t *testing.T) {
		detail := doc.Lines[1]
		assert.Equal(t, byte('1'), detail[0])
		assert.Contains(t, detail, "0000000254659")
		assert.Contains(t, detail, "ANA SOUZA")
		assert.Contains(t, detail, "52998224725")
		// Wages for June are due on July 5th.
		assert.Contains(t, detail, "050725")
	})

	t.Run("accents never reach the file", func(t *testing.T) {
		assert.Contains(t, doc.Lines[2], "JOSE DA SILVA ACAO")
	})

	t.Run("trailer closes the count", func(t *testing.T) {
		trailer := doc.Lines[3]
		assert.Equal(t, byte('9'), trailer[0])
		assert.True(t, strings.HasSuffix(trailer, "000004"), "trailer sequential %q", trailer[394:])
	})
}

func TestBuildDocument_NoPayments(t *testing.T) {
	_, err := BuildDocument(testConfig(), nil, 6, 2025, generatedAt)
	assert.ErrorIs(t, err, remittance.ErrNoEligiblePayments)
}

func TestBuildDocument_Deterministic(t *testing.T) {
	payments := []remittance.BankPaymentLine{
		testPayment("e1", "Ana Souza", "52998224725", "2546.59"),
	}

	a, err := BuildDocument(testConfig(), payments, 6, 2025, generatedAt)
	require.NoError(t, err)
	b, err := BuildDocument(testConfig(), payments, 6, 2025, generatedAt)
	require.NoError(t, err)

	assert.Equal(t, a.Content(), b.Content())
}

func TestContent_CRLFTerminated(t *testing.T) {
	doc, err := BuildDocument(testConfig(), []remittance.BankPaymentLine{
		testPayment("e1", "Ana Souza", "52998224725", "2546.59"),
	}, 6, 2025, generatedAt)
	require.NoError(t, err)

	content := doc.Content()
	assert.True(t, strings.HasSuffix(content, "\r\n"))
	assert.Equal(t, len(doc.Lines), strings.Count(content, "\r\n"))
}

func TestPaymentDueDate_YearRollover(t *testing.T) {
	due := paymentDueDate(12, 2025)
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), due)
}

func TestAccountTypeFlag(t *testing.T) {
	assert.Equal(t, "2", accountTypeFlag("poupanca"))
	assert.Equal(t, "2", accountTypeFlag("POUPANCA"))
	assert.Equal(t, "1", accountTypeFlag("corrente"))
	assert.Equal(t, "1", accountTypeFlag(""))
}

func TestBuildDocument_Latin1NamesKeepRecordWidth(t *testing.T) {
	// Ø has no combining-mark decomposition, so it survives diacritic
	// stripping as a single ISO8859-1 character. Record width must hold
	// both before and after encoding.
	doc, err := BuildDocument(testConfig(), []remittance.BankPaymentLine{
		testPayment("e1", "Øyvind Ação", "52998224725", "2546.59"),
	}, 6, 2025, generatedAt)
	require.NoError(t, err)

	for i, line := range doc.Lines {
		assert.Equal(t, 400, utf8.RuneCountInString(line), "line %d", i)
	}

	encoded, err := EncodeLatin1(doc)
	require.NoError(t, err)

	records := bytes.Split(encoded, []byte("\r\n"))
	require.Len(t, records, len(doc.Lines)+1)
	assert.Empty(t, records[len(records)-1])
	for i, record := range records[:len(doc.Lines)] {
		assert.Len(t, record, 400, "encoded record %d", i)
	}
	assert.Contains(t, doc.Lines[1], "ØYVIND ACAO")
}

func TestEncodeLatin1(t *testing.T) {
	doc, err := BuildDocument(testConfig(), []remittance.BankPaymentLine{
		testPayment("e1", "Ana Souza", "52998224725", "2546.59"),
	}, 6, 2025, generatedAt)
	require.NoError(t, err)

	encoded, err := EncodeLatin1(doc)
	require.NoError(t, err)
	// Pure ASCII content: one byte per character plus CR+LF per line.
	assert.Equal(t, len(doc.Lines)*(400+2), len(encoded))
}
