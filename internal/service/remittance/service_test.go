package remittance

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/remittance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== FAKES ==========

type fakePayrollService struct {
	records []payroll.PayrollRecord
	err     error
}

func (f *fakePayrollService) GenerateMonthlyPayroll(_ context.Context, _ payroll.PayrollFilters) (payroll.GeneratePayrollResponse, error) {
	return payroll.GeneratePayrollResponse{}, f.err
}

func (f *fakePayrollService) ComputeRecords(_ context.Context, _ payroll.PayrollFilters) ([]payroll.PayrollRecord, error) {
	return f.records, f.err
}

func (f *fakePayrollService) UpsertOverride(_ context.Context, _ payroll.UpsertOverrideRequest) (payroll.ManualOverrideResponse, error) {
	return payroll.ManualOverrideResponse{}, f.err
}

type fakePeriodRepo struct {
	finalized bool
}

func (f *fakePeriodRepo) IsFinalized(_ context.Context, _, _ int) (bool, error) {
	return f.finalized, nil
}

type fakeStorage struct {
	saved map[string][]byte
}

func (f *fakeStorage) Save(_ context.Context, file io.Reader, path string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[path] = data
	return path, nil
}

func (f *fakeStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.saved[path])), nil
}

func (f *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := f.saved[path]
	return ok, nil
}

// ========== FIXTURES ==========

func bankRecord(id, name string, net string) payroll.PayrollRecord {
	bank := "Itau"
	agency := "1234"
	account := "567890"
	digit := "1"
	accType := "corrente"
	return payroll.PayrollRecord{
		EmployeeID:       id,
		FullName:         name,
		CPF:              "52998224725",
		NetSalary:        dec(net),
		BankName:         &bank,
		BankAgency:       &agency,
		BankAccount:      &account,
		BankAccountDigit: &digit,
		BankAccountType:  &accType,
	}
}

func newTestRemittance(p *fakePayrollService, period *fakePeriodRepo, files *fakeStorage) *RemittanceServiceImpl {
	return &RemittanceServiceImpl{
		payrollSvc: p,
		periodRepo: period,
		files:      files,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        func() time.Time { return generatedAt },
	}
}

func remittanceFilters() payroll.PayrollFilters {
	return payroll.PayrollFilters{Month: 6, Year: 2025}
}

// ========== TESTS ==========

func TestGenerateRemittance(t *testing.T) {
	records := []payroll.PayrollRecord{
		bankRecord("e1", "Ana Souza", "2546.59"),
		bankRecord("e2", "Erica Dias", "3100.00"),
	}

	files := &fakeStorage{}
	svc := newTestRemittance(&fakePayrollService{records: records}, &fakePeriodRepo{finalized: true}, files)

	doc, err := svc.GenerateRemittance(context.Background(), remittanceFilters(), testConfig())
	require.NoError(t, err)

	assert.Equal(t, "CNAB400-06-2025.txt", doc.FileName)
	require.Len(t, doc.Lines, 4)

	saved, ok := files.saved[doc.FileName]
	require.True(t, ok, "remittance file was not persisted")
	assert.Equal(t, doc.Content(), string(saved))
}

func TestGenerateRemittance_PeriodNotFinalized(t *testing.T) {
	svc := newTestRemittance(
		&fakePayrollService{records: []payroll.PayrollRecord{bankRecord("e1", "Ana Souza", "2546.59")}},
		&fakePeriodRepo{finalized: false},
		&fakeStorage{},
	)

	_, err := svc.GenerateRemittance(context.Background(), remittanceFilters(), testConfig())
	assert.ErrorIs(t, err, payroll.ErrPeriodNotFinalized)
}

func TestGenerateRemittance_SkipsIneligibleRecords(t *testing.T) {
	noBank := bankRecord("e2", "Erica Dias", "3100.00")
	noBank.BankAccount = nil
	negative := bankRecord("e3", "Otavio Nunes", "-10.00")

	files := &fakeStorage{}
	svc := newTestRemittance(
		&fakePayrollService{records: []payroll.PayrollRecord{
			bankRecord("e1", "Ana Souza", "2546.59"),
			noBank,
			negative,
		}},
		&fakePeriodRepo{finalized: true},
		files,
	)

	doc, err := svc.GenerateRemittance(context.Background(), remittanceFilters(), testConfig())
	require.NoError(t, err)
	// Header, one detail, trailer.
	assert.Len(t, doc.Lines, 3)
}

func TestGenerateRemittance_NoEligiblePayments(t *testing.T) {
	noBank := bankRecord("e1", "Ana Souza", "2546.59")
	noBank.BankName = nil

	svc := newTestRemittance(
		&fakePayrollService{records: []payroll.PayrollRecord{noBank}},
		&fakePeriodRepo{finalized: true},
		&fakeStorage{},
	)

	_, err := svc.GenerateRemittance(context.Background(), remittanceFilters(), testConfig())
	assert.ErrorIs(t, err, remittance.ErrNoEligiblePayments)
}

func TestBankData(t *testing.T) {
	noBank := bankRecord("e2", "Erica Dias", "3100.00")
	noBank.BankAgency = nil

	svc := newTestRemittance(
		&fakePayrollService{records: []payroll.PayrollRecord{
			bankRecord("e1", "Ana Souza", "2546.59"),
			noBank,
		}},
		// Bank data is a preview: no finalized-period requirement.
		&fakePeriodRepo{finalized: false},
		&fakeStorage{},
	)

	resp, err := svc.BankData(context.Background(), remittanceFilters())
	require.NoError(t, err)

	assert.Equal(t, "06/2025", resp.Period)
	// Every employee appears, eligible or not.
	require.Len(t, resp.Payments, 2)
	// The total sums only eligible payments.
	assert.True(t, resp.Total.Equal(dec("2546.59")), "total %s", resp.Total)
}

func TestBankData_InvalidPeriod(t *testing.T) {
	svc := newTestRemittance(&fakePayrollService{}, &fakePeriodRepo{}, &fakeStorage{})

	_, err := svc.BankData(context.Background(), payroll.PayrollFilters{Month: 0, Year: 2025})
	assert.Error(t, err)
}
