package remittance

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/remittance"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/storage"
	"github.com/shopspring/decimal"
)

type RemittanceServiceImpl struct {
	payrollSvc payroll.PayrollService
	periodRepo payroll.PeriodStatusRepository
	files      storage.FileStorage
	logger     *slog.Logger
	now        func() time.Time
}

func NewRemittanceService(
	payrollSvc payroll.PayrollService,
	periodRepo payroll.PeriodStatusRepository,
	files storage.FileStorage,
	logger *slog.Logger,
) remittance.RemittanceService {
	return &RemittanceServiceImpl{
		payrollSvc: payrollSvc,
		periodRepo: periodRepo,
		files:      files,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *RemittanceServiceImpl) GenerateRemittance(ctx context.Context, filters payroll.PayrollFilters, cfg remittance.Cnab400Config) (remittance.Cnab400Document, error) {
	if err := filters.Validate(); err != nil {
		return remittance.Cnab400Document{}, err
	}

	finalized, err := s.periodRepo.IsFinalized(ctx, filters.Month, filters.Year)
	if err != nil {
		return remittance.Cnab400Document{}, fmt.Errorf("period status: %w", err)
	}
	if !finalized {
		return remittance.Cnab400Document{}, payroll.ErrPeriodNotFinalized
	}

	records, err := s.payrollSvc.ComputeRecords(ctx, filters)
	if err != nil {
		return remittance.Cnab400Document{}, err
	}

	eligible := make([]remittance.BankPaymentLine, 0, len(records))
	for _, line := range paymentLines(records) {
		if line.Eligible() {
			eligible = append(eligible, line)
		}
	}

	doc, err := BuildDocument(cfg, eligible, filters.Month, filters.Year, s.now())
	if err != nil {
		return remittance.Cnab400Document{}, err
	}

	encoded, err := EncodeLatin1(doc)
	if err != nil {
		return remittance.Cnab400Document{}, err
	}
	if _, err := s.files.Save(ctx, bytes.NewReader(encoded), doc.FileName); err != nil {
		return remittance.Cnab400Document{}, fmt.Errorf("failed to store remittance file: %w", err)
	}

	s.logger.Info("remittance file generated",
		slog.String("file", doc.FileName),
		slog.Int("payments", len(eligible)),
	)
	return doc, nil
}

func (s *RemittanceServiceImpl) BankData(ctx context.Context, filters payroll.PayrollFilters) (remittance.BankDataResponse, error) {
	if err := filters.Validate(); err != nil {
		return remittance.BankDataResponse{}, err
	}

	records, err := s.payrollSvc.ComputeRecords(ctx, filters)
	if err != nil {
		return remittance.BankDataResponse{}, err
	}

	lines := paymentLines(records)
	total := decimal.Zero
	payments := make([]remittance.BankPaymentLineResponse, 0, len(lines))
	for _, l := range lines {
		if l.Eligible() {
			total = total.Add(l.NetAmount)
		}
		payments = append(payments, remittance.BankPaymentLineResponse{
			EmployeeID:      l.EmployeeID,
			FullName:        l.FullName,
			CPF:             l.CPF,
			NetAmount:       l.NetAmount,
			BankName:        l.BankName,
			BankAgency:      l.BankAgency,
			BankAccount:     l.BankAccount,
			AccountDigit:    l.AccountDigit,
			BankAccountType: l.BankAccountType,
			PixKeyType:      l.PixKeyType,
			PixKey:          l.PixKey,
		})
	}

	return remittance.BankDataResponse{
		Period:   fmt.Sprintf("%02d/%04d", filters.Month, filters.Year),
		Payments: payments,
		Total:    total,
	}, nil
}

// paymentLines projects payroll records into payment-ready lines.
func paymentLines(records []payroll.PayrollRecord) []remittance.BankPaymentLine {
	lines := make([]remittance.BankPaymentLine, 0, len(records))
	for _, r := range records {
		lines = append(lines, remittance.BankPaymentLine{
			EmployeeID:      r.EmployeeID,
			FullName:        r.FullName,
			CPF:             r.CPF,
			NetAmount:       r.NetSalary,
			BankName:        deref(r.BankName),
			BankAgency:      deref(r.BankAgency),
			BankAccount:     deref(r.BankAccount),
			AccountDigit:    deref(r.BankAccountDigit),
			BankAccountType: deref(r.BankAccountType),
			PixKeyType:      r.PixKeyType,
			PixKey:          r.PixKey,
		})
	}
	return lines
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
