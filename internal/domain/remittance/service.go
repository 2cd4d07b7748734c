package remittance

import (
	"context"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
)

type RemittanceService interface {
	// GenerateRemittance builds the CNAB400 document for the period selected
	// by the filters. The period must already be finalized.
	GenerateRemittance(ctx context.Context, filters payroll.PayrollFilters, cfg Cnab400Config) (Cnab400Document, error)

	// BankData returns the remittance data view (all payment lines, eligible
	// or not) used by preview and report surfaces.
	BankData(ctx context.Context, filters payroll.PayrollFilters) (BankDataResponse, error)
}
