package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/employee"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/remittance"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/handler/http/response"
	remittanceService "github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/service/remittance"
)

type PayrollHandler struct {
	payrollSvc    payroll.PayrollService
	remittanceSvc remittance.RemittanceService
	cnabCfg       remittance.Cnab400Config
}

func NewPayrollHandler(payrollSvc payroll.PayrollService, remittanceSvc remittance.RemittanceService, cnabCfg remittance.Cnab400Config) *PayrollHandler {
	return &PayrollHandler{
		payrollSvc:    payrollSvc,
		remittanceSvc: remittanceSvc,
		cnabCfg:       cnabCfg,
	}
}

// GET /api/v1/payroll
func (h *PayrollHandler) Generate(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollSvc.GenerateMonthlyPayroll(r.Context(), filters)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GET /api/v1/payroll/bank-data
func (h *PayrollHandler) BankData(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.remittanceSvc.BankData(r.Context(), filters)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GET /api/v1/payroll/cnab400
func (h *PayrollHandler) GenerateCnab400(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.remittanceSvc.GenerateRemittance(r.Context(), filters, h.cnabCfg)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	encoded, err := remittanceService.EncodeLatin1(doc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=ISO-8859-1")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	_, _ = w.Write(encoded)
}

// PUT /api/v1/payroll/overrides
func (h *PayrollHandler) UpsertOverride(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollSvc.UpsertOverride(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Override saved", result)
}

func parseFilters(r *http.Request) (payroll.PayrollFilters, error) {
	q := r.URL.Query()

	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		month = 0 // fails validation with a field-level message
	}
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		year = 0
	}

	filters := payroll.PayrollFilters{
		Month: month,
		Year:  year,
		Employee: employee.Filters{
			Search:          optionalParam(q.Get("search")),
			LegalEntity:     optionalParam(q.Get("legal_entity")),
			Department:      optionalParam(q.Get("department")),
			Position:        optionalParam(q.Get("position")),
			CostCenter:      optionalParam(q.Get("cost_center")),
			Client:          optionalParam(q.Get("client")),
			BenefitModality: optionalParam(q.Get("benefit_modality")),
			Bank:            optionalParam(q.Get("bank")),
			AccountType:     optionalParam(q.Get("account_type")),
			RegionalHub:     optionalParam(q.Get("regional_hub")),
			ForAllocation:   q.Get("for_allocation") == "true",
		},
	}

	if err := filters.Validate(); err != nil {
		return payroll.PayrollFilters{}, err
	}
	return filters, nil
}

func optionalParam(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
