package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/attendance"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/employee"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/holiday"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/payroll"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/vacation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The reserved administrative position never enters payroll.
const excludedPosition = "ADMINISTRADOR"

// Bounded fan-out for the per-employee computation. Employees are
// independent; results are re-ordered before return.
const payrollWorkers = 8

var (
	fgtsRate = decimal.RequireFromString("0.08")

	// Fixed simplified deduction applied to the IRRF base.
	irrfStandardDeduction = decimal.RequireFromString("564.80")
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	vacationRepo   vacation.VacationRepository
	overrideRepo   payroll.ManualOverrideRepository
	logger         *slog.Logger
	now            func() time.Time
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	vacationRepo vacation.VacationRepository,
	overrideRepo payroll.ManualOverrideRepository,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		vacationRepo:   vacationRepo,
		overrideRepo:   overrideRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *PayrollServiceImpl) GenerateMonthlyPayroll(ctx context.Context, filters payroll.PayrollFilters) (payroll.GeneratePayrollResponse, error) {
	records, err := s.ComputeRecords(ctx, filters)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	totals := payroll.PayrollTotals{
		EmployeeCount:  len(records),
		TotalBenefits:  decimal.Zero,
		TotalEarnings:  decimal.Zero,
		TotalDiscounts: decimal.Zero,
		TotalNet:       decimal.Zero,
	}
	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		totals.TotalBenefits = totals.TotalBenefits.Add(r.MealAllowanceTotal).Add(r.TransportAllowanceTotal)
		totals.TotalEarnings = totals.TotalEarnings.Add(r.TotalEarnings)
		totals.TotalDiscounts = totals.TotalDiscounts.Add(r.TotalDiscount)
		totals.TotalNet = totals.TotalNet.Add(r.NetSalary)
		responses = append(responses, mapToRecordResponse(r))
	}

	return payroll.GeneratePayrollResponse{
		Employees: responses,
		Period:    fmt.Sprintf("%02d/%04d", filters.Month, filters.Year),
		Totals:    totals,
	}, nil
}

func (s *PayrollServiceImpl) ComputeRecords(ctx context.Context, filters payroll.PayrollFilters) ([]payroll.PayrollRecord, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByFilters(ctx, filters.Employee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	periodStart, periodEnd := periodBounds(filters.Month, filters.Year)
	nextMonth, nextYear := nextPeriod(filters.Month, filters.Year)
	_, nextEnd := periodBounds(nextMonth, nextYear)

	// One holiday fetch covers the period and the benefit-proration month.
	holidays, err := s.holidayRepo.ListActiveBetween(ctx, periodStart, nextEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	var periodHolidayDates []time.Time
	var periodHolidayKeys []time.Time
	nextMonthHolidayKeys := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		d := h.Date.In(referenceTZ)
		if !d.Before(periodStart) && !d.After(periodEnd) {
			periodHolidayDates = append(periodHolidayDates, d)
			periodHolidayKeys = append(periodHolidayKeys, d)
		} else {
			nextMonthHolidayKeys = append(nextMonthHolidayKeys, d)
		}
	}
	periodHolidaySet := holidaySet(periodHolidayKeys)
	nextMonthHolidaySet := holidaySet(nextMonthHolidayKeys)

	// The proration target is the same for every employee.
	nextMonthWorkingDays := CountWorkingDays(nextMonth, nextYear, nil, nextEnd.AddDate(0, 1, 0), nextMonthHolidaySet)

	eligible := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if strings.EqualFold(emp.Position, excludedPosition) {
			continue
		}
		if !emp.ActiveDuring(periodEnd) {
			continue
		}
		eligible = append(eligible, emp)
	}

	now := s.now()
	results := make([]*payroll.PayrollRecord, len(eligible))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(payrollWorkers)
	for i, emp := range eligible {
		i, emp := i, emp
		g.Go(func() error {
			record, err := s.computeEmployee(gctx, emp, filters.Month, filters.Year,
				periodHolidayDates, periodHolidaySet, nextMonthWorkingDays, now)
			if err != nil {
				// One employee's fault never aborts the run; drop and log for
				// operational follow-up.
				s.logger.Error("payroll computation failed for employee",
					slog.String("employee_id", emp.ID),
					slog.Int("month", filters.Month),
					slog.Int("year", filters.Year),
					slog.String("error", err.Error()),
				)
				return nil
			}
			results[i] = &record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]payroll.PayrollRecord, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}

	// Deterministic output order regardless of worker completion order.
	c := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(records, func(i, j int) bool {
		return c.CompareString(records[i].FullName, records[j].FullName) < 0
	})

	return records, nil
}

func (s *PayrollServiceImpl) computeEmployee(
	ctx context.Context,
	emp employee.Employee,
	month, year int,
	periodHolidays []time.Time,
	periodHolidaySet map[string]struct{},
	nextMonthWorkingDays int,
	now time.Time,
) (payroll.PayrollRecord, error) {
	periodStart, periodEnd := periodBounds(month, year)

	monthlyBase := emp.BaseSalary.Add(emp.HazardPay()).Add(emp.UnhealthyPay())

	facts, err := s.attendanceRepo.GetMonthlyFacts(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("attendance facts: %w", err)
	}
	absenceCount, absenceDates := CountDeductibleAbsences(facts.Absences)

	businessDaysInPeriod := CountWorkingDays(month, year, nil, periodEnd.AddDate(0, 1, 0), periodHolidaySet)
	businessDaysWorked := CountWorkingDays(month, year, &emp.AdmissionDate, now, periodHolidaySet) - absenceCount
	if businessDaysWorked < 0 {
		businessDaysWorked = 0
	}

	// Attendance-derived deductions only apply to tracked employees; the
	// standard next-month benefit proration applies to everyone.
	absenceDeduction := decimal.Zero
	dsrLoss := decimal.Zero
	if emp.RequiresAttendanceTracking {
		divisor := PeriodDivisor(emp.AdmissionDate, month, year)
		absenceDeduction = AbsenceDeduction(monthlyBase, absenceCount, divisor)
		dsrLoss = DSRLoss(emp.BaseSalary, DSRLossUnits(absenceCount, absenceDates, periodHolidays))
	}

	overtime, err := s.attendanceRepo.GetOvertimeSummary(ctx, emp.ID, month, year)
	if err != nil {
		if !errors.Is(err, payroll.ErrOvertimeSummaryNotFound) {
			return payroll.PayrollRecord{}, fmt.Errorf("overtime summary: %w", err)
		}
		overtime = attendance.OvertimeSummary{
			Hours50:  decimal.Zero,
			Value50:  decimal.Zero,
			Hours100: decimal.Zero,
			Value100: decimal.Zero,
			DSRValue: decimal.Zero,
		}
	}

	// Vacation slice, skipped entirely for contribution-exempt modalities.
	vacationDays := 0
	vacationBase := decimal.Zero
	vacationINSS := decimal.Zero
	if !emp.Modality.ExemptFromContributions() {
		vacations, err := s.vacationRepo.ListApprovedOverlapping(ctx, emp.ID, periodStart, periodEnd)
		if err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("vacations: %w", err)
		}
		vacationDays = VacationDaysInPeriod(vacations, periodStart, periodEnd)
		vacationBase = VacationContributionBase(monthlyBase, vacationDays)
		vacationINSS = VacationINSS(monthlyBase, vacationBase)
	}

	inssOrdinary := decimal.Zero
	fgtsOrdinary := decimal.Zero
	fgtsVacation := decimal.Zero
	irrfBase := decimal.Zero
	irrf := decimal.Zero
	irrfVacation := decimal.Zero
	if !emp.Modality.ExemptFromContributions() {
		inssOrdinary = CalculateINSS(monthlyBase)
		fgtsOrdinary = monthlyBase.Mul(fgtsRate).Round(2)
		fgtsVacation = vacationBase.Mul(fgtsRate).Round(2)

		gross := monthlyBase.Add(emp.FamilySalary)
		irrfBase = gross.Sub(irrfStandardDeduction)
		irrf = CalculateIRRF(irrfBase)
		if vacationDays > 0 {
			irrfVacation = CalculateIRRF(gross.Add(vacationBase).Sub(irrfStandardDeduction))
		}
	}

	record := payroll.PayrollRecord{
		EmployeeID:  emp.ID,
		FullName:    emp.FullName,
		CPF:         emp.CPF,
		Position:    emp.Position,
		Department:  emp.Department,
		CostCenter:  emp.CostCenter,
		Client:      emp.Client,
		LegalEntity: emp.LegalEntity,
		RegionalHub: emp.RegionalHub,
		Modality:    string(emp.Modality),

		PeriodMonth: month,
		PeriodYear:  year,

		BaseSalary:   emp.BaseSalary,
		HazardPay:    emp.HazardPay().Round(2),
		UnhealthyPay: emp.UnhealthyPay().Round(2),
		FamilySalary: emp.FamilySalary,

		BusinessDaysWorked:   businessDaysWorked,
		BusinessDaysInPeriod: businessDaysInPeriod,
		AbsenceCount:         absenceCount,
		AbsenceDeduction:     absenceDeduction,
		DSRLoss:              dsrLoss,

		MealAllowanceTotal:      ProrateBenefit(emp.DailyMealRate, nextMonthWorkingDays),
		TransportAllowanceTotal: ProrateBenefit(emp.DailyTransportRate, nextMonthWorkingDays),

		OvertimeHours50:  overtime.Hours50,
		OvertimeValue50:  overtime.Value50,
		OvertimeHours100: overtime.Hours100,
		OvertimeValue100: overtime.Value100,
		OvertimeDSRValue: overtime.DSRValue,

		VacationDays:             vacationDays,
		VacationContributionBase: vacationBase,
		VacationINSS:             vacationINSS,

		INSSOrdinary: inssOrdinary,
		INSSRescisao: decimal.Zero,
		INSS13:       decimal.Zero,
		FGTSOrdinary: fgtsOrdinary,
		FGTSVacation: fgtsVacation,
		IRRFBase:     irrfBase,
		IRRF:         irrf,
		IRRFVacation: irrfVacation,

		BankName:         emp.BankName,
		BankAgency:       emp.BankAgency,
		BankAccount:      emp.BankAccount,
		BankAccountDigit: emp.BankAccountDigit,
		BankAccountType:  emp.BankAccountType,
		PixKeyType:       emp.PixKeyType,
		PixKey:           emp.PixKey,
	}
	record.OvertimeValueTotal = overtime.Value50.Add(overtime.Value100)

	if err := s.applyOverride(ctx, &record); err != nil {
		return payroll.PayrollRecord{}, err
	}

	record.TotalINSS = record.INSSOrdinary.
		Add(record.INSS13).
		Add(record.VacationINSS).
		Add(record.INSSRescisao)
	record.TotalFGTS = record.FGTSOrdinary.Add(record.FGTSVacation)

	record.TotalEarnings = monthlyBase.
		Add(record.FamilySalary).
		Add(record.OvertimeValueTotal).
		Add(record.OvertimeDSRValue).
		Round(2)
	record.TotalDiscount = record.AbsenceDeduction.
		Add(record.DSRLoss).
		Add(record.TotalINSS).
		Add(record.IRRF).
		Add(record.IRRFVacation).
		Round(2)
	record.NetSalary = record.TotalEarnings.Sub(record.TotalDiscount).Round(2)

	return record, nil
}

// applyOverride merges the manual override for the record's employee and
// period, field by field. The pinned value always wins over the computed one.
func (s *PayrollServiceImpl) applyOverride(ctx context.Context, record *payroll.PayrollRecord) error {
	override, err := s.overrideRepo.GetByEmployeePeriod(ctx, record.EmployeeID, record.PeriodMonth, record.PeriodYear)
	if err != nil {
		if errors.Is(err, payroll.ErrManualOverrideNotFound) {
			return nil
		}
		return fmt.Errorf("manual override: %w", err)
	}

	if override.INSSRescisao != nil {
		record.INSSRescisao = *override.INSSRescisao
	}
	if override.INSS13 != nil {
		record.INSS13 = *override.INSS13
	}
	if override.AbsenceDeduction != nil {
		record.AbsenceDeduction = *override.AbsenceDeduction
	}
	if override.DSRLoss != nil {
		record.DSRLoss = *override.DSRLoss
	}
	if override.OvertimeValue != nil {
		record.OvertimeValueTotal = *override.OvertimeValue
	}
	if override.OvertimeDSRValue != nil {
		record.OvertimeDSRValue = *override.OvertimeDSRValue
	}
	return nil
}

func (s *PayrollServiceImpl) UpsertOverride(ctx context.Context, req payroll.UpsertOverrideRequest) (payroll.ManualOverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ManualOverrideResponse{}, err
	}

	override := payroll.ManualOverride{
		ID:               uuid.NewString(),
		EmployeeID:       req.EmployeeID,
		Month:            req.Month,
		Year:             req.Year,
		INSSRescisao:     req.INSSRescisao,
		INSS13:           req.INSS13,
		AbsenceDeduction: req.AbsenceDeduction,
		DSRLoss:          req.DSRLoss,
		OvertimeValue:    req.OvertimeValue,
		OvertimeDSRValue: req.OvertimeDSRValue,
		UpdatedBy:        req.UpdatedBy,
	}

	saved, err := s.overrideRepo.Upsert(ctx, override)
	if err != nil {
		return payroll.ManualOverrideResponse{}, err
	}

	return payroll.ManualOverrideResponse{
		ID:               saved.ID,
		EmployeeID:       saved.EmployeeID,
		Month:            saved.Month,
		Year:             saved.Year,
		INSSRescisao:     saved.INSSRescisao,
		INSS13:           saved.INSS13,
		AbsenceDeduction: saved.AbsenceDeduction,
		DSRLoss:          saved.DSRLoss,
		OvertimeValue:    saved.OvertimeValue,
		OvertimeDSRValue: saved.OvertimeDSRValue,
	}, nil
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	return payroll.PayrollRecordResponse{
		EmployeeID:  r.EmployeeID,
		FullName:    r.FullName,
		CPF:         r.CPF,
		Position:    r.Position,
		Department:  r.Department,
		CostCenter:  r.CostCenter,
		Client:      r.Client,
		LegalEntity: r.LegalEntity,
		RegionalHub: r.RegionalHub,
		Modality:    r.Modality,

		PeriodMonth: r.PeriodMonth,
		PeriodYear:  r.PeriodYear,

		BaseSalary:   r.BaseSalary,
		HazardPay:    r.HazardPay,
		UnhealthyPay: r.UnhealthyPay,
		FamilySalary: r.FamilySalary,

		BusinessDaysWorked:   r.BusinessDaysWorked,
		BusinessDaysInPeriod: r.BusinessDaysInPeriod,
		AbsenceCount:         r.AbsenceCount,
		AbsenceDeduction:     r.AbsenceDeduction,
		DSRLoss:              r.DSRLoss,

		MealAllowanceTotal:      r.MealAllowanceTotal,
		TransportAllowanceTotal: r.TransportAllowanceTotal,

		OvertimeHours50:    r.OvertimeHours50,
		OvertimeValue50:    r.OvertimeValue50,
		OvertimeHours100:   r.OvertimeHours100,
		OvertimeValue100:   r.OvertimeValue100,
		OvertimeValueTotal: r.OvertimeValueTotal,
		OvertimeDSRValue:   r.OvertimeDSRValue,

		VacationDays:             r.VacationDays,
		VacationContributionBase: r.VacationContributionBase,
		VacationINSS:             r.VacationINSS,

		INSSOrdinary:  r.INSSOrdinary,
		INSSRescisao:  r.INSSRescisao,
		INSS13:        r.INSS13,
		TotalINSS:     r.TotalINSS,
		FGTSOrdinary:  r.FGTSOrdinary,
		FGTSVacation:  r.FGTSVacation,
		TotalFGTS:     r.TotalFGTS,
		IRRFBase:      r.IRRFBase,
		IRRF:          r.IRRF,
		IRRFVacation:  r.IRRFVacation,
		TotalEarnings: r.TotalEarnings,
		TotalDiscount: r.TotalDiscount,
		NetSalary:     r.NetSalary,

		BankName:        r.BankName,
		BankAgency:      r.BankAgency,
		BankAccount:     r.BankAccount,
		BankAccountType: r.BankAccountType,
		PixKeyType:      r.PixKeyType,
		PixKey:          r.PixKey,
	}
}
