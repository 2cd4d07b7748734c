package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/config"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/domain/remittance"
	appHTTP "github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/handler/http"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/database"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/pkg/storage"
	"github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/repository/postgresql"
	payrollService "github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/service/payroll"
	remittanceService "github.com/controle-gennesis/sistema-de-ponto-gennesis-sub000/internal/service/remittance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "ponto-gennesis-folha"),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	overrideRepo := postgresql.NewManualOverrideRepository(db)
	periodRepo := postgresql.NewPeriodStatusRepository(db)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		attendanceRepo,
		holidayRepo,
		vacationRepo,
		overrideRepo,
		logger,
	)
	remittanceSvc := remittanceService.NewRemittanceService(payrollSvc, periodRepo, fileStorage, logger)

	cnabCfg := remittance.Cnab400Config{
		CompanyCode:    cfg.Cnab.CompanyCode,
		CompanyName:    cfg.Cnab.CompanyName,
		CompanyCNPJ:    cfg.Cnab.CompanyCNPJ,
		Agency:         cfg.Cnab.Agency,
		Account:        cfg.Cnab.Account,
		AccountDigit:   cfg.Cnab.AccountDigit,
		SequenceNumber: cfg.Cnab.SequenceNumber,
	}
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, remittanceSvc, cnabCfg)

	router := appHTTP.NewRouter(payrollHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
