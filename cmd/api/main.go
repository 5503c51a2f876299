package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/shift-payroll/internal/config"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	appHTTP "github.com/cmlabs-hris/shift-payroll/internal/handler/http"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/jwt"
	"github.com/cmlabs-hris/shift-payroll/internal/repository/memory"
	"github.com/cmlabs-hris/shift-payroll/internal/repository/postgresql"
	payrollService "github.com/cmlabs-hris/shift-payroll/internal/service/payroll"
	planningService "github.com/cmlabs-hris/shift-payroll/internal/service/planning"
	salaryService "github.com/cmlabs-hris/shift-payroll/internal/service/salary"
	timesheetService "github.com/cmlabs-hris/shift-payroll/internal/service/timesheet"
)

type repositories struct {
	staff     staff.StaffRepository
	shift     shift.ShiftRepository
	cover     shift.CoverRequestRepository
	leave     leave.LeaveRequestRepository
	salary    salary.SalaryRepository
	timesheet timesheet.TimesheetRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	repos, closeStore, err := openRepositories(context.Background(), cfg)
	if err != nil {
		fmt.Println("Error opening store:", err)
		return
	}
	defer closeStore()

	planner := planningService.NewPlanner(repos.shift, repos.cover, repos.leave, repos.salary)
	planningSvc := planningService.NewPlanningService(planner, repos.staff, cfg.Engine.WorkerLimit)
	payrollSvc := payrollService.NewPayrollService(planner, repos.staff, repos.timesheet, repos.salary, cfg.Engine.WorkerLimit)
	salarySvc := salaryService.NewSalaryService(repos.salary, repos.staff)
	timesheetSvc := timesheetService.NewTimesheetService(repos.timesheet, repos.shift, repos.staff, repos.salary)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
		},
		JWTService,
		appHTTP.Handlers{
			Planning:  appHTTP.NewPlanningHandler(planningSvc),
			Payroll:   appHTTP.NewPayrollHandler(payrollSvc),
			Salary:    appHTTP.NewSalaryHandler(salarySvc),
			Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc),
		},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("server running", slog.String("addr", "http://localhost"+port), slog.String("store", cfg.Engine.StoreDriver))
	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, func(), error) {
	if cfg.Engine.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore()
		return repositories{
			staff:     memory.NewStaffRepository(store),
			shift:     memory.NewShiftRepository(store),
			cover:     memory.NewCoverRequestRepository(store),
			leave:     memory.NewLeaveRequestRepository(store),
			salary:    memory.NewSalaryRepository(store),
			timesheet: memory.NewTimesheetRepository(store),
		}, func() {}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return repositories{}, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgresql.Migrate(ctx, db); err != nil {
		db.Close()
		return repositories{}, nil, err
	}
	return repositories{
		staff:     postgresql.NewStaffRepository(db),
		shift:     postgresql.NewShiftRepository(db),
		cover:     postgresql.NewCoverRequestRepository(db),
		leave:     postgresql.NewLeaveRequestRepository(db),
		salary:    postgresql.NewSalaryRepository(db),
		timesheet: postgresql.NewTimesheetRepository(db),
	}, db.Close, nil
}
