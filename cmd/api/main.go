package main

import (
	"fmt"
	"net/http"

	"github.com/andes-hr/hr-backend-go/internal/config"
	appHTTP "github.com/andes-hr/hr-backend-go/internal/handler/http"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
	"github.com/andes-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/andes-hr/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/andes-hr/hr-backend-go/internal/service/attendance"
	authService "github.com/andes-hr/hr-backend-go/internal/service/auth"
	companyService "github.com/andes-hr/hr-backend-go/internal/service/company"
	employeeService "github.com/andes-hr/hr-backend-go/internal/service/employee"
	leaveService "github.com/andes-hr/hr-backend-go/internal/service/leave"
	masterService "github.com/andes-hr/hr-backend-go/internal/service/master"
	payrollService "github.com/andes-hr/hr-backend-go/internal/service/payroll"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	markRepo := postgresql.NewMarkRepository(db)
	geofenceRepo := postgresql.NewGeofenceRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	companySvc := companyService.NewCompanyService(companyRepo)
	masterSvc := masterService.NewMasterService(branchRepo, positionRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, contractRepo, userRepo, cfg.Employee.DefaultPassword)
	attendanceSvc := attendanceService.NewAttendanceService(db, markRepo, geofenceRepo, ruleRepo, branchRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveBalanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, contractRepo, leaveRequestRepo, markRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
