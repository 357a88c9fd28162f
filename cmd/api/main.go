package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/offisbridge/backoffice-backend-go/internal/config"
	appHTTP "github.com/offisbridge/backoffice-backend-go/internal/handler/http"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/jwt"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/storage"
	"github.com/offisbridge/backoffice-backend-go/internal/repository/postgresql"
	attendanceService "github.com/offisbridge/backoffice-backend-go/internal/service/attendance"
	authService "github.com/offisbridge/backoffice-backend-go/internal/service/auth"
	clientService "github.com/offisbridge/backoffice-backend-go/internal/service/client"
	companyService "github.com/offisbridge/backoffice-backend-go/internal/service/company"
	documentService "github.com/offisbridge/backoffice-backend-go/internal/service/document"
	expenseService "github.com/offisbridge/backoffice-backend-go/internal/service/expense"
	inquiryService "github.com/offisbridge/backoffice-backend-go/internal/service/inquiry"
	leaveService "github.com/offisbridge/backoffice-backend-go/internal/service/leave"
	payrollService "github.com/offisbridge/backoffice-backend-go/internal/service/payroll"
	reportService "github.com/offisbridge/backoffice-backend-go/internal/service/report"
	taskService "github.com/offisbridge/backoffice-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	inquiryRepo := postgresql.NewInquiryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := authService.NewAuthService(db, userRepo, companyRepo, jwtService, refreshTokenRepo)
	companySvc := companyService.NewCompanyService(db, companyRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo)
	expenseSvc := expenseService.NewExpenseService(db, expenseRepo, fileStorage)
	taskSvc := taskService.NewTaskService(db, taskRepo)
	clientSvc := clientService.NewClientService(db, clientRepo, contractRepo)
	documentSvc := documentService.NewDocumentService(db, documentRepo, fileStorage)
	inquirySvc := inquiryService.NewInquiryService(db, inquiryRepo)
	reportSvc := reportService.NewReportService(db, contractRepo, payrollRepo, expenseRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Expense:    appHTTP.NewExpenseHandler(expenseSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Document:   appHTTP.NewDocumentHandler(documentSvc),
		Inquiry:    appHTTP.NewInquiryHandler(inquirySvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
