package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/handler/http/middleware"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Company    CompanyHandler
	Payroll    PayrollHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Expense    ExpenseHandler
	Task       TaskHandler
	Client     ClientHandler
	Document   DocumentHandler
	Inquiry    InquiryHandler
	Report     ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "offisbridge-backoffice"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Public funnel
		r.Post("/inquiries", h.Inquiry.Submit)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Company.List)
					r.Post("/", h.Company.Create)
				})

				r.Route("/my", func(r chi.Router) {
					r.Get("/", h.Company.GetMy)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/", h.Company.UpdateMy)
					})
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.ManagerOrAdmin)
				r.Post("/import", h.Payroll.Import)
				r.Post("/", h.Payroll.CreateRecord)
				r.Get("/", h.Payroll.ListRecords)
				r.Delete("/", h.Payroll.DeletePeriod)
				r.Get("/summary", h.Payroll.GetMonthSummary)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/", h.Attendance.ListMonth)
				r.Get("/summary", h.Attendance.GetMonthSummary)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Request)
				r.Get("/my", h.Leave.ListMine)
				r.Post("/{id}/cancel", h.Leave.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", h.Expense.Create)
				r.Get("/", h.Expense.ListMonth)
				r.Get("/totals", h.Expense.GetMonthTotals)
				r.Delete("/{id}", h.Expense.Delete)
				r.Post("/{id}/receipt", h.Expense.AttachReceipt)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", h.Task.Create)
				r.Get("/board", h.Task.GetBoard)
				r.Put("/{id}", h.Task.Update)
				r.Post("/{id}/move", h.Task.Move)
				r.Delete("/{id}", h.Task.Delete)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Post("/", h.Client.CreateClient)
				r.Get("/", h.Client.ListClients)
				r.Delete("/{id}", h.Client.DeleteClient)
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Post("/", h.Client.CreateContract)
				r.Get("/", h.Client.ListContracts)
				r.Post("/{id}/transition", h.Client.TransitionContract)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", h.Document.Upload)
				r.Get("/", h.Document.List)
				r.Get("/{id}/download", h.Document.Download)
				r.Delete("/{id}", h.Document.Delete)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/inquiries", h.Inquiry.List)
				r.Post("/inquiries/{id}/answer", h.Inquiry.Answer)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOrAdmin)
				r.Get("/reports/waterfall", h.Report.GetWaterfall)
			})
		})
	})

	return r
}
