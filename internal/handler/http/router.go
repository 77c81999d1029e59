package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/andes-hr/hr-backend-go/internal/config"
	"github.com/andes-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/andes-hr/hr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Company    CompanyHandler
	Master     MasterHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.Route("/company", func(r chi.Router) {
				r.Get("/", h.Company.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Company.Update)
				})
			})

			// Master data, admin managed
			r.Route("/branches", func(r chi.Router) {
				r.Get("/", h.Master.ListBranches)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateBranch)
					r.Delete("/{branchID}", h.Master.DeleteBranch)
				})
			})
			r.Route("/positions", func(r chi.Router) {
				r.Get("/", h.Master.ListPositions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreatePosition)
					r.Delete("/{positionID}", h.Master.DeletePosition)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.ApproverOnly)
				r.Get("/", h.Employee.List)
				r.Get("/{employeeID}", h.Employee.Get)
				r.Get("/{employeeID}/contracts", h.Employee.ListContracts)
				r.Get("/{employeeID}/leave-balances", h.Leave.Balances)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{employeeID}", h.Employee.Update)
					r.Post("/{employeeID}/user", h.Employee.ProvisionUser)
					r.Post("/{employeeID}/contracts", h.Employee.AddContract)
					r.Post("/{employeeID}/leave-balances", h.Leave.GrantDays)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/marks", h.Attendance.Mark)
				r.Get("/me/summary", h.Attendance.MyDaySummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ApproverOnly)
					r.Get("/marks", h.Attendance.ListMarks)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/rule", h.Attendance.GetRule)
					r.Put("/rule", h.Attendance.UpsertRule)
					r.Post("/geofences", h.Attendance.CreateGeofence)
					r.Get("/geofences", h.Attendance.ListGeofences)
					r.Delete("/geofences/{geofenceID}", h.Attendance.DeleteGeofence)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", h.Leave.CreateRequest)
				r.Get("/requests/my", h.Leave.MyRequests)
				r.Get("/requests/{requestID}", h.Leave.Get)
				r.Get("/balances/my", h.Leave.MyBalances)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ApproverOnly)
					r.Get("/requests", h.Leave.List)
					r.Post("/requests/{requestID}/approve", h.Leave.Approve)
					r.Post("/requests/{requestID}/reject", h.Leave.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.ApproverOnly)
				r.Get("/estimate", h.Payroll.Estimate)
				r.Get("/payslips/{employeeID}", h.Payroll.Payslip)
			})
		})
	})

	return r
}
