package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	OrgUnit    OrgUnitHandler
	Personnel  PersonnelHandler
	Shift      ShiftHandler
	Calendar   CalendarHandler
	WorkGroup  WorkGroupHandler
	Attendance AttendanceHandler
	Leave      RequestHandler
	Mission    RequestHandler
	Master     MasterHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-Api-Key"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Punch devices authenticate with a shared key, not a user token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireDeviceKey(cfg.Device.APIKey))
			r.Post("/attendance/device-logs", h.Attendance.IngestDeviceLogs)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/org-units", func(r chi.Router) {
				r.Get("/", h.OrgUnit.List)
				r.Get("/tree", h.OrgUnit.Tree)
				r.Get("/{id}", h.OrgUnit.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.OrgUnit.Create)
					r.Put("/{id}", h.OrgUnit.Update)
					r.Delete("/{id}", h.OrgUnit.Delete)
				})
			})

			r.Route("/personnel", func(r chi.Router) {
				r.Get("/", h.Personnel.List)
				r.Get("/{id}", h.Personnel.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Personnel.Create)
					r.Put("/{id}", h.Personnel.Update)
					r.Delete("/{id}", h.Personnel.Deactivate)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/calendars", func(r chi.Router) {
				r.Get("/", h.Calendar.List)
				r.Get("/{id}", h.Calendar.Get)
				r.Get("/{id}/holidays", h.Calendar.ListHolidays)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Calendar.Create)
					r.Put("/{id}", h.Calendar.Update)
					r.Delete("/{id}", h.Calendar.Delete)
					r.Post("/{id}/holidays", h.Calendar.AddHoliday)
					r.Delete("/{id}/holidays/{holidayID}", h.Calendar.DeleteHoliday)
				})
			})

			r.Route("/work-groups", func(r chi.Router) {
				r.Get("/", h.WorkGroup.List)
				r.Get("/{id}", h.WorkGroup.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.WorkGroup.Create)
					r.Put("/{id}", h.WorkGroup.Update)
					r.Delete("/{id}", h.WorkGroup.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/daily-summaries", h.Attendance.ListSummaries)
				r.Get("/raw-logs", h.Attendance.ListRawLogs)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/logs", h.Attendance.CreateLog)
					r.Put("/logs/{id}", h.Attendance.UpdateLog)
					r.Delete("/logs/{id}", h.Attendance.DeleteLog)
					r.Post("/reprocess", h.Attendance.Reprocess)
					r.Post("/process", h.Attendance.Process)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Get("/{id}", h.Leave.Get)
				r.Put("/{id}", h.Leave.Update)
				r.Delete("/{id}", h.Leave.Delete)
				r.Put("/{id}/status", h.Leave.UpdateStatus)
			})

			r.Route("/mission-requests", func(r chi.Router) {
				r.Get("/", h.Mission.List)
				r.Post("/", h.Mission.Create)
				r.Get("/{id}", h.Mission.Get)
				r.Put("/{id}", h.Mission.Update)
				r.Delete("/{id}", h.Mission.Delete)
				r.Put("/{id}/status", h.Mission.UpdateStatus)
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.Master.ListLeaveTypes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.CreateLeaveType)
					r.Delete("/{id}", h.Master.DeleteLeaveType)
				})
			})

			r.Route("/mission-types", func(r chi.Router) {
				r.Get("/", h.Master.ListMissionTypes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.CreateMissionType)
					r.Delete("/{id}", h.Master.DeleteMissionType)
				})
			})

			// Manager or admin
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/summary", h.Report.Summary)
				r.Post("/payroll-export", h.Report.PayrollExport)
			})
		})
	})
	return r
}
