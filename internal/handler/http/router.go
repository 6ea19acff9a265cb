package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/folgas-app/folgas-backend-go/internal/config"
	"github.com/folgas-app/folgas-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	scheduleHandler ScheduleHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "folgas-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.SecretHeader},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored avatars
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", scheduleHandler.GetSchedule)
			r.Get("/stats", scheduleHandler.GetStats)

			// Mutations require the shared secret
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSecret(cfg.Admin.Secret))
				r.Post("/requests", scheduleHandler.Register)
				r.Post("/requests/{id}/approve", scheduleHandler.Approve)
				r.Post("/requests/{id}/reject", scheduleHandler.Reject)
				r.Post("/requests/{id}/toggle", scheduleHandler.Toggle)
				r.Delete("/requests/{id}", scheduleHandler.DeleteRequest)
			})
		})

		// The whole roster page sits behind the secret, opening it is a
		// guarded action too.
		r.Route("/employees", func(r chi.Router) {
			r.Use(middleware.RequireSecret(cfg.Admin.Secret))
			r.Get("/", employeeHandler.List)
			r.Get("/departments", employeeHandler.Departments)
			r.Post("/", employeeHandler.Create)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
			r.Post("/{id}/photo", employeeHandler.UploadPhoto)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.RequireSecret(cfg.Admin.Secret))
			r.Get("/schedule", reportHandler.ExportSchedule)
		})
	})

	return r
}
