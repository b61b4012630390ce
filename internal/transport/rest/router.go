package rest

import (
	"database/sql"
	"net/http"

	"github.com/frahmantamala/hrms-lite/api"
	"github.com/frahmantamala/hrms-lite/internal/attendance"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	"github.com/frahmantamala/hrms-lite/internal/transport/middleware"
	"github.com/frahmantamala/hrms-lite/internal/transport/swagger"
	"github.com/go-chi/chi"
)

const openAPIPath = "/openapi.yml"

// Options carries everything the router wires together.
type Options struct {
	DB                *sql.DB
	Environment       string
	EmployeeHandler   *employee.Handler
	AttendanceHandler *attendance.Handler
	Metrics           *middleware.MetricsCollection
	MetricsPath       string
	MetricsHandler    http.Handler
}

func RegisterAllRoutes(router chi.Router, opts Options) {
	healthHandler := NewHealthHandler(opts.DB, opts.Environment)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware)
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Metrics)
	}
	router.Use(middleware.Recoverer)

	if opts.MetricsHandler != nil {
		router.Handle(opts.MetricsPath, opts.MetricsHandler)
	}

	router.Get(openAPIPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.OpenAPI)
	})
	router.Handle("/swagger/*", swagger.Handler(openAPIPath))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Get("/ping", healthHandler.Ping)

		if opts.EmployeeHandler != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Get("/", opts.EmployeeHandler.ListEmployees)
				er.Post("/", opts.EmployeeHandler.CreateEmployee)
				er.Get("/{id}", opts.EmployeeHandler.GetEmployee)
				er.Put("/{id}", opts.EmployeeHandler.UpdateEmployee)
				er.Delete("/{id}", opts.EmployeeHandler.DeleteEmployee)

				if opts.AttendanceHandler != nil {
					er.Get("/{id}/attendance-summary", opts.AttendanceHandler.GetEmployeeSummary)
				}
			})
		}

		if opts.AttendanceHandler != nil {
			r.Route("/attendance", func(ar chi.Router) {
				ar.Get("/", opts.AttendanceHandler.ListAttendance)
				ar.Post("/", opts.AttendanceHandler.MarkAttendance)
				ar.Get("/{id}", opts.AttendanceHandler.GetAttendance)
				ar.Put("/{id}", opts.AttendanceHandler.UpdateAttendance)
				ar.Delete("/{id}", opts.AttendanceHandler.DeleteAttendance)
			})
		}
	})
}
