package http

import (
	"net/http"

	"clinic-agenda/internal/delivery/http/handler"
	"clinic-agenda/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	professionalHandler *handler.ProfessionalHandler
	appointmentHandler  *handler.AppointmentHandler
	statsHandler        *handler.StatsHandler
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	professionalHandler *handler.ProfessionalHandler,
	appointmentHandler *handler.AppointmentHandler,
	statsHandler *handler.StatsHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		professionalHandler: professionalHandler,
		appointmentHandler:  appointmentHandler,
		statsHandler:        statsHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Professionals
	r.router.HandleFunc("/professionals", r.professionalHandler.CreateProfessional).Methods(http.MethodPost)
	r.router.HandleFunc("/professionals", r.professionalHandler.ListProfessionals).Methods(http.MethodGet)
	r.router.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	r.router.HandleFunc("/professionals/{id}", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut, http.MethodPatch)
	r.router.HandleFunc("/professionals/{id}", r.professionalHandler.DeleteProfessional).Methods(http.MethodDelete)

	// Appointments
	r.router.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut, http.MethodPatch)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Reporting
	r.router.HandleFunc("/stats", r.statsHandler.GetStats).Methods(http.MethodGet)
	r.router.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
