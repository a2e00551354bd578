package http

import (
	"net/http"

	"healthtrack/internal/delivery/http/handler"
	"healthtrack/internal/delivery/http/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router                 *mux.Router
	log                    *logrus.Logger
	homeHandler            *handler.HomeHandler
	doctorHandler          *handler.DoctorHandler
	patientHandler         *handler.PatientHandler
	appointmentHandler     *handler.AppointmentHandler
	clinicalHistoryHandler *handler.ClinicalHistoryHandler
	auditLogHandler        *handler.AuditLogHandler
	requestLogger          *middleware.RequestLogger
	corsMiddleware         *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	homeHandler *handler.HomeHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	clinicalHistoryHandler *handler.ClinicalHistoryHandler,
	auditLogHandler *handler.AuditLogHandler,
	requestLogger *middleware.RequestLogger,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		log:                    log,
		homeHandler:            homeHandler,
		doctorHandler:          doctorHandler,
		patientHandler:         patientHandler,
		appointmentHandler:     appointmentHandler,
		clinicalHistoryHandler: clinicalHistoryHandler,
		auditLogHandler:        auditLogHandler,
		requestLogger:          requestLogger,
		corsMiddleware:         corsMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	// HTML pages
	r.router.HandleFunc("/", r.homeHandler.Index).Methods(http.MethodGet)
	r.router.HandleFunc("/doctores", r.doctorHandler.Page).Methods(http.MethodGet)
	r.router.HandleFunc("/doctores", r.doctorHandler.Submit).Methods(http.MethodPost)
	r.router.HandleFunc("/pacientes", r.patientHandler.Page).Methods(http.MethodGet)
	r.router.HandleFunc("/pacientes", r.patientHandler.Submit).Methods(http.MethodPost)
	r.router.HandleFunc("/citas", r.appointmentHandler.Page).Methods(http.MethodGet)
	r.router.HandleFunc("/citas", r.appointmentHandler.Submit).Methods(http.MethodPost)
	r.router.HandleFunc("/eliminar_cita/{id}", r.appointmentHandler.Remove).Methods(http.MethodGet)
	r.router.HandleFunc("/cancelar_cita/{id}", r.appointmentHandler.CancelPage).Methods(http.MethodGet)
	r.router.HandleFunc("/completar_cita/{id}", r.appointmentHandler.CompletePage).Methods(http.MethodGet)
	r.router.HandleFunc("/historial/{paciente_id}", r.clinicalHistoryHandler.Page).Methods(http.MethodGet)
	r.router.HandleFunc("/historial/{paciente_id}", r.clinicalHistoryHandler.Submit).Methods(http.MethodPost)
	r.router.HandleFunc("/editar_historial/{id}", r.clinicalHistoryHandler.EditPage).Methods(http.MethodGet)
	r.router.HandleFunc("/editar_historial/{id}", r.clinicalHistoryHandler.EditSubmit).Methods(http.MethodPost)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPut)

	// Clinical history
	api.HandleFunc("/patients/{id}/history", r.clinicalHistoryHandler.GetPatientHistory).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/history", r.clinicalHistoryHandler.AddRecord).Methods(http.MethodPost)
	api.HandleFunc("/history/{id}", r.clinicalHistoryHandler.GetRecord).Methods(http.MethodGet)
	api.HandleFunc("/history/{id}", r.clinicalHistoryHandler.UpdateRecord).Methods(http.MethodPut)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(r.log),
		handlers.PrintRecoveryStack(true),
	)(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
