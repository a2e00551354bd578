package handler

import (
	"context"
	"errors"
	"net/http"

	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/delivery/http/middleware"
	"healthtrack/internal/delivery/http/view"
	"healthtrack/internal/usecase"
	"healthtrack/pkg/response"
	"healthtrack/pkg/validator"

	"github.com/sirupsen/logrus"
)

const appointmentsPath = "/citas"

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	renderer           *view.Renderer
	log                *logrus.Logger
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
	renderer *view.Renderer,
	log *logrus.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		renderer:           renderer,
		log:                log,
	}
}

// Page handles GET /citas.
func (h *AppointmentHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, nil, nil)
}

// Submit handles POST /citas and redirects back to the list.
func (h *AppointmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := decodeForm(r, &req); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, &req, formErrors(err))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, &req, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req); err != nil {
		var fieldErr *usecase.FieldError
		if errors.As(err, &fieldErr) {
			h.renderPage(w, r, http.StatusBadRequest, &req, fieldErr.Fields)
			return
		}
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	http.Redirect(w, r, appointmentsPath, http.StatusFound)
}

// Remove handles GET /eliminar_cita/{id}. Unknown ids still redirect.
func (h *AppointmentHandler) Remove(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathID(r, "id")
	if err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID); err != nil {
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	http.Redirect(w, r, appointmentsPath, http.StatusFound)
}

// CancelPage handles GET /cancelar_cita/{id}.
func (h *AppointmentHandler) CancelPage(w http.ResponseWriter, r *http.Request) {
	h.transitionPage(w, r, h.appointmentUsecase.CancelAppointment)
}

// CompletePage handles GET /completar_cita/{id}.
func (h *AppointmentHandler) CompletePage(w http.ResponseWriter, r *http.Request) {
	h.transitionPage(w, r, h.appointmentUsecase.CompleteAppointment)
}

type appointmentTransition func(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error)

func (h *AppointmentHandler) transitionPage(w http.ResponseWriter, r *http.Request, apply appointmentTransition) {
	appointmentID, err := pathID(r, "id")
	if err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if _, err := apply(r.Context(), appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			h.renderer.Error(w, http.StatusNotFound, "Appointment not found")
			return
		case usecase.ErrAppointmentNotPending:
			requestID, _ := middleware.GetRequestIDFromContext(r.Context())
			h.log.WithField("request_id", requestID).Infof("Ignoring status change for appointment %d: not pending", appointmentID)
		default:
			h.renderer.Error(w, http.StatusInternalServerError, "Failed to update appointment")
			return
		}
	}

	http.Redirect(w, r, appointmentsPath, http.StatusFound)
}

func (h *AppointmentHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, form *dto.CreateAppointmentRequest, errs map[string]string) {
	board, err := h.appointmentUsecase.GetAppointmentBoard(r.Context())
	if err != nil {
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to get appointments")
		return
	}

	h.renderer.Render(w, status, view.PageAppointment, view.AppointmentsPage{
		Board:  board,
		Form:   form,
		Errors: errs,
	})
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		var fieldErr *usecase.FieldError
		if errors.As(err, &fieldErr) {
			response.ValidationError(w, fieldErr.Fields)
			return
		}
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID); err != nil {
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	h.transitionAPI(w, r, h.appointmentUsecase.CancelAppointment, "Appointment cancelled successfully")
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.transitionAPI(w, r, h.appointmentUsecase.CompleteAppointment, "Appointment completed successfully")
}

func (h *AppointmentHandler) transitionAPI(w http.ResponseWriter, r *http.Request, apply appointmentTransition, message string) {
	appointmentID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := apply(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotPending:
			response.Conflict(w, "Only pending appointments can change status")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, message, appointment)
}
