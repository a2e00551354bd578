package handler

import (
	"net/http"

	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/delivery/http/view"
	"healthtrack/internal/usecase"
	"healthtrack/pkg/response"
	"healthtrack/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	renderer       *view.Renderer
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, renderer *view.Renderer) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		renderer:       renderer,
	}
}

// Page handles GET /pacientes, optionally filtered by ?q=.
func (h *PatientHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, r.URL.Query().Get("q"), nil, nil)
}

// Submit handles POST /pacientes.
func (h *PatientHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := decodeForm(r, &req); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, "", &req, formErrors(err))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, "", &req, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.patientUsecase.CreatePatient(r.Context(), &req); err != nil {
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to create patient")
		return
	}

	h.renderPage(w, r, http.StatusOK, "", nil, nil)
}

func (h *PatientHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, query string, form *dto.CreatePatientRequest, errs map[string]string) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context(), query)
	if err != nil {
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to get patients")
		return
	}

	h.renderer.Render(w, status, view.PagePatients, view.PatientsPage{
		Patients: patients.Patients,
		Query:    query,
		Form:     form,
		Errors:   errs,
	})
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}
