package handler

import (
	"net/http"

	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/delivery/http/view"
	"healthtrack/internal/usecase"
	"healthtrack/pkg/response"
	"healthtrack/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
	renderer      *view.Renderer
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator, renderer *view.Renderer) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
		renderer:      renderer,
	}
}

// Page handles GET /doctores.
func (h *DoctorHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, nil, nil)
}

// Submit handles POST /doctores and renders the refreshed list.
func (h *DoctorHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := decodeForm(r, &req); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, &req, formErrors(err))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, &req, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.doctorUsecase.CreateDoctor(r.Context(), &req); err != nil {
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to create doctor")
		return
	}

	h.renderPage(w, r, http.StatusOK, nil, nil)
}

func (h *DoctorHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, form *dto.CreateDoctorRequest, errs map[string]string) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to get doctors")
		return
	}

	h.renderer.Render(w, status, view.PageDoctors, view.DoctorsPage{
		Doctors:     doctors.Doctors,
		Specialties: h.doctorUsecase.Specialties(),
		Form:        form,
		Errors:      errs,
	})
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", &dto.SpecialtyListResponse{
		Specialties: h.doctorUsecase.Specialties(),
	})
}
