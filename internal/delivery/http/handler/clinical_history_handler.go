package handler

import (
	"fmt"
	"net/http"

	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/delivery/http/view"
	"healthtrack/internal/usecase"
	"healthtrack/pkg/response"
)

type ClinicalHistoryHandler struct {
	historyUsecase usecase.ClinicalHistoryUsecase
	renderer       *view.Renderer
}

func NewClinicalHistoryHandler(historyUsecase usecase.ClinicalHistoryUsecase, renderer *view.Renderer) *ClinicalHistoryHandler {
	return &ClinicalHistoryHandler{
		historyUsecase: historyUsecase,
		renderer:       renderer,
	}
}

func historyPath(patientID uint) string {
	return fmt.Sprintf("/historial/%d", patientID)
}

// Page handles GET /historial/{paciente_id}.
func (h *ClinicalHistoryHandler) Page(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "paciente_id")
	if err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	h.renderPage(w, r, http.StatusOK, patientID, nil, nil)
}

// Submit handles POST /historial/{paciente_id}: it appends a record and
// renders the refreshed history.
func (h *ClinicalHistoryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "paciente_id")
	if err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req dto.ClinicalHistoryRequest
	if err := decodeForm(r, &req); err != nil {
		h.renderPage(w, r, http.StatusBadRequest, patientID, &req, formErrors(err))
		return
	}

	if _, err := h.historyUsecase.AddRecord(r.Context(), patientID, &req); err != nil {
		if err == usecase.ErrPatientNotFound {
			h.renderer.Error(w, http.StatusNotFound, "Patient not found")
			return
		}
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to add clinical history")
		return
	}

	h.renderPage(w, r, http.StatusOK, patientID, nil, nil)
}

func (h *ClinicalHistoryHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, patientID uint, form *dto.ClinicalHistoryRequest, errs map[string]string) {
	history, err := h.historyUsecase.GetPatientHistory(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			h.renderer.Error(w, http.StatusNotFound, "Patient not found")
			return
		}
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to get clinical history")
		return
	}

	h.renderer.Render(w, status, view.PageHistory, view.HistoryPage{
		History: history,
		Form:    form,
		Errors:  errs,
	})
}

// EditPage handles GET /editar_historial/{id}.
func (h *ClinicalHistoryHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "id")
	if err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	record, err := h.historyUsecase.GetRecord(r.Context(), recordID)
	if err != nil {
		if err == usecase.ErrClinicalHistoryNotFound {
			h.renderer.Error(w, http.StatusNotFound, "Clinical history record not found")
			return
		}
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to get clinical history")
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageEditHistory, view.EditHistoryPage{Record: record})
}

// EditSubmit handles POST /editar_historial/{id}. The redirect goes to the
// patient stored on the record.
func (h *ClinicalHistoryHandler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "id")
	if err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var req dto.ClinicalHistoryRequest
	if err := decodeForm(r, &req); err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid form submission")
		return
	}

	record, err := h.historyUsecase.UpdateRecord(r.Context(), recordID, &req)
	if err != nil {
		if err == usecase.ErrClinicalHistoryNotFound {
			h.renderer.Error(w, http.StatusNotFound, "Clinical history record not found")
			return
		}
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to update clinical history")
		return
	}

	http.Redirect(w, r, historyPath(record.PatientID), http.StatusFound)
}

func (h *ClinicalHistoryHandler) GetPatientHistory(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	history, err := h.historyUsecase.GetPatientHistory(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinical history")
		return
	}

	response.Success(w, http.StatusOK, "Clinical history retrieved successfully", history)
}

func (h *ClinicalHistoryHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.ClinicalHistoryRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	record, err := h.historyUsecase.AddRecord(r.Context(), patientID, &req)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to add clinical history")
		return
	}

	response.Success(w, http.StatusCreated, "Clinical history created successfully", record)
}

func (h *ClinicalHistoryHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	record, err := h.historyUsecase.GetRecord(r.Context(), recordID)
	if err != nil {
		if err == usecase.ErrClinicalHistoryNotFound {
			response.NotFound(w, "Clinical history record not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinical history")
		return
	}

	response.Success(w, http.StatusOK, "Clinical history retrieved successfully", record)
}

func (h *ClinicalHistoryHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.ClinicalHistoryRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	record, err := h.historyUsecase.UpdateRecord(r.Context(), recordID, &req)
	if err != nil {
		if err == usecase.ErrClinicalHistoryNotFound {
			response.NotFound(w, "Clinical history record not found")
			return
		}
		response.InternalServerError(w, "Failed to update clinical history")
		return
	}

	response.Success(w, http.StatusOK, "Clinical history updated successfully", record)
}
