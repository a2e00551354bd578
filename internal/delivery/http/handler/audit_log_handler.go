package handler

import (
	"net/http"
	"strconv"

	"healthtrack/internal/usecase"
	"healthtrack/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetAuditLogs returns the newest entries. ?limit= caps the page size.
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	auditLogs, err := h.auditLogUsecase.GetRecentAuditLogs(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs)
}
