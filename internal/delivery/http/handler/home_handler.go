package handler

import (
	"net/http"

	"healthtrack/internal/delivery/http/view"
)

type HomeHandler struct {
	renderer *view.Renderer
}

func NewHomeHandler(renderer *view.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageIndex, nil)
}
