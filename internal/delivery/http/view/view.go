package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"healthtrack/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageIndex       = "index.html"
	PageDoctors     = "doctores.html"
	PagePatients    = "pacientes.html"
	PageAppointment = "citas.html"
	PageHistory     = "historial.html"
	PageEditHistory = "editar_historial.html"
	PageError       = "error.html"
)

var pages = []string{
	PageIndex,
	PageDoctors,
	PagePatients,
	PageAppointment,
	PageHistory,
	PageEditHistory,
	PageError,
}

type DoctorsPage struct {
	Doctors     []dto.DoctorResponse
	Specialties []string
	Form        *dto.CreateDoctorRequest
	Errors      map[string]string
}

type PatientsPage struct {
	Patients []dto.PatientResponse
	Query    string
	Form     *dto.CreatePatientRequest
	Errors   map[string]string
}

type AppointmentsPage struct {
	Board  *dto.AppointmentBoardResponse
	Form   *dto.CreateAppointmentRequest
	Errors map[string]string
}

type HistoryPage struct {
	History *dto.PatientHistoryResponse
	Form    *dto.ClinicalHistoryRequest
	Errors  map[string]string
}

type EditHistoryPage struct {
	Record *dto.ClinicalHistoryResponse
	Errors map[string]string
}

type ErrorPage struct {
	Status  int
	Message string
}

// Renderer executes the embedded page templates, each wrapped in the
// shared layout.
type Renderer struct {
	log   *logrus.Logger
	pages map[string]*template.Template
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	r := &Renderer{
		log:   log,
		pages: make(map[string]*template.Template, len(pages)),
	}

	for _, page := range pages {
		tmpl, err := template.New(page).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render writes page with the given status. The template is executed into
// a buffer first so a failing template never leaves a half-written body.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.log.Errorf("Unknown page template: %s", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.log.Errorf("Failed to render %s: %v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	r.Render(w, status, PageError, ErrorPage{Status: status, Message: message})
}
