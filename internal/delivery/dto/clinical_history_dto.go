package dto

import "time"

// Request DTOs

// ClinicalHistoryRequest is used for both creating and overwriting a record.
// Every field is free text; the last four are optional.
type ClinicalHistoryRequest struct {
	Date        string `schema:"fecha" json:"date"`
	Diagnosis   string `schema:"diagnostico" json:"diagnosis"`
	Treatment   string `schema:"tratamiento" json:"treatment"`
	BloodType   string `schema:"tipo_sangre" json:"blood_type"`
	Allergies   string `schema:"alergias" json:"allergies"`
	Relatives   string `schema:"parientes" json:"relatives"`
	Description string `schema:"descripcion" json:"description"`
}

// Response DTOs

type ClinicalHistoryResponse struct {
	ID          uint      `json:"id"`
	PatientID   uint      `json:"patient_id"`
	Date        string    `json:"date"`
	Diagnosis   string    `json:"diagnosis"`
	Treatment   string    `json:"treatment"`
	BloodType   string    `json:"blood_type"`
	Allergies   string    `json:"allergies"`
	Relatives   string    `json:"relatives"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PatientHistoryResponse struct {
	Patient PatientResponse           `json:"patient"`
	Records []ClinicalHistoryResponse `json:"records"`
	Total   int                       `json:"total"`
}
