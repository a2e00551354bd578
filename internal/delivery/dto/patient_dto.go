package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	IDType   string `schema:"tipo_identificacion" json:"id_type"`
	IDNumber string `schema:"identificacion" json:"id_number" validate:"digits"`
	Name     string `schema:"nombre" json:"name"`
	Age      int    `schema:"edad" json:"age"`
	Gender   string `schema:"genero" json:"gender"`
	Phone    string `schema:"telefono" json:"phone" validate:"digits"`
	Address  string `schema:"direccion" json:"address"`
}

// Response DTOs

type PatientResponse struct {
	ID        uint      `json:"id"`
	IDType    string    `json:"id_type"`
	IDNumber  string    `json:"id_number"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
