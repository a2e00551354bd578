package dto

import "time"

// Request DTOs

// CreateDoctorRequest is decoded from the legacy doctor form (schema tags)
// or from JSON.
type CreateDoctorRequest struct {
	Name      string `schema:"nombre" json:"name" validate:"required"`
	Specialty string `schema:"especialidad" json:"specialty" validate:"required,specialty"`
	Phone     string `schema:"telefono" json:"phone" validate:"digits"`
	Email     string `schema:"correo" json:"email"`
}

// Response DTOs

type DoctorResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
}
