package usecase

import (
	"context"

	"healthtrack/internal/converter"
	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentBoard(ctx context.Context) (*dto.AppointmentBoardResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uint) error
	CancelAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	directory       service.DirectoryCache
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	directory service.DirectoryCache,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		directory:       directory,
		auditService:    auditService,
	}
}

// CreateAppointment books a new pending appointment. Both referenced rows
// must exist; a missing one is reported as a *FieldError.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}

	fields := map[string]string{}
	if patient == nil {
		fields["patient_id"] = "patient_id does not reference an existing patient"
	}
	if doctor == nil {
		fields["doctor_id"] = "doctor_id does not reference an existing doctor"
	}
	if len(fields) > 0 {
		return nil, &FieldError{Fields: fields}
	}

	appointment := converter.AppointmentRequestToEntity(req)
	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	response.PatientName = patient.Name
	response.DoctorName = doctor.Name
	u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, response)

	u.log.Infof("Appointment created: id=%d, patient=%d, doctor=%d", appointment.ID, appointment.PatientID, appointment.DoctorID)
	return response, nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	rows, err := u.appointmentRepo.FindAllDetailed(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentDetailsToResponses(rows),
		Total:        len(rows),
	}, nil
}

// GetAppointmentBoard gathers the appointment list together with the
// patient and doctor pick lists shown on the booking form.
func (u *appointmentUsecase) GetAppointmentBoard(ctx context.Context) (*dto.AppointmentBoardResponse, error) {
	db := u.db.WithContext(ctx)

	rows, err := u.appointmentRepo.FindAllDetailed(db)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	patients, err := u.directory.Patients(ctx, func() ([]entity.Patient, error) {
		return u.patientRepo.FindAll(db, "")
	})
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	doctors, err := u.directory.Doctors(ctx, func() ([]entity.Doctor, error) {
		return u.doctorRepo.FindAll(db)
	})
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.AppointmentBoardResponse{
		Appointments: converter.AppointmentDetailsToResponses(rows),
		Patients:     converter.PatientsToResponses(patients),
		Doctors:      converter.DoctorsToResponses(doctors),
	}, nil
}

// DeleteAppointment is idempotent: deleting an unknown id succeeds and
// leaves no audit entry.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uint) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}

	rows, err := u.appointmentRepo.Delete(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed delete appointment: %+v", err)
		return err
	}

	if rows > 0 && appointment != nil {
		u.auditService.LogDelete(ctx, entity.AuditActionAppointmentDelete, "appointment", appointmentID, converter.AppointmentToResponse(appointment))
	}
	return nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusCancelled)
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AppointmentStatusCompleted)
}

// transition moves a pending appointment to a final status. The update is
// conditional on the row still being pending, so two concurrent requests
// cannot both succeed.
func (u *appointmentUsecase) transition(ctx context.Context, appointmentID uint, to entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.IsPending() {
		return nil, ErrAppointmentNotPending
	}

	old := converter.AppointmentToResponse(appointment)

	rows, err := u.appointmentRepo.UpdateStatus(db, appointmentID, entity.AppointmentStatusPending, to)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotPending
	}

	appointment.Status = to
	response := converter.AppointmentToResponse(appointment)
	u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentStatus, "appointment", appointmentID, old, response)

	u.log.Infof("Appointment %d moved to %s", appointmentID, to)
	return response, nil
}
