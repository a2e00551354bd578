package usecase

import (
	"context"
	"strings"

	"healthtrack/internal/converter"
	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/domain/repository"
	"healthtrack/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, keyword string) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, patientID uint) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID uint) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	directory    service.DirectoryCache
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	directory service.DirectoryCache,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		directory:    directory,
		auditService: auditService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := converter.PatientRequestToEntity(req)
	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.directory.InvalidatePatients(ctx)
	response := converter.PatientToResponse(patient)
	u.auditService.LogCreate(ctx, entity.AuditActionPatientCreate, "patient", patient.ID, response)

	u.log.Infof("Patient created: id=%d", patient.ID)
	return response, nil
}

// GetAllPatients lists patients by name. The unfiltered list is served from
// the directory cache; keyword searches always hit the database.
func (u *patientUsecase) GetAllPatients(ctx context.Context, keyword string) (*dto.PatientListResponse, error) {
	var (
		patients []entity.Patient
		err      error
	)
	if strings.TrimSpace(keyword) == "" {
		patients, err = u.directory.Patients(ctx, func() ([]entity.Patient, error) {
			return u.patientRepo.FindAll(u.db.WithContext(ctx), "")
		})
	} else {
		patients, err = u.patientRepo.FindAll(u.db.WithContext(ctx), keyword)
	}
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient removes a patient. It is not exposed over HTTP.
func (u *patientUsecase) DeletePatient(ctx context.Context, patientID uint) error {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if _, err := u.patientRepo.Delete(db, patientID); err != nil {
		if isForeignKeyError(err) {
			return ErrPatientInUse
		}
		u.log.Warnf("Failed delete patient: %+v", err)
		return err
	}

	u.directory.InvalidatePatients(ctx)
	u.auditService.LogDelete(ctx, entity.AuditActionPatientDelete, "patient", patientID, converter.PatientToResponse(patient))
	return nil
}
