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

type ClinicalHistoryUsecase interface {
	GetPatientHistory(ctx context.Context, patientID uint) (*dto.PatientHistoryResponse, error)
	AddRecord(ctx context.Context, patientID uint, req *dto.ClinicalHistoryRequest) (*dto.ClinicalHistoryResponse, error)
	GetRecord(ctx context.Context, recordID uint) (*dto.ClinicalHistoryResponse, error)
	UpdateRecord(ctx context.Context, recordID uint, req *dto.ClinicalHistoryRequest) (*dto.ClinicalHistoryResponse, error)
}

type clinicalHistoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	historyRepo  repository.ClinicalHistoryRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewClinicalHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	historyRepo repository.ClinicalHistoryRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) ClinicalHistoryUsecase {
	return &clinicalHistoryUsecase{
		db:           db,
		log:          log,
		historyRepo:  historyRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *clinicalHistoryUsecase) GetPatientHistory(ctx context.Context, patientID uint) (*dto.PatientHistoryResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.historyRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find clinical history: %+v", err)
		return nil, err
	}

	return &dto.PatientHistoryResponse{
		Patient: *converter.PatientToResponse(patient),
		Records: converter.ClinicalHistoriesToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *clinicalHistoryUsecase) AddRecord(ctx context.Context, patientID uint, req *dto.ClinicalHistoryRequest) (*dto.ClinicalHistoryResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := converter.ClinicalHistoryRequestToEntity(patientID, req)
	if err := u.historyRepo.Create(db, record); err != nil {
		u.log.Warnf("Failed to create clinical history: %+v", err)
		return nil, err
	}

	response := converter.ClinicalHistoryToResponse(record)
	u.auditService.LogCreate(ctx, entity.AuditActionHistoryCreate, "clinical_history", record.ID, response)

	u.log.Infof("Clinical history created: id=%d, patient=%d", record.ID, patientID)
	return response, nil
}

func (u *clinicalHistoryUsecase) GetRecord(ctx context.Context, recordID uint) (*dto.ClinicalHistoryResponse, error) {
	record, err := u.historyRepo.FindByID(u.db.WithContext(ctx), recordID)
	if err != nil {
		u.log.Warnf("Failed to find clinical history: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrClinicalHistoryNotFound
	}

	return converter.ClinicalHistoryToResponse(record), nil
}

// UpdateRecord overwrites every editable field of a record. The owning
// patient never changes, so callers redirect using the returned PatientID.
func (u *clinicalHistoryUsecase) UpdateRecord(ctx context.Context, recordID uint, req *dto.ClinicalHistoryRequest) (*dto.ClinicalHistoryResponse, error) {
	db := u.db.WithContext(ctx)

	record, err := u.historyRepo.FindByID(db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find clinical history: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrClinicalHistoryNotFound
	}

	old := converter.ClinicalHistoryToResponse(record)

	record.Date = req.Date
	record.Diagnosis = req.Diagnosis
	record.Treatment = req.Treatment
	record.BloodType = req.BloodType
	record.Allergies = req.Allergies
	record.Relatives = req.Relatives
	record.Description = req.Description

	if err := u.historyRepo.Update(db, record); err != nil {
		u.log.Warnf("Failed to update clinical history: %+v", err)
		return nil, err
	}

	response := converter.ClinicalHistoryToResponse(record)
	u.auditService.LogUpdate(ctx, entity.AuditActionHistoryUpdate, "clinical_history", recordID, old, response)
	return response, nil
}
