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

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uint) error
	Specialties() []string
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	directory    service.DirectoryCache
	auditService service.AuditService
	specialties  []string
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	directory service.DirectoryCache,
	auditService service.AuditService,
	specialties []string,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		directory:    directory,
		auditService: auditService,
		specialties:  specialties,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := converter.DoctorRequestToEntity(req)
	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.directory.InvalidateDoctors(ctx)
	response := converter.DoctorToResponse(doctor)
	u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", doctor.ID, response)

	u.log.Infof("Doctor created: id=%d, specialty=%s", doctor.ID, doctor.Specialty)
	return response, nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.directory.Doctors(ctx, func() ([]entity.Doctor, error) {
		return u.doctorRepo.FindAll(u.db.WithContext(ctx))
	})
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// DeleteDoctor removes a doctor. It is not exposed over HTTP.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uint) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if _, err := u.doctorRepo.Delete(db, doctorID); err != nil {
		if isForeignKeyError(err) {
			return ErrDoctorInUse
		}
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}

	u.directory.InvalidateDoctors(ctx)
	u.auditService.LogDelete(ctx, entity.AuditActionDoctorDelete, "doctor", doctorID, converter.DoctorToResponse(doctor))
	return nil
}

func (u *doctorUsecase) Specialties() []string {
	return u.specialties
}
