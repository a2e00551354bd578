package service

import (
	"context"
	"strconv"

	"healthtrack/internal/domain/entity"
	"healthtrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records write operations. Audit writes run after the main
// statement and their failures are logged, never returned to the caller.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID uint, newValue interface{})
	LogUpdate(ctx context.Context, action string, entityName string, entityID uint, oldValue, newValue interface{})
	LogDelete(ctx context.Context, action string, entityName string, entityID uint, oldValue interface{})
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID uint, newValue interface{}) {
	s.write(ctx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID uint, oldValue, newValue interface{}) {
	s.write(ctx, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID uint, oldValue interface{}) {
	s.write(ctx, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(ctx context.Context, action, entityName string, entityID uint, oldValue, newValue interface{}) {
	auditLog := &entity.AuditLog{
		Action:     action,
		EntityName: entityName,
		EntityID:   strconv.FormatUint(uint64(entityID), 10),
		Metadata: entity.JSON{
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
