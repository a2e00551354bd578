package usecase

import (
	"context"

	"healthtrack/internal/converter"
	"healthtrack/internal/delivery/dto"
	"healthtrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultAuditLogLimit = 100
	maxAuditLogLimit     = 500
)

type AuditLogUsecase interface {
	GetRecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetRecentAuditLogs returns the newest entries first. A non-positive limit
// falls back to the default page size.
func (u *auditLogUsecase) GetRecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}
	if limit > maxAuditLogLimit {
		limit = maxAuditLogLimit
	}

	logs, err := u.auditLogRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
