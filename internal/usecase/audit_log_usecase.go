package usecase

import (
	"context"

	"clinic-agenda/internal/converter"
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultAuditLogLimit = 50

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}

	logs, err := u.auditRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
