package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-agenda/internal/converter"
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
	"clinic-agenda/internal/domain/repository"
	"clinic-agenda/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrProfessionalNotFound = errors.New("professional not found")

type ProfessionalUsecase interface {
	CreateProfessional(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error)
	GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalResponse, error)
	ListProfessionals(ctx context.Context, query *dto.ListProfessionalsQuery) (*dto.ProfessionalListResponse, error)
	UpdateProfessional(ctx context.Context, id uint, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	DeleteProfessional(ctx context.Context, id uint) error
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
	statsCache       service.StatsCache
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		auditService:     auditService,
		statsCache:       statsCache,
	}
}

func (u *professionalUsecase) CreateProfessional(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	professional := &entity.Professional{
		PreferredName: req.PreferredName,
		Profession:    req.Profession,
		Specialty:     req.Specialty,
		Address:       req.Address,
		Contact:       req.Contact,
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.professionalRepo.Create(tx, professional); err != nil {
			return err
		}
		return u.auditService.LogCreate(tx, entity.AuditActionProfessionalCreate,
			"professional", fmt.Sprint(professional.ID), converter.ProfessionalToResponse(professional))
	})
	if err != nil {
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}

	u.statsCache.Invalidate(ctx)

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) ListProfessionals(ctx context.Context, query *dto.ListProfessionalsQuery) (*dto.ProfessionalListResponse, error) {
	filter := &entity.ProfessionalFilter{}
	if query != nil {
		filter.Search = query.Search
		filter.Profession = query.Profession
		filter.Ordering = query.Ordering
	}

	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(professionals),
		Total:         len(professionals),
	}, nil
}

// UpdateProfessional applies a partial update: fields left empty in the
// request keep their prior values.
func (u *professionalUsecase) UpdateProfessional(ctx context.Context, id uint, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	oldValue := converter.ProfessionalToResponse(professional)

	if req.PreferredName != "" {
		professional.PreferredName = req.PreferredName
	}
	if req.Profession != "" {
		professional.Profession = req.Profession
	}
	if req.Specialty != nil {
		professional.Specialty = *req.Specialty
	}
	if req.Address != "" {
		professional.Address = req.Address
	}
	if req.Contact != "" {
		professional.Contact = req.Contact
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.professionalRepo.Update(tx, professional); err != nil {
			return err
		}
		return u.auditService.LogUpdate(tx, entity.AuditActionProfessionalUpdate,
			"professional", fmt.Sprint(professional.ID), oldValue, converter.ProfessionalToResponse(professional))
	})
	if err != nil {
		u.log.Warnf("Failed to update professional: %+v", err)
		return nil, err
	}

	u.statsCache.Invalidate(ctx)

	return converter.ProfessionalToResponse(professional), nil
}

// DeleteProfessional removes the professional and, through the cascading
// foreign key, every appointment it owns. The delete is a single atomic
// statement so a partial cascade is never observable.
func (u *professionalUsecase) DeleteProfessional(ctx context.Context, id uint) error {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return err
	}
	if professional == nil {
		return ErrProfessionalNotFound
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := u.professionalRepo.Delete(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrProfessionalNotFound
		}
		return u.auditService.LogDelete(tx, entity.AuditActionProfessionalDelete,
			"professional", fmt.Sprint(id), converter.ProfessionalToResponse(professional))
	})
	if err != nil {
		u.log.Warnf("Failed to delete professional: %+v", err)
		return err
	}

	u.statsCache.Invalidate(ctx)

	return nil
}
