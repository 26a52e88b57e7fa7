package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"clinic-agenda/internal/converter"
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
	"clinic-agenda/internal/domain/repository"
	"clinic-agenda/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentConflict = errors.New("an appointment already exists for this professional at this time")
	ErrInvalidDate         = errors.New("invalid date, use RFC3339 format (e.g. 2025-06-15T10:30:00Z)")
	ErrInvalidDateFilter   = errors.New("invalid date filter, use YYYY-MM-DD or RFC3339")
	ErrInvalidProfessional = errors.New("invalid professional id")
)

// FilterError attributes an invalid list filter to the query parameter that
// carried it, so the HTTP layer can key the message to that parameter.
type FilterError struct {
	Param string
	Err   error
}

func (e *FilterError) Error() string { return e.Err.Error() }

func (e *FilterError) Unwrap() error { return e.Err }

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
	statsCache       service.StatsCache
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
		statsCache:       statsCache,
	}
}

// checkConflict rejects a candidate (professional, date) pair that collides
// with an existing appointment at the exact same timestamp. excludeID keeps
// the record being updated out of the comparison, so updating an appointment
// to its own current slot always succeeds.
func (u *appointmentUsecase) checkConflict(db *gorm.DB, professionalID uint, date time.Time, excludeID uint) error {
	count, err := u.appointmentRepo.CountConflicting(db, professionalID, date, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAppointmentConflict
	}
	return nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)

	professional, err := u.professionalRepo.FindByID(db, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	if err := u.checkConflict(db, req.ProfessionalID, date, 0); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		Date:           date,
		ProfessionalID: req.ProfessionalID,
		Notes:          req.Notes,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}
		return u.auditService.LogCreate(tx, entity.AuditActionAppointmentCreate,
			"appointment", fmt.Sprint(appointment.ID), converter.AppointmentToResponse(appointment))
	})
	if err != nil {
		// The unique index on (professional_id, date) is the authoritative
		// guard; a race loser surfaces here as a duplicate key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAppointmentConflict
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.statsCache.Invalidate(ctx)

	appointment.Professional = *professional
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	filter, err := buildAppointmentFilter(query)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment applies a partial update and re-validates the collision
// invariant against the resulting (professional, date) pair.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		appointment.Date = date
	}
	if req.ProfessionalID != nil {
		professional, err := u.professionalRepo.FindByID(db, *req.ProfessionalID)
		if err != nil {
			u.log.Warnf("Failed to find professional: %+v", err)
			return nil, err
		}
		if professional == nil {
			return nil, ErrProfessionalNotFound
		}
		appointment.ProfessionalID = *req.ProfessionalID
		appointment.Professional = *professional
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.checkConflict(db, appointment.ProfessionalID, appointment.Date, appointment.ID); err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			return err
		}
		return u.auditService.LogUpdate(tx, entity.AuditActionAppointmentUpdate,
			"appointment", fmt.Sprint(appointment.ID), oldValue, converter.AppointmentToResponse(appointment))
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAppointmentConflict
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.statsCache.Invalidate(ctx)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		affected, err := u.appointmentRepo.Delete(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAppointmentNotFound
		}
		return u.auditService.LogDelete(tx, entity.AuditActionAppointmentDelete,
			"appointment", fmt.Sprint(id), converter.AppointmentToResponse(appointment))
	})
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.statsCache.Invalidate(ctx)

	return nil
}

// buildAppointmentFilter parses the raw query parameters into a domain filter.
func buildAppointmentFilter(query *dto.ListAppointmentsQuery) (*entity.AppointmentFilter, error) {
	filter := &entity.AppointmentFilter{}
	if query == nil {
		return filter, nil
	}

	filter.Ordering = query.Ordering

	if query.Professional != "" {
		id, err := strconv.ParseUint(query.Professional, 10, 64)
		if err != nil {
			return nil, &FilterError{Param: "professional", Err: ErrInvalidProfessional}
		}
		professionalID := uint(id)
		filter.ProfessionalID = &professionalID
	}
	if query.Date != "" {
		date, err := time.Parse("2006-01-02", query.Date)
		if err != nil {
			return nil, &FilterError{Param: "date", Err: ErrInvalidDateFilter}
		}
		filter.Date = &date
	}
	if query.StartDate != "" {
		start, err := parseDateTimeFilter(query.StartDate)
		if err != nil {
			return nil, &FilterError{Param: "start_date", Err: ErrInvalidDateFilter}
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := parseDateTimeFilter(query.EndDate)
		if err != nil {
			return nil, &FilterError{Param: "end_date", Err: ErrInvalidDateFilter}
		}
		filter.EndDate = &end
	}

	return filter, nil
}

// parseDateTimeFilter accepts a full RFC3339 timestamp or a bare calendar
// date, which is read as UTC midnight.
func parseDateTimeFilter(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
