package repository

import (
	"errors"
	"strings"
	"time"

	"clinic-agenda/internal/domain/entity"
	domainRepo "clinic-agenda/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Professional").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindAll returns appointments matching the filter, each with its professional
// preloaded so the read path stays a single round trip.
func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.ProfessionalID != nil {
			query = query.Where("professional_id = ?", *filter.ProfessionalID)
		}
		if filter.Date != nil {
			// Calendar-date equality expressed as a half-open range so the
			// timestamp index stays usable.
			dayStart := filter.Date.UTC().Truncate(24 * time.Hour)
			query = query.Where("date >= ? AND date < ?", dayStart, dayStart.Add(24*time.Hour))
		}
		if filter.StartDate != nil {
			query = query.Where("date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			query = query.Where("date <= ?", *filter.EndDate)
		}
	}

	ordering := ""
	if filter != nil {
		ordering = filter.Ordering
	}
	err := query.
		Preload("Professional").
		Order(appointmentOrderClause(ordering)).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcoming(db *gorm.DB, after time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Professional").
		Where("date >= ?", after).
		Order("date ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// CountConflicting counts appointments with the exact same (professional, date)
// pair. Exact timestamp equality is intended: appointments carry no duration,
// so there is no overlap window. excludeID keeps an update from colliding with
// itself.
func (r *appointmentRepository) CountConflicting(db *gorm.DB, professionalID uint, date time.Time, excludeID uint) (int64, error) {
	var count int64
	query := db.Model(&entity.Appointment{}).
		Where("professional_id = ? AND date = ?", professionalID, date)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Professional").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

// appointmentOrderClause maps an API ordering value ("field" or "-field") to
// a safe ORDER BY clause. Default is most recent scheduled first.
func appointmentOrderClause(ordering string) string {
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}

	switch field {
	case "date", "created_at":
		return field + " " + direction
	default:
		return "date DESC"
	}
}
