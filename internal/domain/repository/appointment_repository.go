package repository

import (
	"time"

	"clinic-agenda/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindUpcoming(db *gorm.DB, after time.Time, limit int) ([]entity.Appointment, error)
	// CountConflicting reports how many appointments share the exact
	// (professional, date) pair, ignoring excludeID when non-zero.
	CountConflicting(db *gorm.DB, professionalID uint, date time.Time, excludeID uint) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
