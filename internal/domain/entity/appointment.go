package entity

import "time"

// Appointment represents a scheduled booking tying one professional to one
// timestamp. Two appointments for the same professional may never share the
// exact same timestamp; the composite unique index is the authoritative guard
// and the usecase layer produces the friendly error ahead of it.
type Appointment struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date           time.Time `gorm:"not null;uniqueIndex:ux_appointments_professional_date" json:"date"`
	ProfessionalID uint      `gorm:"not null;index;uniqueIndex:ux_appointments_professional_date" json:"professional_id"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional Professional `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE" json:"professional,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
