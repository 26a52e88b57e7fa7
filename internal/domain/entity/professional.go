package entity

import "time"

// Professional represents a healthcare professional that appointments are
// scheduled against.
type Professional struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PreferredName string    `gorm:"type:varchar(255);not null;index" json:"preferred_name"`
	Profession    string    `gorm:"type:varchar(100);not null;index" json:"profession"`
	Specialty     string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	Contact       string    `gorm:"type:varchar(11);not null" json:"contact"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}

// HasSpecialty reports whether the professional declares a specialty.
// An empty string is the defined absent value.
func (p *Professional) HasSpecialty() bool {
	return p.Specialty != ""
}
