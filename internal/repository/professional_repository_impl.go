package repository

import (
	"errors"
	"strings"

	"clinic-agenda/internal/domain/entity"
	domainRepo "clinic-agenda/internal/domain/repository"

	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	return db.Create(professional).Error
}

func (r *professionalRepository) FindByID(db *gorm.DB, id uint) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

// FindAll returns professionals matching the optional search text and exact
// profession, ordered by the requested field (preferred name ascending when
// no ordering is requested).
func (r *professionalRepository) FindAll(db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.Professional, error) {
	var professionals []entity.Professional
	query := db.Model(&entity.Professional{})

	if filter != nil {
		if filter.Search != "" {
			term := "%" + strings.ToLower(filter.Search) + "%"
			query = query.Where(
				db.Where("LOWER(preferred_name) LIKE ?", term).
					Or("LOWER(profession) LIKE ?", term).
					Or("LOWER(address) LIKE ?", term).
					Or("LOWER(contact) LIKE ?", term),
			)
		}
		if filter.Profession != "" {
			query = query.Where("profession = ?", filter.Profession)
		}
	}

	ordering := ""
	if filter != nil {
		ordering = filter.Ordering
	}
	err := query.Order(professionalOrderClause(ordering)).Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	return db.Omit("Appointments").Save(professional).Error
}

// Delete removes the professional; the appointments foreign key cascades, so
// owned appointments disappear in the same statement.
func (r *professionalRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Professional{})
	return result.RowsAffected, result.Error
}

func (r *professionalRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Professional{}).Count(&count).Error
	return count, err
}

// professionalOrderClause maps an API ordering value ("field" or "-field") to
// a safe ORDER BY clause. Unknown fields fall back to the default.
func professionalOrderClause(ordering string) string {
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}

	switch field {
	case "preferred_name", "profession", "created_at":
		return field + " " + direction
	default:
		return "preferred_name ASC"
	}
}
