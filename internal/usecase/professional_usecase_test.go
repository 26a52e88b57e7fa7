package usecase

import (
	"context"
	"testing"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfessional(t *testing.T) {
	env := newTestEnv(t)

	professional := env.createProfessional(t, "Dr. João Silva", "Cardiologista", "11987654321")

	assert.NotZero(t, professional.ID)
	assert.Equal(t, "Dr. João Silva", professional.PreferredName)
	assert.Equal(t, "Cardiologista", professional.Profession)
	assert.Equal(t, "11987654321", professional.Contact)
	assert.False(t, professional.CreatedAt.IsZero())
	assert.False(t, professional.UpdatedAt.IsZero())
}

func TestCreateProfessionalWritesAuditLog(t *testing.T) {
	env := newTestEnv(t)

	env.createProfessional(t, "Dr. A", "Cardiologista", "11999990000")

	var logs []entity.AuditLog
	require.NoError(t, env.db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionProfessionalCreate, logs[0].Action)
	assert.Equal(t, "professional", logs[0].Metadata["entity"])
}

func TestGetProfessionalNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.professionals.GetProfessional(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUpdateProfessionalPartial(t *testing.T) {
	env := newTestEnv(t)
	created := env.createProfessional(t, "Dr. Ana Costa", "Neurologista", "11999990001")

	updated, err := env.professionals.UpdateProfessional(context.Background(), created.ID, &dto.UpdateProfessionalRequest{
		Profession: "Neurocirurgiã",
	})
	require.NoError(t, err)

	// Unspecified fields keep their prior values
	assert.Equal(t, "Neurocirurgiã", updated.Profession)
	assert.Equal(t, "Dr. Ana Costa", updated.PreferredName)
	assert.Equal(t, "11999990001", updated.Contact)
}

func TestUpdateProfessionalClearSpecialty(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.professionals.CreateProfessional(context.Background(), &dto.CreateProfessionalRequest{
		PreferredName: "Dra. Maria",
		Profession:    "Médica",
		Specialty:     "Cardiologia",
		Address:       "Av. Brasil, 456",
		Contact:       "11999990002",
	})
	require.NoError(t, err)
	require.Equal(t, "Cardiologia", created.Specialty)

	empty := ""
	updated, err := env.professionals.UpdateProfessional(context.Background(), created.ID, &dto.UpdateProfessionalRequest{
		Specialty: &empty,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Specialty)
}

func TestUpdateProfessionalNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.professionals.UpdateProfessional(context.Background(), 42, &dto.UpdateProfessionalRequest{
		PreferredName: "Ninguém",
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestDeleteProfessionalCascadesToAppointments(t *testing.T) {
	env := newTestEnv(t)

	victim := env.createProfessional(t, "Dr. A", "Cardiologista", "11999990003")
	other := env.createProfessional(t, "Dr. B", "Neurologista", "11999990004")

	env.createAppointment(t, victim.ID, "2025-06-15T10:30:00Z")
	env.createAppointment(t, victim.ID, "2025-06-16T10:30:00Z")
	env.createAppointment(t, other.ID, "2025-06-15T10:30:00Z")

	require.NoError(t, env.professionals.DeleteProfessional(context.Background(), victim.ID))

	var professionalCount, appointmentCount int64
	require.NoError(t, env.db.Model(&entity.Professional{}).Count(&professionalCount).Error)
	require.NoError(t, env.db.Model(&entity.Appointment{}).Count(&appointmentCount).Error)

	assert.Equal(t, int64(1), professionalCount)
	assert.Equal(t, int64(1), appointmentCount)

	var orphaned int64
	require.NoError(t, env.db.Model(&entity.Appointment{}).
		Where("professional_id = ?", victim.ID).Count(&orphaned).Error)
	assert.Zero(t, orphaned)
}

func TestDeleteProfessionalNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.professionals.DeleteProfessional(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestListProfessionalsSearch(t *testing.T) {
	env := newTestEnv(t)

	env.createProfessional(t, "Dr. Ana", "Cardiologista", "11999990005")
	env.createProfessional(t, "Dr. Bruno", "Cardiologista", "11999990006")
	env.createProfessional(t, "Dra. Carla", "Neurologista", "11999990007")

	// Case-insensitive substring match over the profession field
	result, err := env.professionals.ListProfessionals(context.Background(), &dto.ListProfessionalsQuery{
		Search: "cardio",
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	for _, p := range result.Professionals {
		assert.Equal(t, "Cardiologista", p.Profession)
	}
}

func TestListProfessionalsSearchMatchesContact(t *testing.T) {
	env := newTestEnv(t)

	target := env.createProfessional(t, "Dr. Ana", "Cardiologista", "11987650000")
	env.createProfessional(t, "Dr. Bruno", "Neurologista", "11999990008")

	result, err := env.professionals.ListProfessionals(context.Background(), &dto.ListProfessionalsQuery{
		Search: "8765",
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, target.ID, result.Professionals[0].ID)
}

func TestListProfessionalsProfessionFilter(t *testing.T) {
	env := newTestEnv(t)

	env.createProfessional(t, "Dr. Ana", "Cardiologista", "11999990009")
	env.createProfessional(t, "Dr. Bruno", "Neurologista", "11999990010")

	result, err := env.professionals.ListProfessionals(context.Background(), &dto.ListProfessionalsQuery{
		Profession: "Neurologista",
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Dr. Bruno", result.Professionals[0].PreferredName)
}

func TestListProfessionalsOrdering(t *testing.T) {
	env := newTestEnv(t)

	env.createProfessional(t, "Zé Silva", "Clínico Geral", "11999990011")
	env.createProfessional(t, "Ana Costa", "Cardiologista", "11999990012")
	env.createProfessional(t, "Bruno Santos", "Neurologista", "11999990013")

	// Default is preferred name ascending
	result, err := env.professionals.ListProfessionals(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 3, result.Total)
	assert.Equal(t, "Ana Costa", result.Professionals[0].PreferredName)
	assert.Equal(t, "Zé Silva", result.Professionals[2].PreferredName)

	// Explicit descending
	result, err = env.professionals.ListProfessionals(context.Background(), &dto.ListProfessionalsQuery{
		Ordering: "-preferred_name",
	})
	require.NoError(t, err)
	assert.Equal(t, "Zé Silva", result.Professionals[0].PreferredName)
}

func TestWritesInvalidateStatsCache(t *testing.T) {
	env := newTestEnv(t)

	env.createProfessional(t, "Dr. Ana", "Cardiologista", "11999990014")
	assert.Equal(t, 1, env.statsCache.invalidated)

	created := env.createProfessional(t, "Dr. Bruno", "Neurologista", "11999990015")
	require.NoError(t, env.professionals.DeleteProfessional(context.Background(), created.ID))
	assert.Equal(t, 3, env.statsCache.invalidated)
}
