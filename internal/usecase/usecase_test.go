package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
	"clinic-agenda/internal/repository"
	"clinic-agenda/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the real schema,
// including the composite unique index and cascading foreign key.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entity.Professional{}, &entity.Appointment{}, &entity.AuditLog{})
	require.NoError(t, err)

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeStatsCache is an in-memory stand-in for the Redis-backed cache.
type fakeStatsCache struct {
	stored      *dto.StatsResponse
	invalidated int
}

func (f *fakeStatsCache) Get(ctx context.Context) *dto.StatsResponse { return f.stored }

func (f *fakeStatsCache) Set(ctx context.Context, stats *dto.StatsResponse) { f.stored = stats }

func (f *fakeStatsCache) Invalidate(ctx context.Context) {
	f.stored = nil
	f.invalidated++
}

type testEnv struct {
	db            *gorm.DB
	professionals ProfessionalUsecase
	appointments  AppointmentUsecase
	statsCache    *fakeStatsCache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	statsCache := &fakeStatsCache{}

	professionalRepo := repository.NewProfessionalRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(log, auditRepo)

	return &testEnv{
		db:            db,
		professionals: NewProfessionalUsecase(db, log, professionalRepo, auditService, statsCache),
		appointments:  NewAppointmentUsecase(db, log, appointmentRepo, professionalRepo, auditService, statsCache),
		statsCache:    statsCache,
	}
}

func (e *testEnv) createProfessional(t *testing.T, name, profession, contact string) *dto.ProfessionalResponse {
	t.Helper()

	professional, err := e.professionals.CreateProfessional(context.Background(), &dto.CreateProfessionalRequest{
		PreferredName: name,
		Profession:    profession,
		Address:       "Rua das Flores, 123",
		Contact:       contact,
	})
	require.NoError(t, err)
	return professional
}

func (e *testEnv) createAppointment(t *testing.T, professionalID uint, date string) *dto.AppointmentResponse {
	t.Helper()

	appointment, err := e.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		Date:           date,
		ProfessionalID: professionalID,
	})
	require.NoError(t, err)
	return appointment
}
