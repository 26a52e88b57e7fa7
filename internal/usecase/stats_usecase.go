package usecase

import (
	"context"
	"sort"
	"time"

	"clinic-agenda/internal/converter"
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
	"clinic-agenda/internal/domain/repository"
	"clinic-agenda/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// professionalsPerSpecialty caps how many professionals each specialty group
// carries in the stats payload.
const professionalsPerSpecialty = 3

// upcomingAppointmentsLimit is how many upcoming appointments the stats
// payload includes.
const upcomingAppointmentsLimit = 5

type StatsUsecase interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	appointmentRepo  repository.AppointmentRepository
	statsCache       service.StatsCache
	now              func() time.Time
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	appointmentRepo repository.AppointmentRepository,
	statsCache service.StatsCache,
) StatsUsecase {
	return &statsUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		appointmentRepo:  appointmentRepo,
		statsCache:       statsCache,
		now:              time.Now,
	}
}

// GetStats assembles the dashboard payload: overall counts, professionals
// grouped by declared specialty, and the next upcoming appointments. The
// result is served from Redis when a fresh copy is cached.
func (u *statsUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	if cached := u.statsCache.Get(ctx); cached != nil {
		return cached, nil
	}

	db := u.db.WithContext(ctx)

	professionalsCount, err := u.professionalRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count professionals: %+v", err)
		return nil, err
	}

	appointmentsCount, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	professionals, err := u.professionalRepo.FindAll(db, nil)
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcoming(db, u.now(), upcomingAppointmentsLimit)
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}

	stats := &dto.StatsResponse{
		ProfessionalsCount:   professionalsCount,
		AppointmentsCount:    appointmentsCount,
		Specialties:          groupBySpecialty(professionals),
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming),
	}
	stats.SpecialtiesCount = len(stats.Specialties)

	u.statsCache.Set(ctx, stats)

	return stats, nil
}

// groupBySpecialty buckets professionals by their declared specialty,
// skipping the absent value, and returns groups sorted by specialty name.
func groupBySpecialty(professionals []entity.Professional) []dto.SpecialtyGroup {
	buckets := make(map[string][]entity.Professional)
	for _, p := range professionals {
		if !p.HasSpecialty() {
			continue
		}
		buckets[p.Specialty] = append(buckets[p.Specialty], p)
	}

	groups := make([]dto.SpecialtyGroup, 0, len(buckets))
	for name, members := range buckets {
		capped := members
		if len(capped) > professionalsPerSpecialty {
			capped = capped[:professionalsPerSpecialty]
		}
		groups = append(groups, dto.SpecialtyGroup{
			Name:          name,
			Count:         len(members),
			Professionals: converter.ProfessionalsToResponses(capped),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	return groups
}
