package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinic-agenda/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key for the cached dashboard payload
	statsCacheKey = "stats:overview"

	// Timeout for individual Redis operations
	statsCacheTimeout = 2 * time.Second
)

// StatsCache is the cache surface the usecases depend on.
type StatsCache interface {
	Get(ctx context.Context) *dto.StatsResponse
	Set(ctx context.Context, stats *dto.StatsResponse)
	Invalidate(ctx context.Context)
}

// StatsCacheService keeps the dashboard payload in Redis so repeated reads
// skip the counting queries. The cache is best-effort: Redis failures are
// logged and the caller falls through to the database.
type StatsCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewStatsCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *StatsCacheService {
	return &StatsCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Get returns the cached stats payload, or nil on a miss.
func (s *StatsCacheService) Get(ctx context.Context) *dto.StatsResponse {
	opCtx, cancel := context.WithTimeout(ctx, statsCacheTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(opCtx, statsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read stats cache: %+v", err)
		}
		return nil
	}

	var stats dto.StatsResponse
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.log.Warnf("Failed to decode stats cache, discarding: %+v", err)
		return nil
	}
	return &stats
}

// Set stores the stats payload with the configured TTL.
func (s *StatsCacheService) Set(ctx context.Context, stats *dto.StatsResponse) {
	raw, err := json.Marshal(stats)
	if err != nil {
		s.log.Warnf("Failed to encode stats cache: %+v", err)
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, statsCacheTimeout)
	defer cancel()

	if err := s.redisClient.Set(opCtx, statsCacheKey, raw, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write stats cache: %+v", err)
	}
}

// Invalidate drops the cached payload. Called after every successful write so
// the dashboard never serves stale counts beyond the TTL.
func (s *StatsCacheService) Invalidate(ctx context.Context) {
	opCtx, cancel := context.WithTimeout(ctx, statsCacheTimeout)
	defer cancel()

	if err := s.redisClient.Del(opCtx, statsCacheKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate stats cache: %+v", err)
	}
}
