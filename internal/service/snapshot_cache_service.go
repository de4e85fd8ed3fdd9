package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinic-schedule-service/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for rendered schedule snapshots
	RedisSnapshotKeyPrefix = "schedule:snapshot:"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second
)

// SnapshotCacheService keeps rendered schedule snapshots in Redis so
// repeated reads of a clinic's schedule skip the database. Every
// schedule mutation invalidates the clinic's key; the TTL is only a
// backstop against a missed invalidation.
type SnapshotCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewSnapshotCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *SnapshotCacheService {
	return &SnapshotCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func snapshotKey(clinicID uuid.UUID) string {
	return RedisSnapshotKeyPrefix + clinicID.String()
}

// GetSnapshot returns the cached snapshot, or (nil, nil) on a miss.
// A payload that no longer unmarshals is dropped and treated as a miss.
func (s *SnapshotCacheService) GetSnapshot(ctx context.Context, clinicID uuid.UUID) (*dto.SnapshotResponse, error) {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	payload, err := s.redisClient.Get(opCtx, snapshotKey(clinicID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot dto.SnapshotResponse
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		s.log.Warnf("Dropping unreadable snapshot cache for clinic %s: %+v", clinicID, err)
		s.redisClient.Del(opCtx, snapshotKey(clinicID))
		return nil, nil
	}

	return &snapshot, nil
}

func (s *SnapshotCacheService) SetSnapshot(ctx context.Context, clinicID uuid.UUID, snapshot *dto.SnapshotResponse) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	return s.redisClient.Set(opCtx, snapshotKey(clinicID), payload, s.ttl).Err()
}

func (s *SnapshotCacheService) Invalidate(ctx context.Context, clinicID uuid.UUID) error {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	return s.redisClient.Del(opCtx, snapshotKey(clinicID)).Err()
}
