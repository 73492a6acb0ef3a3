package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/AzielCF/az-photofeed/domains/health"
	"github.com/AzielCF/az-photofeed/infrastructure/valkey"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type healthService struct {
	db      *gorm.DB
	cache   *valkey.Client
	version string
}

func NewHealthService(db *gorm.DB, cache *valkey.Client, version string) health.IHealthUsecase {
	return &healthService{db: db, cache: cache, version: version}
}

func (s *healthService) Check(ctx context.Context) health.HealthReport {
	report := health.HealthReport{
		Status:   health.StatusOk,
		Version:  s.version,
		Database: s.checkDatabase(ctx),
		Cache:    s.checkCache(ctx),
	}

	if report.Database != health.StatusOk || report.Cache.Status != health.StatusOk {
		report.Status = health.StatusError
	}

	return report
}

func (s *healthService) checkDatabase(ctx context.Context) health.Status {
	if s.db == nil {
		return health.StatusError
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		logrus.WithError(err).Error("[HEALTH] failed to access database handle")
		return health.StatusError
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("[HEALTH] database ping failed")
		return health.StatusError
	}

	return health.StatusOk
}

func (s *healthService) checkCache(ctx context.Context) health.CacheStats {
	stats := health.CacheStats{Status: health.StatusError}
	if s.cache == nil {
		return stats
	}

	if err := s.cache.Ping(ctx); err != nil {
		logrus.WithError(err).Error("[HEALTH] cache ping failed")
		return stats
	}
	stats.Status = health.StatusOk

	inner := s.cache.Inner()
	keys, err := inner.Do(ctx, inner.B().Dbsize().Build()).AsInt64()
	if err != nil {
		logrus.WithError(err).Warn("[HEALTH] failed to read cache keyspace size")
	} else {
		stats.Keys = keys
	}

	info, err := inner.Do(ctx, inner.B().Info().Section("memory").Build()).ToString()
	if err != nil {
		logrus.WithError(err).Warn("[HEALTH] failed to read cache memory info")
		return stats
	}
	stats.UsedMemory = parseUsedMemory(info)

	return stats
}

// parseUsedMemory extracts used_memory from an INFO memory section and
// renders it human readable.
func parseUsedMemory(info string) string {
	for _, line := range strings.Split(info, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "used_memory:") {
			continue
		}
		raw := strings.TrimPrefix(line, "used_memory:")
		bytes, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return ""
		}
		return humanize.Bytes(bytes)
	}
	return ""
}
