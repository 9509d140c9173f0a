// Package cache implementa la caché Redis del snapshot de KPIs del dashboard.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appanalytics "github.com/Detencio/SuperSetBI/internal/application/analytics"
	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/pkg/config"
)

const (
	kpiSnapshotKey   = "dashboard:kpis"
	defaultKPITTL    = time.Minute
	redisPingTimeout = 5 * time.Second
)

var _ appanalytics.KPICache = (*redisKPICache)(nil)
var _ appanalytics.KPICache = (*noopKPICache)(nil)

type redisKPICache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopKPICache struct{}

// NewKPICache construye la caché de KPIs. Si Redis está deshabilitado devuelve
// una implementación noop para que el caso de uso no distinga entre ambas.
func NewKPICache(cfg config.RedisConfig) (appanalytics.KPICache, error) {
	if !cfg.Enabled {
		return &noopKPICache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultKPITTL
	}

	return &redisKPICache{client: client, ttl: ttl}, nil
}

// NewNoopKPICache devuelve una caché que nunca acierta.
func NewNoopKPICache() appanalytics.KPICache {
	return &noopKPICache{}
}

func (c *redisKPICache) GetSnapshot(ctx context.Context) (*dto.KPISnapshotDTO, bool, error) {
	payload, err := c.client.Get(ctx, kpiSnapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var snap dto.KPISnapshotDTO
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, false, fmt.Errorf("decodificar snapshot cacheado: %w", err)
	}
	return &snap, true, nil
}

func (c *redisKPICache) SetSnapshot(ctx context.Context, snap *dto.KPISnapshotDTO) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	if err := c.client.Set(ctx, kpiSnapshotKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate borra el snapshot cacheado (útil tras cargas masivas de datos).
func (c *redisKPICache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, kpiSnapshotKey).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (n *noopKPICache) GetSnapshot(ctx context.Context) (*dto.KPISnapshotDTO, bool, error) {
	return nil, false, nil
}

func (n *noopKPICache) SetSnapshot(ctx context.Context, snap *dto.KPISnapshotDTO) error {
	return nil
}
