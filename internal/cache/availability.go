package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCache guarda respostas de disponibilidade por salão.
// A invalidação usa um contador de versão por salão: qualquer escrita
// que afete a agenda incrementa a versão e as chaves antigas expiram
// sozinhas pelo TTL, sem SCAN.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    2 * time.Minute,
	}
}

func (c *AvailabilityCache) Enabled() bool {
	return c != nil && c.client != nil
}

func versionKey(salonID uint) string {
	return fmt.Sprintf("salon:%d:availability:version", salonID)
}

func (c *AvailabilityCache) version(ctx context.Context, salonID uint) int64 {
	v, err := c.client.Get(ctx, versionKey(salonID)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (c *AvailabilityCache) key(ctx context.Context, salonID uint, staffID, date string) string {
	return fmt.Sprintf(
		"salon:%d:availability:v%d:%s:%s",
		salonID,
		c.version(ctx, salonID),
		staffID,
		date,
	)
}

func (c *AvailabilityCache) Get(ctx context.Context, salonID uint, staffID, date string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}

	payload, err := c.client.Get(ctx, c.key(ctx, salonID, staffID, date)).Result()
	if err != nil {
		return "", false
	}
	return payload, true
}

func (c *AvailabilityCache) Set(ctx context.Context, salonID uint, staffID, date, payload string) {
	if !c.Enabled() {
		return
	}

	if err := c.client.Set(ctx, c.key(ctx, salonID, staffID, date), payload, c.ttl).Err(); err != nil {
		log.Println("availability cache set error:", err)
	}
}

// Invalidate marca tudo que foi cacheado para o salão como obsoleto.
func (c *AvailabilityCache) Invalidate(ctx context.Context, salonID uint) {
	if !c.Enabled() {
		return
	}

	if err := c.client.Incr(ctx, versionKey(salonID)).Err(); err != nil {
		log.Println("availability cache invalidate error:", err)
	}
}
