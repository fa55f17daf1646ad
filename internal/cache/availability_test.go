package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sem REDIS_ADDR o cache roda desligado: toda leitura é miss e as
// escritas são descartadas em silêncio
func TestAvailabilityCacheDisabled(t *testing.T) {
	ctx := context.Background()

	var nilCache *AvailabilityCache
	assert.False(t, nilCache.Enabled())

	c := NewAvailabilityCache(nil)
	assert.False(t, c.Enabled())

	_, hit := c.Get(ctx, 1, "anyone", "2027-01-15")
	assert.False(t, hit)

	c.Set(ctx, 1, "anyone", "2027-01-15", `{"date":"2027-01-15"}`)
	c.Invalidate(ctx, 1)

	_, hit = c.Get(ctx, 1, "anyone", "2027-01-15")
	assert.False(t, hit)
}

func TestVersionKeyPerSalon(t *testing.T) {
	assert.Equal(t, "salon:1:availability:version", versionKey(1))
	assert.NotEqual(t, versionKey(1), versionKey(2))
}
