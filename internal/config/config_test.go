package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "SHIPPING_FEE", "STORE_BACKEND", "AUTO_SEED", "KAFKA_BROKERS", "CART_CACHE_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, 1500, cfg.ShippingFee)
	assert.Equal(t, "postgres", cfg.StoreBackend)
	assert.False(t, cfg.AutoSeed)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5*time.Minute, cfg.CartCacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SHIPPING_FEE", "2500")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("AUTO_SEED", "true")
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")
	t.Setenv("SWEEPER_WORKERS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 2500, cfg.ShippingFee)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.True(t, cfg.AutoSeed)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 4, cfg.SweeperWorkers)
}
