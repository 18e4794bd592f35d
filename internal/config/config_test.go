package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "invoicepress", cfg.AppName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
	assert.Equal(t, time.Second, cfg.RenderSettleDelay)
	assert.Equal(t, 2, cfg.RenderMaxConcurrent)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("RENDER_TIMEOUT", "45s")
	t.Setenv("RENDER_MAX_CONCURRENT", "4")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 45*time.Second, cfg.RenderTimeout)
	assert.Equal(t, 4, cfg.RenderMaxConcurrent)
	assert.True(t, cfg.SeedDemo)
}

func TestGetenvBool(t *testing.T) {
	t.Setenv("FLAG", "yes")
	assert.True(t, getenvBool("FLAG", false))

	t.Setenv("FLAG", "off")
	assert.False(t, getenvBool("FLAG", true))

	t.Setenv("FLAG", "garbage")
	assert.True(t, getenvBool("FLAG", true))
}
