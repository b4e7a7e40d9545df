package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapshop/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "", cfg.Webhook.URL)
	assert.Equal(t, 10_000, cfg.Webhook.TimeoutMs)
	assert.Equal(t, config.DefaultSessionSecret, cfg.Security.SessionSecret)
	assert.Equal(t, "", cfg.Logs.URL)
	assert.Equal(t, "", cfg.Metrics.URL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/123/abc")
	t.Setenv("WEBHOOK_TIMEOUT_MS", "2500")
	t.Setenv("SESSION_SECRET", "something-else")
	t.Setenv("LOKI_URL", "http://loki:3100/loki/api/v1/push")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://discord.com/api/webhooks/123/abc", cfg.Webhook.URL)
	assert.Equal(t, 2500, cfg.Webhook.TimeoutMs)
	assert.Equal(t, "something-else", cfg.Security.SessionSecret)
	assert.Equal(t, "http://loki:3100/loki/api/v1/push", cfg.Logs.URL)
}
