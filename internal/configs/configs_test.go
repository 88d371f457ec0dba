package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huecas/internal/configs"
)

// clearEnv blanks every configuration variable so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"HUECAS_ENV",
		"HUECAS_API_URL",
		"HUECAS_CHAT_URL",
		"HUECAS_STATE_DIR",
		"HUECAS_EMAIL",
		"HUECAS_PASSWORD",
		"HUECAS_RECONNECT_ATTEMPTS",
		"HUECAS_RECONNECT_DELAY_MS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUECAS_STATE_DIR", t.TempDir())

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "ws://localhost:3003/ws", cfg.ChatURL)
	assert.Equal(t, 5, cfg.ReconnectAttempts)
	assert.Equal(t, time.Second, cfg.ReconnectDelay)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HUECAS_ENV", "production")
	t.Setenv("HUECAS_API_URL", "https://api.huecas.dev")
	t.Setenv("HUECAS_CHAT_URL", "wss://chat.huecas.dev/ws")
	t.Setenv("HUECAS_STATE_DIR", t.TempDir())
	t.Setenv("HUECAS_RECONNECT_ATTEMPTS", "3")
	t.Setenv("HUECAS_RECONNECT_DELAY_MS", "250")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "https://api.huecas.dev", cfg.APIBaseURL)
	assert.Equal(t, "wss://chat.huecas.dev/ws", cfg.ChatURL)
	assert.Equal(t, 3, cfg.ReconnectAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.ReconnectDelay)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "api url wrong scheme", key: "HUECAS_API_URL", value: "ftp://files.huecas.dev"},
		{name: "chat url wrong scheme", key: "HUECAS_CHAT_URL", value: "http://chat.huecas.dev"},
		{name: "attempts not a number", key: "HUECAS_RECONNECT_ATTEMPTS", value: "muchos"},
		{name: "attempts negative", key: "HUECAS_RECONNECT_ATTEMPTS", value: "-1"},
		{name: "delay not a number", key: "HUECAS_RECONNECT_DELAY_MS", value: "pronto"},
		{name: "delay zero", key: "HUECAS_RECONNECT_DELAY_MS", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("HUECAS_STATE_DIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := configs.LoadConfig()
			assert.Error(t, err)
		})
	}
}
