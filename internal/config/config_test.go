package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	c, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", c.Env)
	assert.Equal(t, ":5175", c.HTTP.Addr)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "random", c.Words.Source)
	assert.Equal(t, 24*time.Hour, c.Session.TTL)
	assert.Equal(t, 16, c.HTTP.WSSendBuffer)
	assert.False(t, c.Production())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("WORD_SOURCE", "daily")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("WS_SEND_BUFFER", "4")

	c, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.HTTP.Addr)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "daily", c.Words.Source)
	assert.Equal(t, 90*time.Minute, c.Session.TTL)
	assert.Equal(t, 4, c.HTTP.WSSendBuffer)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"bad word source", map[string]string{"WORD_SOURCE": "remote"}},
		{"default secret in prod", map[string]string{"APP_ENV": "prod"}},
		{"zero buffer", map[string]string{"WS_SEND_BUFFER": "0"}},
		{"negative ttl", map[string]string{"SESSION_TTL": "-1h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnv_ProdWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SESSION_SECRET", "s3cr3t")
	c, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, c.Production())
}

func TestEnvDuration_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_DURATION", "soon")
	assert.Equal(t, time.Second, envDuration("SOME_DURATION", time.Second))
}
