package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:9090",
		"-d", "test.db",
		"-c", "/tmp/config.json",
		"-token-sign-key", "secret",
		"-token-issuer", "learnhub",
		"-token-duration", "12h",
		"-request-timeout", "15s",
		"-session-cleanup-interval", "1m",
		"-seed",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "learnhub", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SessionCleanupInterval)
	assert.True(t, cfg.Storage.SeedDemoData)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.False(t, cfg.Storage.SeedDemoData)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "no-port"})
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip address", input: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{name: "empty host", input: ":8080", want: ":8080"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not an ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringUnset(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
