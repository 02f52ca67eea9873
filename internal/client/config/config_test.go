package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAPIBaseURL(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"localhost", DevAPIBaseURL},
		{"localhost.localdomain", DevAPIBaseURL},
		{"dev.localhost", DevAPIBaseURL},
		{"plantkeeper.example.com", ProdAPIBaseURL},
		{"myhost", ProdAPIBaseURL},
		{"", ProdAPIBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAPIBaseURL(tt.host))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3000", c.ListenAddr)
	assert.Contains(t, []string{DevAPIBaseURL, ProdAPIBaseURL}, c.APIBaseURL)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, ":3000", cfg.ListenAddr)
}
