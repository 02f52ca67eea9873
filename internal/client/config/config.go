// Package config handles configuration for the web UI shell, including
// defaults, JSON overlay, command-line flags, and environment variables.
package config

import (
	"os"
	"strings"
	"time"
)

// DevAPIBaseURL and ProdAPIBaseURL are the two known backend deployments. The
// shell resolves one of them once at startup; nothing deeper in the app reads
// ambient host context.
const (
	DevAPIBaseURL  = "http://localhost:8080"
	ProdAPIBaseURL = "https://plant-tracker-backend-production.up.railway.app"
)

// Config holds runtime settings for the PlantKeeper web UI.
//
// Fields:
//   - ListenAddr: bind address for the HTTP UI server.
//   - APIBaseURL: base URL of the plant backend REST API.
//   - RequestTimeout: per-request timeout for backend calls; 0 disables it.
type Config struct {
	ListenAddr     string
	APIBaseURL     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The backend URL follows
// the deployment rule: a host whose name contains "localhost" talks to the
// local development backend, anything else to the production one.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3000"
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	c.APIBaseURL = ResolveAPIBaseURL(host)
	c.RequestTimeout = 0
}

// ResolveAPIBaseURL maps a host name to the backend deployment serving it.
func ResolveAPIBaseURL(host string) string {
	if strings.Contains(host, "localhost") {
		return DevAPIBaseURL
	}
	return ProdAPIBaseURL
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags, and finally the environment. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
