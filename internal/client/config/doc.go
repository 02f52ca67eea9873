// Package config loads runtime configuration for the PlantKeeper web UI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//  4. Environment variables (see parseEnv), which override everything.
//
// Supported flags
//
//	-l string   address:port the UI server listens on
//	-a string   base URL of the plant backend REST API
//	-t int      backend request timeout (seconds, 0 = none)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "5s" or integer nanoseconds:
//
//	{
//	  "listen_addr": ":3000",
//	  "api_base_url": "http://localhost:8080",
//	  "request_timeout": "5s"
//	}
//
// Primary API
//
//   - type Config                     — holds ListenAddr, APIBaseURL, RequestTimeout
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, flags, env
//   - func (*Config) LoadDefaults()   — sets defaults, resolving the backend URL by hostname
package config
