package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config with values from the environment. It runs last in
// the chain, so deployment platforms that only expose env configuration can
// override both the JSON file and the flags.
//
// Variables:
//
//	PLANTKEEPER_LISTEN    address and port the UI server listens on
//	PLANTKEEPER_API_URL   base URL of the plant backend API
//	PLANTKEEPER_TIMEOUT   backend request timeout in seconds, 0 for none
func parseEnv(cfg *Config) {
	if v := os.Getenv("PLANTKEEPER_LISTEN"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("PLANTKEEPER_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("PLANTKEEPER_TIMEOUT"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
	}
}
