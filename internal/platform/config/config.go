package config

import (
	"os"
	"runtime"
	"strconv"
)

// CLI captures nidctl configuration. Flags override these values; the
// environment only supplies defaults so main stays lean.
type CLI struct {
	ValidateChecksum bool
	Workers          int
	LogLevel         string
}

// FromEnv builds a CLI config from environment variables.
//
// NIDCTL_VALIDATE_CHECKSUM enables the opt-in checksum step ("true"/"1").
// NIDCTL_WORKERS bounds batch-check concurrency (default: GOMAXPROCS worth).
// NIDCTL_LOG_LEVEL is debug, info, warn, or error (default info).
func FromEnv() CLI {
	cfg := CLI{
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
	}

	switch os.Getenv("NIDCTL_VALIDATE_CHECKSUM") {
	case "true", "1":
		cfg.ValidateChecksum = true
	}

	if raw := os.Getenv("NIDCTL_WORKERS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	if lvl := os.Getenv("NIDCTL_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg
}
