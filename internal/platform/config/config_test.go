package config

import "testing"

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := FromEnv()
		if cfg.ValidateChecksum {
			t.Error("checksum must default to off")
		}
		if cfg.Workers < 1 {
			t.Error("workers must default to a positive count")
		}
		if cfg.LogLevel != "info" {
			t.Errorf("log level = %q, want info", cfg.LogLevel)
		}
	})

	t.Run("checksum opt-in", func(t *testing.T) {
		t.Setenv("NIDCTL_VALIDATE_CHECKSUM", "true")
		if !FromEnv().ValidateChecksum {
			t.Error("expected checksum enabled")
		}
	})

	t.Run("worker override", func(t *testing.T) {
		t.Setenv("NIDCTL_WORKERS", "3")
		if got := FromEnv().Workers; got != 3 {
			t.Errorf("workers = %d, want 3", got)
		}
	})

	t.Run("bad worker values are ignored", func(t *testing.T) {
		t.Setenv("NIDCTL_WORKERS", "-2")
		if got := FromEnv().Workers; got < 1 {
			t.Errorf("workers = %d, want default", got)
		}
	})

	t.Run("log level override", func(t *testing.T) {
		t.Setenv("NIDCTL_LOG_LEVEL", "debug")
		if got := FromEnv().LogLevel; got != "debug" {
			t.Errorf("log level = %q, want debug", got)
		}
	})
}
