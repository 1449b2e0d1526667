package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rrosborg/box-balancer/internal/storage"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BOX_COUNT", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.DefaultBoxCount != storage.DefaultBoxCount() {
		t.Fatalf("expected default box count %d, got %d", storage.DefaultBoxCount(), cfg.DefaultBoxCount)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BOX_COUNT", "7")
	t.Setenv("RATE_LIMIT_RPS", "12.5")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.DefaultBoxCount != 7 {
		t.Fatalf("expected box count 7, got %d", cfg.DefaultBoxCount)
	}
	if cfg.RateLimitRPS != 12.5 {
		t.Fatalf("expected rate limit 12.5, got %v", cfg.RateLimitRPS)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BOX_COUNT", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "port: \"8123\"\nbox_count: 5\nshutdown_grace_period: 2s\nrate_limit:\n  rps: 10\n  burst: 20\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8123" {
		t.Fatalf("expected port 8123, got %s", cfg.Port)
	}
	if cfg.DefaultBoxCount != 5 {
		t.Fatalf("expected box count 5, got %d", cfg.DefaultBoxCount)
	}
	if cfg.ShutdownGracePeriod != 2*time.Second {
		t.Fatalf("expected 2s grace period, got %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
		t.Fatalf("unexpected rate limit: %v / %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadCLIOverridesWin(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BOX_COUNT", "7")

	port := "7777"
	boxCount := 11
	cfg, err := Load(&CLIOverrides{Port: &port, BoxCount: &boxCount})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7777" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.DefaultBoxCount != 11 {
		t.Fatalf("expected CLI box count to win, got %d", cfg.DefaultBoxCount)
	}
}

func TestLoadRejectsMissingConfigFile(t *testing.T) {
	if _, err := Load(&CLIOverrides{ConfigFile: "definitely-not-a-real-file.yaml"}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
