package config

import (
	"testing"
	"time"
)

func TestFromIniDefaults(t *testing.T) {
	cfg, err := FromIni([]byte(""))
	if err != nil {
		t.Fatalf("FromIni: %v", err)
	}
	if cfg.Economics.PowerCost != 0.12 || cfg.Economics.OperatingHours != 8000 {
		t.Errorf("economics defaults = %+v", cfg.Economics)
	}
	if cfg.Economics.MaxBearingPressure != 800 {
		t.Errorf("max bearing pressure = %v", cfg.Economics.MaxBearingPressure)
	}
	if cfg.Design.Capacity != 100 || cfg.Design.FeedSize != 2000 || cfg.Design.ProductSize != 150 || cfg.Design.Budget != 1000000 {
		t.Errorf("design defaults = %+v", cfg.Design)
	}
	if cfg.PhaseInterval != 500*time.Millisecond {
		t.Errorf("phase interval = %v", cfg.PhaseInterval)
	}
	if cfg.RateLimit != 1 || cfg.RateBurst != 3 {
		t.Errorf("limits = %v/%v", cfg.RateLimit, cfg.RateBurst)
	}
}

func TestFromIniOverrides(t *testing.T) {
	src := []byte(`
[economics]
power_cost = 0.2
operating_hours = 7000

[design]
phase_interval_ms = 0
default_budget = 2500000

[limits]
burst = 10
`)
	cfg, err := FromIni(src)
	if err != nil {
		t.Fatalf("FromIni: %v", err)
	}
	if cfg.Economics.PowerCost != 0.2 || cfg.Economics.OperatingHours != 7000 {
		t.Errorf("economics = %+v", cfg.Economics)
	}
	if cfg.Economics.BallCost != 0.8 {
		t.Errorf("untouched key lost its default: %v", cfg.Economics.BallCost)
	}
	if cfg.PhaseInterval != 0 {
		t.Errorf("phase interval = %v", cfg.PhaseInterval)
	}
	if cfg.Design.Budget != 2500000 {
		t.Errorf("budget = %v", cfg.Design.Budget)
	}
	if cfg.RateBurst != 10 {
		t.Errorf("burst = %v", cfg.RateBurst)
	}
}

func TestLoadRequiresTokenKey(t *testing.T) {
	t.Setenv("TOKEN_KEY", "")
	if _, err := Load(); err != ErrNoTokenKey {
		t.Fatalf("Load err = %v, want ErrNoTokenKey", err)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("TOKEN_KEY", "secret")
	t.Setenv("ADDR", ":9999")
	t.Setenv("MILLCALC_INI", "does-not-exist.ini")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.TokenKey != "secret" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TLS() {
		t.Error("TLS enabled without cert and key")
	}
	if cfg.Economics.PowerCost != 0.12 {
		t.Errorf("missing ini should fall back to defaults, got %v", cfg.Economics.PowerCost)
	}
}
