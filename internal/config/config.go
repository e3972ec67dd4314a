package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"Millcalc/internal/calc/economics"
	"Millcalc/internal/calc/premium/autodesign"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const defaultIniPath = "conf/millcalc.ini"

var ErrNoTokenKey = errors.New("TOKEN_KEY environment variable is not set")

type Config struct {
	Addr        string
	TokenKey    string
	DatabaseURL string
	TLSCert     string
	TLSKey      string
	LogLevel    string
	IniPath     string

	Economics     economics.Assumptions
	Design        autodesign.Defaults
	PhaseInterval time.Duration
	RateLimit     float64
	RateBurst     int
}

// Load reads .env (optional), the process environment and the ini tuning file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file loaded, using process environment")
	}

	cfg := &Config{
		Addr:        getenv("ADDR", ":8080"),
		TokenKey:    os.Getenv("TOKEN_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TLSCert:     os.Getenv("TLS_CERT"),
		TLSKey:      os.Getenv("TLS_KEY"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		IniPath:     getenv("MILLCALC_INI", defaultIniPath),
	}
	if cfg.TokenKey == "" {
		return nil, ErrNoTokenKey
	}

	file, err := ini.LooseLoad(cfg.IniPath)
	if err != nil {
		return nil, err
	}
	cfg.applyIni(file)
	return cfg, nil
}

// FromIni builds a config holding only the ini-driven values. Used by tools and tests.
func FromIni(source interface{}) (*Config, error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	cfg.applyIni(file)
	return cfg, nil
}

func (c *Config) applyIni(file *ini.File) {
	eco := file.Section("economics")
	c.Economics = economics.Assumptions{
		PowerCost:          eco.Key("power_cost").MustFloat64(0.12),
		OperatingHours:     eco.Key("operating_hours").MustFloat64(8000),
		BallConsumption:    eco.Key("ball_consumption").MustFloat64(0.5),
		BallCost:           eco.Key("ball_cost").MustFloat64(0.8),
		MaxBearingPressure: eco.Key("max_bearing_pressure").MustFloat64(800),
	}

	design := file.Section("design")
	c.Design = autodesign.Defaults{
		Capacity:    design.Key("default_capacity").MustFloat64(100),
		FeedSize:    design.Key("default_feed_size").MustFloat64(2000),
		ProductSize: design.Key("default_product_size").MustFloat64(150),
		Budget:      design.Key("default_budget").MustFloat64(1000000),
	}
	c.PhaseInterval = time.Duration(design.Key("phase_interval_ms").MustInt(500)) * time.Millisecond

	limits := file.Section("limits")
	c.RateLimit = limits.Key("rate").MustFloat64(1)
	c.RateBurst = limits.Key("burst").MustInt(3)
}

// TLS reports whether both certificate and key are configured.
func (c *Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
