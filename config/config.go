package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the service reads from the environment.
// Components receive their settings explicitly at construction; nothing
// reads env vars after startup.
type Config struct {
	ListenAddr     string `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabaseDSN    string `env:"DATABASE_DSN,required"`
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:5173"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"30m"`

	StationDirectoryURL string        `env:"STATION_DIRECTORY_URL" envDefault:"https://rtwqmsdb1.cpcb.gov.in/data/internet/stations/stations.json"`
	StationFetchTimeout time.Duration `env:"STATION_FETCH_TIMEOUT" envDefault:"120s"`

	// Redis is optional; without it report rate limiting is disabled.
	RedisAddress     string `env:"REDIS_ADDRESS"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
	ReportDailyLimit int    `env:"REPORT_DAILY_LIMIT" envDefault:"10"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
