package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, parsed from the environment.
// main loads .env via godotenv before calling Load.
type Config struct {
	Port              string   `env:"PORT" envDefault:"8080"`
	Environment       string   `env:"GO_ENV" envDefault:"development"`
	Domain            string   `env:"DOMAIN"`
	JWTSecret         string   `env:"JWT_SECRET,required"`
	RedisAddr         string   `env:"REDIS_ADDRESS"`
	RedisPassword     string   `env:"REDIS_PASSWORD"`
	ReportLimitPerDay int      `env:"REPORT_LIMIT_PER_DAY" envDefault:"10"`
	ReportLimitPrefix string   `env:"REPORT_LIMIT_PREFIX" envDefault:"report-limit"`
	CORSOrigins       []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Production() bool {
	return c.Environment == "production"
}
