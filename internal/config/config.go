package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	BackendGorm = "gorm"
	BackendSQLX = "sqlx"
)

type Config struct {
	Port               string        `mapstructure:"PORT"`
	Environment        string        `mapstructure:"ENVIRONMENT"`
	DatabaseDriver     string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseDSN        string        `mapstructure:"DATABASE_DSN"`
	StoreBackend       string        `mapstructure:"STORE_BACKEND"`
	AdminPassword      string        `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash  string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	TokenValidity      time.Duration `mapstructure:"TOKEN_VALIDITY"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	PricingConfig      `mapstructure:",squash"`
}

// PricingConfig holds whole-rand amounts; the pricing engine converts them to cents.
type PricingConfig struct {
	DormRate               int64 `mapstructure:"PRICE_DORM"`
	DayPassRate            int64 `mapstructure:"PRICE_DAY_PASS"`
	DaysOffered            int   `mapstructure:"DAYS_OFFERED"`
	GroupDiscountThreshold int   `mapstructure:"GROUP_DISCOUNT_THRESHOLD"`
	GroupDiscountPercent   int64 `mapstructure:"GROUP_DISCOUNT_PERCENT"`
}

var keys = []string{
	"PORT",
	"ENVIRONMENT",
	"DATABASE_DRIVER",
	"DATABASE_DSN",
	"STORE_BACKEND",
	"ADMIN_PASSWORD",
	"ADMIN_PASSWORD_HASH",
	"JWT_SECRET",
	"TOKEN_VALIDITY",
	"CORS_ALLOWED_ORIGINS",
	"PRICE_DORM",
	"PRICE_DAY_PASS",
	"DAYS_OFFERED",
	"GROUP_DISCOUNT_THRESHOLD",
	"GROUP_DISCOUNT_PERCENT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", EnvProduction)
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "summit.db")
	v.SetDefault("STORE_BACKEND", BackendGorm)
	v.SetDefault("TOKEN_VALIDITY", 2*time.Hour)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"https://www.reach-summit.co.za", "http://localhost:3000"})
	v.SetDefault("PRICE_DORM", 1300)
	v.SetDefault("PRICE_DAY_PASS", 250)
	v.SetDefault("DAYS_OFFERED", 3)
	v.SetDefault("GROUP_DISCOUNT_THRESHOLD", 10)
	v.SetDefault("GROUP_DISCOUNT_PERCENT", 10)
}

// LoadConfig reads configuration from the environment and, when path is not
// empty, from a config file. Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.CORSAllowedOrigins = splitOrigins(cfg.CORSAllowedOrigins)

	return &cfg, nil
}

// splitOrigins accepts both a proper list and a single comma separated value.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		errs = append(errs, errors.New("one of ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required"))
	}
	if c.TokenValidity <= 0 {
		errs = append(errs, errors.New("TOKEN_VALIDITY must be positive"))
	}
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver))
	}
	switch c.StoreBackend {
	case BackendGorm, BackendSQLX:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend))
	}
	if c.DormRate < 0 {
		errs = append(errs, errors.New("PRICE_DORM must not be negative"))
	}
	if c.DayPassRate < 0 {
		errs = append(errs, errors.New("PRICE_DAY_PASS must not be negative"))
	}
	if c.GroupDiscountThreshold < 0 {
		errs = append(errs, errors.New("GROUP_DISCOUNT_THRESHOLD must not be negative"))
	}
	if c.DaysOffered < 1 {
		errs = append(errs, errors.New("DAYS_OFFERED must be at least 1"))
	}
	if c.GroupDiscountPercent < 0 || c.GroupDiscountPercent > 100 {
		errs = append(errs, errors.New("GROUP_DISCOUNT_PERCENT must be between 0 and 100"))
	}
	return errors.Join(errs...)
}
