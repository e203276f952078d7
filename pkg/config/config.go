package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log    LogConfig
	Solver SolverConfig
	Report ReportConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SolverConfig tunes the enumeration engine.
type SolverConfig struct {
	// Workers is the number of goroutines enumerating candidates; values
	// below 2 solve sequentially.
	Workers int
}

// ReportConfig toggles optional report columns.
type ReportConfig struct {
	WaitHours bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing .env is fine, the environment and defaults still apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Solver = SolverConfig{
		Workers: v.GetInt("SOLVER_WORKERS"),
	}

	cfg.Report = ReportConfig{
		WaitHours: v.GetBool("REPORT_WAIT_HOURS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SOLVER_WORKERS", 1)

	v.SetDefault("REPORT_WAIT_HOURS", false)
}
