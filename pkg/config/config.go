package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string `envconfig:"PORT"         default:"3000"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST"      default:"localhost"`
	DBUser      string `envconfig:"DB_USER"      default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"      default:"pos"`
	DBPort      string `envconfig:"DB_PORT"      default:"5432"`
	JWTSecret   string `envconfig:"JWT_SECRET"   default:"your-super-secret-key-change-in-production"`
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`
}

// Load reads .env (when present) and the process environment.
func Load(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		}
	} else {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	return &cfg, nil
}
