package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/models"
)

type Config struct {
	Addr          string
	DBDriver      string // "sqlite" or "postgres"
	DBPath        string // sqlite file path
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	SessionSecret string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	cfg := Config{
		Addr:          envOr("ADDR", ":8080"),
		DBDriver:      envOr("DB_DRIVER", "sqlite"),
		DBPath:        envOr("DB_PATH", "fittrack.db"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        envOr("DB_PORT", "5432"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.SessionSecret == "" {
		log.Warn("SESSION_SECRET not set, using an insecure development secret")
		cfg.SessionSecret = "dev-only-secret"
	}

	return cfg
}

// InitDB opens the configured database and migrates the schema.
func InitDB(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.New(
			log.StandardLogger(),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
		TranslateError: true,
	}

	var db *gorm.DB
	var err error
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ProgressEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
