package database

import (
	"fmt"

	"github.com/lshigami/fizzbuzz-game/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDatabase opens the rules database. Postgres when DATABASE_HOST is
// configured, otherwise a local sqlite file so the game runs with zero setup.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Host == "" {
		log.Info().Msg("DATABASE_HOST not set, using local sqlite database")
		db, err := gorm.Open(sqlite.Open("fizzbuzz.db"), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return db, nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("Connected to postgres")
	return db, nil
}
