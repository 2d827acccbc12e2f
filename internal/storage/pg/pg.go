package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/dwikurnia/forum-api/internal/config"
	"github.com/dwikurnia/forum-api/internal/logger"
	"github.com/dwikurnia/forum-api/internal/utils"
)

type Storage struct {
	db    *sql.DB
	newId utils.IdGenerator
}

func New(cfg *config.Config, newId utils.IdGenerator) (*Storage, error) {
	logger.Log.Info("connecting to db")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db, newId}, nil
}

// NewWithDB wraps an existing connection. Used by tests.
func NewWithDB(db *sql.DB, newId utils.IdGenerator) *Storage {
	return &Storage{db, newId}
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	pgCfg := cfg.Private.Pg
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		pgCfg.Host, pgCfg.Port, pgCfg.User, pgCfg.Password, pgCfg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
