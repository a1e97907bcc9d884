// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"moviecatalog/internal/config"
	"moviecatalog/internal/logging"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	_ "modernc.org/sqlite" // SQLite driver
)

// Repository owns the catalog's SQLite handle. Every method acquires what it
// needs from the pool and releases it before returning.
type Repository struct {
	DB       *sql.DB
	Cache    *cache.Cache
	Builder  squirrel.StatementBuilderType // SQL Query Builder
	cacheTTL time.Duration
}

// NewRepository opens (or creates) the SQLite database configured in cfg.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ttl := cfg.ThemeCacheTTL
	logging.Log.Debugf("Repository opened at '%s' (theme cache TTL: %v)", cfg.Database.Path, ttl)

	return &Repository{
		DB:       db,
		Cache:    cache.New(ttl, 10*time.Minute),
		Builder:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		cacheTTL: ttl,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// BeginTx starts a new transaction.
func (s *Repository) BeginTx() (*Tx, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{tx}, nil
}

// cacheEnabled reports whether lookups should go through the cache.
func (s *Repository) cacheEnabled() bool {
	return s.cacheTTL > 0
}
