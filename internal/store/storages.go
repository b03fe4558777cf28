package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
)

// Storages bundles the repositories the services depend on.
type Storages struct {
	Tags  TagRepository
	GAuth GAuthRepository
	Audit AuditRepository

	db *DB
}

// NewStorages selects the backend from the DSN: postgres:// and
// postgresql:// open PostgreSQL, sqlite:// and file: open SQLite, and an
// empty DSN falls back to the JSON files. SQL backends are migrated before
// use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == "":
		log.Info().Str("tags", cfg.Files.TagDBPath).Str("gauth", cfg.Files.GAuthDBPath).Msg("using json file storage")
		return &Storages{
			Tags:  NewTagFileStorage(cfg.Files.TagDBPath, log),
			GAuth: NewGAuthFileStorage(cfg.Files.GAuthDBPath, log),
			Audit: NewAuditFileStorage(cfg.Files.AuditLogPath, log),
		}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, schemeOf(dsn))
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newSQLStorages(db, log), nil
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Tags:  NewTagRepository(db, log),
		GAuth: NewGAuthRepository(db, log),
		Audit: NewAuditRepository(db, log),
		db:    db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// schemeOf keeps credentials out of error messages.
func schemeOf(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i]
	}
	return "unknown"
}
