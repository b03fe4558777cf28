package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

type gauthRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGAuthRepository constructs a [GAuthRepository] backed by db.
func NewGAuthRepository(db *DB, logger *logger.Logger) GAuthRepository {
	logger.Debug().Msg("creating gauth repository")
	return &gauthRepository{db: db, logger: logger}
}

func (r *gauthRepository) GetGAuth(ctx context.Context, pin string) (models.GAuthRecord, error) {
	log := logger.FromContext(ctx).With().Str("func", "*gauthRepository.GetGAuth").Logger()

	query, args, err := buildSelectGAuthQuery(r.db.builder(), pin)
	if err != nil {
		log.Err(err).Msg("error building query")
		return models.GAuthRecord{}, err
	}

	rec := models.GAuthRecord{PIN: pin}
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&rec.GAuthSecret)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.GAuthRecord{}, ErrPINNotFound
	}
	if err != nil {
		log.Err(err).Msg("error selecting gauth record")
		return models.GAuthRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}
