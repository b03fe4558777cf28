package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

// tagRepository is the SQL implementation of [TagRepository]. The full
// record is stored as a JSON document; key_name and phase are duplicated
// into columns for operators querying the table by hand.
type tagRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTagRepository constructs a [TagRepository] backed by db.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *tagRepository) GetTag(ctx context.Context, uid string) (models.TagRecord, error) {
	log := logger.FromContext(ctx).With().Str("func", "*tagRepository.GetTag").Str("uid", uid).Logger()

	query, args, err := buildSelectTagQuery(r.db.builder(), uid)
	if err != nil {
		log.Err(err).Msg("error building query")
		return models.TagRecord{}, err
	}

	var doc string
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&doc)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.TagRecord{}, ErrTagNotFound
	}
	if err != nil {
		log.Err(err).Str("pg_code", postgresError(err)).Msg("error selecting tag record")
		return models.TagRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var rec models.TagRecord
	if err = json.Unmarshal([]byte(doc), &rec); err != nil {
		log.Err(err).Msg("error decoding tag record")
		return models.TagRecord{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return rec, nil
}

func (r *tagRepository) PutTag(ctx context.Context, uid string, rec models.TagRecord) error {
	log := logger.FromContext(ctx).With().Str("func", "*tagRepository.PutTag").Str("uid", uid).Logger()

	doc, err := json.Marshal(rec)
	if err != nil {
		log.Err(err).Msg("error encoding tag record")
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	query, args, err := buildUpsertTagQuery(r.db.builder(), uid, rec.KeyName, string(rec.Phase()), string(doc), r.now().UTC())
	if err != nil {
		log.Err(err).Msg("error building query")
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("pg_code", postgresError(err)).Msg("error saving tag record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
