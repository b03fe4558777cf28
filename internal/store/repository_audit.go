package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

type auditRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAuditRepository constructs an [AuditRepository] writing to the
// audit_events table.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{db: db, logger: logger}
}

func (r *auditRepository) AppendAudit(ctx context.Context, event models.AuditEvent) error {
	log := logger.FromContext(ctx).With().Str("func", "*auditRepository.AppendAudit").Logger()

	query, args, err := buildInsertAuditQuery(r.db.builder(),
		event.ID, string(event.Kind), event.UID, event.DeviceID, event.KeyName, event.Message, event.CreatedAt.UTC())
	if err != nil {
		log.Err(err).Msg("error building query")
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("kind", string(event.Kind)).Msg("error appending audit event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
