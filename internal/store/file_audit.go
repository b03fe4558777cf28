package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

// auditFileStorage appends one JSON document per line.
type auditFileStorage struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewAuditFileStorage returns an [AuditRepository] appending to path.
func NewAuditFileStorage(path string, logger *logger.Logger) AuditRepository {
	logger.Debug().Str("path", path).Msg("creating audit file storage")
	return &auditFileStorage{path: path, logger: logger}
}

func (s *auditFileStorage) AppendAudit(ctx context.Context, event models.AuditEvent) error {
	log := logger.FromContext(ctx)

	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		log.Err(err).Str("func", "*auditFileStorage.AppendAudit").Msg("error opening audit log")
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	defer f.Close()

	if _, err = f.Write(line); err != nil {
		log.Err(err).Str("func", "*auditFileStorage.AppendAudit").Msg("error writing audit log")
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	return nil
}
