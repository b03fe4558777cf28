package store

import (
	"context"

	"github.com/MKhiriev/go-door-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TagRepository persists tag records keyed by UID. Writes are last-write-wins;
// callers serialize read-modify-write cycles per UID.
type TagRepository interface {
	// GetTag returns [ErrTagNotFound] when uid is unknown.
	GetTag(ctx context.Context, uid string) (models.TagRecord, error)
	PutTag(ctx context.Context, uid string, rec models.TagRecord) error
}

// GAuthRepository resolves PIN-only entry credentials.
type GAuthRepository interface {
	// GetGAuth returns [ErrPINNotFound] when pin is unknown.
	GetGAuth(ctx context.Context, pin string) (models.GAuthRecord, error)
}

// AuditRepository is the append-only security journal.
type AuditRepository interface {
	AppendAudit(ctx context.Context, event models.AuditEvent) error
}
