package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	tagRecordsTable   = "tag_records"
	gauthRecordsTable = "gauth_records"
	auditEventsTable  = "audit_events"
)

// Dialects differ only in placeholders; the upsert form is understood by
// PostgreSQL and SQLite >= 3.24 alike.
const upsertTagSuffix = `ON CONFLICT (uid) DO UPDATE SET
	key_name = EXCLUDED.key_name,
	phase = EXCLUDED.phase,
	record = EXCLUDED.record,
	updated_at = EXCLUDED.updated_at`

func buildSelectTagQuery(b sq.StatementBuilderType, uid string) (string, []any, error) {
	query, args, err := b.
		Select("record").
		From(tagRecordsTable).
		Where(sq.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertTagQuery(b sq.StatementBuilderType, uid, keyName, phase, record string, updatedAt time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(tagRecordsTable).
		Columns("uid", "key_name", "phase", "record", "updated_at").
		Values(uid, keyName, phase, record, updatedAt).
		Suffix(upsertTagSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectGAuthQuery(b sq.StatementBuilderType, pin string) (string, []any, error) {
	query, args, err := b.
		Select("secret").
		From(gauthRecordsTable).
		Where(sq.Eq{"pin": pin}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertAuditQuery(b sq.StatementBuilderType, id, kind, uid, deviceID, keyName, message string, createdAt time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(auditEventsTable).
		Columns("id", "kind", "uid", "device_id", "key_name", "message", "created_at").
		Values(id, kind, uid, deviceID, keyName, message, createdAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
