package models

import "time"

// AuditKind classifies an entry of the audit journal.
type AuditKind string

const (
	AuditUnknownUID     AuditKind = "unknown_uid"
	AuditClonedUID      AuditKind = "cloned_uid"
	AuditRaceRecovered  AuditKind = "race_recovered"
	AuditTagInitialized AuditKind = "tag_initialized"
	AuditTagReset       AuditKind = "tag_reset"
	AuditDoorOpen       AuditKind = "door_open"
	AuditDoorClose      AuditKind = "door_close"
)

// AuditEvent is a single append-only journal entry.
type AuditEvent struct {
	ID        string    `json:"id"`
	Kind      AuditKind `json:"kind"`
	UID       string    `json:"uid,omitempty"`
	DeviceID  string    `json:"device_id,omitempty"`
	KeyName   string    `json:"key_name,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
