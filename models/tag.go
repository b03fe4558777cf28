// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// SectorCount is the number of sectors on a supported tag. Each sector groups
// BlocksPerSector blocks, the last of which is the sector trailer holding the
// sector keys and access bits.
const (
	SectorCount     = 16
	BlocksPerSector = 4
	BlockCount      = SectorCount * BlocksPerSector
)

// AllDevices is the device allow-list sentinel that grants a tag access on
// every reader.
const AllDevices = "all"

// TagPhase is the explicit protocol phase of a tag record.
type TagPhase string

const (
	// PhaseUnpopulated means the tag is known by name but carries no keys yet.
	PhaseUnpopulated TagPhase = "unpopulated"
	// PhaseSteady means the committed anti-tamper value is the one on the tag.
	PhaseSteady TagPhase = "steady"
	// PhasePendingRotation means a new value was handed out at stage2 and
	// has not been committed yet.
	PhasePendingRotation TagPhase = "pending_rotation"
	// PhaseResetRequested means an operator flagged the tag for a wipe.
	PhaseResetRequested TagPhase = "reset_requested"
)

// TagRecord is the persisted server-side state of a single physical tag,
// keyed by the tag UID.
//
// JSON names follow the record layout of the on-disk user database so that
// existing databases can be loaded without conversion.
type TagRecord struct {
	// KeyName is the human-readable owner label. A record without a name
	// cannot be initialized.
	KeyName string `json:"key_name,omitempty"`

	// State is the persisted protocol phase. Empty on legacy records; use
	// [TagRecord.Phase] to read it.
	State TagPhase `json:"phase,omitempty"`

	AntiTamperBlock         int       `json:"anti_tamper_block,omitempty"`
	AntiTamperLen           int       `json:"anti_tamper_len,omitempty"`
	AntiTamperNum           int64     `json:"anti_tamper_num,omitempty"`
	AntiTamperNumTemp       int64     `json:"anti_tamper_num_temp,omitempty"`
	AntiTamperTempLastSet   Timestamp `json:"anti_tamper_temp_lastset,omitzero"`
	AntiTamperBlockReadKey  string    `json:"anti_tamper_block_readkey,omitempty"`
	AntiTamperBlockWriteKey string    `json:"anti_tamper_block_writekey,omitempty"`

	// KeyA and KeyB hold one 6-byte hex key per sector.
	KeyA []string `json:"keya,omitempty"`
	KeyB []string `json:"keyb,omitempty"`

	UsedCnt int       `json:"used_cnt"`
	LastUse Timestamp `json:"last_use,omitzero"`

	// DeviceIDs restricts the readers this tag may be used on. Nil or a list
	// containing [AllDevices] means unrestricted; an empty list denies every
	// reader and must survive a rewrite, hence omitzero.
	DeviceIDs []string `json:"device_ids,omitzero"`

	GAuthSecret string `json:"gauth_secret,omitempty"`
	GAuthPIN    string `json:"gauth_pin,omitempty"`
	NFCPIN      string `json:"nfc_pin,omitempty"`

	// Reset is the one-shot wipe marker set by an operator.
	Reset bool `json:"reset,omitempty"`
}

// IsPopulated reports whether the tag has been initialized with keys.
func (r TagRecord) IsPopulated() bool {
	return r.AntiTamperBlockReadKey != ""
}

// HasPendingRotation reports whether a stage2 value is waiting to be
// committed or recovered. Legacy records keep the consumed value in the temp
// field after a commit; that value is not pending.
func (r TagRecord) HasPendingRotation() bool {
	return r.AntiTamperNumTemp != 0 && r.AntiTamperNumTemp != r.AntiTamperNum
}

// Phase returns the protocol phase of the record. Legacy records without a
// persisted phase are classified from their fields.
func (r TagRecord) Phase() TagPhase {
	if r.Reset {
		return PhaseResetRequested
	}
	if r.State != "" {
		return r.State
	}
	switch {
	case !r.IsPopulated():
		return PhaseUnpopulated
	case r.HasPendingRotation():
		return PhasePendingRotation
	default:
		return PhaseSteady
	}
}

// AllowsDevice reports whether deviceID may operate on this tag.
func (r TagRecord) AllowsDevice(deviceID string) bool {
	if r.DeviceIDs == nil {
		return true
	}
	return slices.Contains(r.DeviceIDs, AllDevices) || slices.Contains(r.DeviceIDs, deviceID)
}

// Clone returns a deep copy of the record so that transitions never share
// slices with the value they were derived from.
func (r TagRecord) Clone() TagRecord {
	c := r
	c.KeyA = slices.Clone(r.KeyA)
	c.KeyB = slices.Clone(r.KeyB)
	c.DeviceIDs = slices.Clone(r.DeviceIDs)
	return c
}

// Identity returns a record that keeps only the owner name and the
// secondary-factor configuration. It is what survives a reset.
func (r TagRecord) Identity() TagRecord {
	return TagRecord{
		KeyName:     r.KeyName,
		State:       PhaseUnpopulated,
		GAuthSecret: r.GAuthSecret,
		GAuthPIN:    r.GAuthPIN,
		NFCPIN:      r.NFCPIN,
	}
}

// GAuthRecord is a PIN-only entry credential: the 4-digit PIN is the lookup
// key and GAuthSecret the base32 TOTP seed.
type GAuthRecord struct {
	PIN         string `json:"-"`
	GAuthSecret string `json:"GAuthSecret"`
}
