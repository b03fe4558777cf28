// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package antitamper holds the tag protocol state machine. Every transition
// takes a record by value and returns the next record, leaving persistence
// and locking to the caller.
package antitamper

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-door-keeper/internal/crypto"
	"github.com/MKhiriev/go-door-keeper/models"
)

// TextLen is the number of bytes the anti-tamper text occupies on the tag.
// Records initialized by the legacy backend carry 8 here; readers only
// log the value and always read the whole block, so both load unchanged.
const TextLen = crypto.AntiTamperTextLen

// Machine computes tag state transitions.
type Machine struct {
	codes crypto.CodeGenerator
	rnd   crypto.Random
	now   func() time.Time
}

// NewMachine returns a [Machine]. now may be nil, in which case time.Now is used.
func NewMachine(codes crypto.CodeGenerator, rnd crypto.Random, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{codes: codes, rnd: rnd, now: now}
}

// Initialization is the result of provisioning a fresh tag.
type Initialization struct {
	Record models.TagRecord
	// Text is the first anti-tamper value to write at Record.AntiTamperBlock.
	Text string
	// Filler has one entry per block of the tag. Sector trailers are empty.
	Filler []string
}

// Rotation is the result of a successful stage2.
type Rotation struct {
	Record models.TagRecord
	// Text is the value the reader must write to the tag.
	Text string
	// Recovered is set when the candidate matched the pending value instead
	// of the committed one, meaning a previous commit was lost.
	Recovered bool
}

// Initialize provisions keys, the anti-tamper block and the first rotation
// number for a named, unpopulated record.
func (m *Machine) Initialize(rec models.TagRecord) (Initialization, error) {
	if rec.IsPopulated() {
		return Initialization{}, ErrAlreadyPopulated
	}
	if rec.KeyName == "" {
		return Initialization{}, ErrKeyNameNotDefined
	}

	next := rec.Clone()

	block, err := m.pickBlock()
	if err != nil {
		return Initialization{}, err
	}

	next.KeyA = make([]string, models.SectorCount)
	next.KeyB = make([]string, models.SectorCount)
	for _, keys := range [][]string{next.KeyA, next.KeyB} {
		for i := range keys {
			num, err := m.rnd.RotationNumber()
			if err != nil {
				return Initialization{}, err
			}
			keys[i] = m.codes.SectorKeyText(rec.KeyName, num)
		}
	}

	num, err := m.rnd.RotationNumber()
	if err != nil {
		return Initialization{}, err
	}

	sector := block / models.BlocksPerSector
	next.AntiTamperBlock = block
	next.AntiTamperLen = TextLen
	next.AntiTamperBlockReadKey = next.KeyA[sector]
	next.AntiTamperBlockWriteKey = next.KeyB[sector]
	next.AntiTamperNum = num
	next.AntiTamperNumTemp = 0
	next.AntiTamperTempLastSet = models.Timestamp{}
	next.UsedCnt = 0
	next.LastUse = models.Timestamp{}
	next.State = models.PhaseSteady

	filler, err := m.filler()
	if err != nil {
		return Initialization{}, err
	}

	return Initialization{
		Record: next,
		Text:   m.codes.AntiTamperText(rec.KeyName, num),
		Filler: filler,
	}, nil
}

// BeginRotation checks the value read from the tag and mints the next one.
// The candidate may match either the committed value or a pending value
// whose commit was lost; in the second case the pending value is promoted
// first.
func (m *Machine) BeginRotation(rec models.TagRecord, candidate string) (Rotation, error) {
	if err := m.precheck(rec, candidate); err != nil {
		return Rotation{}, err
	}

	next := rec.Clone()
	recovered := false

	switch {
	case m.codes.CheckAntiTamperText(rec.KeyName, rec.AntiTamperNum, candidate):
	case rotationPending(rec) &&
		m.codes.CheckAntiTamperText(rec.KeyName, rec.AntiTamperNumTemp, candidate):
		next.AntiTamperNum = rec.AntiTamperNumTemp
		recovered = true
	default:
		return Rotation{}, ErrTextMismatch
	}

	num, err := m.nextNumber(next.AntiTamperNum)
	if err != nil {
		return Rotation{}, err
	}

	next.AntiTamperNumTemp = num
	next.AntiTamperTempLastSet = models.NewTimestamp(m.now())
	next.State = models.PhasePendingRotation

	return Rotation{
		Record:    next,
		Text:      m.codes.AntiTamperText(rec.KeyName, num),
		Recovered: recovered,
	}, nil
}

// Commit promotes the pending value once the reader proves it was written
// to the tag, and records the use.
func (m *Machine) Commit(rec models.TagRecord, candidate string) (models.TagRecord, error) {
	if err := m.precheck(rec, candidate); err != nil {
		return models.TagRecord{}, err
	}
	if !rotationPending(rec) {
		return models.TagRecord{}, ErrNoPendingRotation
	}
	if !m.codes.CheckAntiTamperText(rec.KeyName, rec.AntiTamperNumTemp, candidate) {
		return models.TagRecord{}, ErrTextMismatch
	}

	next := rec.Clone()
	next.AntiTamperNum = rec.AntiTamperNumTemp
	next.AntiTamperNumTemp = 0
	next.UsedCnt++
	next.LastUse = models.NewTimestamp(m.now())
	next.State = models.PhaseSteady

	return next, nil
}

// VerifyCurrent checks candidate against the committed value.
func (m *Machine) VerifyCurrent(rec models.TagRecord, candidate string) error {
	if err := m.precheck(rec, candidate); err != nil {
		return err
	}
	if !m.codes.CheckAntiTamperText(rec.KeyName, rec.AntiTamperNum, candidate) {
		return ErrTextMismatch
	}
	return nil
}

// Reset drops all key and rotation state, keeping the owner name and the
// secondary-factor configuration.
func (m *Machine) Reset(rec models.TagRecord) models.TagRecord {
	return rec.Identity()
}

// rotationPending reports whether rec sits between stage2 and its commit.
// The persisted phase decides; legacy records are classified from their
// fields by [models.TagRecord.Phase]. A reset marker only matters to stage1
// and is ignored here.
func rotationPending(rec models.TagRecord) bool {
	rec.Reset = false
	return rec.Phase() == models.PhasePendingRotation && rec.AntiTamperNumTemp != 0
}

func (m *Machine) precheck(rec models.TagRecord, candidate string) error {
	if candidate == "" {
		return ErrEmptyCandidate
	}
	if !rec.IsPopulated() {
		return ErrNotPopulated
	}
	return nil
}

// pickBlock draws a data block from sectors 1..15, never a sector trailer.
func (m *Machine) pickBlock() (int, error) {
	sector, err := m.rnd.IntN(models.SectorCount - 1)
	if err != nil {
		return 0, err
	}
	block, err := m.rnd.IntN(models.BlocksPerSector - 1)
	if err != nil {
		return 0, err
	}
	return (sector+1)*models.BlocksPerSector + block, nil
}

// nextNumber draws a rotation number different from current.
func (m *Machine) nextNumber(current int64) (int64, error) {
	for range 8 {
		num, err := m.rnd.RotationNumber()
		if err != nil {
			return 0, err
		}
		if num != current {
			return num, nil
		}
	}
	return 0, fmt.Errorf("%w: rotation number did not change", crypto.ErrRandomSource)
}

func (m *Machine) filler() ([]string, error) {
	out := make([]string, models.BlockCount)
	for i := range out {
		if IsTrailer(i) {
			continue
		}
		s, err := m.rnd.HexString(TextLen)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// IsTrailer reports whether block holds the keys and access bits of its sector.
func IsTrailer(block int) bool {
	return block%models.BlocksPerSector == models.BlocksPerSector-1
}
