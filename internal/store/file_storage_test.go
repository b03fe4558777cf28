package store

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

func TestTagFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfid.json")
	s := NewTagFileStorage(path, logger.Nop())
	ctx := testContext()

	_, err := s.GetTag(ctx, "04AABB")
	require.ErrorIs(t, err, ErrTagNotFound)

	rec := models.TagRecord{
		KeyName:                "alice",
		AntiTamperBlock:        5,
		AntiTamperNum:          99,
		AntiTamperBlockReadKey: "112233445566",
		KeyA:                   []string{"a", "b"},
	}
	require.NoError(t, s.PutTag(ctx, "04AABB", rec))

	got, err := s.GetTag(ctx, "04AABB")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// mutating the returned copy must not leak into the store
	got.KeyA[0] = "zz"
	again, err := s.GetTag(ctx, "04AABB")
	require.NoError(t, err)
	assert.Equal(t, "a", again.KeyA[0])

	// a second instance sees the persisted data
	other := NewTagFileStorage(path, logger.Nop())
	fromDisk, err := other.GetTag(ctx, "04AABB")
	require.NoError(t, err)
	assert.Equal(t, rec, fromDisk)
}

func TestTagFileStorage_ReloadsExternalEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"04AABB":{"key_name":"alice"}}`), 0o600))

	s := NewTagFileStorage(path, logger.Nop())
	ctx := testContext()

	got, err := s.GetTag(ctx, "04AABB")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.KeyName)
	assert.False(t, got.IsPopulated())

	require.NoError(t, os.WriteFile(path, []byte(`{"04AABB":{"key_name":"alice","reset":true},"04CCDD":{"key_name":"bob"}}`), 0o600))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	got, err = s.GetTag(ctx, "04AABB")
	require.NoError(t, err)
	assert.True(t, got.Reset)

	got, err = s.GetTag(ctx, "04CCDD")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.KeyName)
}

func TestTagFileStorage_LegacyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfid.json")
	legacy := `{
		"04AABB": {
			"key_name": "alice",
			"anti_tamper_block_readkey": "112233445566",
			"anti_tamper_num": 7,
			"used_cnt": 2,
			"anti_tamper_temp_lastset": "2020-05-01 12:00:00",
			"last_use": "2020-05-01 12:00:03",
			"device_ids": []
		},
		"04CCDD": {"key_name": "bob"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	s := NewTagFileStorage(path, logger.Nop())
	ctx := testContext()

	bob, err := s.GetTag(ctx, "04CCDD")
	require.NoError(t, err)
	assert.Equal(t, "bob", bob.KeyName)

	alice, err := s.GetTag(ctx, "04AABB")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 5, 1, 12, 0, 3, 0, time.Local), alice.LastUse.Time)
	assert.False(t, alice.AllowsDevice("door-1"))

	// rewriting the file for another tag keeps alice revoked and dated
	bob.UsedCnt = 1
	require.NoError(t, s.PutTag(ctx, "04CCDD", bob))

	reloaded, err := NewTagFileStorage(path, logger.Nop()).GetTag(ctx, "04AABB")
	require.NoError(t, err)
	assert.False(t, reloaded.AllowsDevice("door-1"))
	assert.NotNil(t, reloaded.DeviceIDs)
	assert.True(t, alice.LastUse.Equal(reloaded.LastUse.Time))
	assert.True(t, alice.AntiTamperTempLastSet.Equal(reloaded.AntiTamperTempLastSet.Time))
}

func TestTagFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := NewTagFileStorage(path, logger.Nop()).GetTag(testContext(), "x")
	require.ErrorIs(t, err, ErrDecodingRecord)
}

func TestGAuthFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "googleauth.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"1234":{"GAuthSecret":"JBSWY3DPEHPK3PXP"}}`), 0o600))

	s := NewGAuthFileStorage(path, logger.Nop())

	got, err := s.GetGAuth(testContext(), "1234")
	require.NoError(t, err)
	assert.Equal(t, models.GAuthRecord{PIN: "1234", GAuthSecret: "JBSWY3DPEHPK3PXP"}, got)

	_, err = s.GetGAuth(testContext(), "9999")
	require.ErrorIs(t, err, ErrPINNotFound)
}

func TestAuditFileStorage_AppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	s := NewAuditFileStorage(path, logger.Nop())

	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.AppendAudit(testContext(), models.AuditEvent{ID: "1", Kind: models.AuditUnknownUID, UID: "04AA", CreatedAt: at}))
	require.NoError(t, s.AppendAudit(testContext(), models.AuditEvent{ID: "2", Kind: models.AuditDoorOpen, KeyName: "alice", CreatedAt: at}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []models.AuditEvent
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e models.AuditEvent
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		events = append(events, e)
	}
	require.NoError(t, sc.Err())
	require.Len(t, events, 2)
	assert.Equal(t, models.AuditUnknownUID, events[0].Kind)
	assert.Equal(t, "alice", events[1].KeyName)
}
