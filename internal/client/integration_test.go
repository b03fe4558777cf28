package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-door-keeper/internal/adapter"
	"github.com/MKhiriev/go-door-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-door-keeper/internal/handler/http"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/service"
	"github.com/MKhiriev/go-door-keeper/internal/store"
	"github.com/MKhiriev/go-door-keeper/internal/totp"
	"github.com/MKhiriev/go-door-keeper/models"
)

// startServer runs the full server stack on SQLite behind httptest and
// returns the tag repository for seeding.
func startServer(t *testing.T) (string, store.TagRepository) {
	t.Helper()
	ctx := context.Background()

	cfg := &config.StructuredConfig{
		App:  config.App{MasterSecret: "integration-master", Version: "test"},
		TOTP: config.TOTP{Period: 30, Digits: 6, Window: 1, Issuer: "DoorKeeper"},
		Storage: config.Storage{
			DB: config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "doorkeeper.db")},
		},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, adapter.NewLogActuator(logger.Nop()), cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(myHTTP.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return srv.URL, storages.Tags
}

func TestIntegration_TapCycle(t *testing.T) {
	url, tags := startServer(t)
	ctx := context.Background()

	const secret = "JBSWY3DPEHPK3PXP"
	require.NoError(t, tags.PutTag(ctx, testUID, models.TagRecord{KeyName: "alice", GAuthSecret: secret}))

	client, err := adapter.NewHTTPAccessClient(url, 5*time.Second, logger.Nop())
	require.NoError(t, err)

	otp := totp.NewEngine(30, 6, 1)
	prompt := func(_ context.Context, digits int) (string, error) {
		return otp.Code(secret)
	}
	reader := NewReader(client, testDevice, prompt, logger.Nop())
	tag := NewTag(testUID)

	resp, err := reader.Tap(ctx, tag, models.DoorOpen)
	require.NoError(t, err)
	require.Equal(t, models.StatusInit, resp.Status)

	for range 3 {
		resp, err = reader.Tap(ctx, tag, models.DoorOpen)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDone, resp.Status)
	}

	rec, err := tags.GetTag(ctx, testUID)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.UsedCnt)
	assert.Equal(t, models.PhaseSteady, rec.Phase())

	// a copy of the tag taken before the last tap is rejected
	stale := NewTag(testUID)
	stale.Write(rec.AntiTamperBlock, "0000000000000000")
	_, err = reader.Tap(ctx, stale, models.DoorOpen)
	assert.ErrorIs(t, err, ErrRefused)
}

func TestIntegration_UnknownTagAndKeyAuth(t *testing.T) {
	url, _ := startServer(t)
	ctx := context.Background()

	client, err := adapter.NewHTTPAccessClient(url, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	reader := NewReader(client, testDevice, nil, logger.Nop())

	_, err = reader.Tap(ctx, NewTag("DEADBEEF"), models.DoorOpen)
	assert.ErrorIs(t, err, ErrRefused)

	_, err = reader.KeyAuth(ctx, "1234567890")
	assert.ErrorIs(t, err, ErrRefused)
}
