package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/mock"
	"github.com/MKhiriev/go-door-keeper/models"
)

const (
	testUID    = "04A1B2C3"
	testDevice = "reader-1"
)

func req(cmd models.Command, key string, door models.DoorCommand, gcode string) models.AccessRequest {
	return models.AccessRequest{UID: testUID, Cmd: cmd, DeviceID: testDevice, Key: key, DoorCmd: door, GCode: gcode}
}

func TestTap_Provision(t *testing.T) {
	client := mock.NewMockAccessClient(gomock.NewController(t))
	client.EXPECT().Authenticate(gomock.Any(), req(models.CmdStage1, "", "", "")).Return(models.Response{
		Status:     models.StatusInit,
		WriteBlock: 5,
		Text:       "first-value-0001",
		KeyA:       []string{"a0", "a1"},
		KeyB:       []string{"b0", "b1"},
		Filler:     []string{"", "", "", "", "f4", "f5", "f6", ""},
	}, nil)

	tag := NewTag(testUID)
	resp, err := NewReader(client, testDevice, nil, logger.Nop()).Tap(context.Background(), tag, models.DoorOpen)

	require.NoError(t, err)
	assert.Equal(t, models.StatusInit, resp.Status)
	assert.Equal(t, map[int]string{4: "f4", 5: "first-value-0001", 6: "f6"}, tag.Blocks)
	assert.Equal(t, []string{"a0", "a1"}, tag.KeyA)
}

func TestTap_FullCycleWithCode(t *testing.T) {
	client := mock.NewMockAccessClient(gomock.NewController(t))
	tag := NewTag(testUID)
	tag.Write(9, "current-value-16extra")

	gomock.InOrder(
		client.EXPECT().Authenticate(gomock.Any(), req(models.CmdStage1, "", "", "")).
			Return(models.Response{Status: models.StatusRead, ReadBlock: 9, Len: 16}, nil),
		client.EXPECT().Authenticate(gomock.Any(), req(models.CmdStage2, "current-value-16", "", "")).
			Return(models.Response{Status: models.StatusWrite, WriteBlock: 9, Text: "rotated-value-02"}, nil),
		client.EXPECT().Authenticate(gomock.Any(), req(models.CmdStage3, "rotated-value-02", models.DoorOpen, "")).
			Return(models.Response{Status: models.StatusGetCode, Digits: 6}, nil),
		client.EXPECT().Authenticate(gomock.Any(), req(models.CmdStage4, "rotated-value-02", models.DoorOpen, "123456")).
			Return(models.Response{Status: models.StatusDone}, nil),
	)

	var asked int
	prompt := func(_ context.Context, digits int) (string, error) {
		asked = digits
		return "123456", nil
	}

	resp, err := NewReader(client, testDevice, prompt, logger.Nop()).Tap(context.Background(), tag, models.DoorOpen)

	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, resp.Status)
	assert.Equal(t, 6, asked)
	assert.Equal(t, "rotated-value-02", tag.Blocks[9])
}

func TestTap_CodeWithoutPrompt(t *testing.T) {
	client := mock.NewMockAccessClient(gomock.NewController(t))
	client.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Response{Status: models.StatusRead, ReadBlock: 1, Len: 16}, nil)
	client.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Response{Status: models.StatusWrite, WriteBlock: 1, Text: "x"}, nil)
	client.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Response{Status: models.StatusGetCode, Digits: 4}, nil)

	_, err := NewReader(client, testDevice, nil, logger.Nop()).Tap(context.Background(), NewTag(testUID), models.DoorOpen)

	assert.ErrorIs(t, err, ErrNoCode)
}

func TestTap_Refused(t *testing.T) {
	client := mock.NewMockAccessClient(gomock.NewController(t))
	client.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.ErrResponse("You're not allowed on this device!"), nil)

	resp, err := NewReader(client, testDevice, nil, logger.Nop()).Tap(context.Background(), NewTag(testUID), models.DoorOpen)

	assert.ErrorIs(t, err, ErrRefused)
	assert.Contains(t, err.Error(), "not allowed")
	assert.Equal(t, models.StatusErr, resp.Status)
}

func TestTap_TransportError(t *testing.T) {
	client := mock.NewMockAccessClient(gomock.NewController(t))
	boom := errors.New("connection refused")
	client.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Response{}, boom)

	_, err := NewReader(client, testDevice, nil, logger.Nop()).Tap(context.Background(), NewTag(testUID), models.DoorOpen)

	assert.ErrorIs(t, err, boom)
}

func TestTap_Reset(t *testing.T) {
	client := mock.NewMockAccessClient(gomock.NewController(t))
	client.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Response{Status: models.StatusReset}, nil)

	tag := NewTag(testUID)
	tag.Write(5, "value")
	tag.KeyA = []string{"a"}

	_, err := NewReader(client, testDevice, nil, logger.Nop()).Tap(context.Background(), tag, models.DoorOpen)

	require.NoError(t, err)
	assert.Empty(t, tag.Blocks)
	assert.Nil(t, tag.KeyA)
}

func TestKeyAuth(t *testing.T) {
	client := mock.NewMockAccessClient(gomock.NewController(t))
	client.EXPECT().Authenticate(gomock.Any(), models.AccessRequest{Cmd: models.CmdKeyAuth, DeviceID: testDevice, Key: "1234567890"}).
		Return(models.Response{Status: models.StatusWrite}, nil)

	resp, err := NewReader(client, testDevice, nil, logger.Nop()).KeyAuth(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Equal(t, models.StatusWrite, resp.Status)
}

func TestTag_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tag.json")

	tag := NewTag(testUID)
	tag.Write(21, "abc")
	tag.KeyA = []string{"k"}
	require.NoError(t, tag.Save(path))

	got, err := LoadTag(path, testUID)
	require.NoError(t, err)
	assert.Equal(t, tag, got)

	other, err := LoadTag(path, "FFFF")
	require.NoError(t, err)
	assert.Equal(t, NewTag("FFFF"), other)

	missing, err := LoadTag(filepath.Join(t.TempDir(), "none.json"), testUID)
	require.NoError(t, err)
	assert.Equal(t, NewTag(testUID), missing)
}

func TestTag_Read(t *testing.T) {
	tag := NewTag(testUID)
	tag.Write(1, "0123456789abcdefXYZ")

	assert.Equal(t, "0123456789abcdef", tag.Read(1, 16))
	assert.Equal(t, "0123456789abcdefXYZ", tag.Read(1, 0))
	assert.Equal(t, "", tag.Read(2, 16))
}
