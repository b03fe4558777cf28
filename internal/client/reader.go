package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-door-keeper/internal/adapter"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

// Reader plays the field-device side of the protocol.
type Reader struct {
	client   adapter.AccessClient
	deviceID string
	prompt   CodePrompt

	logger *logger.Logger
}

func NewReader(client adapter.AccessClient, deviceID string, prompt CodePrompt, logger *logger.Logger) *Reader {
	return &Reader{
		client:   client,
		deviceID: deviceID,
		prompt:   prompt,
		logger:   logger,
	}
}

// Tap presents tag to the server and runs the protocol to its end, updating
// the tag memory on the way. The last response is always returned; refusals
// additionally produce an error wrapping [ErrRefused].
func (r *Reader) Tap(ctx context.Context, tag *Tag, door models.DoorCommand) (models.Response, error) {
	resp, err := r.send(ctx, models.AccessRequest{Cmd: models.CmdStage1, UID: tag.UID})
	if err != nil {
		return resp, err
	}

	switch resp.Status {
	case models.StatusInit:
		tag.Provision(resp)
		r.logger.Info().Str("uid", tag.UID).Int("block", resp.WriteBlock).Msg("tag provisioned")
		return resp, nil
	case models.StatusReset:
		tag.Wipe()
		r.logger.Info().Str("uid", tag.UID).Msg("tag wiped")
		return resp, nil
	case models.StatusRead:
	default:
		return resp, unexpected(models.CmdStage1, resp)
	}

	onTag := tag.Read(resp.ReadBlock, resp.Len)
	kk, err := r.send(ctx, models.AccessRequest{Cmd: models.CmdStage2, UID: tag.UID, Key: onTag})
	if err != nil {
		return kk, err
	}
	if kk.Status != models.StatusWrite {
		return kk, unexpected(models.CmdStage2, kk)
	}
	tag.Write(kk.WriteBlock, kk.Text)

	resp, err = r.send(ctx, models.AccessRequest{Cmd: models.CmdStage3, UID: tag.UID, Key: kk.Text, DoorCmd: door})
	if err != nil {
		return resp, err
	}

	switch resp.Status {
	case models.StatusDone:
		return resp, nil
	case models.StatusGetCode:
	default:
		return resp, unexpected(models.CmdStage3, resp)
	}

	if r.prompt == nil {
		return resp, ErrNoCode
	}
	code, err := r.prompt(ctx, resp.Digits)
	if err != nil {
		return resp, fmt.Errorf("read secondary code: %w", err)
	}

	resp, err = r.send(ctx, models.AccessRequest{
		Cmd: models.CmdStage4, UID: tag.UID, Key: kk.Text, DoorCmd: door, GCode: code,
	})
	if err != nil {
		return resp, err
	}
	if resp.Status != models.StatusDone {
		return resp, unexpected(models.CmdStage4, resp)
	}
	return resp, nil
}

// KeyAuth sends a PIN followed by a TOTP code typed on the keypad.
func (r *Reader) KeyAuth(ctx context.Context, key string) (models.Response, error) {
	resp, err := r.send(ctx, models.AccessRequest{Cmd: models.CmdKeyAuth, Key: key})
	if err != nil {
		return resp, err
	}
	if resp.Status != models.StatusWrite {
		return resp, unexpected(models.CmdKeyAuth, resp)
	}
	return resp, nil
}

// ReportCloned tells the server that tag answered the magic-card probe.
func (r *Reader) ReportCloned(ctx context.Context, tag *Tag) (models.Response, error) {
	return r.send(ctx, models.AccessRequest{Cmd: models.CmdChinaUID, UID: tag.UID})
}

func (r *Reader) send(ctx context.Context, req models.AccessRequest) (models.Response, error) {
	req.DeviceID = r.deviceID

	resp, err := r.client.Authenticate(ctx, req)
	if err != nil {
		return models.Response{}, fmt.Errorf("%s: %w", req.Cmd, err)
	}

	r.logger.Debug().
		Str("cmd", string(req.Cmd)).
		Str("status", string(resp.Status)).
		Msg("server answered")

	if resp.Status == models.StatusErr {
		if resp.Message != "" {
			return resp, fmt.Errorf("%w at %s: %s", ErrRefused, req.Cmd, resp.Message)
		}
		return resp, fmt.Errorf("%w at %s", ErrRefused, req.Cmd)
	}
	return resp, nil
}

func unexpected(cmd models.Command, resp models.Response) error {
	return fmt.Errorf("%w after %s: %q", ErrUnexpectedStatus, cmd, resp.Status)
}
