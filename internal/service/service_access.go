package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-door-keeper/internal/adapter"
	"github.com/MKhiriev/go-door-keeper/internal/antitamper"
	"github.com/MKhiriev/go-door-keeper/internal/app"
	"github.com/MKhiriev/go-door-keeper/internal/authz"
	"github.com/MKhiriev/go-door-keeper/internal/crypto"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/store"
	"github.com/MKhiriev/go-door-keeper/internal/totp"
	"github.com/MKhiriev/go-door-keeper/internal/utils"
	"github.com/MKhiriev/go-door-keeper/internal/validators"
	"github.com/MKhiriev/go-door-keeper/models"
)

// unknownKeyName is reported for cloned tags whose UID is not registered.
const unknownKeyName = "unknown"

// raceConditionEvent marks the stage2 recovery of a lost commit in the log.
const raceConditionEvent = "antitamper_temp_race_condition"

type accessService struct {
	tags  store.TagRepository
	gauth store.GAuthRepository
	audit store.AuditRepository
	door  adapter.DoorActuator

	machine *antitamper.Machine
	decider *authz.Engine
	otp     *totp.Engine

	locks *utils.KeyedMutex
	ids   *utils.UUIDGenerator
	now   func() time.Time

	logger *logger.Logger
}

// NewAccessService wires the tag protocol. Read-modify-write cycles of a tag
// record are serialized per UID inside the service.
func NewAccessService(
	storages *store.Storages,
	door adapter.DoorActuator,
	codes crypto.CodeGenerator,
	rnd crypto.Random,
	otp *totp.Engine,
	logger *logger.Logger,
) AccessService {
	now := time.Now
	if otp.Now != nil {
		now = otp.Now
	}

	return &accessService{
		tags:    storages.Tags,
		gauth:   storages.GAuth,
		audit:   storages.Audit,
		door:    door,
		machine: antitamper.NewMachine(codes, rnd, now),
		decider: authz.NewEngine(otp, otp.Digits),
		otp:     otp,
		locks:   utils.NewKeyedMutex(),
		ids:     utils.NewUUIDGenerator(),
		now:     now,
		logger:  logger,
	}
}

func (s *accessService) Authenticate(ctx context.Context, req models.AccessRequest) models.Response {
	cmd, err := validators.ParseAccessRequest(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Info().Err(err).
			Str("cmd", string(req.Cmd)).
			Str("device_id", req.DeviceID).
			Msg("rejected access request")
		return models.ErrResponse("")
	}
	return s.Handle(ctx, cmd)
}

func (s *accessService) Handle(ctx context.Context, cmd models.AccessCommand) models.Response {
	switch c := cmd.(type) {
	case models.Stage1Request:
		return s.Stage1(ctx, c)
	case models.Stage2Request:
		return s.Stage2(ctx, c)
	case models.Stage3Request:
		return s.Stage3(ctx, c)
	case models.Stage4Request:
		return s.Stage4(ctx, c)
	case models.KeyAuthRequest:
		return s.KeyAuth(ctx, c)
	case models.ChinaUIDRequest:
		return s.ChinaUID(ctx, c)
	default:
		logger.FromContext(ctx).Error().Str("type", fmt.Sprintf("%T", cmd)).Msg("unhandled access command")
		return models.ErrResponse("")
	}
}

// Stage1 identifies a tag. Depending on the record it answers with the read
// parameters, provisions the tag, or wipes it.
func (s *accessService) Stage1(ctx context.Context, req models.Stage1Request) models.Response {
	log := s.requestLogger(ctx, "Stage1", req.UID, req.DeviceID)

	unlock := s.locks.Lock(req.UID)
	defer unlock()

	rec, err := s.tags.GetTag(ctx, req.UID)
	if errors.Is(err, store.ErrTagNotFound) {
		log.Warn().Msg("unknown tag uid")
		s.record(ctx, models.AuditUnknownUID, req.UID, req.DeviceID, "", "")
		s.fire(ctx, "notify_unknown_tag", func(ctx context.Context) error {
			return s.door.NotifyUnknownTag(ctx, req.DeviceID, req.UID)
		})
		return models.ErrResponse("")
	}
	if err != nil {
		log.Err(err).Msg("error loading tag record")
		return models.ErrResponse("")
	}

	switch rec.Phase() {
	case models.PhaseResetRequested:
		return s.reset(ctx, log, req, rec)
	case models.PhaseUnpopulated:
		return s.initialize(ctx, log, req, rec)
	}

	if !rec.AllowsDevice(req.DeviceID) {
		log.Info().Err(ErrNotAllowedOnDevice).Str("key_name", rec.KeyName).Msg("tag not allowed on device")
		return models.ErrResponse(app.MsgNotAllowedOnDevice)
	}

	return models.Response{
		Status:    models.StatusRead,
		ReadBlock: rec.AntiTamperBlock,
		Key:       rec.AntiTamperBlockReadKey,
		Len:       rec.AntiTamperLen,
	}
}

func (s *accessService) reset(ctx context.Context, log *logger.Logger, req models.Stage1Request, rec models.TagRecord) models.Response {
	next := s.machine.Reset(rec)
	if !s.persist(ctx, log, req.UID, next) {
		return models.ErrResponse("")
	}

	log.Info().Str("key_name", rec.KeyName).Msg("tag reset")
	s.record(ctx, models.AuditTagReset, req.UID, req.DeviceID, rec.KeyName, "")

	return models.Response{Status: models.StatusReset, KeyA: rec.KeyA, KeyB: rec.KeyB}
}

func (s *accessService) initialize(ctx context.Context, log *logger.Logger, req models.Stage1Request, rec models.TagRecord) models.Response {
	init, err := s.machine.Initialize(rec)
	switch {
	case errors.Is(err, antitamper.ErrKeyNameNotDefined):
		log.Warn().Msg("tag has no key_name")
		return models.ErrResponse(app.MsgKeyNameNotDefined)
	case errors.Is(err, antitamper.ErrAlreadyPopulated):
		return models.ErrResponse(app.MsgAlreadyPopulated)
	case err != nil:
		log.Err(err).Msg("error initializing tag")
		return models.ErrResponse("")
	}

	if !s.persist(ctx, log, req.UID, init.Record) {
		return models.ErrResponse("")
	}

	log.Info().Str("key_name", rec.KeyName).Int("block", init.Record.AntiTamperBlock).Msg("tag initialized")
	s.record(ctx, models.AuditTagInitialized, req.UID, req.DeviceID, rec.KeyName, "")

	return models.Response{
		Status:     models.StatusInit,
		WriteBlock: init.Record.AntiTamperBlock,
		Key:        init.Record.AntiTamperBlockWriteKey,
		Text:       init.Text,
		KeyA:       init.Record.KeyA,
		KeyB:       init.Record.KeyB,
		Filler:     init.Filler,
	}
}

// Stage2 checks the value read from the tag and hands out the next one.
func (s *accessService) Stage2(ctx context.Context, req models.Stage2Request) models.Response {
	log := s.requestLogger(ctx, "Stage2", req.UID, req.DeviceID)

	unlock := s.locks.Lock(req.UID)
	defer unlock()

	rec, ok := s.load(ctx, log, req.UID)
	if !ok {
		return models.ErrResponse("")
	}

	rot, err := s.machine.BeginRotation(rec, req.Key)
	if err != nil {
		log.Warn().Err(err).Str("key_name", rec.KeyName).Msg("anti-tamper verification failed")
		return models.ErrResponse("")
	}

	if !s.persist(ctx, log, req.UID, rot.Record) {
		return models.ErrResponse("")
	}

	if rot.Recovered {
		log.Warn().Str("event", raceConditionEvent).Str("key_name", rec.KeyName).Msg("recovered pending anti-tamper value")
		s.record(ctx, models.AuditRaceRecovered, req.UID, req.DeviceID, rec.KeyName, raceConditionEvent)
	}

	return models.Response{
		Status:     models.StatusWrite,
		WriteBlock: rot.Record.AntiTamperBlock,
		Key:        rot.Record.AntiTamperBlockWriteKey,
		Text:       rot.Text,
	}
}

// Stage3 commits the rotated value and runs or defers the door action.
func (s *accessService) Stage3(ctx context.Context, req models.Stage3Request) models.Response {
	log := s.requestLogger(ctx, "Stage3", req.UID, req.DeviceID)

	unlock := s.locks.Lock(req.UID)
	defer unlock()

	rec, ok := s.load(ctx, log, req.UID)
	if !ok {
		return models.ErrResponse("")
	}

	next, err := s.machine.Commit(rec, req.Key)
	if err != nil {
		log.Warn().Err(err).Str("key_name", rec.KeyName).Msg("anti-tamper commit rejected")
		return models.ErrResponse("")
	}

	if !s.persist(ctx, log, req.UID, next) {
		return models.ErrResponse("")
	}

	return s.decide(ctx, log, req.DeviceID, req.UID, next.KeyName, s.decider.AfterCommit(next, req.DoorCmd))
}

// Stage4 re-verifies the committed value and checks the secondary factor.
func (s *accessService) Stage4(ctx context.Context, req models.Stage4Request) models.Response {
	log := s.requestLogger(ctx, "Stage4", req.UID, req.DeviceID)

	rec, ok := s.load(ctx, log, req.UID)
	if !ok {
		return models.ErrResponse("")
	}

	if err := s.machine.VerifyCurrent(rec, req.Key); err != nil {
		log.Warn().Err(err).Str("key_name", rec.KeyName).Msg("anti-tamper freshness check failed")
		return models.ErrResponse("")
	}

	return s.decide(ctx, log, req.DeviceID, req.UID, rec.KeyName, s.decider.Secondary(rec, req.DoorCmd, req.GCode))
}

// KeyAuth toggles the door for a valid PIN and TOTP code typed on the
// reader keypad.
func (s *accessService) KeyAuth(ctx context.Context, req models.KeyAuthRequest) models.Response {
	log := s.requestLogger(ctx, "KeyAuth", req.UID, req.DeviceID)

	if len(req.Key) != authz.PINLength+s.otp.Digits {
		log.Info().Int("len", len(req.Key)).Err(ErrInvalidInput).Msg("wrong keyauth code length")
		return models.ErrResponse("")
	}
	pin, code := req.Key[:authz.PINLength], req.Key[authz.PINLength:]

	rec, err := s.gauth.GetGAuth(ctx, pin)
	if errors.Is(err, store.ErrPINNotFound) {
		log.Info().Msg("unknown keyauth pin")
		return models.ErrResponse("")
	}
	if err != nil {
		log.Err(err).Msg("error loading gauth record")
		return models.ErrResponse("")
	}

	valid, err := s.otp.Validate(rec.GAuthSecret, code)
	if err != nil {
		log.Err(err).Msg("invalid stored gauth secret")
		return models.ErrResponse("")
	}
	if !valid {
		log.Info().Err(ErrVerificationFailed).Msg("keyauth code mismatch")
		return models.ErrResponse("")
	}

	log.Info().Msg("keyauth door toggle")
	s.fire(ctx, "toggle_door", func(ctx context.Context) error {
		return s.door.ToggleDoor(ctx, req.DeviceID, req.UID)
	})
	return models.Response{Status: models.StatusWrite}
}

// ChinaUID reports a tag with a rewritable UID. The answer is always err.
func (s *accessService) ChinaUID(ctx context.Context, req models.ChinaUIDRequest) models.Response {
	log := s.requestLogger(ctx, "ChinaUID", req.UID, req.DeviceID)

	name := unknownKeyName
	rec, err := s.tags.GetTag(ctx, req.UID)
	switch {
	case err == nil && rec.KeyName != "":
		name = rec.KeyName
	case err != nil && !errors.Is(err, store.ErrTagNotFound):
		log.Err(err).Msg("error loading tag record")
	}

	log.Warn().Str("key_name", name).Msg("cloned tag detected")
	s.record(ctx, models.AuditClonedUID, req.UID, req.DeviceID, name, "")
	s.fire(ctx, "notify_cloned_tag", func(ctx context.Context) error {
		return s.door.NotifyClonedTag(ctx, req.DeviceID, req.UID, name)
	})

	return models.ErrResponse("")
}

func (s *accessService) decide(ctx context.Context, log *logger.Logger, deviceID, uid, keyName string, d authz.Decision) models.Response {
	switch d.Outcome {
	case authz.RequireSecondary:
		log.Info().Str("factor", string(d.Factor.Kind)).Msg("secondary factor required")
		return models.Response{Status: models.StatusGetCode, Digits: d.Factor.Digits}
	case authz.Authorize:
		s.act(ctx, log, deviceID, uid, keyName, d.Action)
		return models.Response{Status: models.StatusDone}
	default:
		log.Info().Err(d.Reason).Str("key_name", keyName).Msg("access denied")
		return models.ErrResponse("")
	}
}

func (s *accessService) act(ctx context.Context, log *logger.Logger, deviceID, uid, keyName string, action models.DoorCommand) {
	log.Info().Str("key_name", keyName).Str("action", string(action)).Msg("access granted")

	if action == models.DoorClose {
		s.record(ctx, models.AuditDoorClose, uid, deviceID, keyName, "")
		s.fire(ctx, "close_door", func(ctx context.Context) error {
			return s.door.CloseDoor(ctx, deviceID, uid)
		})
		return
	}

	s.record(ctx, models.AuditDoorOpen, uid, deviceID, keyName, "")
	s.fire(ctx, "open_door", func(ctx context.Context) error {
		return s.door.OpenDoor(ctx, deviceID, uid)
	})
}

// load fetches a record for stages 2 to 4, where an unknown UID is a plain
// refusal without notification.
func (s *accessService) load(ctx context.Context, log *logger.Logger, uid string) (models.TagRecord, bool) {
	rec, err := s.tags.GetTag(ctx, uid)
	if errors.Is(err, store.ErrTagNotFound) {
		log.Info().Msg("unknown tag uid")
		return models.TagRecord{}, false
	}
	if err != nil {
		log.Err(err).Msg("error loading tag record")
		return models.TagRecord{}, false
	}
	return rec, true
}

// persist writes rec back. A failed write turns the step into a refusal so
// the reader never acts on a value the server does not know.
func (s *accessService) persist(ctx context.Context, log *logger.Logger, uid string, rec models.TagRecord) bool {
	if err := s.tags.PutTag(ctx, uid, rec); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrPersistence, err)).Str("phase", string(rec.Phase())).Msg("error persisting tag record")
		return false
	}
	return true
}

// fire runs an actuator call. Failures are logged and never change the
// response already decided.
func (s *accessService) fire(ctx context.Context, name string, call func(context.Context) error) {
	if err := call(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("actuator", name).Msg("actuator call failed")
	}
}

func (s *accessService) record(ctx context.Context, kind models.AuditKind, uid, deviceID, keyName, message string) {
	event := models.AuditEvent{
		ID:        s.ids.Generate(),
		Kind:      kind,
		UID:       uid,
		DeviceID:  deviceID,
		KeyName:   keyName,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.audit.AppendAudit(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(kind)).Msg("error appending audit event")
	}
}

func (s *accessService) requestLogger(ctx context.Context, fn, uid, deviceID string) *logger.Logger {
	l := logger.FromContext(ctx).With().
		Str("func", "*accessService."+fn).
		Str("uid", uid).
		Str("device_id", deviceID).
		Logger()
	return &logger.Logger{Logger: l}
}
