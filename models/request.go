package models

// Command is the protocol command carried by a field-device request.
type Command string

const (
	CmdStage1   Command = "stage1"
	CmdStage2   Command = "stage2"
	CmdStage3   Command = "stage3"
	CmdStage4   Command = "stage4"
	CmdKeyAuth  Command = "keyauth"
	CmdChinaUID Command = "chinauid"
)

// DoorCommand is the door action requested by the reader.
type DoorCommand string

const (
	DoorOpen  DoorCommand = "open"
	DoorClose DoorCommand = "close"
)

// Valid reports whether d is one of the known door actions.
func (d DoorCommand) Valid() bool {
	return d == DoorOpen || d == DoorClose
}

// AccessRequest is the wire form of a field-device request as received over
// HTTP or gRPC. It is validated into one of the [AccessCommand] variants
// before reaching the service layer.
type AccessRequest struct {
	UID      string      `json:"uid,omitempty"`
	Cmd      Command     `json:"cmd"`
	DeviceID string      `json:"device_id"`
	Key      string      `json:"key,omitempty"`
	DoorCmd  DoorCommand `json:"doorcmd,omitempty"`
	GCode    string      `json:"gcode,omitempty"`
}

// AccessCommand is a validated request, one concrete type per [Command].
type AccessCommand interface {
	Command() Command
	Device() string
}

// Stage1Request identifies a tag and initializes it when needed.
type Stage1Request struct {
	UID      string
	DeviceID string
}

// Stage2Request presents the value read from the tag to begin a rotation.
type Stage2Request struct {
	UID      string
	DeviceID string
	Key      string
}

// Stage3Request confirms the rotated value and asks for a door action.
type Stage3Request struct {
	UID      string
	DeviceID string
	Key      string
	DoorCmd  DoorCommand
}

// Stage4Request supplies the secondary factor collected on the reader.
type Stage4Request struct {
	UID      string
	DeviceID string
	Key      string
	DoorCmd  DoorCommand
	GCode    string
}

// KeyAuthRequest is a PIN+TOTP entry without a tag.
type KeyAuthRequest struct {
	UID      string
	DeviceID string
	Key      string
}

// ChinaUIDRequest reports a tag with a rewritable UID.
type ChinaUIDRequest struct {
	UID      string
	DeviceID string
}

func (Stage1Request) Command() Command   { return CmdStage1 }
func (Stage2Request) Command() Command   { return CmdStage2 }
func (Stage3Request) Command() Command   { return CmdStage3 }
func (Stage4Request) Command() Command   { return CmdStage4 }
func (KeyAuthRequest) Command() Command  { return CmdKeyAuth }
func (ChinaUIDRequest) Command() Command { return CmdChinaUID }

func (r Stage1Request) Device() string   { return r.DeviceID }
func (r Stage2Request) Device() string   { return r.DeviceID }
func (r Stage3Request) Device() string   { return r.DeviceID }
func (r Stage4Request) Device() string   { return r.DeviceID }
func (r KeyAuthRequest) Device() string  { return r.DeviceID }
func (r ChinaUIDRequest) Device() string { return r.DeviceID }
