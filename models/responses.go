package models

// Status is the outcome reported to the field device.
type Status string

const (
	// StatusRead tells the reader to fetch the anti-tamper block.
	StatusRead Status = "k"
	// StatusWrite tells the reader to write a new anti-tamper value.
	// keyauth also answers with it on success.
	StatusWrite   Status = "kk"
	StatusErr     Status = "err"
	StatusInit    Status = "init"
	StatusReset   Status = "reset"
	StatusGetCode Status = "getcode"
	StatusDone    Status = "done"
)

// Response is the reply sent to the field device. Only the fields relevant to
// Status are populated.
type Response struct {
	Status Status `json:"status"`

	// ReadBlock is the block the reader must read (status k).
	ReadBlock int `json:"antiblk,omitempty"`
	// WriteBlock is the block the reader must write (status init and kk).
	WriteBlock int `json:"setantiblk,omitempty"`

	Key    string   `json:"key,omitempty"`
	Len    int      `json:"len,omitempty"`
	Text   string   `json:"txt,omitempty"`
	KeyA   []string `json:"keya,omitempty"`
	KeyB   []string `json:"keyb,omitempty"`
	Filler []string `json:"filler,omitempty"`

	// Digits is the number of characters the reader must collect (status getcode).
	Digits int `json:"num,omitempty"`

	Message string `json:"message,omitempty"`
}

// ErrResponse builds an err response with an optional message.
func ErrResponse(message string) Response {
	return Response{Status: StatusErr, Message: message}
}

// EnrollmentSecret is a freshly generated TOTP seed with its provisioning URI.
type EnrollmentSecret struct {
	Secret string `json:"secret"`
	URI    string `json:"uri"`
}

// VersionResponse is the payload of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
