package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CodeGenerator derives the anti-tamper and sector key texts of a tag from
// its owner name and a rotation number, keyed by the server master secret.
type CodeGenerator interface {
	// AntiTamperText returns the 16 hex character value stored on the tag.
	AntiTamperText(keyName string, num int64) string

	// SectorKeyText returns a 12 hex character (6 byte) sector key.
	SectorKeyText(keyName string, num int64) string

	// CheckAntiTamperText reports whether candidate is the anti-tamper text
	// for (keyName, num).
	CheckAntiTamperText(keyName string, num int64, candidate string) bool
}

// Random is the randomness source for rotation numbers and block selection.
type Random interface {
	// RotationNumber returns a number in [1, math.MaxInt32).
	RotationNumber() (int64, error)

	// IntN returns a number in [0, n).
	IntN(n int) (int, error)

	// HexString returns n random lowercase hex characters.
	HexString(n int) (string, error)
}
