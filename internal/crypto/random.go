package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrRandomSource is returned when the system random source fails.
var ErrRandomSource = errors.New("random source failure")

type systemRandom struct{}

// NewSystemRandom returns a [Random] backed by crypto/rand.
func NewSystemRandom() Random {
	return systemRandom{}
}

func (systemRandom) RotationNumber() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt32-1))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return n.Int64() + 1, nil
}

func (systemRandom) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: invalid bound %d", ErrRandomSource, n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}

func (systemRandom) HexString(n int) (string, error) {
	buf := make([]byte, (n+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return hex.EncodeToString(buf)[:n], nil
}
