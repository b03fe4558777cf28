package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPeriod       = 30
	DefaultDigits       = 6
	DefaultWindow       = 2
	DefaultSecretLength = 16
)

// Counter returns the time step of t for a period in seconds.
func Counter(t time.Time, period int) int64 {
	if period <= 0 {
		period = DefaultPeriod
	}
	return t.Unix() / int64(period)
}

// GenerateCode returns the HOTP value of counter under key, left padded with
// zeros to digits characters.
func GenerateCode(key []byte, counter int64, digits int) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	value := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	code := strconv.FormatUint(uint64(value)%pow10(digits), 10)
	if len(code) < digits {
		code = strings.Repeat("0", digits-len(code)) + code
	}
	return code
}

// ValidateCode reports whether code matches the code of any counter in
// [now-window, now+window].
func ValidateCode(code string, key []byte, now int64, window, digits int) (bool, error) {
	if len(code) != digits {
		return false, fmt.Errorf("%w: got %d, want %d", ErrInvalidCodeLength, len(code), digits)
	}

	ok := 0
	for c := now - int64(window); c <= now+int64(window); c++ {
		ok |= subtle.ConstantTimeCompare([]byte(GenerateCode(key, c, digits)), []byte(code))
	}
	return ok == 1, nil
}

// GenerateRandomSecret samples length characters uniformly from [Alphabet]
// using r. The alphabet has 32 symbols, so the low five bits of a byte map
// to it without bias.
func GenerateRandomSecret(r io.Reader, length int) (string, error) {
	if length <= 0 {
		length = DefaultSecretLength
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInsufficientEntropy, err)
	}

	for i, b := range buf {
		buf[i] = Alphabet[b&0x1f]
	}
	return string(buf), nil
}

// URI returns the otpauth:// provisioning URI understood by authenticator
// apps.
func URI(issuer, account, secret string) string {
	label := url.PathEscape(issuer) + ":" + url.PathEscape(account)
	q := url.Values{}
	q.Set("secret", secret)
	if issuer != "" {
		q.Set("issuer", issuer)
	}
	return "otpauth://totp/" + label + "?" + q.Encode()
}

func pow10(n int) uint64 {
	p := uint64(1)
	for range n {
		p *= 10
	}
	return p
}
