package totp

import "fmt"

// Alphabet is the RFC 4648 base32 alphabet.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var lookup = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = int8(i)
	}
	return t
}()

// DecodeBase32 decodes an unpadded upper-case base32 secret. Trailing bits that
// do not fill a whole byte are dropped, so the result has floor(5*len/8) bytes.
func DecodeBase32(secret string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSecret)
	}

	out := make([]byte, 0, len(secret)*5/8)
	var buf uint32
	var bits uint

	for i := 0; i < len(secret); i++ {
		v := lookup[secret[i]]
		if v < 0 {
			return nil, fmt.Errorf("%w: character %q at %d", ErrInvalidSecret, secret[i], i)
		}
		buf = buf<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
			buf &= 1<<bits - 1
		}
	}

	return out, nil
}
