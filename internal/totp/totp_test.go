package totp

import (
	"bytes"
	"encoding/base32"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rfcSecret is the RFC 4226 / RFC 6238 SHA1 test key "12345678901234567890".
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestDecodeBase32_KnownValues(t *testing.T) {
	got, err := DecodeBase32(rfcSecret)
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678901234567890"), got)

	got, err = DecodeBase32("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello!\xde\xad\xbe\xef"), got)
}

func TestDecodeBase32_MatchesStdlib(t *testing.T) {
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	for _, s := range []string{"MZXW6YTBOI", "ORSXG5A", "KRSXG5BAOZSWG5DPOI", "AAAAAAAA", "77777777"} {
		want, err := enc.DecodeString(s)
		require.NoError(t, err)

		got, err := DecodeBase32(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, s)
	}
}

func TestDecodeBase32_Length(t *testing.T) {
	for n := 1; n <= 40; n++ {
		got, err := DecodeBase32(strings.Repeat("A", n))
		require.NoError(t, err)
		assert.Len(t, got, 5*n/8, "len %d", n)
	}
}

func TestDecodeBase32_Invalid(t *testing.T) {
	for _, s := range []string{"", "abcd", "ABC1", "ABC8", "ABC=", "AB CD", "ÄBCD"} {
		_, err := DecodeBase32(s)
		assert.ErrorIs(t, err, ErrInvalidSecret, "%q", s)
	}
}

func TestGenerateCode_RFC4226(t *testing.T) {
	key := []byte("12345678901234567890")
	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}
	for counter, code := range want {
		assert.Equal(t, code, GenerateCode(key, int64(counter), 6), "counter %d", counter)
	}
}

func TestGenerateCode_RFC6238(t *testing.T) {
	key := []byte("12345678901234567890")
	tests := []struct {
		unix int64
		want string
	}{
		{59, "94287082"},
		{1111111109, "07081804"},
		{1111111111, "14050471"},
		{1234567890, "89005924"},
		{2000000000, "69279037"},
		{20000000000, "65353130"},
	}
	for _, tt := range tests {
		counter := Counter(time.Unix(tt.unix, 0), 30)
		assert.Equal(t, tt.want, GenerateCode(key, counter, 8), "t=%d", tt.unix)
		assert.Equal(t, tt.want[2:], GenerateCode(key, counter, 6), "t=%d", tt.unix)
	}
}

func TestGenerateCode_PadsWithZeros(t *testing.T) {
	key := []byte("12345678901234567890")
	// counter of t=1111111109 yields 081804 at six digits
	code := GenerateCode(key, Counter(time.Unix(1111111109, 0), 30), 6)
	assert.Equal(t, "081804", code)
	assert.Len(t, code, 6)
}

func TestCounter(t *testing.T) {
	assert.Equal(t, int64(1), Counter(time.Unix(59, 0), 30))
	assert.Equal(t, int64(2), Counter(time.Unix(60, 0), 30))
	assert.Equal(t, int64(1), Counter(time.Unix(60, 0), 0))
}

func TestValidateCode_Window(t *testing.T) {
	key := []byte("12345678901234567890")
	const now = int64(1000)

	for offset := int64(-2); offset <= 2; offset++ {
		ok, err := ValidateCode(GenerateCode(key, now+offset, 6), key, now, 2, 6)
		require.NoError(t, err)
		assert.True(t, ok, "offset %d", offset)
	}

	for _, offset := range []int64{-5, -3, 3, 5} {
		code := GenerateCode(key, now+offset, 6)
		inWindow := false
		for c := now - 2; c <= now+2; c++ {
			inWindow = inWindow || GenerateCode(key, c, 6) == code
		}
		if inWindow {
			continue
		}
		ok, err := ValidateCode(code, key, now, 2, 6)
		require.NoError(t, err)
		assert.False(t, ok, "offset %d", offset)
	}
}

func TestValidateCode_Replayable(t *testing.T) {
	key := []byte("12345678901234567890")
	code := GenerateCode(key, 500, 6)

	for range 3 {
		ok, err := ValidateCode(code, key, 500, 2, 6)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestValidateCode_WrongLength(t *testing.T) {
	key := []byte("12345678901234567890")
	for _, code := range []string{"", "12345", "1234567"} {
		ok, err := ValidateCode(code, key, 1, 2, 6)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrInvalidCodeLength)
	}
}

func TestGenerateRandomSecret(t *testing.T) {
	s, err := GenerateRandomSecret(bytes.NewReader(bytes.Repeat([]byte{0xff, 0x00, 0x21}, 6)), 16)
	require.NoError(t, err)
	assert.Equal(t, "7AB7AB7AB7AB7AB7", s)

	key, err := DecodeBase32(s)
	require.NoError(t, err)
	assert.Len(t, key, 10)
}

func TestGenerateRandomSecret_DefaultLength(t *testing.T) {
	e := NewEngine(0, 0, 2)
	s, err := e.NewSecret()
	require.NoError(t, err)
	assert.Len(t, s, DefaultSecretLength)
	for _, r := range s {
		assert.Contains(t, Alphabet, string(r))
	}
}

func TestGenerateRandomSecret_EntropyFailure(t *testing.T) {
	_, err := GenerateRandomSecret(iotest.ErrReader(errors.New("no entropy")), 16)
	assert.ErrorIs(t, err, ErrInsufficientEntropy)
}

func TestEngine_CodeAndValidate(t *testing.T) {
	e := NewEngine(30, 6, 2)
	e.Now = func() time.Time { return time.Unix(1234567890, 0) }

	code, err := e.Code(rfcSecret)
	require.NoError(t, err)
	assert.Equal(t, "005924", code)

	ok, err := e.Validate(rfcSecret, code)
	require.NoError(t, err)
	assert.True(t, ok)

	e.Now = func() time.Time { return time.Unix(1234567890+60, 0) }
	ok, err = e.Validate(rfcSecret, code)
	require.NoError(t, err)
	assert.True(t, ok)

	e.Now = func() time.Time { return time.Unix(1234567890+10*30, 0) }
	ok, err = e.Validate(rfcSecret, code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_InvalidSecret(t *testing.T) {
	e := NewEngine(30, 6, 2)
	_, err := e.Validate("not-base32", "123456")
	assert.ErrorIs(t, err, ErrInvalidSecret)
}

func TestURI(t *testing.T) {
	uri := URI("Door Keeper", "alice", "JBSWY3DPEHPK3PXP")
	assert.Equal(t, "otpauth://totp/Door%20Keeper:alice?issuer=Door+Keeper&secret=JBSWY3DPEHPK3PXP", uri)
}
