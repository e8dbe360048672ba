package cryptox

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
)

// NumericCode draws a uniformly distributed, zero padded decimal code of the
// given length from r. Pass crypto/rand.Reader outside of tests.
func NumericCode(r io.Reader, digits otp.Digits) (string, error) {
	if digits <= 0 || digits > 9 {
		return "", fmt.Errorf("cryptox: unsupported code length %d", digits)
	}

	space := uint32(1)
	for range digits.Length() {
		space *= 10
	}

	// Values at or above limit would bias the low codes, so redraw them.
	limit := (1 << 32) - (1<<32)%uint64(space)

	var buf [4]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return "", fmt.Errorf("cryptox: failed to read random bytes: %w", err)
		}

		v := binary.BigEndian.Uint32(buf[:])
		if uint64(v) < limit {
			return digits.Format(int32(v % space)), nil
		}
	}
}

// NewToken returns a random UUIDv4 string drawn from r. Tokens are safe to
// embed in a URL and carry 122 bits of entropy.
func NewToken(r io.Reader) (string, error) {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("cryptox: failed to generate token: %w", err)
	}
	return id.String(), nil
}
