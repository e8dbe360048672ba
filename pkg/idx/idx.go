package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID string. Used for notification and request identifiers, which
// sort by creation time in logs.
type ID string

const Zero ID = ""

var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	once    sync.Once
	entropy *ulid.MonotonicEntropy
)

// New returns an ID stamped with the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns an ID stamped with t. IDs minted within the same
// millisecond still sort in mint order.
func NewAt(t time.Time) ID {
	once.Do(func() { entropy = ulid.Monotonic(rand.Reader, 0) })

	mu.Lock()
	defer mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse validates s and returns it as an ID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

func (id ID) IsZero() bool   { return id == Zero }
func (id ID) String() string { return string(id) }

// Time returns the embedded timestamp, or the zero time for invalid IDs.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
