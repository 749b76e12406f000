package ulid

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropy     io.Reader
	entropyOnce sync.Once
	generator   = DefaultGenerator
)

// DefaultEntropy returns the shared reader used as ULID entropy.
// The reader is monotonic within a millisecond, so identifiers generated
// back-to-back still sort by creation order.
func DefaultEntropy() io.Reader {
	entropyOnce.Do(func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))

		entropy = &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rng, 0),
		}
	})
	return entropy
}

// ValidID reports whether id parses as a canonical 26-character ULID.
func ValidID(id string) bool {
	if len(id) != 26 {
		return false
	}
	_, err := ulid.ParseStrict(id)
	return err == nil
}

// GenerateID returns a new globally-unique identifier.
func GenerateID() string {
	return generator()
}

func DefaultGenerator() string {
	ts := ulid.Timestamp(time.Now())
	return ulid.MustNew(ts, DefaultEntropy()).String()
}

func ResetGenerator() {
	generator = DefaultGenerator
}

// MockGenerator pins GenerateID to a fixed value. Intended for tests.
func MockGenerator(mockValue string) {
	generator = func() string {
		return mockValue
	}
}
