package idgen

import (
	"crypto/rand"
	"fmt"
)

// alphabet is the base62 character set used for all generated identifiers.
// It matches the identifier format the profile service produces server-side,
// so locally generated ids are indistinguishable from remote ones.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Default identifier lengths used across the SDK.
const (
	ProfileIDLength = 32
	SessionIDLength = 8
	EventIDLength   = 8
)

// New returns a random identifier of exactly length characters drawn from
// the base62 alphabet. It panics if length is not positive or if the OS
// entropy source fails, following the same convention as uuid.New.
func New(length int) string {
	if length <= 0 {
		panic(fmt.Sprintf("idgen: invalid identifier length %d", length))
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("idgen: entropy source unavailable: %v", err))
	}

	// Modulo bias over a 62-character alphabet is ~0.8% per byte, which is
	// acceptable for non-cryptographic identifiers.
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}

// NewProfileID returns a random identifier sized for profiles.
func NewProfileID() string { return New(ProfileIDLength) }

// NewSessionID returns a random identifier sized for sessions.
func NewSessionID() string { return New(SessionIDLength) }

// NewEventID returns a random identifier sized for events.
func NewEventID() string { return New(EventIDLength) }
