package stream

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/profilekit/pkg/profile"
)

// Payload is a parsed profile-stream request body. The profile and meta
// members are extracted lazily: ParsePayload succeeds on any well-formed
// JSON object, and each accessor errors only when its member is missing,
// so a caller needing just the metadata is not blocked by an absent
// profile and vice versa.
type Payload struct {
	rawProfile json.RawMessage
	meta       map[string]any

	parsed *profile.Profile
}

// ParsePayload parses a raw profile-stream body.
func ParsePayload(raw []byte) (*Payload, error) {
	var wire struct {
		Profile json.RawMessage `json:"profile"`
		Meta    map[string]any  `json:"meta"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return &Payload{rawProfile: wire.Profile, meta: wire.Meta}, nil
}

// Profile returns the payload's profile, reconstructing it on first call.
// Returns ErrNoProfile when the member is missing.
func (p *Payload) Profile() (*profile.Profile, error) {
	if p.parsed != nil {
		return p.parsed, nil
	}
	if len(p.rawProfile) == 0 || string(p.rawProfile) == "null" {
		return nil, ErrNoProfile
	}

	parsed, err := profile.Parse(p.rawProfile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	p.parsed = parsed
	return parsed, nil
}

// Meta returns the payload's meta member. Returns ErrNoMeta when missing.
func (p *Payload) Meta() (map[string]any, error) {
	if p.meta == nil {
		return nil, ErrNoMeta
	}
	return p.meta, nil
}
