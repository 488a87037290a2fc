package profile

import (
	"fmt"

	"github.com/dmitrymomot/profilekit/pkg/idgen"
)

// Profile is the aggregate root: an identifier plus the attributes and
// sessions owned by it. Attributes are unique by (collectApp, section,
// name), sessions by id. Nested collections are mutated only through the
// profile's methods; objects handed to a profile are owned by it
// exclusively and must not be shared with another profile.
//
// Profile is not safe for concurrent use; callers running profiles across
// goroutines must serialize access externally.
type Profile struct {
	id         string
	attributes []*Attribute
	sessions   []*Session
}

// New creates a profile with the given id, generating a 32-character id
// when the argument is empty.
func New(id string) *Profile {
	if id == "" {
		id = idgen.NewProfileID()
	}
	return &Profile{id: id}
}

// ID returns the profile identifier.
func (p *Profile) ID() string { return p.id }

// SetAttribute admits a single attribute. An invalid attribute is rejected
// with ErrInvalidAttribute. When an attribute with the same identity already
// exists its value is overwritten; otherwise the attribute is appended.
func (p *Profile) SetAttribute(a *Attribute) error {
	if !a.IsValid() {
		return fmt.Errorf("%w: collectApp, section and name are required", ErrInvalidAttribute)
	}
	p.upsertAttribute(a)
	return nil
}

// SetAttributes admits a batch of attributes atomically: the whole batch is
// validated first, and nothing is committed if any entry is invalid.
func (p *Profile) SetAttributes(attrs []*Attribute) error {
	for i, a := range attrs {
		if !a.IsValid() {
			return fmt.Errorf("%w: entry %d: collectApp, section and name are required", ErrInvalidAttribute, i)
		}
	}
	for _, a := range attrs {
		p.upsertAttribute(a)
	}
	return nil
}

// SetAttributeGroup expands a {name: value} map into one attribute per key,
// all scoped to collectApp and section, and admits them atomically.
func (p *Profile) SetAttributeGroup(collectApp, section string, data map[string]any) error {
	attrs := make([]*Attribute, 0, len(data))
	for name, value := range data {
		attrs = append(attrs, NewAttribute(collectApp, section, name, value))
	}
	return p.SetAttributes(attrs)
}

// GetAttribute returns the attribute with the given identity, or nil.
func (p *Profile) GetAttribute(collectApp, section, name string) *Attribute {
	key := (&Attribute{collectApp: collectApp, section: section, name: name}).identityKey()
	for _, a := range p.attributes {
		if a.identityKey() == key {
			return a
		}
	}
	return nil
}

// Attributes returns the profile attributes in admission order.
func (p *Profile) Attributes() []*Attribute {
	return append([]*Attribute(nil), p.attributes...)
}

// SetSession admits a session. An invalid session is rejected with
// ErrInvalidSession. A session with the id of an existing one replaces it
// in place; otherwise the session is appended.
func (p *Profile) SetSession(s *Session) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: id, collectApp, section and createdAt are required", ErrInvalidSession)
	}
	for i, existing := range p.sessions {
		if existing.id == s.id {
			p.sessions[i] = s
			return nil
		}
	}
	p.sessions = append(p.sessions, s)
	return nil
}

// CreateSession builds a session from cfg and admits it in one step.
func (p *Profile) CreateSession(cfg SessionConfig) (*Session, error) {
	s := NewSession(cfg)
	if err := p.SetSession(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession returns the session with the given id, or nil.
func (p *Profile) GetSession(id string) *Session {
	for _, s := range p.sessions {
		if s.id == id {
			return s
		}
	}
	return nil
}

// Sessions returns the profile sessions in admission order.
func (p *Profile) Sessions() []*Session {
	return append([]*Session(nil), p.sessions...)
}

// GetLastSession returns the most recently modified session. The result is
// re-fetched by id from the canonical collection, so the returned pointer
// is always the session the profile actually holds. Returns nil when the
// profile has no sessions.
func (p *Profile) GetLastSession() *Session {
	var last *Session
	for _, s := range p.sessions {
		if last == nil || s.modifiedAt > last.modifiedAt {
			last = s
		}
	}
	if last == nil {
		return nil
	}
	return p.GetSession(last.id)
}

// Clone returns a deep copy of the profile and its whole object graph.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := &Profile{id: p.id}
	if len(p.attributes) > 0 {
		out.attributes = make([]*Attribute, len(p.attributes))
		for i, a := range p.attributes {
			out.attributes[i] = a.Clone()
		}
	}
	if len(p.sessions) > 0 {
		out.sessions = make([]*Session, len(p.sessions))
		for i, s := range p.sessions {
			out.sessions[i] = s.Clone()
		}
	}
	return out
}

func (p *Profile) upsertAttribute(a *Attribute) {
	key := a.identityKey()
	for _, existing := range p.attributes {
		if existing.identityKey() == key {
			existing.value = a.value
			return
		}
	}
	p.attributes = append(p.attributes, a)
}
