package profile

import (
	"fmt"
	"maps"

	"github.com/dmitrymomot/profilekit/pkg/idgen"
)

// Session is a bounded interaction unit: an ordered sequence of events plus
// a data payload, scoped to a collecting application and section. A session
// is owned by exactly one profile.
type Session struct {
	id         string
	collectApp string
	section    string
	data       map[string]any
	events     []*Event
	createdAt  int64
	modifiedAt int64
}

// SessionConfig carries the fields for constructing a session. A missing ID
// is generated (8 characters), missing timestamps are stamped with the
// current time; supplied values are preserved for reconstruction.
type SessionConfig struct {
	ID         string
	CollectApp string
	Section    string
	Data       map[string]any
	Events     []*Event
	CreatedAt  int64 // Unix milliseconds
	ModifiedAt int64 // Unix milliseconds
}

// NewSession creates a session from cfg. Events are admitted through
// AddEvent semantics minus the validity check, so duplicates collapse by id;
// callers needing strict admission should add events individually.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		id:         cfg.ID,
		collectApp: cfg.CollectApp,
		section:    cfg.Section,
		data:       cloneData(cfg.Data),
		createdAt:  cfg.CreatedAt,
		modifiedAt: cfg.ModifiedAt,
	}
	if s.id == "" {
		s.id = idgen.NewSessionID()
	}
	if s.createdAt == 0 {
		s.createdAt = nowMillis()
	}
	if s.modifiedAt == 0 {
		s.modifiedAt = s.createdAt
	}
	if s.data == nil {
		s.data = make(map[string]any)
	}
	for _, e := range cfg.Events {
		if e == nil {
			continue
		}
		s.upsertEvent(e.Clone())
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// CollectApp returns the collecting application the session belongs to.
func (s *Session) CollectApp() string { return s.collectApp }

// SetCollectApp sets the collecting application. Returns the session for
// chaining.
func (s *Session) SetCollectApp(collectApp string) *Session {
	s.collectApp = collectApp
	s.modifiedAt = nowMillis()
	return s
}

// Section returns the section the session belongs to.
func (s *Session) Section() string { return s.section }

// SetSection sets the section. Returns the session for chaining.
func (s *Session) SetSection(section string) *Session {
	s.section = section
	s.modifiedAt = nowMillis()
	return s
}

// Data returns the session data payload. Callers must treat the returned
// map as read-only; mutate through SetData or SetDataValue instead.
func (s *Session) Data() map[string]any { return s.data }

// SetData merges data into the session payload: matching keys are
// overwritten, keys absent from data survive. Repeated partial updates
// therefore accumulate rather than replace each other.
func (s *Session) SetData(data map[string]any) *Session {
	if len(data) == 0 {
		return s
	}
	maps.Copy(s.data, data)
	s.modifiedAt = nowMillis()
	return s
}

// SetDataValue sets a single data key. Returns the session for chaining.
func (s *Session) SetDataValue(key string, value any) *Session {
	s.data[key] = value
	s.modifiedAt = nowMillis()
	return s
}

// GetDataValue returns the value stored under key, or nil if absent.
func (s *Session) GetDataValue(key string) any { return s.data[key] }

// AddEvent admits an event into the session. Invalid events are rejected
// with ErrInvalidEvent. An event with the id of an existing one replaces it
// in place, keeping its position in the sequence.
func (s *Session) AddEvent(e *Event) error {
	if !e.IsValid() {
		return fmt.Errorf("%w: id and definitionId are required", ErrInvalidEvent)
	}
	s.upsertEvent(e)
	s.modifiedAt = nowMillis()
	return nil
}

// CreateEvent builds an event from cfg and admits it in one step.
func (s *Session) CreateEvent(cfg EventConfig) (*Event, error) {
	e := NewEvent(cfg)
	if err := s.AddEvent(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetEvent returns the event with the given id, or nil if absent.
func (s *Session) GetEvent(id string) *Event {
	for _, e := range s.events {
		if e.id == id {
			return e
		}
	}
	return nil
}

// GetEvents returns the session events in order. When definitionID is
// non-empty, only events with that definition id are returned.
func (s *Session) GetEvents(definitionID string) []*Event {
	if definitionID == "" {
		return append([]*Event(nil), s.events...)
	}
	var out []*Event
	for _, e := range s.events {
		if e.definitionID == definitionID {
			out = append(out, e)
		}
	}
	return out
}

// Events returns all session events in order.
func (s *Session) Events() []*Event { return s.GetEvents("") }

// CreatedAt returns the creation time in Unix milliseconds.
func (s *Session) CreatedAt() int64 { return s.createdAt }

// ModifiedAt returns the last modification time in Unix milliseconds.
func (s *Session) ModifiedAt() int64 { return s.modifiedAt }

// IsValid reports whether the session carries its required fields.
func (s *Session) IsValid() bool {
	return s != nil && s.id != "" && s.collectApp != "" && s.section != "" && s.createdAt != 0
}

// Clone returns a deep copy of the session and all its events.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := &Session{
		id:         s.id,
		collectApp: s.collectApp,
		section:    s.section,
		data:       cloneData(s.data),
		createdAt:  s.createdAt,
		modifiedAt: s.modifiedAt,
	}
	if out.data == nil {
		out.data = make(map[string]any)
	}
	if len(s.events) > 0 {
		out.events = make([]*Event, len(s.events))
		for i, e := range s.events {
			out.events[i] = e.Clone()
		}
	}
	return out
}

func (s *Session) upsertEvent(e *Event) {
	for i, existing := range s.events {
		if existing.id == e.id {
			s.events[i] = e
			return
		}
	}
	s.events = append(s.events, e)
}
