package profile

import (
	"maps"

	"github.com/dmitrymomot/profilekit/pkg/idgen"
)

// Event is a single timestamped fact within a session, keyed by a
// definition id that identifies the kind of event.
type Event struct {
	id           string
	definitionID string
	data         map[string]any
	createdAt    int64
	modifiedAt   int64
}

// EventConfig carries the fields for constructing an event. Zero values are
// backfilled: a missing ID is generated, missing timestamps are stamped with
// the current time. A reconstructed event keeps whatever the config supplies.
type EventConfig struct {
	ID           string
	DefinitionID string
	Data         map[string]any
	CreatedAt    int64 // Unix milliseconds
	ModifiedAt   int64 // Unix milliseconds
}

// NewEvent creates an event from cfg. DefinitionID is not defaulted; an
// event without one stays invalid and will be rejected on admission.
func NewEvent(cfg EventConfig) *Event {
	e := &Event{
		id:           cfg.ID,
		definitionID: cfg.DefinitionID,
		data:         cloneData(cfg.Data),
		createdAt:    cfg.CreatedAt,
		modifiedAt:   cfg.ModifiedAt,
	}
	if e.id == "" {
		e.id = idgen.NewEventID()
	}
	if e.createdAt == 0 {
		e.createdAt = nowMillis()
	}
	if e.modifiedAt == 0 {
		e.modifiedAt = e.createdAt
	}
	if e.data == nil {
		e.data = make(map[string]any)
	}
	return e
}

// ID returns the event identifier.
func (e *Event) ID() string { return e.id }

// DefinitionID returns the event definition identifier.
func (e *Event) DefinitionID() string { return e.definitionID }

// SetDefinitionID sets the definition id. Returns the event for chaining.
func (e *Event) SetDefinitionID(definitionID string) *Event {
	e.definitionID = definitionID
	e.modifiedAt = nowMillis()
	return e
}

// Data returns the event data payload. Callers must treat the returned map
// as read-only; mutate through SetData or SetDataValue instead.
func (e *Event) Data() map[string]any { return e.data }

// SetData merges data into the event payload, overwriting matching keys and
// keeping the rest. Returns the event for chaining.
func (e *Event) SetData(data map[string]any) *Event {
	if len(data) == 0 {
		return e
	}
	maps.Copy(e.data, data)
	e.modifiedAt = nowMillis()
	return e
}

// SetDataValue sets a single data key. Returns the event for chaining.
func (e *Event) SetDataValue(key string, value any) *Event {
	e.data[key] = value
	e.modifiedAt = nowMillis()
	return e
}

// GetDataValue returns the value stored under key, or nil if absent.
func (e *Event) GetDataValue(key string) any { return e.data[key] }

// CreatedAt returns the creation time in Unix milliseconds.
func (e *Event) CreatedAt() int64 { return e.createdAt }

// ModifiedAt returns the last modification time in Unix milliseconds.
func (e *Event) ModifiedAt() int64 { return e.modifiedAt }

// IsValid reports whether the event carries its required identity fields.
func (e *Event) IsValid() bool {
	return e != nil && e.id != "" && e.definitionID != ""
}

// Clone returns a deep copy of the event.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	return &Event{
		id:           e.id,
		definitionID: e.definitionID,
		data:         cloneData(e.data),
		createdAt:    e.createdAt,
		modifiedAt:   e.modifiedAt,
	}
}

// replaceData swaps the payload wholesale, used by merge where the local
// event data overwrites the remote copy without touching definitionID.
func (e *Event) replaceData(data map[string]any) {
	e.data = cloneData(data)
	if e.data == nil {
		e.data = make(map[string]any)
	}
}
