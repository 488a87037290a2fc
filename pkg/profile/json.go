package profile

import "encoding/json"

// Wire representation of a profile, matching the remote service's JSON
// bodies. Attributes travel grouped by (collectApp, section) with a
// {name: value} data map per group; the in-memory model keeps them flat.
type profileWire struct {
	ID         string           `json:"id"`
	Attributes []attributeGroup `json:"attributes"`
	Sessions   []sessionWire    `json:"sessions"`
}

type attributeGroup struct {
	CollectApp string         `json:"collectApp"`
	Section    string         `json:"section"`
	Data       map[string]any `json:"data"`
}

type sessionWire struct {
	ID         string         `json:"id"`
	CollectApp string         `json:"collectApp"`
	Section    string         `json:"section"`
	Data       map[string]any `json:"data,omitempty"`
	Events     []eventWire    `json:"events"`
	CreatedAt  int64          `json:"createdAt"`
	ModifiedAt int64          `json:"modifiedAt"`
}

type eventWire struct {
	ID           string         `json:"id"`
	DefinitionID string         `json:"definitionId"`
	Data         map[string]any `json:"data,omitempty"`
	CreatedAt    int64          `json:"createdAt"`
	ModifiedAt   int64          `json:"modifiedAt"`
}

// MarshalJSON serializes the profile in its wire form. The flat attribute
// set is regrouped by (collectApp, section) in first-appearance order, and
// invalid attributes are skipped rather than serialized.
func (p *Profile) MarshalJSON() ([]byte, error) {
	wire := profileWire{
		ID:         p.id,
		Attributes: make([]attributeGroup, 0, len(p.attributes)),
		Sessions:   make([]sessionWire, 0, len(p.sessions)),
	}

	groupIdx := make(map[string]int)
	for _, a := range p.attributes {
		if !a.IsValid() {
			continue
		}
		key := a.collectApp + "\x00" + a.section
		idx, ok := groupIdx[key]
		if !ok {
			idx = len(wire.Attributes)
			groupIdx[key] = idx
			wire.Attributes = append(wire.Attributes, attributeGroup{
				CollectApp: a.collectApp,
				Section:    a.section,
				Data:       make(map[string]any),
			})
		}
		wire.Attributes[idx].Data[a.name] = a.value
	}

	for _, s := range p.sessions {
		sw := sessionWire{
			ID:         s.id,
			CollectApp: s.collectApp,
			Section:    s.section,
			Data:       s.data,
			Events:     make([]eventWire, len(s.events)),
			CreatedAt:  s.createdAt,
			ModifiedAt: s.modifiedAt,
		}
		for i, e := range s.events {
			sw.Events[i] = eventWire{
				ID:           e.id,
				DefinitionID: e.definitionID,
				Data:         e.data,
				CreatedAt:    e.createdAt,
				ModifiedAt:   e.modifiedAt,
			}
		}
		wire.Sessions = append(wire.Sessions, sw)
	}

	return json.Marshal(wire)
}

// UnmarshalJSON reconstructs a profile from its wire form. Missing ids are
// generated and supplied timestamps preserved. Attribute groups are
// flattened to one attribute per data key. Invalid attributes, sessions or
// events fail admission and abort the whole reconstruction.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var wire profileWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	next := New(wire.ID)

	for _, group := range wire.Attributes {
		if err := next.SetAttributeGroup(group.CollectApp, group.Section, group.Data); err != nil {
			return err
		}
	}

	for _, sw := range wire.Sessions {
		events := make([]*Event, len(sw.Events))
		for i, ew := range sw.Events {
			events[i] = NewEvent(EventConfig{
				ID:           ew.ID,
				DefinitionID: ew.DefinitionID,
				Data:         ew.Data,
				CreatedAt:    ew.CreatedAt,
				ModifiedAt:   ew.ModifiedAt,
			})
			if !events[i].IsValid() {
				return ErrInvalidEvent
			}
		}
		s := NewSession(SessionConfig{
			ID:         sw.ID,
			CollectApp: sw.CollectApp,
			Section:    sw.Section,
			Data:       sw.Data,
			Events:     events,
			CreatedAt:  sw.CreatedAt,
			ModifiedAt: sw.ModifiedAt,
		})
		if err := next.SetSession(s); err != nil {
			return err
		}
	}

	*p = *next
	return nil
}

// Parse reconstructs a profile from raw JSON in the wire form.
func Parse(raw []byte) (*Profile, error) {
	p := &Profile{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}
