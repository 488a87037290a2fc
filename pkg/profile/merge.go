package profile

import "fmt"

// Merge reconciles the profile with a freshly loaded remote copy of the
// same logical profile, mutating the receiver in place and returning it.
//
// The remote side is treated as the source of truth for anything created
// elsewhere, while unsynchronized local edits must survive a concurrent
// load. The merged state therefore starts from the remote graph and the
// local graph is overlaid on top:
//
//   - Attributes present on one side only survive; when both sides carry
//     the same identity, the local value wins.
//   - Sessions only known remotely are kept in full. A session known on
//     both sides keeps the remote copy, with the local data payload merged
//     onto it and local events folded in: a local event matching a remote
//     one by id overwrites the remote event's data (its definitionId is
//     deliberately left as the remote side has it — a local definitionId
//     edit does not survive a merge), and a local-only event is appended.
//     A session only known locally is inserted wholesale.
//
// Both operands' graphs are deep-copied before reconciliation, so other is
// never mutated and the merged profile shares no state with it.
//
// Merging profiles with different ids is forbidden and fails with
// ErrProfileIDMismatch before any mutation.
func (p *Profile) Merge(other *Profile) (*Profile, error) {
	if other == nil {
		return nil, ErrNilProfile
	}
	if p.id != other.id {
		return nil, fmt.Errorf("%w: %q and %q", ErrProfileIDMismatch, p.id, other.id)
	}

	localAttrs := cloneAttributes(p.attributes)
	localSessions := cloneSessions(p.sessions)
	remoteAttrs := cloneAttributes(other.attributes)
	remoteSessions := cloneSessions(other.sessions)

	// Remote first, local last: upsert-by-identity makes the local value
	// win wherever both sides carry the same attribute.
	p.attributes = nil
	if err := p.SetAttributes(remoteAttrs); err != nil {
		return nil, err
	}
	if err := p.SetAttributes(localAttrs); err != nil {
		return nil, err
	}

	p.sessions = remoteSessions
	for _, local := range localSessions {
		remote := p.GetSession(local.id)
		if remote == nil {
			if err := p.SetSession(local); err != nil {
				return nil, err
			}
			continue
		}

		remote.SetData(local.data)
		for _, le := range local.events {
			re := remote.GetEvent(le.id)
			if re == nil {
				if err := remote.AddEvent(le); err != nil {
					return nil, err
				}
				continue
			}
			re.replaceData(le.data)
		}
	}

	return p, nil
}

func cloneAttributes(attrs []*Attribute) []*Attribute {
	out := make([]*Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = a.Clone()
	}
	return out
}

func cloneSessions(sessions []*Session) []*Session {
	out := make([]*Session, len(sessions))
	for i, s := range sessions {
		out[i] = s.Clone()
	}
	return out
}
