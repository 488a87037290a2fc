// Package profile implements the client-side profile data model and the
// merge engine that reconciles it with the remote store.
//
// A Profile is the aggregate root: an identifier plus attributes (named
// facts scoped to a collecting application and section) and sessions
// (ordered event sequences with a data payload). Identity rules:
//
//   - Attribute identity is (collectApp, section, name); unique per profile.
//   - Session identity is its id; unique per profile.
//   - Event identity is its id; unique per session.
//
// Objects are built either fresh (ids generated, timestamps stamped) or
// reconstructed from the service's JSON wire form, in which supplied ids
// and timestamps are preserved. Validity is queried lazily via IsValid, so
// incomplete objects can be inspected before being offered to an
// aggregate; aggregates refuse to admit invalid objects.
//
// # Merging
//
// Profile.Merge reconciles a locally mutated profile with a freshly loaded
// remote copy of the same logical profile without losing unsynchronized
// local edits:
//
//	local, err := client.LoadProfile(ctx, id)
//	// ... local mutations while the server also changes ...
//	remote, err := client.LoadProfile(ctx, id)
//	_, err = local.Merge(remote)
//
// Remote-only and local-only attributes, sessions and events all survive;
// on conflict the local side wins. See Merge for the exact policy.
//
// All timestamps are Unix milliseconds, matching the wire format.
//
// Profile and its nested types are not safe for concurrent use.
package profile
