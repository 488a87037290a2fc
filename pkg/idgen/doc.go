// Package idgen generates random fixed-length string identifiers for
// profiles, sessions, and events.
//
// Identifiers are base62 strings backed by crypto/rand. The package exists
// so that objects created locally without an explicit id receive one in the
// same format the remote profile service uses.
//
//	id := idgen.New(8)          // arbitrary length
//	pid := idgen.NewProfileID() // 32 characters
package idgen
