// Package stream parses profile-stream webhook bodies and exposes a small
// HTTP handler for receiving them.
//
// A stream body is a JSON object with a profile member (the full profile
// in wire form) and a meta member (delivery metadata). ParsePayload
// accepts any well-formed body; the Profile and Meta accessors error
// individually when their member is absent.
package stream
