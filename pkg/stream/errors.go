package stream

import "errors"

var (
	ErrMalformedPayload = errors.New("malformed stream payload")
	ErrNoProfile        = errors.New("stream payload has no profile")
	ErrNoMeta           = errors.New("stream payload has no meta")
)
