package client

import "errors"

// Error identities for the remote access layer.
//
// Classification:
//   - configuration errors fire synchronously before any I/O;
//   - transport errors wrap a non-2xx status or a network failure;
//   - shape errors mark a 2xx response missing an expected member and are
//     treated exactly like transport failures, never as an empty success.
var (
	ErrMissingAPIURL     = errors.New("config: api url is required")
	ErrMissingAppName    = errors.New("config: app name is required")
	ErrMissingAppKey     = errors.New("config: app key is required")
	ErrMissingGroupID    = errors.New("config: group id is required")
	ErrMissingBucketName = errors.New("config: bucket name is required")

	ErrMissingProfileID = errors.New("profile id is required")
	ErrMissingProfile   = errors.New("profile is required")
	ErrMissingSettings  = errors.New("settings are required")

	ErrRequestFailed      = errors.New("request failed")
	ErrNoProfile          = errors.New("response has no profile")
	ErrNoCustomSettings   = errors.New("response has no custom settings")
	ErrNoEvaluationResult = errors.New("response has no evaluation results")
)
