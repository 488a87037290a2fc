// Package client is the remote access layer of the SDK: a thin HTTP
// client over the profile service with read-through caching for
// read-mostly data.
//
// All operations are context-first, exchange JSON bodies, and follow a
// strict success-or-error contract: a 2xx response missing an expected
// member ("profile", "custom", "segmentEvaluation") is an error, never an
// empty success. Non-2xx responses are wrapped in ErrRequestFailed with
// the status code; the client never retries.
//
//	cfg, err := client.LoadConfig()
//	c, err := client.New(cfg, client.WithLogger(log))
//
//	p, err := c.LoadProfile(ctx, "d3mf8x0qPbtsjBBC7wdN6kP2UworM0Q9")
//	p.SetAttribute(profile.NewAttribute(cfg.AppName, "preferences", "theme", "dark"))
//	_, err = c.SaveProfile(ctx, p)
//
// RefreshProfile composes loading with the merge engine: it reloads the
// remote copy and folds it into the local profile without losing local
// edits that have not been saved yet.
//
// Settings and attribute reads go through a TTL cache (600 seconds by
// default) keyed "settings"+appName and "attributes"+profileID. The cache
// is in-process by default; pass WithCache(ttlcache.NewRedisStore(rdb))
// to share it across processes, or set Config.NoCache to disable it.
package client
