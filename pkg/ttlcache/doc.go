// Package ttlcache provides a small time-to-live cache used to shield the
// remote profile service from redundant reads of read-mostly data such as
// application settings and profile attributes.
//
// TTLCache is the generic in-process implementation: values stay visible
// for a configurable TTL (600 seconds by default) after which Get treats
// them as absent. The comma-ok result is the absence sentinel, so a cached
// zero value and a miss are never confused.
//
//	c := ttlcache.New[string, []byte](ttlcache.WithTTL(5 * time.Minute))
//	c.Set("settings"+app, body)
//	if v, ok := c.Get("settings" + app); ok {
//	    // fresh enough, skip the round trip
//	}
//
// Keys carry a purpose tag plus a scoping identifier ("settings"+app,
// "attributes"+profileID); the cache itself attaches no meaning to them.
//
// The Store interface is the byte-oriented seam consumed by the client
// package, with MemoryStore for single-process use and RedisStore for
// deployments sharing the cache across processes.
package ttlcache
