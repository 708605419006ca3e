// Package ratelimit provides a per-client sliding-window request limiter.
//
// # Algorithm
//
// For every client key the limiter keeps the timestamps of the requests it
// accepted inside the trailing window. A call to Allow first drops timestamps
// at or before now-window, then rejects if the remaining count has reached
// the limit, and otherwise records now and accepts. Rejected requests are not
// recorded, so a client that keeps hammering is admitted again as soon as its
// oldest accepted request leaves the window.
//
// # Memory
//
// Keys are created lazily. On a small random fraction of calls the limiter
// sweeps every key whose newest timestamp has already left the window. This
// is an approximate cleanup: a key that is never swept is still pruned on its
// next visit, so the map cannot grow without bound for active clients.
//
// # Limitations
//
// State is process-local. When the service runs as several instances each
// instance enforces its own window, so the effective limit across the fleet
// is the limit multiplied by the number of instances.
//
// The key is whatever the caller passes in. The HTTP layer uses the client IP,
// which is only as trustworthy as its source: when proxy headers are honoured
// a client that can set X-Forwarded-For itself can pick a fresh key per request.
package ratelimit
