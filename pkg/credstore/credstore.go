// Package credstore provides durable, scoped key-value persistence for
// session credentials on a device.
//
// Implementations absorb their own I/O failures: reads degrade to absent and
// writes to no-ops, with the failure logged. A storage fault can therefore
// only ever log a user out; it can never corrupt session state or crash the
// caller.
package credstore

import "context"

// Store is the persistence contract for session credentials.
type Store interface {
	// Set stores value under key. Failures are absorbed and logged.
	Set(ctx context.Context, key, value string)
	// Get returns the value for key, or ok=false when the key is absent or
	// the backend failed.
	Get(ctx context.Context, key string) (value string, ok bool)
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string)
	// Clear deletes every key.
	Clear(ctx context.Context)
}
