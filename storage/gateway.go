// Package storage implements the persisted key-value gateway and the typed
// accessors the services read and write through. Values are JSON blobs under
// a small fixed set of application-prefixed keys.
package storage

import "context"

// Keys used by the application. The prefix matches what the mobile client
// has always written, so a database imported from an old device keeps
// working.
const (
	KeyProfile            = "@kidney_tracker:profile"
	KeyFoodItems          = "@kidney_tracker:food_items"
	KeyConsumptionHistory = "@kidney_tracker:consumption_history"
	KeySchemaVersion      = "@kidney_tracker:schema_version"
)

// Gateway is the raw key-value contract. Get reports a missing key via the
// second return value, never via an error.
type Gateway interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// CorruptStateError wraps a JSON decode failure for a persisted value. The
// caller decides whether to surface it or reset the key to empty.
type CorruptStateError struct {
	Key string
	Err error
}

func (e *CorruptStateError) Error() string {
	return "corrupt persisted state at " + e.Key + ": " + e.Err.Error()
}

func (e *CorruptStateError) Unwrap() error { return e.Err }
