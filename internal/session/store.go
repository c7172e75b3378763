// Package session provides the per-session conversation history store.
package session

import "github.com/nutmegai/nutmeg/internal/models"

// Store holds rolling conversation histories keyed by opaque session id.
// Implementations must bound memory (capacity and TTL eviction) and serialize
// concurrent read-modify-append cycles on the same session id via Lock.
type Store interface {
	// Get returns a copy of the session's turns, oldest first. An unknown id
	// returns an empty history.
	Get(id string) []models.Turn
	// Append adds turns to the session, creating it if needed.
	Append(id string, turns ...models.Turn)
	// Evict removes the session and its history.
	Evict(id string)
	// Lock acquires the session's exclusive lock and returns the unlock
	// function. Callers hold the lock across a Get/Append cycle so two
	// requests for the same session cannot interleave.
	Lock(id string) (unlock func())
}
