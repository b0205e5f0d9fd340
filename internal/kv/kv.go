// Package kv provides the durable key-value slots td persists into.
//
// A slot holds one opaque value under a short key. FileStore keeps each slot
// in its own file under a directory and serializes access from concurrent
// processes with flock; MemoryStore keeps slots in memory for tests and
// throwaway sessions.
package kv

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("key not found")

	// ErrInvalidKey is returned when a key contains characters outside [A-Za-z0-9._-].
	ErrInvalidKey = errors.New("invalid key")
)

// Store is a durable key-value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateKey checks that key is usable as a slot name.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
