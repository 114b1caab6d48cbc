// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"github.com/google/uuid"
)

// WriteKeyHeader carries the write key on mutating requests
const WriteKeyHeader = "X-Write-Key"

var (
	ErrMissingWriteKey = errors.New("missing write key")
	ErrInvalidWriteKey = errors.New("invalid write key")
)

// GenerateID creates a random UUID for a new record
func GenerateID() string {
	return uuid.NewString()
}

// ValidateID reports whether id looks like an ID produced by GenerateID
func ValidateID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ValidateWriteKey checks the provided key against the configured one.
// An empty configured key disables the check.
func ValidateWriteKey(provided, configured string) error {
	if configured == "" {
		return nil
	}
	if provided == "" {
		return ErrMissingWriteKey
	}

	// compare fixed-length digests so timing does not leak the key length
	a := sha256.Sum256([]byte(provided))
	b := sha256.Sum256([]byte(configured))
	if !hmac.Equal(a[:], b[:]) {
		return ErrInvalidWriteKey
	}
	return nil
}
