// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides record IDs and the write-key check for mutating routes.

# IDs

Influencer IDs are random UUIDs:

	id := auth.GenerateID()
	ok := auth.ValidateID(id)

# Write Key

Creating, deleting and updating data requires the X-Write-Key header when a
write key is configured:

	key := r.Header.Get(auth.WriteKeyHeader)
	if err := auth.ValidateWriteKey(key, cfg.WriteKey); err != nil {
		// 401
	}

With no configured key (local development) every request passes. Keys are
compared in constant time.

# Errors

  - ErrMissingWriteKey: header absent while a key is configured
  - ErrInvalidWriteKey: header present but wrong
*/
package auth
