// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

// ErrNotFound reports a week or attendance cell that does not exist.
// Callers distinguish it from storage failures: navigation paths redirect,
// mutation paths answer 404.
var ErrNotFound = errors.New("not found")
