package store

import "errors"

// ErrNotFound is returned by store lookups that find no matching row.
var ErrNotFound = errors.New("store: resource not found")
