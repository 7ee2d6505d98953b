package repository

import "errors"

// ErrNotFound is returned by lookups, updates and deletes that target an
// identifier with no stored record.
var ErrNotFound = errors.New("record not found")
