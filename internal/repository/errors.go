// Package repository implements the record-store side of the service on top
// of database/sql and MySQL. This file defines sentinel error values shared
// across repositories so higher layers can distinguish failure scenarios:
// ErrUserExists signals a registration conflict on a unique column and maps
// to HTTP 409. Missing rows are reported as sql.ErrNoRows, the value the
// driver already produces, so callers match with errors.Is either way.
package repository

import "errors"

// ErrUserExists is returned when an INSERT into users trips the unique
// constraint on username or email. Handlers should translate this into an
// HTTP 409 response.
var ErrUserExists = errors.New("username or email already exists")
