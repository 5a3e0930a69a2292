package dao

import "errors"

// ErrNotFound is returned when a query targets a row that does not exist.
// Services translate it into their typed not-found errors.
var ErrNotFound = errors.New("not found")

// ErrNoTransition is returned by conditional status updates when no row
// matched the expected prior status. With the row's existence already
// established, this means another caller transitioned it first.
var ErrNoTransition = errors.New("no matching row for status transition")
