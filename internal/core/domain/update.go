package domain

import "errors"

// ErrNoUpdateFields is returned when a partial update supplies no columns.
var ErrNoUpdateFields = errors.New("no fields to update")

// ErrKeyFieldUpdate is returned when a partial update tries to change the
// entity's key column. Routes strip the key from request bodies; the update
// builder rejects it again as a backstop.
var ErrKeyFieldUpdate = errors.New("key column cannot be updated")

// ErrNullColumn is returned when a partial update sets a required column
// to an explicit null.
var ErrNullColumn = errors.New("column cannot be null")

// UpdateFields maps column names to replacement values for a partial update.
type UpdateFields map[string]any
