package repository

import "errors"

// ErrNotFound is returned when a lookup by id or email matches no record.
// Repositories translate gorm.ErrRecordNotFound into this sentinel so the
// layers above never depend on gorm directly.
var ErrNotFound = errors.New("record not found")
