package domain

import "errors"

// ErrEventNotFound is returned when an event id resolves to no stored record.
var ErrEventNotFound = errors.New("event not found")
