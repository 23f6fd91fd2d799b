// Package repository defines data access for persisted layout documents,
// events and ticket types. Sentinel errors let handlers distinguish failure
// scenarios: a missing layout bootstraps a default one, a past event blocks
// the save with a conflict, and so on.
package repository

import "errors"

// ErrLayoutNotFound is returned when no layout document exists for an
// event. Callers treat this as "no existing layout", not a failure.
var ErrLayoutNotFound = errors.New("layout not found")

// ErrEventNotFound is returned when the referenced event does not exist.
var ErrEventNotFound = errors.New("event not found")

// ErrEventInPast is returned when a layout save targets an event that has
// already started. Handlers translate this into an HTTP 409 response.
var ErrEventInPast = errors.New("event in the past")

// ErrForbidden is returned when the caller does not organize the event they
// are editing. Handlers translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")
