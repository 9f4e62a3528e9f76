// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

// Student represents one student record as stored and as returned to
// API clients.
//
// The ID is assigned by the storage layer when the record is created
// and never changes afterwards. Clients cannot supply it — that is why
// the create and update payloads below are separate types without an
// ID field.
type Student struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Email  string `json:"email"`
	Course string `json:"course"`
}

// StudentCreate is the request body for POST /students.
//
// The validate:"required" tags are checked by the go-playground/validator
// package in the handler — every field must be present and non-zero
// before the storage layer is ever called.
type StudentCreate struct {
	Name   string `json:"name"   validate:"required"`
	Age    int    `json:"age"    validate:"required"`
	Email  string `json:"email"  validate:"required"`
	Course string `json:"course" validate:"required"`
}

// StudentUpdate is the request body for PUT /students/{id}.
//
// Every field is a POINTER so we can tell apart two very different
// requests:
//
//	{ "age": 0 }   → Age points at 0   → overwrite age with 0
//	{ }            → Age is nil        → leave age untouched
//
// With plain (non-pointer) fields both would decode to the zero value
// and a caller could never say "change the name but keep the age".
// Presence in the JSON — not the value — decides whether a field is
// written.
type StudentUpdate struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Email  *string `json:"email"`
	Course *string `json:"course"`
}
