// Package storage defines the Storage interface — a contract that any
// backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers (HTTP layer) should not know or care where student records
// live. By depending only on this interface:
//
//   - Switching backends (in-memory ↔ SQLite) = change one line in
//     main.go. Zero handler changes.
//
//   - Writing tests = hand any implementation to the handler factories.
//     The in-memory backend doubles as the test fixture.
//
// This is the Dependency Inversion Principle in practice.
package storage

import (
	"errors"

	"github.com/aanand-mishra/student-management-api/internal/types"
)

// ErrStudentNotFound is the single error kind the storage layer raises.
// It is returned by every operation that addresses an id no record
// carries. Handlers check for it with errors.Is and translate it into
// an HTTP 404 — the storage layer itself never recovers from it.
var ErrStudentNotFound = errors.New("student not found")

// Storage is the backend contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
type Storage interface {
	// CreateStudent allocates the next id, stores a new record with the
	// given fields, and returns the stored record. It never fails on
	// well-formed input; input validation is the handler's job.
	CreateStudent(name string, age int, email string, course string) (types.Student, error)

	// GetStudentByID fetches a single student by id.
	// Returns ErrStudentNotFound if no record carries that id.
	GetStudentByID(id int64) (types.Student, error)

	// GetStudents returns every student, oldest first (insertion order).
	// Returns an empty slice (not nil) when there are no students.
	GetStudents() ([]types.Student, error)

	// UpdateStudentByID applies a PARTIAL update: only the non-nil
	// fields of update are written, every nil field keeps its current
	// value. Returns the record as stored after the update, or
	// ErrStudentNotFound.
	UpdateStudentByID(id int64, update types.StudentUpdate) (types.Student, error)

	// DeleteStudentByID removes a student record permanently.
	// Returns ErrStudentNotFound if no record carries that id.
	// The removed id is never handed out again by CreateStudent.
	DeleteStudentByID(id int64) error
}
