// Package memory provides an in-memory implementation of the
// storage.Storage interface: a slice of records guarded by a mutex,
// plus a monotonically increasing id counter.
//
// Nothing is ever persisted — the store lives exactly as long as the
// process. That makes it the default backend for local development and
// the fixture of choice for tests (no files, no drivers, no cleanup).
package memory

import (
	"sync"

	"github.com/aanand-mishra/student-management-api/internal/storage"
	"github.com/aanand-mishra/student-management-api/internal/types"
)

// Memory is the concrete in-memory implementation of storage.Storage.
//
// Invariants the lock protects:
//   - every stored record has a unique id,
//   - ids are handed out in increasing order, starting at 1, and are
//     never reused — not even after the record is deleted,
//   - listing order is insertion order.
//
// An RWMutex lets reads (GetStudents, GetStudentByID) run concurrently
// with each other while mutations take the write lock, so a reader can
// never observe a half-applied create, update, or delete.
type Memory struct {
	mu       sync.RWMutex
	students []types.Student
	nextID   int64
}

// New returns an empty store with the id counter at 1.
func New() *Memory {
	return &Memory{
		students: make([]types.Student, 0),
		nextID:   1,
	}
}

// CreateStudent allocates the next id, appends the new record to the
// end of the collection, and returns it. The counter only ever moves
// forward, so deleted ids never come back.
func (m *Memory) CreateStudent(name string, age int, email string, course string) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	student := types.Student{
		ID:     m.nextID,
		Name:   name,
		Age:    age,
		Email:  email,
		Course: course,
	}
	m.nextID++

	m.students = append(m.students, student)
	return student, nil
}

// GetStudentByID scans the collection for the record with the given id.
// A linear scan is enough: the store holds at most a handful of records
// and the uniqueness invariant guarantees at most one match.
func (m *Memory) GetStudentByID(id int64) (types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, student := range m.students {
		if student.ID == id {
			return student, nil
		}
	}
	return types.Student{}, storage.ErrStudentNotFound
}

// GetStudents returns a copy of the collection in insertion order.
// Copying means callers can never mutate the store's backing slice
// behind the lock's back.
func (m *Memory) GetStudents() ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	students := make([]types.Student, len(m.students))
	copy(students, m.students)
	return students, nil
}

// UpdateStudentByID overwrites exactly the fields that are present
// (non-nil) in update and preserves every absent field. The record is
// modified in place, so its position in the listing does not change.
func (m *Memory) UpdateStudentByID(id int64, update types.StudentUpdate) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.students {
		if m.students[i].ID != id {
			continue
		}

		if update.Name != nil {
			m.students[i].Name = *update.Name
		}
		if update.Age != nil {
			m.students[i].Age = *update.Age
		}
		if update.Email != nil {
			m.students[i].Email = *update.Email
		}
		if update.Course != nil {
			m.students[i].Course = *update.Course
		}

		return m.students[i], nil
	}
	return types.Student{}, storage.ErrStudentNotFound
}

// DeleteStudentByID removes the record with the given id, keeping the
// relative order of everything else. The id counter is deliberately
// left alone: a deleted id must never be handed out again.
func (m *Memory) DeleteStudentByID(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.students {
		if m.students[i].ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return storage.ErrStudentNotFound
}

// Reset empties the store and rewinds the id counter to 1.
//
// Reset is NOT part of the storage.Storage interface — it exists so
// test setup can start every case from a known-empty store without
// reaching into the struct's private fields. Production code never
// calls it.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.students = make([]types.Student, 0)
	m.nextID = 1
}
