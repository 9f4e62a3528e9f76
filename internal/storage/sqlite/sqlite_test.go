package sqlite

// The SQLite backend must honour the same contract as the in-memory
// one: sequential ids that survive deletion, insertion-order listing,
// partial updates, and ErrStudentNotFound for missing records.
//
// Each test opens a fresh database file under t.TempDir(), so tests
// are isolated and nothing is left behind.

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-management-api/internal/config"
	"github.com/aanand-mishra/student-management-api/internal/storage"
	"github.com/aanand-mishra/student-management-api/internal/types"
)

var _ storage.Storage = (*SQLite)(nil)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{
		Storage: config.Storage{
			Type: "sqlite",
			Path: filepath.Join(t.TempDir(), "students.db"),
		},
	}

	store, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { store.Db.Close() })

	return store
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateStudent("Alice Smith", 22, "alice@example.com", "Mathematics")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := store.GetStudentByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetStudentByID_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetStudentByID(999)
	assert.ErrorIs(t, err, storage.ErrStudentNotFound)
}

func TestGetStudents_InsertionOrder(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateStudent("Student One", 20, "one@example.com", "Math")
	require.NoError(t, err)
	_, err = store.CreateStudent("Student Two", 21, "two@example.com", "Science")
	require.NoError(t, err)
	_, err = store.CreateStudent("Student Three", 22, "three@example.com", "English")
	require.NoError(t, err)

	students, err := store.GetStudents()
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, int64(1), students[0].ID)
	assert.Equal(t, "Student One", students[0].Name)
	assert.Equal(t, int64(2), students[1].ID)
	assert.Equal(t, "Student Two", students[1].Name)
	assert.Equal(t, int64(3), students[2].ID)
	assert.Equal(t, "Student Three", students[2].Name)
}

func TestUpdateStudentByID_Partial(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateStudent("David Wilson", 24, "david@example.com", "Biology")
	require.NoError(t, err)

	name := "David Wilson Jr."
	age := 25
	updated, err := store.UpdateStudentByID(created.ID, types.StudentUpdate{
		Name: &name,
		Age:  &age,
	})
	require.NoError(t, err)

	assert.Equal(t, "David Wilson Jr.", updated.Name)
	assert.Equal(t, 25, updated.Age)
	assert.Equal(t, "david@example.com", updated.Email)
	assert.Equal(t, "Biology", updated.Course)

	got, err := store.GetStudentByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateStudentByID_NotFound(t *testing.T) {
	store := newTestStore(t)

	name := "Nobody"
	_, err := store.UpdateStudentByID(42, types.StudentUpdate{Name: &name})
	assert.ErrorIs(t, err, storage.ErrStudentNotFound)
}

func TestDeleteStudentByID(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateStudent("Alice Smith", 22, "alice@example.com", "Mathematics")
	require.NoError(t, err)

	require.NoError(t, store.DeleteStudentByID(created.ID))

	_, err = store.GetStudentByID(created.ID)
	assert.ErrorIs(t, err, storage.ErrStudentNotFound)

	err = store.DeleteStudentByID(created.ID)
	assert.ErrorIs(t, err, storage.ErrStudentNotFound)
}

func TestDeleteStudentByID_IDsAreNeverReused(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateStudent("Student One", 20, "one@example.com", "Math")
	require.NoError(t, err)
	second, err := store.CreateStudent("Student Two", 21, "two@example.com", "Science")
	require.NoError(t, err)

	// Delete the newest row — the tempting one for rowid reuse.
	require.NoError(t, store.DeleteStudentByID(second.ID))

	// AUTOINCREMENT keeps the sequence moving forward anyway.
	third, err := store.CreateStudent("Student Three", 22, "three@example.com", "English")
	require.NoError(t, err)
	assert.Equal(t, second.ID+1, third.ID)
}
