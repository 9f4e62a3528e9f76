// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver. Pick it via config (storage.type: sqlite) when records should
// survive a restart; the in-memory backend forgets everything.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-management-api/internal/config"
	"github.com/aanand-mishra/student-management-api/internal/storage"
	"github.com/aanand-mishra/student-management-api/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	// Without this the sql.Open("sqlite3", ...) call would fail with
	// "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the persistent implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.Storage.Path, creates the
// students table if it does not already exist, and returns a
// ready-to-use *SQLite.
//
// AUTOINCREMENT matters here: plain INTEGER PRIMARY KEY would let
// SQLite reuse the rowid of a deleted record, breaking the promise
// that an id, once deleted, never comes back.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup. If the table already exists nothing happens.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			name   TEXT    NOT NULL,
			age    INTEGER NOT NULL,
			email  TEXT    NOT NULL,
			course TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// CreateStudent inserts a new row and returns it with the id SQLite
// assigned. Placeholders (?) keep user input out of the SQL text, so
// a name like "'; DROP TABLE students; --" is stored, not executed.
func (s *SQLite) CreateStudent(name string, age int, email string, course string) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (name, age, email, course) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name, age, email, course)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	// LastInsertId returns the auto-generated primary key of the new row.
	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	return types.Student{
		ID:     lastID,
		Name:   name,
		Age:    age,
		Email:  email,
		Course: course,
	}, nil
}

// GetStudentByID fetches exactly one student row matched by primary key.
// sql.ErrNoRows is translated into storage.ErrStudentNotFound so the
// handlers only ever have to know about one "missing record" error.
func (s *SQLite) GetStudentByID(id int64) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, age, email, course FROM students WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	var student types.Student

	err = stmt.QueryRow(id).Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Email,
		&student.Course,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, storage.ErrStudentNotFound
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

// GetStudents returns all student rows, oldest first. Ordering by id
// matches insertion order because ids only ever grow.
func (s *SQLite) GetStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(
		// Explicitly list columns — never use SELECT * in production code.
		// If a column is added later, SELECT * would break Scan's ordering.
		"SELECT id, name, age, email, course FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close() // must close rows to free the DB connection

	// Pre-allocate an empty (non-nil) slice.
	// Returning [] instead of null in JSON is better API behaviour.
	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student

		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Age,
			&student.Email,
			&student.Course,
		); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}

		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// UpdateStudentByID applies a partial update inside a transaction:
// read the current row, overlay the non-nil fields, write it back.
// The read and the write share the transaction so a concurrent update
// cannot slip in between and get lost.
func (s *SQLite) UpdateStudentByID(id int64, update types.StudentUpdate) (types.Student, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: begin: %w", err)
	}
	// Rollback after a successful Commit is a harmless no-op.
	defer tx.Rollback()

	var student types.Student
	err = tx.QueryRow(
		"SELECT id, name, age, email, course FROM students WHERE id = ? LIMIT 1", id,
	).Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Email,
		&student.Course,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, storage.ErrStudentNotFound
		}
		return types.Student{}, fmt.Errorf("UpdateStudentByID: scan: %w", err)
	}

	// Overlay only the fields the caller actually sent.
	if update.Name != nil {
		student.Name = *update.Name
	}
	if update.Age != nil {
		student.Age = *update.Age
	}
	if update.Email != nil {
		student.Email = *update.Email
	}
	if update.Course != nil {
		student.Course = *update.Course
	}

	_, err = tx.Exec(
		"UPDATE students SET name = ?, age = ?, email = ?, course = ? WHERE id = ?",
		student.Name, student.Age, student.Email, student.Course, id,
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: exec: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: commit: %w", err)
	}

	return student, nil
}

// DeleteStudentByID removes a student row by primary key.
// RowsAffected tells us whether the id existed at all — zero rows
// deleted means the caller addressed a nonexistent record.
func (s *SQLite) DeleteStudentByID(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM students WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrStudentNotFound
	}

	return nil
}
