// Package student contains all HTTP handlers related to the Student
// resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// The router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a storage
// backend. To inject dependencies we use a factory function that:
//  1. Accepts dependencies (storage)
//  2. Returns a function with the exact signature the router needs
//
// Because the inner function "closes over" the outer parameters, it can
// access `storage` even after the factory call has returned:
//
//	r.Post("/", student.New(storage))
//	//                  ^^^^^^^^^^^^
//	//        New(storage) is called ONCE at startup.
//	//        It returns a handler func which is called
//	//        on EVERY incoming request.
//
// ERROR MAPPING:
// storage.ErrStudentNotFound → 404, everything else from storage → 500,
// anything wrong with the request itself (bad id, bad body, failed
// validation) → 400 before storage is ever called.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-management-api/internal/storage"
	"github.com/aanand-mishra/student-management-api/internal/types"
	"github.com/aanand-mishra/student-management-api/internal/utils/response"
)

// parseID extracts the {id} path parameter and converts it to int64.
// chi.URLParam is chi's counterpart of r.PathValue.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// errInvalidID is what the client sees for "/students/abc".
var errInvalidID = errors.New("invalid id: must be an integer")

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /students
// Creates a new student from the JSON request body.
//
// Request body (JSON) — all fields required:
//
//	{ "name": "Alice Smith", "age": 22, "email": "alice@example.com", "course": "Mathematics" }
//
// Success response (201 Created) — the stored record, id included:
//
//	{ "id": 1, "name": "Alice Smith", "age": 22, "email": "alice@example.com", "course": "Mathematics" }
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		// ── Step 1: Decode JSON body into the create payload ──────────
		var req types.StudentCreate

		err := json.NewDecoder(r.Body).Decode(&req)

		if errors.Is(err, io.EOF) {
			// io.EOF means the body was completely empty — nothing to decode.
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			// Any other decode error: malformed JSON, wrong types, etc.
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// ── Step 2: Validate the decoded payload ──────────────────────
		// validator.New().Struct(v) checks all validate:"..." tags on v.
		if err := validator.New().Struct(req); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		// ── Step 3: Store the record ──────────────────────────────────
		// The store allocates the id; the handler never invents one.
		created, err := st.CreateStudent(req.Name, req.Age, req.Email, req.Course)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.Int64("id", created.ID))

		// ── Step 4: Return 201 Created with the full record ───────────
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /students/{id}
// Fetches a single student by their id.
//
// Success response (200 OK): the record.
//
// Error responses:
//
//	400 Bad Request  — id is not a valid integer
//	404 Not Found    — no student carries that id
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errInvalidID))
			return
		}

		slog.Info("getting a student", slog.Int64("id", id))

		student, err := st.GetStudentByID(id)
		if errors.Is(err, storage.ErrStudentNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
			return
		}
		if err != nil {
			slog.Error("error getting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /students
// Returns a JSON array of all students, oldest first.
//
// Returns an empty array [] (not null) when there are no students.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := st.GetStudents()
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /students/{id}
// Applies a PARTIAL update: only the fields present in the body are
// written; absent fields keep their current values.
//
// Request body (JSON) — any subset of the four fields:
//
//	{ "name": "David Wilson Jr.", "age": 25 }
//
// An empty object {} is valid: it changes nothing and echoes the
// current record (after the 404 check). An empty BODY is not — a PUT
// with no payload at all is almost certainly a client bug.
//
// Success response (200 OK) — the record as stored after the update.
//
// Error responses:
//
//	400 Bad Request  — invalid id, empty body, or malformed JSON
//	404 Not Found    — no student carries that id
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errInvalidID))
			return
		}

		slog.Info("updating a student", slog.Int64("id", id))

		// Decode the partial payload. Fields missing from the JSON stay
		// nil and will be skipped by the store.
		var update types.StudentUpdate
		err = json.NewDecoder(r.Body).Decode(&update)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		updated, err := st.UpdateStudentByID(id, update)
		if errors.Is(err, storage.ErrStudentNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
			return
		}
		if err != nil {
			slog.Error("error updating student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /students/{id}
// Permanently removes a student record.
//
// Success response: 204 No Content with an empty body.
//
// Error responses:
//
//	400 Bad Request  — invalid id
//	404 Not Found    — no student carries that id
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errInvalidID))
			return
		}

		slog.Info("deleting a student", slog.Int64("id", id))

		err = st.DeleteStudentByID(id)
		if errors.Is(err, storage.ErrStudentNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
			return
		}
		if err != nil {
			slog.Error("error deleting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student deleted", slog.Int64("id", id))

		// 204 means "done, nothing to say" — no body, not even {}.
		w.WriteHeader(http.StatusNoContent)
	}
}
