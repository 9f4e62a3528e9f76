package student_test

// Handler tests exercise the wire contract over httptest with the
// in-memory backend: status codes, response bodies, the 404 detail
// text, and the 400 paths that must never reach storage.
//
// Run with:
//
//	go test ./internal/http/handlers/student/... -v

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-management-api/internal/http/handlers/student"
	"github.com/aanand-mishra/student-management-api/internal/storage/memory"
	"github.com/aanand-mishra/student-management-api/internal/types"
	"github.com/aanand-mishra/student-management-api/internal/utils/response"
)

// newTestAPI mounts the five student routes on a fresh router around a
// fresh store. Every test gets its own store, so no reset bookkeeping
// between cases is needed.
func newTestAPI() (http.Handler, *memory.Memory) {
	store := memory.New()

	r := chi.NewRouter()
	r.Route("/students", func(r chi.Router) {
		r.Get("/", student.GetList(store))
		r.Post("/", student.New(store))
		r.Get("/{id}", student.GetByID(store))
		r.Put("/{id}", student.Update(store))
		r.Delete("/{id}", student.Delete(store))
	})

	return r, store
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeStudent(t *testing.T, rec *httptest.ResponseRecorder) types.Student {
	t.Helper()

	var s types.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	return s
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ── POST /students ───────────────────────────────────────────────────────────

func TestCreate_ReturnsCreatedRecord(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodPost, "/students",
		`{"name":"Alice Smith","age":22,"email":"alice@example.com","course":"Mathematics"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	created := decodeStudent(t, rec)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Alice Smith", created.Name)
	assert.Equal(t, 22, created.Age)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "Mathematics", created.Course)
}

func TestCreate_EmptyBody(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodPost, "/students", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.StatusError, decodeErr(t, rec).Status)
}

func TestCreate_MalformedJSON(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodPost, "/students", `{"name": "Alice"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	api, store := newTestAPI()

	rec := doRequest(t, api, http.MethodPost, "/students", `{"name":"Alice Smith"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErr(t, rec)
	assert.Contains(t, resp.Error, "field Age is required")
	assert.Contains(t, resp.Error, "field Email is required")
	assert.Contains(t, resp.Error, "field Course is required")

	// A rejected create must leave the store untouched.
	students, err := store.GetStudents()
	require.NoError(t, err)
	assert.Empty(t, students)
}

// ── GET /students ────────────────────────────────────────────────────────────

func TestGetList_EmptyStoreReturnsEmptyArray(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodGet, "/students", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	// [] — not null. Clients iterate the result without a nil check.
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetList_ReturnsAllStudentsInOrder(t *testing.T) {
	api, _ := newTestAPI()

	doRequest(t, api, http.MethodPost, "/students",
		`{"name":"Student One","age":20,"email":"one@example.com","course":"Math"}`)
	doRequest(t, api, http.MethodPost, "/students",
		`{"name":"Student Two","age":21,"email":"two@example.com","course":"Science"}`)

	rec := doRequest(t, api, http.MethodGet, "/students", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var students []types.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	require.Len(t, students, 2)
	assert.Equal(t, int64(1), students[0].ID)
	assert.Equal(t, "Student One", students[0].Name)
	assert.Equal(t, int64(2), students[1].ID)
	assert.Equal(t, "Student Two", students[1].Name)
}

// ── GET /students/{id} ───────────────────────────────────────────────────────

func TestGetByID_ReturnsRecord(t *testing.T) {
	api, _ := newTestAPI()

	doRequest(t, api, http.MethodPost, "/students",
		`{"name":"Alice Smith","age":22,"email":"alice@example.com","course":"Mathematics"}`)

	rec := doRequest(t, api, http.MethodGet, "/students/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeStudent(t, rec)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Alice Smith", got.Name)
}

func TestGetByID_NotFound(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodGet, "/students/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeErr(t, rec)
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Contains(t, strings.ToLower(resp.Error), "not found")
}

func TestGetByID_InvalidID(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodGet, "/students/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErr(t, rec).Error, "invalid id")
}

// ── PUT /students/{id} ───────────────────────────────────────────────────────

func TestUpdate_PartialPayloadPreservesAbsentFields(t *testing.T) {
	api, _ := newTestAPI()

	doRequest(t, api, http.MethodPost, "/students",
		`{"name":"David Wilson","age":24,"email":"david@example.com","course":"Biology"}`)

	rec := doRequest(t, api, http.MethodPut, "/students/1",
		`{"name":"David Wilson Jr.","age":25}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	updated := decodeStudent(t, rec)
	assert.Equal(t, "David Wilson Jr.", updated.Name)
	assert.Equal(t, 25, updated.Age)
	assert.Equal(t, "david@example.com", updated.Email)
	assert.Equal(t, "Biology", updated.Course)
}

func TestUpdate_EmptyObjectEchoesRecord(t *testing.T) {
	api, _ := newTestAPI()

	doRequest(t, api, http.MethodPost, "/students",
		`{"name":"Alice Smith","age":22,"email":"alice@example.com","course":"Mathematics"}`)

	rec := doRequest(t, api, http.MethodPut, "/students/1", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice Smith", decodeStudent(t, rec).Name)
}

func TestUpdate_EmptyBody(t *testing.T) {
	api, _ := newTestAPI()

	doRequest(t, api, http.MethodPost, "/students",
		`{"name":"Alice Smith","age":22,"email":"alice@example.com","course":"Mathematics"}`)

	rec := doRequest(t, api, http.MethodPut, "/students/1", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdate_NotFound(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodPut, "/students/999", `{"name":"Nobody"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, strings.ToLower(decodeErr(t, rec).Error), "not found")
}

// ── DELETE /students/{id} ────────────────────────────────────────────────────

func TestDelete_NoContentAndGone(t *testing.T) {
	api, _ := newTestAPI()

	doRequest(t, api, http.MethodPost, "/students",
		`{"name":"Alice Smith","age":22,"email":"alice@example.com","course":"Mathematics"}`)

	rec := doRequest(t, api, http.MethodDelete, "/students/1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, api, http.MethodGet, "/students/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete_NotFound(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodDelete, "/students/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, strings.ToLower(decodeErr(t, rec).Error), "not found")
}

func TestDelete_InvalidID(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api, http.MethodDelete, "/students/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
