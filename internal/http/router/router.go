// Package router assembles the HTTP routing table.
//
// Building the router in its own package (instead of inline in main)
// means tests can construct the exact production routing — middleware
// included — around any storage backend, typically the in-memory one.
//
// Route table:
//
//	GET    /               → welcome message + API version
//	GET    /health         → liveness probe
//	GET    /students       → list all students (rate limited)
//	POST   /students       → create a new student
//	GET    /students/{id}  → get one student by id
//	PUT    /students/{id}  → partially update a student
//	DELETE /students/{id}  → delete a student
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/aanand-mishra/student-management-api/internal/config"
	"github.com/aanand-mishra/student-management-api/internal/http/handlers/student"
	"github.com/aanand-mishra/student-management-api/internal/storage"
	"github.com/aanand-mishra/student-management-api/internal/utils/response"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// New builds the routing table around the given storage backend.
//
// Rate limiting is wired HERE, per router instance, not as package
// state inside the limiter library. Every call to New gets its own
// limiter with its own counters, so two routers (say, one per test)
// can never bleed quota into each other. The limiter is keyed by
// client IP and only guards the list endpoint, the one an abusive
// client would hammer.
func New(st storage.Storage, rl config.RateLimit) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/", root)
	r.Get("/health", health)

	r.Route("/students", func(r chi.Router) {
		if rl.Enabled {
			r.With(httprate.LimitByIP(rl.Requests, rl.Window)).
				Get("/", student.GetList(st))
		} else {
			r.Get("/", student.GetList(st))
		}

		r.Post("/", student.New(st))
		r.Get("/{id}", student.GetByID(st))
		r.Put("/{id}", student.Update(st))
		r.Delete("/{id}", student.Delete(st))
	})

	return r
}

// root answers GET / with a welcome message and the API version, so a
// human poking the base URL sees something friendlier than a 404.
func root(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Student Management API",
		"version": Version,
	})
}

// health answers GET /health. Load balancers and orchestrators poll
// this to decide whether the process should receive traffic.
func health(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
