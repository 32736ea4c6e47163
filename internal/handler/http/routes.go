package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitRoutes builds the chi router. Everything except login, register and the
// stored image files requires a valid bearer token; year creation, year status
// changes and record deletion additionally require the admin role.
func (h *HTTPHandler) InitRoutes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.withLogging)

	r.Post("/login", h.login)
	r.Post("/register", h.register)
	r.Get("/images/{id}", h.serveImage)

	r.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Get("/home", h.home)

		r.Get("/years", h.listYears)
		r.Get("/receiveditems", h.listContributions)
		r.Post("/receiveditem", h.addContribution)
		r.Put("/receiveditem/{id}", h.updateContribution)

		r.Get("/expenditure", h.listExpenditures)
		r.Post("/expenditure", h.addExpenditure)
		r.Put("/expenditure/{id}", h.updateExpenditure)

		r.Get("/images", h.listImages)
		r.Post("/upload", h.uploadImage)

		r.Group(func(r chi.Router) {
			r.Use(h.withAdmin)

			r.Post("/years", h.createYear)
			r.Put("/years/{year}/status", h.updateYearStatus)
			r.Delete("/receiveditem/{id}", h.deleteContribution)
			r.Delete("/expenditure/{id}", h.deleteExpenditure)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, "not found", http.StatusNotFound)
	})

	return r
}
