package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/sessions", a.CreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", a.GetSession)
			r.Post("/keys", a.PressKey)
			r.Delete("/", a.DeleteSession)
		})
		r.Post("/expression", a.Expression)
	})
}
