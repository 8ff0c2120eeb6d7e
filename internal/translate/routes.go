package translate

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the translation endpoint onto the given router.
// The server mounts this under the /zuglang prefix.
func RegisterRoutes(r chi.Router) {
	r.Post("/translate", Translate)
}
