package numerals

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the numeral endpoints onto the given router. The
// server mounts this under the /zuglang prefix.
func RegisterRoutes(r chi.Router) {
	r.Post("/calculator", Calculate)
	r.Post("/to-decimal", ToDecimal)
	r.Post("/from-decimal", FromDecimal)
}
