package handler

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/nchindhamani/portfolio-api/internal/repository"
)

// Handler serves the endpoints that need no domain service: root, health
// and CORS.
type Handler struct {
	db             repository.DB
	allowedOrigins []string
}

func New(db repository.DB, allowedOrigins []string) *Handler {
	return &Handler{db: db, allowedOrigins: allowedOrigins}
}

// CORS answers preflight requests and decorates every response with the
// allow headers. A "*" entry allows any origin; since credentials are
// allowed, the request Origin is echoed back instead of a literal "*"
// whenever one is present.
func (h *Handler) CORS(next http.Handler) http.Handler {
	allowAll := slices.Contains(h.allowedOrigins, "*")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		w.Header().Add("Vary", "Origin")
		switch {
		case origin != "" && (allowAll || slices.Contains(h.allowedOrigins, origin)):
			w.Header().Set("Access-Control-Allow-Origin", origin)
		case origin == "" && allowAll:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// errorResponse is the body of every non-2xx response. Detail is either a
// human-readable string or a list of field errors.
type errorResponse struct {
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, detail any) {
	writeJSON(w, status, errorResponse{Error: code, Detail: detail})
}
