package router

import (
	"net/http"
	"strings"

	"sparse-calc/internal/handler"
	"sparse-calc/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	computeHandler *handler.ComputeHandler,
	computationHandler *handler.ComputationHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/compute", computeHandler.Compute)
	mux.HandleFunc("/api/compute/files", computeHandler.ComputeFiles)

	computationRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/computations/") && r.URL.Path != "/api/computations/" {
			computationHandler.GetByID(w, r)
			return
		}
		computationHandler.List(w, r)
	}

	// Register history routes (both with and without trailing slash)
	mux.HandleFunc("/api/computations", computationRouteHandler)
	mux.HandleFunc("/api/computations/", computationRouteHandler)

	// Apply middleware in order: Recovery -> CorrelationID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.CorrelationID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
