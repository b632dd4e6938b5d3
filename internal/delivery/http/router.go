package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"corecodecamp/internal/delivery/http/controllers"
	"corecodecamp/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes and wraps it
// with recovery, request logging, and CORS.
func NewRouter(logger *slog.Logger, allowedOrigins []string, campController *controllers.CampController, healthController *controllers.HealthController) http.Handler {
	mux := http.NewServeMux()

	// Camps
	mux.HandleFunc("GET /api/camps", campController.ListCamps)
	mux.HandleFunc("GET /api/camps/{$}", campController.ListCamps)
	mux.HandleFunc("GET /api/camps/search", campController.SearchCamps)
	mux.HandleFunc("GET /api/camps/{moniker}", campController.GetCamp)
	mux.HandleFunc("POST /api/camps", campController.CreateCamp)
	mux.HandleFunc("POST /api/camps/{$}", campController.CreateCamp)
	mux.HandleFunc("PUT /api/camps/{moniker}", campController.UpdateCamp)
	mux.HandleFunc("DELETE /api/camps/{moniker}", campController.DeleteCamp)

	// Talks
	mux.HandleFunc("GET /api/camps/{moniker}/talks", campController.ListTalks)
	mux.HandleFunc("GET /api/camps/{moniker}/talks/{talkID}", campController.GetTalk)

	// Health
	mux.HandleFunc("GET /healthz", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(allowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.Recover(logger, handler)
	return handler
}
