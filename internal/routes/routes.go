package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"ATHLETEHUB_BACK-END/internal/handlers"
	"ATHLETEHUB_BACK-END/internal/metrics"
	"ATHLETEHUB_BACK-END/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Athletes *handlers.AthleteHandler
	Health   *handlers.HealthHandler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, h Handlers, gate *middleware.Gate) {
	handle := func(pattern, endpoint string, fn http.HandlerFunc) {
		mux.HandleFunc(pattern, metrics.Middleware(fn, endpoint))
	}
	protected := func(fn http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(fn, gate)
	}

	// Health check routes
	mux.HandleFunc("GET /healthz", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// Authentication routes
	handle("POST /api/auth/register", "register", h.Auth.Register)
	handle("POST /api/auth/login", "login", h.Auth.Login)
	handle("POST /api/auth/reset-password", "reset_password", h.Auth.ResetPassword)

	// Athlete routes
	handle("GET /api/athletes", "list_athletes", h.Athletes.List)
	handle("GET /api/athletes/stats/public", "stats", h.Athletes.Stats)
	handle("GET /api/athletes/profile/me", "get_profile", protected(h.Profile.GetMe))
	handle("PUT /api/athletes/profile", "update_profile", protected(h.Profile.Update))
	handle("POST /api/athletes/video", "add_video", protected(h.Profile.AddVideo))
	handle("DELETE /api/athletes/video/{videoId}", "remove_video", protected(h.Profile.RemoveVideo))
	handle("GET /api/athletes/{id}", "get_athlete", h.Athletes.Get)

	// Observability and docs
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("API is running..."))
}
