package router

import (
	"net/http"

	"github.com/cx-tal-miterani/bluesky-booking/internal/handlers"
	"github.com/cx-tal-miterani/bluesky-booking/internal/websocket"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// Options configure the router's middleware
type Options struct {
	LoginRate  float64
	LoginBurst int
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler, hub *websocket.Hub, states websocket.StateSource, opts Options, log logger.ILogger) *mux.Router {
	r := mux.NewRouter()

	r.Use(recoveryMiddleware(log))
	r.Use(loggingMiddleware(log))
	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Sessions
	api.HandleFunc("/sessions", h.OpenSession).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}", h.GetSession).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/navigate", h.Navigate).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/path", h.ChangePath).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/back", h.Back).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/scroll", h.Scroll).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/theme", h.ToggleTheme).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/search", h.Search).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/seat-trigger", h.GoToSeatSelection).Methods(http.MethodPost, http.MethodOptions)

	// Authentication
	limiter := rate.NewLimiter(rate.Limit(opts.LoginRate), opts.LoginBurst)
	api.Handle("/sessions/{id}/login", rateLimit(limiter, log)(http.HandlerFunc(h.Login))).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/logout", h.Logout).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/register", h.Register).Methods(http.MethodPost, http.MethodOptions)

	// Orders and seats
	api.HandleFunc("/sessions/{id}/orders", h.ListOrders).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/seat-dialog", h.OpenSeatDialog).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/seat-dialog", h.CloseSeatDialog).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/seat-dialog/quick", h.QuickSeatSelect).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/seat-dialog/select", h.SelectSeat).Methods(http.MethodPost, http.MethodOptions)

	// Profile
	api.HandleFunc("/sessions/{id}/profile", h.UpdateProfile).Methods(http.MethodPatch, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/profile/edit", h.BeginProfileEdit).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/profile/save", h.SaveProfile).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/profile/cancel", h.CancelProfileEdit).Methods(http.MethodPost, http.MethodOptions)

	// Bookings
	api.HandleFunc("/sessions/{id}/bookings", h.BookFlight).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}/bookings/passenger", h.ChoosePassenger).Methods(http.MethodPost, http.MethodOptions)

	// Static content
	api.HandleFunc("/notices", h.GetNotices).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/cities", h.GetCities).Methods(http.MethodGet, http.MethodOptions)

	// WebSocket for real-time updates
	api.HandleFunc("/sessions/{id}/ws", websocket.HandleWebSocket(hub, states))

	// Health check
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
