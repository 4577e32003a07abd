package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cx-tal-miterani/bluesky-booking/internal/app"
	"github.com/cx-tal-miterani/bluesky-booking/internal/auth"
	"github.com/cx-tal-miterani/bluesky-booking/internal/booking"
	"github.com/cx-tal-miterani/bluesky-booking/internal/navigation"
	"github.com/cx-tal-miterani/bluesky-booking/internal/orders"
	"github.com/cx-tal-miterani/bluesky-booking/internal/profile"
	"github.com/cx-tal-miterani/bluesky-booking/internal/seats"
	"github.com/cx-tal-miterani/bluesky-booking/internal/service"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/gorilla/mux"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	bookingService service.BookingService
	log            logger.ILogger
}

// NewHandler creates a new Handler instance
func NewHandler(bookingService service.BookingService, log logger.ILogger) *Handler {
	return &Handler{
		bookingService: bookingService,
		log:            log,
	}
}

// Request bodies
type (
	OpenSessionRequest struct {
		SessionID string `json:"sessionId"`
		Path      string `json:"path"`
	}
	NavigateRequest struct {
		View navigation.View `json:"view"`
	}
	PathRequest struct {
		Path string `json:"path"`
	}
	ScrollRequest struct {
		Y int `json:"y"`
	}
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	SeatDialogRequest struct {
		Screen  app.Screen `json:"screen"`
		OrderID string     `json:"orderId"`
	}
	SelectSeatRequest struct {
		Seat string `json:"seat"`
	}
	BookFlightRequest struct {
		OfferID int `json:"offerId"`
	}
	ChoosePassengerRequest struct {
		Passenger string `json:"passenger"`
	}
)

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var validation *auth.ValidationError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrSessionNotFound), errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, app.ErrNoSelectableOrder):
		return http.StatusNotFound
	case errors.Is(err, seats.ErrSeatConflict), errors.Is(err, profile.ErrNotEditing),
		errors.Is(err, app.ErrNoSeatDialog), errors.Is(err, app.ErrNoPassengerPicker):
		return http.StatusConflict
	case errors.Is(err, app.ErrNotSelectable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, seats.ErrInvalidSeat), errors.Is(err, app.ErrUnknownView),
		errors.Is(err, app.ErrUnknownScreen), errors.Is(err, app.ErrInvalidStatus),
		errors.Is(err, app.ErrInvalidQuery), errors.Is(err, app.ErrUnknownOffer),
		errors.Is(err, app.ErrInvalidSessionID), errors.Is(err, booking.ErrUnknownPassenger):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrBookingDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", logger.String("path", r.URL.Path), logger.Error(err))
		respondError(w, status, "Internal server error")
		return
	}
	respondError(w, status, err.Error())
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func sessionID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

func (h *Handler) respondState(w http.ResponseWriter, r *http.Request, status int, st *app.State, err error) {
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, status, st)
}

// OpenSession handles POST /api/sessions
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Path == "" {
		req.Path = "/"
	}
	st, err := h.bookingService.OpenSession(r.Context(), req.SessionID, req.Path)
	h.respondState(w, r, http.StatusCreated, st, err)
}

// GetSession handles GET /api/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.GetState(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// Navigate handles POST /api/sessions/{id}/navigate
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.bookingService.Navigate(r.Context(), sessionID(r), req.View)
	h.respondState(w, r, http.StatusOK, st, err)
}

// ChangePath handles POST /api/sessions/{id}/path
func (h *Handler) ChangePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.bookingService.ChangePath(r.Context(), sessionID(r), req.Path)
	h.respondState(w, r, http.StatusOK, st, err)
}

// Back handles POST /api/sessions/{id}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.Back(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// Scroll handles POST /api/sessions/{id}/scroll
func (h *Handler) Scroll(w http.ResponseWriter, r *http.Request) {
	var req ScrollRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.bookingService.Scroll(r.Context(), sessionID(r), req.Y)
	h.respondState(w, r, http.StatusOK, st, err)
}

// ToggleTheme handles POST /api/sessions/{id}/theme
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.ToggleTheme(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// Search handles POST /api/sessions/{id}/search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchQuery
	if !decode(w, r, &req) {
		return
	}
	st, err := h.bookingService.Search(r.Context(), sessionID(r), req)
	h.respondState(w, r, http.StatusOK, st, err)
}

// Login handles POST /api/sessions/{id}/login. The outcome arrives on the
// session state once the check completes.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	st, err := h.bookingService.Login(r.Context(), sessionID(r), req.Email, req.Password)
	h.respondState(w, r, http.StatusAccepted, st, err)
}

// Logout handles POST /api/sessions/{id}/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.Logout(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// Register handles POST /api/sessions/{id}/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegistrationRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.bookingService.Register(r.Context(), sessionID(r), req)
	h.respondState(w, r, http.StatusOK, st, err)
}

// GoToSeatSelection handles POST /api/sessions/{id}/seat-trigger
func (h *Handler) GoToSeatSelection(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.GoToSeatSelection(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// ListOrders handles GET /api/sessions/{id}/orders?screen=&status=&q=
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	screen := app.Screen(q.Get("screen"))
	if screen == "" {
		screen = app.ScreenOrders
	}
	list, err := h.bookingService.ListOrders(r.Context(), sessionID(r), screen, q.Get("status"), q.Get("q"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// OpenSeatDialog handles POST /api/sessions/{id}/seat-dialog
func (h *Handler) OpenSeatDialog(w http.ResponseWriter, r *http.Request) {
	var req SeatDialogRequest
	if !decode(w, r, &req) {
		return
	}
	if req.OrderID == "" {
		respondError(w, http.StatusBadRequest, "Order ID is required")
		return
	}
	st, err := h.bookingService.OpenSeatDialog(r.Context(), sessionID(r), req.Screen, req.OrderID)
	h.respondState(w, r, http.StatusOK, st, err)
}

// QuickSeatSelect handles POST /api/sessions/{id}/seat-dialog/quick
func (h *Handler) QuickSeatSelect(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.QuickSeatSelect(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// SelectSeat handles POST /api/sessions/{id}/seat-dialog/select
func (h *Handler) SelectSeat(w http.ResponseWriter, r *http.Request) {
	var req SelectSeatRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.bookingService.SelectSeat(r.Context(), sessionID(r), req.Seat)
	h.respondState(w, r, http.StatusOK, st, err)
}

// CloseSeatDialog handles DELETE /api/sessions/{id}/seat-dialog
func (h *Handler) CloseSeatDialog(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.CloseSeatDialog(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// BeginProfileEdit handles POST /api/sessions/{id}/profile/edit
func (h *Handler) BeginProfileEdit(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.BeginProfileEdit(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// UpdateProfile handles PATCH /api/sessions/{id}/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if !decode(w, r, &fields) {
		return
	}
	st, err := h.bookingService.UpdateProfile(r.Context(), sessionID(r), fields)
	h.respondState(w, r, http.StatusOK, st, err)
}

// SaveProfile handles POST /api/sessions/{id}/profile/save
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.SaveProfile(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// CancelProfileEdit handles POST /api/sessions/{id}/profile/cancel
func (h *Handler) CancelProfileEdit(w http.ResponseWriter, r *http.Request) {
	st, err := h.bookingService.CancelProfileEdit(r.Context(), sessionID(r))
	h.respondState(w, r, http.StatusOK, st, err)
}

// BookFlight handles POST /api/sessions/{id}/bookings
func (h *Handler) BookFlight(w http.ResponseWriter, r *http.Request) {
	var req BookFlightRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.bookingService.BookFlight(r.Context(), sessionID(r), req.OfferID)
	h.respondState(w, r, http.StatusOK, st, err)
}

// ChoosePassenger handles POST /api/sessions/{id}/bookings/passenger
func (h *Handler) ChoosePassenger(w http.ResponseWriter, r *http.Request) {
	var req ChoosePassengerRequest
	if !decode(w, r, &req) {
		return
	}
	st, err := h.bookingService.ChoosePassenger(r.Context(), sessionID(r), req.Passenger)
	h.respondState(w, r, http.StatusAccepted, st, err)
}

// GetNotices handles GET /api/notices
func (h *Handler) GetNotices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.GetNotices(r.Context()))
}

// GetCities handles GET /api/cities
func (h *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.GetCities(r.Context()))
}
