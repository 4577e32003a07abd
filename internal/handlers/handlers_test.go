package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cx-tal-miterani/bluesky-booking/internal/app"
	"github.com/cx-tal-miterani/bluesky-booking/internal/auth"
	"github.com/cx-tal-miterani/bluesky-booking/internal/navigation"
	"github.com/cx-tal-miterani/bluesky-booking/internal/orders"
	"github.com/cx-tal-miterani/bluesky-booking/internal/profile"
	"github.com/cx-tal-miterani/bluesky-booking/internal/seats"
	"github.com/cx-tal-miterani/bluesky-booking/internal/service/mocks"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSession = "2b1c6f0e-7d7a-4c39-9a55-3f2f8b0e6a11"

func setupTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sessions", h.OpenSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", h.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/navigate", h.Navigate).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/search", h.Search).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/orders", h.ListOrders).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/seat-dialog", h.OpenSeatDialog).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/seat-dialog/select", h.SelectSeat).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/profile", h.UpdateProfile).Methods(http.MethodPatch)
	api.HandleFunc("/notices", h.GetNotices).Methods(http.MethodGet)
	return r
}

func newTestHandler() (*mocks.MockBookingService, *mux.Router) {
	mockService := new(mocks.MockBookingService)
	return mockService, setupTestRouter(NewHandler(mockService, logger.NewNop()))
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandler_OpenSession(t *testing.T) {
	mockService, router := newTestHandler()
	mockService.On("OpenSession", mock.Anything, "", "/").
		Return(&app.State{SessionID: testSession, View: navigation.ViewHome, Path: "/"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", jsonBody(t, OpenSessionRequest{}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var st app.State
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&st))
	assert.Equal(t, testSession, st.SessionID)
	assert.Equal(t, navigation.ViewHome, st.View)
	mockService.AssertExpectations(t)
}

func TestHandler_GetSession(t *testing.T) {
	tests := []struct {
		name           string
		mockReturn     *app.State
		mockError      error
		expectedStatus int
	}{
		{
			name:           "session found",
			mockReturn:     &app.State{SessionID: testSession, View: navigation.ViewDashboard},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "session not found",
			mockError:      fmt.Errorf("%w: %s", app.ErrSessionNotFound, testSession),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newTestHandler()
			mockService.On("GetState", mock.Anything, testSession).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+testSession, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Navigate(t *testing.T) {
	mockService, router := newTestHandler()
	mockService.On("Navigate", mock.Anything, testSession, navigation.ViewOrders).
		Return(&app.State{View: navigation.ViewOrders, Path: "/orders"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+testSession+"/navigate", jsonBody(t, NavigateRequest{View: navigation.ViewOrders}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_Search(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockBookingService)
		expectedStatus int
	}{
		{
			name: "valid query",
			body: models.SearchQuery{Origin: "Beijing", Destination: "Shanghai"},
			setupMock: func(m *mocks.MockBookingService) {
				m.On("Search", mock.Anything, testSession, mock.MatchedBy(func(q models.SearchQuery) bool {
					return q.Origin == "Beijing" && q.Destination == "Shanghai"
				})).Return(&app.State{View: navigation.ViewResults}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "empty cities are forwarded",
			body: models.SearchQuery{},
			setupMock: func(m *mocks.MockBookingService) {
				m.On("Search", mock.Anything, testSession, mock.MatchedBy(func(q models.SearchQuery) bool {
					return q.Origin == "" && q.Destination == ""
				})).Return(&app.State{View: navigation.ViewResults}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "too many passengers",
			body: models.SearchQuery{Origin: "Beijing", Destination: "Shanghai", Passengers: 12},
			setupMock: func(m *mocks.MockBookingService) {
				m.On("Search", mock.Anything, testSession, mock.Anything).Return(nil, app.ErrInvalidQuery)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newTestHandler()
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+testSession+"/search", jsonBody(t, tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	mockService, router := newTestHandler()
	mockService.On("Login", mock.Anything, testSession, auth.DemoEmail, auth.DemoPassword).
		Return(&app.State{Login: app.LoginState{Loading: true}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+testSession+"/login",
		jsonBody(t, LoginRequest{Email: auth.DemoEmail, Password: auth.DemoPassword}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var st app.State
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&st))
	assert.True(t, st.Login.Loading)
	mockService.AssertExpectations(t)
}

func TestHandler_LoginInvalidBody(t *testing.T) {
	mockService, router := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+testSession+"/login", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Register(t *testing.T) {
	mockService, router := newTestHandler()
	reqBody := auth.RegistrationRequest{Email: "a@b.c", Password: "x", ConfirmPassword: "y"}
	mockService.On("Register", mock.Anything, testSession, reqBody).
		Return(nil, &auth.ValidationError{Field: "confirmPassword", Message: "passwords do not match"})

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+testSession+"/register", jsonBody(t, reqBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "passwords do not match")
}

func TestHandler_ListOrders(t *testing.T) {
	mockService, router := newTestHandler()
	list := &app.OrderList{
		Orders: []app.OrderRow{{Order: models.Order{ID: "BT2024003", Status: models.OrderStatusPending}, SeatSelectable: true}},
		Stats:  models.OrderStats{Total: 4, Pending: 1},
	}
	mockService.On("ListOrders", mock.Anything, testSession, app.ScreenOrders, "pending", "shen").Return(list, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+testSession+"/orders?status=pending&q=shen", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Orders []struct {
			ID             string `json:"id"`
			SeatSelectable bool   `json:"seatSelectable"`
		} `json:"orders"`
		Stats models.OrderStats `json:"stats"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "BT2024003", resp.Orders[0].ID)
	assert.True(t, resp.Orders[0].SeatSelectable)
	assert.Equal(t, 4, resp.Stats.Total)
	mockService.AssertExpectations(t)
}

func TestHandler_OpenSeatDialog(t *testing.T) {
	tests := []struct {
		name           string
		body           SeatDialogRequest
		mockError      error
		expectedStatus int
	}{
		{name: "opens", body: SeatDialogRequest{Screen: app.ScreenOrders, OrderID: "BT2024003"}, expectedStatus: http.StatusOK},
		{name: "not selectable", body: SeatDialogRequest{Screen: app.ScreenDashboard, OrderID: "BT2024003"}, mockError: app.ErrNotSelectable, expectedStatus: http.StatusUnprocessableEntity},
		{name: "unknown order", body: SeatDialogRequest{Screen: app.ScreenOrders, OrderID: "BT0"}, mockError: orders.ErrOrderNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newTestHandler()
			var st *app.State
			if tt.mockError == nil {
				st = &app.State{SeatDialog: &app.SeatDialog{OrderID: tt.body.OrderID}}
			}
			mockService.On("OpenSeatDialog", mock.Anything, testSession, tt.body.Screen, tt.body.OrderID).Return(st, tt.mockError)

			req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+testSession+"/seat-dialog", jsonBody(t, tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_SelectSeat(t *testing.T) {
	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{name: "assigned", expectedStatus: http.StatusOK},
		{name: "taken", mockError: fmt.Errorf("%w: 1A", seats.ErrSeatConflict), expectedStatus: http.StatusConflict},
		{name: "off the grid", mockError: seats.ErrInvalidSeat, expectedStatus: http.StatusBadRequest},
		{name: "no dialog", mockError: app.ErrNoSeatDialog, expectedStatus: http.StatusConflict},
		{name: "unexpected", mockError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newTestHandler()
			var st *app.State
			if tt.mockError == nil {
				st = &app.State{}
			}
			mockService.On("SelectSeat", mock.Anything, testSession, "1A").Return(st, tt.mockError)

			req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+testSession+"/seat-dialog/select", jsonBody(t, SelectSeatRequest{Seat: "1A"}))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_UpdateProfile(t *testing.T) {
	mockService, router := newTestHandler()
	mockService.On("UpdateProfile", mock.Anything, testSession, map[string]any{"name": "Li Si"}).
		Return(nil, profile.ErrNotEditing)

	req := httptest.NewRequest(http.MethodPatch, "/api/sessions/"+testSession+"/profile", jsonBody(t, map[string]any{"name": "Li Si"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_GetNotices(t *testing.T) {
	mockService, router := newTestHandler()
	mockService.On("GetNotices", mock.Anything).Return([]models.Notice{{ID: 1, Type: models.NoticeTypeSeat, Title: "Seat selection reminder"}})

	req := httptest.NewRequest(http.MethodGet, "/api/notices", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []models.Notice
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, models.NoticeTypeSeat, resp[0].Type)
}
