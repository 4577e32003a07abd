package mocks

import (
	"context"

	"github.com/cx-tal-miterani/bluesky-booking/internal/app"
	"github.com/cx-tal-miterani/bluesky-booking/internal/auth"
	"github.com/cx-tal-miterani/bluesky-booking/internal/navigation"
	"github.com/cx-tal-miterani/bluesky-booking/internal/service"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/stretchr/testify/mock"
)

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

var _ service.BookingService = (*MockBookingService)(nil)

func (m *MockBookingService) OpenSession(ctx context.Context, sessionID, path string) (*app.State, error) {
	args := m.Called(ctx, sessionID, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) GetState(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) Navigate(ctx context.Context, sessionID string, view navigation.View) (*app.State, error) {
	args := m.Called(ctx, sessionID, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) ChangePath(ctx context.Context, sessionID, path string) (*app.State, error) {
	args := m.Called(ctx, sessionID, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) Back(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) Scroll(ctx context.Context, sessionID string, y int) (*app.State, error) {
	args := m.Called(ctx, sessionID, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) ToggleTheme(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) Search(ctx context.Context, sessionID string, q models.SearchQuery) (*app.State, error) {
	args := m.Called(ctx, sessionID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) Login(ctx context.Context, sessionID, email, password string) (*app.State, error) {
	args := m.Called(ctx, sessionID, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) Logout(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) Register(ctx context.Context, sessionID string, req auth.RegistrationRequest) (*app.State, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) GoToSeatSelection(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) ListOrders(ctx context.Context, sessionID string, screen app.Screen, status, text string) (*app.OrderList, error) {
	args := m.Called(ctx, sessionID, screen, status, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.OrderList), args.Error(1)
}

func (m *MockBookingService) OpenSeatDialog(ctx context.Context, sessionID string, screen app.Screen, orderID string) (*app.State, error) {
	args := m.Called(ctx, sessionID, screen, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) QuickSeatSelect(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) SelectSeat(ctx context.Context, sessionID, seatCode string) (*app.State, error) {
	args := m.Called(ctx, sessionID, seatCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) CloseSeatDialog(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) BeginProfileEdit(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) UpdateProfile(ctx context.Context, sessionID string, fields map[string]any) (*app.State, error) {
	args := m.Called(ctx, sessionID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) SaveProfile(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) CancelProfileEdit(ctx context.Context, sessionID string) (*app.State, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) BookFlight(ctx context.Context, sessionID string, offerID int) (*app.State, error) {
	args := m.Called(ctx, sessionID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) ChoosePassenger(ctx context.Context, sessionID, passenger string) (*app.State, error) {
	args := m.Called(ctx, sessionID, passenger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.State), args.Error(1)
}

func (m *MockBookingService) GetNotices(ctx context.Context) []models.Notice {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Notice)
}

func (m *MockBookingService) GetCities(ctx context.Context) []string {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
