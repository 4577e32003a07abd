package service

import (
	"context"

	"github.com/cx-tal-miterani/bluesky-booking/internal/app"
	"github.com/cx-tal-miterani/bluesky-booking/internal/auth"
	"github.com/cx-tal-miterani/bluesky-booking/internal/navigation"
	"github.com/cx-tal-miterani/bluesky-booking/internal/notices"
	"github.com/cx-tal-miterani/bluesky-booking/internal/search"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

// BookingService defines the booking service interface
type BookingService interface {
	OpenSession(ctx context.Context, sessionID, path string) (*app.State, error)
	GetState(ctx context.Context, sessionID string) (*app.State, error)
	Navigate(ctx context.Context, sessionID string, view navigation.View) (*app.State, error)
	ChangePath(ctx context.Context, sessionID, path string) (*app.State, error)
	Back(ctx context.Context, sessionID string) (*app.State, error)
	Scroll(ctx context.Context, sessionID string, y int) (*app.State, error)
	ToggleTheme(ctx context.Context, sessionID string) (*app.State, error)
	Search(ctx context.Context, sessionID string, q models.SearchQuery) (*app.State, error)
	Login(ctx context.Context, sessionID, email, password string) (*app.State, error)
	Logout(ctx context.Context, sessionID string) (*app.State, error)
	Register(ctx context.Context, sessionID string, req auth.RegistrationRequest) (*app.State, error)
	GoToSeatSelection(ctx context.Context, sessionID string) (*app.State, error)
	ListOrders(ctx context.Context, sessionID string, screen app.Screen, status, text string) (*app.OrderList, error)
	OpenSeatDialog(ctx context.Context, sessionID string, screen app.Screen, orderID string) (*app.State, error)
	QuickSeatSelect(ctx context.Context, sessionID string) (*app.State, error)
	SelectSeat(ctx context.Context, sessionID, seatCode string) (*app.State, error)
	CloseSeatDialog(ctx context.Context, sessionID string) (*app.State, error)
	BeginProfileEdit(ctx context.Context, sessionID string) (*app.State, error)
	UpdateProfile(ctx context.Context, sessionID string, fields map[string]any) (*app.State, error)
	SaveProfile(ctx context.Context, sessionID string) (*app.State, error)
	CancelProfileEdit(ctx context.Context, sessionID string) (*app.State, error)
	BookFlight(ctx context.Context, sessionID string, offerID int) (*app.State, error)
	ChoosePassenger(ctx context.Context, sessionID, passenger string) (*app.State, error)
	GetNotices(ctx context.Context) []models.Notice
	GetCities(ctx context.Context) []string
}

// bookingServiceImpl implements BookingService
type bookingServiceImpl struct {
	registry *app.Registry
}

// NewBookingService creates a new BookingService
func NewBookingService(registry *app.Registry) BookingService {
	return &bookingServiceImpl{registry: registry}
}

type action func(ctx context.Context, a *app.App) (app.State, error)

// do resolves the session and runs fn. The state is returned even when fn
// fails so callers can show it next to the error.
func (s *bookingServiceImpl) do(ctx context.Context, sessionID string, fn action) (*app.State, error) {
	a, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	st, err := fn(ctx, a)
	return &st, err
}

func (s *bookingServiceImpl) OpenSession(ctx context.Context, sessionID, path string) (*app.State, error) {
	_, st, err := s.registry.Open(ctx, sessionID, path)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *bookingServiceImpl) GetState(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.State(ctx)
	})
}

func (s *bookingServiceImpl) Navigate(ctx context.Context, sessionID string, view navigation.View) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.Navigate(ctx, view)
	})
}

func (s *bookingServiceImpl) ChangePath(ctx context.Context, sessionID, path string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.PathChanged(ctx, path)
	})
}

func (s *bookingServiceImpl) Back(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.Back(ctx)
	})
}

func (s *bookingServiceImpl) Scroll(ctx context.Context, sessionID string, y int) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.Scroll(ctx, y)
	})
}

func (s *bookingServiceImpl) ToggleTheme(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.ToggleDarkMode(ctx)
	})
}

func (s *bookingServiceImpl) Search(ctx context.Context, sessionID string, q models.SearchQuery) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.Search(ctx, q)
	})
}

func (s *bookingServiceImpl) Login(ctx context.Context, sessionID, email, password string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.Login(ctx, email, password)
	})
}

func (s *bookingServiceImpl) Logout(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.Logout(ctx)
	})
}

func (s *bookingServiceImpl) Register(ctx context.Context, sessionID string, req auth.RegistrationRequest) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.Register(ctx, req)
	})
}

func (s *bookingServiceImpl) GoToSeatSelection(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.GoToSeatSelection(ctx)
	})
}

func (s *bookingServiceImpl) ListOrders(ctx context.Context, sessionID string, screen app.Screen, status, text string) (*app.OrderList, error) {
	a, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	list, err := a.Orders(ctx, screen, status, text)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *bookingServiceImpl) OpenSeatDialog(ctx context.Context, sessionID string, screen app.Screen, orderID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.OpenSeatDialog(ctx, screen, orderID)
	})
}

func (s *bookingServiceImpl) QuickSeatSelect(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.QuickSeatSelect(ctx)
	})
}

func (s *bookingServiceImpl) SelectSeat(ctx context.Context, sessionID, seatCode string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.SelectSeat(ctx, seatCode)
	})
}

func (s *bookingServiceImpl) CloseSeatDialog(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.CloseSeatDialog(ctx)
	})
}

func (s *bookingServiceImpl) BeginProfileEdit(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.BeginEdit(ctx)
	})
}

func (s *bookingServiceImpl) UpdateProfile(ctx context.Context, sessionID string, fields map[string]any) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.ApplyProfile(ctx, fields)
	})
}

func (s *bookingServiceImpl) SaveProfile(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.SaveProfile(ctx)
	})
}

func (s *bookingServiceImpl) CancelProfileEdit(ctx context.Context, sessionID string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.CancelEdit(ctx)
	})
}

func (s *bookingServiceImpl) BookFlight(ctx context.Context, sessionID string, offerID int) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.BookFlight(ctx, offerID)
	})
}

func (s *bookingServiceImpl) ChoosePassenger(ctx context.Context, sessionID, passenger string) (*app.State, error) {
	return s.do(ctx, sessionID, func(ctx context.Context, a *app.App) (app.State, error) {
		return a.ChoosePassenger(ctx, passenger)
	})
}

func (s *bookingServiceImpl) GetNotices(ctx context.Context) []models.Notice {
	return notices.Feed()
}

func (s *bookingServiceImpl) GetCities(ctx context.Context) []string {
	return search.Cities()
}
