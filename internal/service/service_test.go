package service

import (
	"context"
	"testing"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/internal/app"
	"github.com/cx-tal-miterani/bluesky-booking/internal/navigation"
	"github.com/cx-tal-miterani/bluesky-booking/internal/orders"
	"github.com/cx-tal-miterani/bluesky-booking/internal/timer"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) BookingService {
	t.Helper()
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	reg := app.NewRegistry(app.Deps{
		Orders:     orders.NewStore(orders.Seed(now), logger.NewNop()),
		Scheduler:  timer.NewManual(),
		Log:        logger.NewNop(),
		Now:        func() time.Time { return now },
		LoginDelay: time.Second,
	})
	t.Cleanup(func() { reg.Close(context.Background()) })
	return NewBookingService(reg)
}

func TestBookingService_SessionLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	st, err := svc.OpenSession(ctx, "", "/search")
	require.NoError(t, err)
	assert.Equal(t, navigation.ViewSearch, st.View)
	require.NotEmpty(t, st.SessionID)

	st, err = svc.Navigate(ctx, st.SessionID, navigation.ViewOrders)
	require.NoError(t, err)
	assert.Equal(t, "/orders", st.Path)

	list, err := svc.ListOrders(ctx, st.SessionID, app.ScreenOrders, "all", "")
	require.NoError(t, err)
	assert.Len(t, list.Orders, 4)

	st, err = svc.OpenSeatDialog(ctx, st.SessionID, app.ScreenOrders, "BT2024003")
	require.NoError(t, err)
	require.NotNil(t, st.SeatDialog)
}

func TestBookingService_UnknownSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetState(ctx, "missing")
	assert.ErrorIs(t, err, app.ErrSessionNotFound)

	_, err = svc.ListOrders(ctx, "missing", app.ScreenOrders, "all", "")
	assert.ErrorIs(t, err, app.ErrSessionNotFound)
}

func TestBookingService_StaticContent(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.GetNotices(context.Background()), 3)
	assert.Contains(t, svc.GetCities(context.Background()), "Beijing")
}
