package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPersister struct {
	mock.Mock
}

func (m *mockPersister) SaveSeat(ctx context.Context, orderID string, seat models.SeatAssignment) error {
	args := m.Called(ctx, orderID, seat)
	return args.Error(0)
}

func newTestStore() *Store {
	return NewStore(Seed(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)), logger.NewNop())
}

func ids(orders []models.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestStore_FilterAllReturnsFullListInOrder(t *testing.T) {
	s := newTestStore()

	assert.Equal(t, s.List(), s.Filter(models.StatusFilterAll, ""))
	assert.Equal(t, []string{"BT2024001", "BT2024002", "BT2024003", "BT2024004"}, ids(s.Filter(models.StatusFilterAll, "")))
}

func TestStore_Filter(t *testing.T) {
	s := newTestStore()

	tests := []struct {
		name     string
		status   string
		text     string
		expected []string
	}{
		{name: "pending only", status: "pending", text: "", expected: []string{"BT2024003"}},
		{name: "flight number, any case", status: models.StatusFilterAll, text: "mu56", expected: []string{"BT2024002"}},
		{name: "route text", status: models.StatusFilterAll, text: "shenzhen", expected: []string{"BT2024003", "BT2024004"}},
		{name: "order id", status: models.StatusFilterAll, text: "bt2024004", expected: []string{"BT2024004"}},
		{name: "status and text combined", status: "cancelled", text: "guangzhou", expected: []string{}},
		{name: "no match", status: models.StatusFilterAll, text: "zzz", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(s.Filter(tt.status, tt.text)))
		})
	}
}

func TestStore_Update(t *testing.T) {
	s := newTestStore()
	var notified []models.Order
	s.Subscribe(func(o models.Order) { notified = append(notified, o) })

	updated, ok := s.Update(context.Background(), "BT2024002", models.SingleSeat("1A"))

	require.True(t, ok)
	assert.Equal(t, "1A", updated.Seat.String())
	got, _ := s.Get("BT2024002")
	assert.Equal(t, []string{"1A"}, got.Seat.Codes)
	require.Len(t, notified, 1)
	assert.Equal(t, "BT2024002", notified[0].ID)
}

func TestStore_UpdateUnknownIsNoop(t *testing.T) {
	s := newTestStore()
	before := s.List()

	_, ok := s.Update(context.Background(), "BT404", models.SingleSeat("1A"))

	assert.False(t, ok)
	assert.Equal(t, before, s.List())
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s := newTestStore()

	list := s.List()
	list[0].Seat.Codes[0] = "ZZ"

	got, _ := s.Get("BT2024001")
	assert.Equal(t, "12A", got.Seat.Codes[0])
}

func TestStore_PersisterWriteThrough(t *testing.T) {
	p := new(mockPersister)
	s := newTestStore().WithPersister(p)
	ctx := context.Background()

	p.On("SaveSeat", ctx, "BT2024003", models.SingleSeat("2B")).Return(nil).Once()
	p.On("SaveSeat", ctx, "BT2024002", models.SingleSeat("2C")).Return(errors.New("db down")).Once()

	_, ok := s.Update(ctx, "BT2024003", models.SingleSeat("2B"))
	assert.True(t, ok)

	// persistence failures are logged, the in-memory update stands
	updated, ok := s.Update(ctx, "BT2024002", models.SingleSeat("2C"))
	assert.True(t, ok)
	assert.Equal(t, "2C", updated.Seat.String())

	p.AssertExpectations(t)
}

func TestStore_Stats(t *testing.T) {
	st := newTestStore().Stats()

	assert.Equal(t, models.OrderStats{Total: 4, Pending: 1, Confirmed: 1, Completed: 1, Cancelled: 1}, st)
}

func TestStore_Mutate(t *testing.T) {
	s := newTestStore()
	var seen []models.Order
	s.Subscribe(func(o models.Order) { seen = append(seen, o) })

	updated, err := s.Mutate(context.Background(), "BT2024002", func(o models.Order, all []models.Order) (models.Order, error) {
		assert.Len(t, all, 4)
		o.Seat = models.SingleSeat("3C")
		return o, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"3C"}, updated.Seat.Codes)
	require.Len(t, seen, 1)
	got, _ := s.Get("BT2024002")
	assert.Equal(t, "3C", got.Seat.String())
}

func TestStore_MutateErrorLeavesStoreUntouched(t *testing.T) {
	s := newTestStore()
	before := s.List()
	boom := errors.New("rejected")

	_, err := s.Mutate(context.Background(), "BT2024002", func(o models.Order, _ []models.Order) (models.Order, error) {
		return models.Order{}, boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.Mutate(context.Background(), "missing", func(o models.Order, _ []models.Order) (models.Order, error) {
		return o, nil
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, before, s.List())
}

func TestSeed_UsesUTCCalendar(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*60*60)
	seeded := Seed(time.Date(2026, 10, 15, 2, 0, 0, 0, shanghai))

	byID := make(map[string]models.Order, len(seeded))
	for _, o := range seeded {
		assert.Equal(t, time.UTC, o.Date.Location())
		byID[o.ID] = o
	}
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), byID["BT2024002"].Date)
}
