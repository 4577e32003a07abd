package eligibility

import (
	"testing"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsSeatSelectable(t *testing.T) {
	tomorrow := day(2026, 10, 16)

	tests := []struct {
		name   string
		order  models.Order
		strict bool
		any    bool
	}{
		{
			name:   "confirmed future unassigned",
			order:  models.Order{Status: models.OrderStatusConfirmed, Date: tomorrow, Seat: models.Unassigned()},
			strict: true,
			any:    true,
		},
		{
			name:   "unset seat counts as unassigned",
			order:  models.Order{Status: models.OrderStatusConfirmed, Date: tomorrow},
			strict: true,
			any:    true,
		},
		{
			name:   "pending future unassigned",
			order:  models.Order{Status: models.OrderStatusPending, Date: tomorrow, Seat: models.Unassigned()},
			strict: false,
			any:    true,
		},
		{
			name:   "already seated",
			order:  models.Order{Status: models.OrderStatusConfirmed, Date: tomorrow, Seat: models.SingleSeat("1A")},
			strict: false,
			any:    false,
		},
		{
			name:   "voided placeholder",
			order:  models.Order{Status: models.OrderStatusCancelled, Date: tomorrow, Seat: models.SeatAssignment{Placeholder: models.SeatPlaceholderVoided}},
			strict: false,
			any:    false,
		},
		{
			name:   "flight today",
			order:  models.Order{Status: models.OrderStatusConfirmed, Date: day(2026, 10, 15), Seat: models.Unassigned()},
			strict: false,
			any:    false,
		},
		{
			name:   "flight in the past",
			order:  models.Order{Status: models.OrderStatusConfirmed, Date: day(2024, 1, 20), Seat: models.Unassigned()},
			strict: false,
			any:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.strict, New(StrictConfirmedOnly).IsSeatSelectable(tt.order, now))
			assert.Equal(t, tt.any, New(AnyActiveStatus).IsSeatSelectable(tt.order, now))
		})
	}
}

func TestIsSeatSelectable_NeverOnOrBeforeNow(t *testing.T) {
	statuses := []models.OrderStatus{
		models.OrderStatusPending, models.OrderStatusConfirmed,
		models.OrderStatusCompleted, models.OrderStatusCancelled,
	}
	for offset := 0; offset < 30; offset++ {
		date := day(2026, 10, 15).AddDate(0, 0, -offset)
		for _, s := range statuses {
			o := models.Order{Status: s, Date: date}
			assert.False(t, New(StrictConfirmedOnly).IsSeatSelectable(o, now))
			assert.False(t, New(AnyActiveStatus).IsSeatSelectable(o, now))
		}
	}
}

func TestFirst(t *testing.T) {
	orders := []models.Order{
		{ID: "BT1", Status: models.OrderStatusPending, Date: day(2026, 11, 1)},
		{ID: "BT2", Status: models.OrderStatusConfirmed, Date: day(2026, 11, 2)},
	}

	assert.Equal(t, 1, New(StrictConfirmedOnly).First(orders, now))
	assert.Equal(t, 0, New(AnyActiveStatus).First(orders, now))
	assert.Equal(t, -1, New(StrictConfirmedOnly).First(orders[:1], now))
}

func TestIsSeatSelectable_ComparesUTCCalendarDays(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*60*60)
	// 02:00 on the 16th in Shanghai is still the 15th in UTC.
	local := time.Date(2026, 10, 16, 2, 0, 0, 0, shanghai)
	p := New(AnyActiveStatus)

	assert.False(t, p.IsSeatSelectable(models.Order{Date: day(2026, 10, 15), Seat: models.Unassigned()}, local))
	assert.True(t, p.IsSeatSelectable(models.Order{Date: day(2026, 10, 16), Seat: models.Unassigned()}, local))
}
