// Package booking runs the passenger-to-payment flow started from the
// search results, either on a local timer or as a Temporal workflow.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/internal/notices"
	"github.com/cx-tal-miterani/bluesky-booking/internal/timer"
	"github.com/google/uuid"
)

var ErrUnknownPassenger = errors.New("unknown passenger")

// Passengers offered by the passenger picker.
var passengers = []string{"Zhang San", "Li Si", "Wang Wu"}

func Passengers() []string {
	return append([]string(nil), passengers...)
}

// ValidPassenger reports whether name is one of the offered passengers.
func ValidPassenger(name string) bool {
	for _, p := range passengers {
		if p == name {
			return true
		}
	}
	return false
}

type Request struct {
	SessionID    string
	FlightNumber string
	Passenger    string
}

// Handle identifies a started booking.
type Handle interface {
	ID() string
	Cancel(ctx context.Context) error
}

type Starter interface {
	Start(ctx context.Context, req Request) (Handle, error)
}

// LocalStarter sends the passenger notice right away and the payment notice
// after the redirect delay. Both go through the scheduler, so Start never
// calls the notifier on the caller's goroutine.
type LocalStarter struct {
	scheduler timer.Scheduler
	notifier  notices.Notifier
	delay     time.Duration
	clock     func() time.Time
}

func NewLocalStarter(scheduler timer.Scheduler, notifier notices.Notifier, delay time.Duration) *LocalStarter {
	return &LocalStarter{
		scheduler: scheduler,
		notifier:  notifier,
		delay:     delay,
		clock:     time.Now,
	}
}

func (s *LocalStarter) Start(_ context.Context, req Request) (Handle, error) {
	if !ValidPassenger(req.Passenger) {
		return nil, ErrUnknownPassenger
	}
	s.scheduler.Schedule(0, func() {
		s.notifier.Notify(req.SessionID, notices.PassengerSelected(req.FlightNumber, req.Passenger, s.clock()))
	})
	task := s.scheduler.Schedule(s.delay, func() {
		s.notifier.Notify(req.SessionID, notices.PaymentRedirect(s.clock()))
	})
	return &localHandle{id: uuid.NewString(), task: task}, nil
}

type localHandle struct {
	id   string
	task timer.Task
}

func (h *localHandle) ID() string {
	return h.id
}

func (h *localHandle) Cancel(context.Context) error {
	h.task.Cancel()
	return nil
}
