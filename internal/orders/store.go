package orders

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

var ErrOrderNotFound = errors.New("order not found")

// Persister receives every seat change after it is applied in memory.
type Persister interface {
	SaveSeat(ctx context.Context, orderID string, seat models.SeatAssignment) error
}

// Store is the single order collection shared by every screen and session.
type Store struct {
	mu          sync.RWMutex
	orders      []models.Order
	index       map[string]int
	subscribers []func(models.Order)
	persister   Persister
	log         logger.ILogger
}

// NewStore creates a store holding a copy of initial in the given order.
func NewStore(initial []models.Order, log logger.ILogger) *Store {
	s := &Store{
		orders: make([]models.Order, 0, len(initial)),
		index:  make(map[string]int, len(initial)),
		log:    log,
	}
	for _, o := range initial {
		s.index[o.ID] = len(s.orders)
		s.orders = append(s.orders, o.Clone())
	}
	return s
}

// WithPersister enables write-through of seat updates.
func (s *Store) WithPersister(p Persister) *Store {
	s.mu.Lock()
	s.persister = p
	s.mu.Unlock()
	return s
}

// Subscribe registers fn to be called with every updated order.
func (s *Store) Subscribe(fn func(models.Order)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// List returns a snapshot of all orders in insertion order.
func (s *Store) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() []models.Order {
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

func (s *Store) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Order{}, false
	}
	return s.orders[i].Clone(), true
}

// Update replaces the seat of the matching order. Unknown ids are a no-op and
// report false.
func (s *Store) Update(ctx context.Context, orderID string, seat models.SeatAssignment) (models.Order, bool) {
	s.mu.Lock()
	i, ok := s.index[orderID]
	if !ok {
		s.mu.Unlock()
		return models.Order{}, false
	}
	s.orders[i].Seat = seat.Clone()
	updated := s.orders[i].Clone()
	s.mu.Unlock()

	s.publish(ctx, updated)
	return updated, true
}

// Mutate runs fn under the write lock with the current order and a snapshot of
// every order, then stores the seat of the order fn returns. Errors from fn
// leave the store untouched.
func (s *Store) Mutate(ctx context.Context, orderID string, fn func(order models.Order, all []models.Order) (models.Order, error)) (models.Order, error) {
	s.mu.Lock()
	i, ok := s.index[orderID]
	if !ok {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}
	next, err := fn(s.orders[i].Clone(), s.snapshot())
	if err != nil {
		s.mu.Unlock()
		return models.Order{}, err
	}
	s.orders[i].Seat = next.Seat.Clone()
	updated := s.orders[i].Clone()
	s.mu.Unlock()

	s.publish(ctx, updated)
	return updated, nil
}

func (s *Store) publish(ctx context.Context, updated models.Order) {
	s.mu.RLock()
	subs := append([]func(models.Order){}, s.subscribers...)
	persister := s.persister
	s.mu.RUnlock()

	if persister != nil {
		if err := persister.SaveSeat(ctx, updated.ID, updated.Seat); err != nil {
			s.log.Error("failed to persist seat assignment",
				logger.String("orderId", updated.ID), logger.Error(err))
		}
	}
	for _, fn := range subs {
		fn(updated.Clone())
	}
}

// Filter returns orders whose status matches status (or every order for
// models.StatusFilterAll) and whose flight number, route or id contains text,
// ignoring case.
func (s *Store) Filter(status, text string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(text)
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status != models.StatusFilterAll && string(o.Status) != status {
			continue
		}
		if !matches(o, needle) {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

func matches(o models.Order, needle string) bool {
	return strings.Contains(strings.ToLower(o.FlightNumber), needle) ||
		strings.Contains(strings.ToLower(o.Route.String()), needle) ||
		strings.Contains(strings.ToLower(o.ID), needle)
}

// Stats counts orders per status.
func (s *Store) Stats() models.OrderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := models.OrderStats{Total: len(s.orders)}
	for _, o := range s.orders {
		switch o.Status {
		case models.OrderStatusPending:
			st.Pending++
		case models.OrderStatusConfirmed:
			st.Confirmed++
		case models.OrderStatusCompleted:
			st.Completed++
		case models.OrderStatusCancelled:
			st.Cancelled++
		}
	}
	return st
}
