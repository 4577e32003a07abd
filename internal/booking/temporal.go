package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/internal/workflows"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
)

// TemporalStarter runs each booking as a BookingWorkflow execution.
type TemporalStarter struct {
	client    client.Client
	taskQueue string
	delay     time.Duration
}

func NewTemporalStarter(c client.Client, taskQueue string, delay time.Duration) *TemporalStarter {
	return &TemporalStarter{client: c, taskQueue: taskQueue, delay: delay}
}

func workflowID(bookingID string) string {
	return "booking-" + bookingID
}

func (s *TemporalStarter) Start(ctx context.Context, req Request) (Handle, error) {
	if !ValidPassenger(req.Passenger) {
		return nil, ErrUnknownPassenger
	}
	bookingID := uuid.NewString()
	opts := client.StartWorkflowOptions{
		ID:        workflowID(bookingID),
		TaskQueue: s.taskQueue,
	}
	input := models.BookingWorkflowInput{
		BookingID:     bookingID,
		SessionID:     req.SessionID,
		FlightNumber:  req.FlightNumber,
		Passenger:     req.Passenger,
		RedirectDelay: s.delay,
	}
	if _, err := s.client.ExecuteWorkflow(ctx, opts, workflows.BookingWorkflow, input); err != nil {
		return nil, fmt.Errorf("failed to start booking workflow: %w", err)
	}
	return &temporalHandle{id: bookingID, client: s.client}, nil
}

type temporalHandle struct {
	id     string
	client client.Client
}

func (h *temporalHandle) ID() string {
	return h.id
}

func (h *temporalHandle) Cancel(ctx context.Context) error {
	err := h.client.SignalWorkflow(ctx, workflowID(h.id), "", models.SignalCancelBooking, models.CancelBookingSignal{Reason: "cancelled by session"})
	if err != nil {
		return fmt.Errorf("failed to signal booking workflow: %w", err)
	}
	return nil
}
