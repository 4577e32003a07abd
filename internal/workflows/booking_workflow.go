package workflows

import (
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/internal/activities"
	"github.com/cx-tal-miterani/bluesky-booking/internal/notices"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// DefaultRedirectDelay is used when the input carries no delay
const DefaultRedirectDelay = time.Second

// BookingWorkflow announces the chosen passenger, waits for the redirect delay
// and then tells the session to proceed to payment. A cancel signal or a
// workflow cancellation during the wait ends it without the second notice.
func BookingWorkflow(ctx workflow.Context, input models.BookingWorkflowInput) (*models.BookingWorkflowResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Booking workflow started", "bookingId", input.BookingID, "flight", input.FlightNumber)

	activityOpts := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOpts)

	state := models.BookingWorkflowState{
		BookingID:   input.BookingID,
		Status:      models.BookingStatusPassengerSelected,
		LastUpdated: workflow.Now(ctx),
	}
	err := workflow.SetQueryHandler(ctx, models.QueryGetState, func() (models.BookingWorkflowState, error) {
		return state, nil
	})
	if err != nil {
		return nil, err
	}

	err = workflow.ExecuteActivity(ctx, activities.PublishNotificationName, models.PublishNotificationInput{
		SessionID:    input.SessionID,
		Notification: notices.PassengerSelected(input.FlightNumber, input.Passenger, workflow.Now(ctx)),
	}).Get(ctx, nil)
	if err != nil {
		logger.Error("Failed to publish passenger notification", "error", err)
	}

	delay := input.RedirectDelay
	if delay <= 0 {
		delay = DefaultRedirectDelay
	}

	cancelCh := workflow.GetSignalChannel(ctx, models.SignalCancelBooking)
	cancelled := false

	selector := workflow.NewSelector(ctx)
	selector.AddReceive(cancelCh, func(c workflow.ReceiveChannel, more bool) {
		var signal models.CancelBookingSignal
		c.Receive(ctx, &signal)
		logger.Info("Booking cancelled", "reason", signal.Reason)
		cancelled = true
	})
	selector.AddFuture(workflow.NewTimer(ctx, delay), func(f workflow.Future) {
		if err := f.Get(ctx, nil); err != nil {
			cancelled = true
		}
	})
	selector.Select(ctx)

	if cancelled || ctx.Err() != nil {
		state.Status = models.BookingStatusCancelled
		state.LastUpdated = workflow.Now(ctx)
		return &models.BookingWorkflowResult{BookingID: input.BookingID, Status: state.Status}, nil
	}

	err = workflow.ExecuteActivity(ctx, activities.PublishNotificationName, models.PublishNotificationInput{
		SessionID:    input.SessionID,
		Notification: notices.PaymentRedirect(workflow.Now(ctx)),
	}).Get(ctx, nil)
	if err != nil {
		logger.Error("Failed to publish payment notification", "error", err)
	}

	state.Status = models.BookingStatusAwaitingPayment
	state.LastUpdated = workflow.Now(ctx)
	logger.Info("Booking awaiting payment", "bookingId", input.BookingID)

	return &models.BookingWorkflowResult{BookingID: input.BookingID, Status: state.Status}, nil
}
