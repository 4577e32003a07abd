package activities

import (
	"context"
	"errors"

	"github.com/cx-tal-miterani/bluesky-booking/internal/notices"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"go.temporal.io/sdk/activity"
)

// Activity names as registered on the worker.
const (
	PublishNotificationName = "PublishNotification"
)

var ErrMissingSession = errors.New("notification has no session id")

// Activities holds the dependencies of the booking activities
type Activities struct {
	notifier notices.Notifier
}

func NewActivities(notifier notices.Notifier) *Activities {
	return &Activities{notifier: notifier}
}

// PublishNotification delivers a notification to the session that started the booking
func (a *Activities) PublishNotification(ctx context.Context, input models.PublishNotificationInput) error {
	logger := activity.GetLogger(ctx)
	if input.SessionID == "" {
		return ErrMissingSession
	}
	logger.Info("Publishing notification", "sessionId", input.SessionID, "title", input.Notification.Title)
	a.notifier.Notify(input.SessionID, input.Notification)
	return nil
}
