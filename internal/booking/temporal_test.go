package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
)

func TestTemporalStarter_StartAndCancel(t *testing.T) {
	c := &mocks.Client{}
	s := NewTemporalStarter(c, "bluesky-booking-queue", time.Second)

	c.On("ExecuteWorkflow", mock.Anything,
		mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
			return o.TaskQueue == "bluesky-booking-queue" && strings.HasPrefix(o.ID, "booking-")
		}),
		mock.Anything,
		mock.MatchedBy(func(in models.BookingWorkflowInput) bool {
			return in.SessionID == "s1" && in.Passenger == "Li Si" && in.RedirectDelay == time.Second
		}),
	).Return(&mocks.WorkflowRun{}, nil).Once()

	h, err := s.Start(context.Background(), Request{SessionID: "s1", FlightNumber: "MU5678", Passenger: "Li Si"})
	require.NoError(t, err)

	c.On("SignalWorkflow", mock.Anything, "booking-"+h.ID(), "", models.SignalCancelBooking, mock.Anything).Return(nil).Once()
	require.NoError(t, h.Cancel(context.Background()))

	c.AssertExpectations(t)
}

func TestTemporalStarter_StartError(t *testing.T) {
	c := &mocks.Client{}
	s := NewTemporalStarter(c, "q", time.Second)
	boom := errors.New("unavailable")

	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := s.Start(context.Background(), Request{SessionID: "s1", FlightNumber: "MU5678", Passenger: "Li Si"})

	assert.ErrorIs(t, err, boom)
}
