package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/internal/orders"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	url := os.Getenv("BLUESKY_DATABASE_URL")
	if url == "" {
		t.Skip("BLUESKY_DATABASE_URL not set")
	}
	ctx := context.Background()
	repo, err := Connect(ctx, url, "../../migrations", logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	_, err = repo.pool.Exec(ctx, "TRUNCATE orders RESTART IDENTITY")
	require.NoError(t, err)
	return repo
}

func TestRepository_SeedLoadAndSaveSeat(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	seed := orders.Seed(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, repo.SeedOrders(ctx, seed))
	require.NoError(t, repo.SeedOrders(ctx, seed))

	loaded, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(seed))
	for i := range seed {
		assert.Equal(t, seed[i].ID, loaded[i].ID)
		assert.Equal(t, seed[i].Status, loaded[i].Status)
		assert.Equal(t, seed[i].Seat, loaded[i].Seat)
		assert.InDelta(t, seed[i].Price, loaded[i].Price, 0.001)
		assert.True(t, seed[i].Date.Equal(loaded[i].Date))
	}

	require.NoError(t, repo.SaveSeat(ctx, "BT2024002", models.SingleSeat("1A")))
	loaded, err = repo.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A"}, loaded[1].Seat.Codes)

	err = repo.SaveSeat(ctx, "missing", models.SingleSeat("1B"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_SeedOrdersRefreshesUntouchedDates(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedOrders(ctx, orders.Seed(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.SaveSeat(ctx, "BT2024002", models.SingleSeat("1A")))

	later := orders.Seed(time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SeedOrders(ctx, later))

	loaded, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	byID := make(map[string]models.Order, len(loaded))
	for _, o := range loaded {
		byID[o.ID] = o
	}

	assert.True(t, byID["BT2024002"].Date.Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"1A"}, byID["BT2024002"].Seat.Codes)
	for _, o := range later {
		if o.ID == "BT2024002" {
			continue
		}
		assert.True(t, o.Date.Equal(byID[o.ID].Date), o.ID)
	}
}
