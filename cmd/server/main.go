package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/internal/activities"
	"github.com/cx-tal-miterani/bluesky-booking/internal/app"
	"github.com/cx-tal-miterani/bluesky-booking/internal/booking"
	"github.com/cx-tal-miterani/bluesky-booking/internal/config"
	"github.com/cx-tal-miterani/bluesky-booking/internal/database"
	"github.com/cx-tal-miterani/bluesky-booking/internal/handlers"
	"github.com/cx-tal-miterani/bluesky-booking/internal/orders"
	"github.com/cx-tal-miterani/bluesky-booking/internal/router"
	"github.com/cx-tal-miterani/bluesky-booking/internal/service"
	"github.com/cx-tal-miterani/bluesky-booking/internal/session"
	"github.com/cx-tal-miterani/bluesky-booking/internal/timer"
	"github.com/cx-tal-miterani/bluesky-booking/internal/websocket"
	"github.com/cx-tal-miterani/bluesky-booking/internal/workflows"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer log.Sync()

	ctx := context.Background()

	// Sessions
	var sessions session.Store = session.NewMemoryStore()
	if cfg.SessionBackend == config.BackendRedis {
		rdb := session.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Error("failed to connect to Redis", logger.String("addr", cfg.RedisAddr), logger.Error(err))
			os.Exit(1)
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb)
		log.Info("Redis connected", logger.String("addr", cfg.RedisAddr))
	}

	// Orders
	seed := orders.Seed(time.Now())
	store := orders.NewStore(seed, log)
	if cfg.OrderBackend == config.BackendPostgres {
		repo, err := database.Connect(ctx, cfg.DatabaseURL, cfg.MigrationsPath, log)
		if err != nil {
			log.Error("failed to connect to database", logger.Error(err))
			os.Exit(1)
		}
		defer repo.Close()
		if err := repo.SeedOrders(ctx, seed); err != nil {
			log.Error("failed to seed orders", logger.Error(err))
			os.Exit(1)
		}
		stored, err := repo.LoadOrders(ctx)
		if err != nil {
			log.Error("failed to load orders", logger.Error(err))
			os.Exit(1)
		}
		store = orders.NewStore(stored, log).WithPersister(repo)
	}

	hub := websocket.NewHub(log)
	go hub.Run()
	defer hub.Stop()
	store.Subscribe(hub.BroadcastOrderUpdated)

	scheduler := timer.NewScheduler()
	registry := app.NewRegistry(app.Deps{
		Orders:     store,
		Sessions:   sessions,
		Scheduler:  scheduler,
		Publisher:  hub,
		Log:        log,
		LoginDelay: cfg.LoginDelay,
	})

	// Booking flow
	if cfg.TemporalHost != "" {
		temporalClient, err := client.Dial(client.Options{
			HostPort: cfg.TemporalHost,
		})
		if err != nil {
			log.Error("failed to create Temporal client", logger.String("host", cfg.TemporalHost), logger.Error(err))
			os.Exit(1)
		}
		defer temporalClient.Close()

		w := worker.New(temporalClient, cfg.TemporalTaskQueue, worker.Options{})
		w.RegisterWorkflow(workflows.BookingWorkflow)
		acts := activities.NewActivities(registry)
		w.RegisterActivityWithOptions(acts.PublishNotification, activity.RegisterOptions{Name: activities.PublishNotificationName})
		if err := w.Start(); err != nil {
			log.Error("failed to start Temporal worker", logger.Error(err))
			os.Exit(1)
		}
		defer w.Stop()

		registry.SetBooking(booking.NewTemporalStarter(temporalClient, cfg.TemporalTaskQueue, cfg.PaymentRedirectDelay))
		log.Info("Connected to Temporal", logger.String("host", cfg.TemporalHost), logger.String("queue", cfg.TemporalTaskQueue))
	} else {
		registry.SetBooking(booking.NewLocalStarter(scheduler, registry, cfg.PaymentRedirectDelay))
	}

	// Initialize services
	bookingService := service.NewBookingService(registry)

	// Initialize handlers
	h := handlers.NewHandler(bookingService, log)

	// Create router
	r := router.SetupRouter(h, hub, bookingService, router.Options{
		LoginRate:  cfg.LoginRatePerSec,
		LoginBurst: cfg.LoginBurst,
	}, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("API server starting", logger.String("port", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", logger.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", logger.Error(err))
	}
	registry.Close(shutdownCtx)

	log.Info("Server stopped")
}
