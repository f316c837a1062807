package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/config"
	"github.com/curbsidelabs/trucktrack/internal/pkg/database"
	"github.com/curbsidelabs/trucktrack/internal/pkg/health"
	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/curbsidelabs/trucktrack/internal/pkg/middleware"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	natspkg "github.com/curbsidelabs/trucktrack/internal/pkg/nats"
	"github.com/curbsidelabs/trucktrack/internal/pkg/server"
	ws "github.com/curbsidelabs/trucktrack/internal/pkg/websocket"
	"github.com/curbsidelabs/trucktrack/services/tracking"
	"github.com/curbsidelabs/trucktrack/services/tracking/gateway"
	"github.com/curbsidelabs/trucktrack/services/tracking/handler"
	nsqhandler "github.com/curbsidelabs/trucktrack/services/tracking/handler/nsq"
	"github.com/curbsidelabs/trucktrack/services/tracking/repository"
	"github.com/curbsidelabs/trucktrack/services/tracking/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.InitConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger.SetGlobalLogger(zapLogger)

	shutdownManager := server.NewShutdownManager(zapLogger)
	healthService := health.NewService(zapLogger)

	// NATS is required: it carries every event to subscribers.
	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))

	locationRepo, truckRepo := buildRepositories(cfg, zapLogger, shutdownManager, healthService)

	trackingGW := gateway.NewTrackingGW(natsClient)
	shutdownManager.Register(func(ctx context.Context) error {
		trackingGW.Close()
		return nil
	})
	trackingUC := usecase.NewTrackingUC(locationRepo, truckRepo, trackingGW, cfg.Tracking)
	hub := ws.NewHub(cfg.JWT)

	social, err := nsqhandler.NewSocialConsumer(cfg.NSQ, trackingUC)
	if err != nil {
		// The HTTP social route still works without the feed.
		zapLogger.Warn("Social location feed disabled", logger.Err(err))
		social = nil
	}

	h := handler.NewHandler(trackingUC, hub, natsClient, social, cfg)
	if err := h.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to start event consumers", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		h.Shutdown()
		return nil
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	h.RegisterRoutes(e)
	health.RegisterEndpoints(e, cfg.App.Name, cfg.App.Version, healthService)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown finished with errors", logger.Err(err))
	}
}

// buildRepositories selects the storage backend. Redis plus Postgres is
// the production pairing; the memory backend serves local development
// with a couple of seeded trucks.
func buildRepositories(
	cfg *models.Config,
	zapLogger *logger.ZapLogger,
	shutdownManager *server.ShutdownManager,
	healthService *health.Service,
) (tracking.LocationRepo, tracking.TruckRepo) {
	if cfg.Tracking.Backend == "memory" {
		zapLogger.Info("Using in-memory tracking backend")

		truckRepo := repository.NewMemoryTruckRepository()
		truckRepo.Seed(&models.Truck{
			ID:          "truck-demo-1",
			OwnerID:     "owner-demo-1",
			Name:        "Demo Taco Truck",
			IsActive:    true,
			Preferences: models.DefaultTruckPreferences(),
		})

		return repository.NewMemoryLocationRepository(cfg.Tracking.HistoryCap), truckRepo
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return pgClient.Close()
	})
	healthService.AddChecker("postgres", health.NewPostgresChecker(pgClient))

	return repository.NewRedisLocationRepository(redisClient, cfg.Tracking),
		repository.NewTruckRepository(pgClient.GetDB())
}
