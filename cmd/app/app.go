package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventick/eventick-api/internal/api"
	"github.com/eventick/eventick-api/internal/config"
	"github.com/eventick/eventick-api/internal/db"
	"github.com/eventick/eventick-api/internal/logger"
	"github.com/eventick/eventick-api/internal/payment"
	"github.com/eventick/eventick-api/internal/repository"
	"github.com/eventick/eventick-api/internal/repository/dao"
	"github.com/eventick/eventick-api/internal/seed"
	"github.com/eventick/eventick-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	eventDAO, bookingDAO, err := openStore(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize store -> %w", err)
	}

	provider, err := newPaymentProvider(conf.Payments)
	if err != nil {
		return fmt.Errorf("failed to initialize payment provider -> %w", err)
	}

	eventRepo := repository.NewEventRepository(eventDAO)
	bookingRepo := repository.NewBookingRepository(bookingDAO)

	if err = seed.Run(context.Background(), service.NewEventService(eventRepo)); err != nil {
		return fmt.Errorf("failed to seed store -> %w", err)
	}

	if ttl := time.Duration(conf.Payments.ReservationTTLMinutes) * time.Minute; ttl > 0 {
		scheduler, err := startExpiryScheduler(service.NewBookingService(bookingRepo, eventRepo), ttl)
		if err != nil {
			return fmt.Errorf("failed to start expiry scheduler -> %w", err)
		}
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				zap.L().Error("failed to shut down expiry scheduler", zap.Error(err))
			}
		}()
	}

	s := api.NewServer(conf, eventDAO, bookingDAO, provider)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openStore picks the backend: PostgreSQL when configured, otherwise
// the in-memory store that loses everything on restart.
func openStore(conf *config.AppConfig) (repository.EventDAO, repository.BookingDAO, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" && conf.Postgres.Host == "" {
		zap.L().Info("no database configured, using in-memory store")
		store := dao.NewMemoryStore()

		return store, store, nil
	}

	var (
		gormDB *gorm.DB
		err    error
	)
	if dbURL != "" {
		gormDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		gormDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, nil, err
	}

	if err = dao.InitTables(gormDB); err != nil {
		return nil, nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return dao.NewGormEventDAO(gormDB), dao.NewGormBookingDAO(gormDB), nil
}

func newPaymentProvider(conf *config.PaymentsConfig) (payment.Provider, error) {
	if conf.EnableMock {
		zap.L().Info("mock payments enabled")
		return payment.NewMockProvider(conf.Currency), nil
	}

	if conf.StripeConfigured() {
		zap.L().Info("stripe payments enabled")
		return payment.NewStripeProvider(conf.StripeSecretKey, conf.Currency), nil
	}

	return nil, errors.New("missing Stripe secret key and mock payments are disabled")
}

func startExpiryScheduler(svc *service.BookingService, ttl time.Duration) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(func() {
			released, err := svc.ReleaseExpired(context.Background(), ttl)
			if err != nil {
				zap.L().Error("booking expiry sweep failed", zap.Error(err))
				return
			}
			if released > 0 {
				zap.L().Info("booking expiry sweep released inventory", zap.Int("bookings", released))
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	zap.L().Info("booking expiry scheduler started", zap.Duration("ttl", ttl))

	return scheduler, nil
}
