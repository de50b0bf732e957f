package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodshare/internal/adapter/gateway"
	httpadapter "foodshare/internal/adapter/http"
	"foodshare/internal/adapter/memory"
	"foodshare/internal/adapter/postgres"
	"foodshare/internal/adapter/s3media"
	"foodshare/internal/adapter/scheduler"
	"foodshare/internal/adapter/usecase"
	"foodshare/internal/config"
	"foodshare/internal/config/configs"
	"foodshare/internal/core/port"
	"foodshare/internal/db"
)

// repositories is the set of outbound ports chosen by the store driver.
type repositories struct {
	ads       port.AdRepository
	posts     port.PostRepository
	points    port.PointsRepository
	users     port.UserRepository
	payments  port.PaymentRepository
	prices    port.PriceRepository
	analytics port.AnalyticsRepository
	tx        port.Transactor
	close     func()
}

// main is the entry point of the foodshare service. It loads configuration,
// optionally runs database migrations, wires the repositories and use cases,
// starts the archival scheduler and the HTTP server, and shuts both down
// gracefully on SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repos, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store initialisation error", slog.Any("error", err))
		return
	}
	defer repos.close()

	media, err := s3media.New(ctx, cfg.S3)
	if err != nil {
		logger.Error("media store error", slog.Any("error", err))
		return
	}
	payments := gateway.NewClient(cfg.Payment, logger)

	loc, err := cfg.Sweeper.Location()
	if err != nil {
		logger.Error("timezone config error", slog.Any("error", err))
		return
	}

	clock := port.SystemClock{}
	sweeper := usecase.NewSweeper(repos.ads, repos.posts, repos.tx, clock, logger)
	ledger := usecase.NewPointsLedger(repos.points, repos.users, clock, logger)
	svc := httpadapter.Services{
		Ads: usecase.NewAdUseCase(usecase.AdDeps{
			Ads:      repos.ads,
			Payments: repos.payments,
			Prices:   repos.prices,
			Users:    repos.users,
			Tx:       repos.tx,
			Sweeper:  sweeper,
			Media:    media,
			Gateway:  payments,
			Clock:    clock,
			Logger:   logger,
			Currency: cfg.Payment.Currency,
		}),
		Posts:     usecase.NewPostUseCase(repos.posts, ledger, repos.tx, media, clock, logger),
		Points:    ledger,
		Sweeper:   sweeper,
		Analytics: usecase.NewAnalyticsUseCase(repos.analytics, clock, loc),
		Users:     usecase.NewUserAdminUseCase(repos.users, logger),
		Prices:    usecase.NewPriceUseCase(repos.prices),
		Auth:      usecase.NewAuthUseCase(repos.users),
	}

	if cfg.Sweeper.Enabled {
		sched := scheduler.New(ctx, sweeper, cfg.Sweeper.Schedule, loc, logger)
		if err = sched.Start(); err != nil {
			return
		}
		defer func() {
			<-sched.Stop().Done()
			logger.Info("scheduler stopped")
		}()
	}

	handler := httpadapter.NewHandler(svc, httpadapter.Options{
		JWTSecret:      cfg.Auth.Secret,
		JWTIssuer:      cfg.Auth.Issuer,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	}, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openStore builds the repositories for the configured driver.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*repositories, error) {
	if cfg.Store.Driver == configs.StoreDriverMemory {
		store := memory.NewStore()
		memory.Seed(store, time.Now().UTC(), usecase.AdsServiceName)
		logger.Warn("using in-memory store; data is lost on restart",
			slog.String("admin_id", memory.DemoAdminID),
			slog.Any("user_ids", memory.DemoUserIDs),
			slog.String("hint", "sign HS256 tokens with AUTH_SECRET for a seeded id"))
		return &repositories{
			ads:       store.AdRepository(),
			posts:     store.PostRepository(),
			points:    store.PointsRepository(),
			users:     store.UserRepository(),
			payments:  store.PaymentRepository(),
			prices:    store.PriceRepository(),
			analytics: store.AnalyticsRepository(),
			tx:        store,
			close:     func() {},
		}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	return &repositories{
		ads:       postgres.NewAdRepository(pool),
		posts:     postgres.NewPostRepository(pool),
		points:    postgres.NewPointsRepository(pool),
		users:     postgres.NewUserRepository(pool),
		payments:  postgres.NewPaymentRepository(pool),
		prices:    postgres.NewPriceRepository(pool),
		analytics: postgres.NewAnalyticsRepository(pool),
		tx:        postgres.NewTransactor(pool),
		close:     pool.Close,
	}, nil
}
