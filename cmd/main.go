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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"ad-budget/internal/adapter/audit"
	"ad-budget/internal/adapter/clock"
	httpadapter "ad-budget/internal/adapter/http"
	"ad-budget/internal/adapter/memory"
	"ad-budget/internal/adapter/metrics"
	"ad-budget/internal/adapter/postgres"
	"ad-budget/internal/adapter/scheduler"
	"ad-budget/internal/adapter/usecase"
	"ad-budget/internal/config"
	"ad-budget/internal/core/domain"
	"ad-budget/internal/core/port"
	"ad-budget/internal/db"
)

// main is the entry point of the ad-budget service. It loads configuration,
// optionally runs database migrations and seeds demo data, builds the
// campaign store, the enforcement engine and its triggers, then starts the
// cron scheduler and the HTTP server. On receiving a termination signal it
// stops the scheduler and gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	// Initialise structured logger based on configuration.
	logger := slog.New(cfg.Log.Handler(os.Stdout)).With("env", cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	clk := clock.System{}

	var store port.CampaignStore
	switch cfg.Store.Driver {
	case "memory":
		mem := memory.NewCampaignStore(cfg.Psql.LockTimeout)
		if cfg.Psql.Seed {
			if err = seedMemory(mem, clk.Now()); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			logger.Info("demo data seeded")
		}
		store = mem
	default:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			logger.Info("demo data seeded")
		}
		store = postgres.NewCampaignStore(pool, cfg.Psql.LockTimeout)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	engine := usecase.NewEngine(store, clk, audit.Fanout{audit.NewLogSink(logger), m}, usecase.Options{
		Workers:              cfg.Budget.Workers,
		MaxRetries:           cfg.Budget.MaxRetries,
		RetryInitialInterval: cfg.Budget.RetryInitialInterval,
		Logger:               logger,
	})
	triggers := usecase.NewOrchestrator(engine, store, clk, m, logger, usecase.OrchestratorConfig{
		DefaultCheckInterval: cfg.Budget.DefaultInterval(),
		CheckOnSpend:         cfg.Budget.CheckOnSpend,
	})

	if cfg.Schedule.Enabled {
		sched := scheduler.New(triggers, clk, cfg.Schedule, logger)
		if err = sched.Start(ctx); err != nil {
			logger.Error("scheduler error", slog.Any("error", err))
			return
		}
		defer sched.Stop()
	}

	handler := httpadapter.NewHandler(triggers, store, logger, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
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
	} else {
		logger.Info("server gracefully stopped")
	}
}

// seedMemory loads the same demo data db.Seed inserts into PostgreSQL.
func seedMemory(store *memory.CampaignStore, now time.Time) error {
	brand := &domain.Brand{
		Name:          db.SeedBrandName,
		DailyBudget:   decimal.RequireFromString(db.SeedDailyBudget),
		MonthlyBudget: decimal.RequireFromString(db.SeedMonthlyBudget),
	}
	if err := store.CreateBrand(brand); err != nil {
		return err
	}

	start, err := domain.ParseTimeOfDay(db.SeedStartTime)
	if err != nil {
		return err
	}
	end, err := domain.ParseTimeOfDay(db.SeedEndTime)
	if err != nil {
		return err
	}
	days, err := domain.ParseWeekdays(db.SeedDaysOfWeek)
	if err != nil {
		return err
	}
	sched := &domain.DaypartingSchedule{StartTime: start, EndTime: end, DaysOfWeek: days, Description: "business hours"}
	if err = store.CreateSchedule(sched); err != nil {
		return err
	}

	for _, sc := range db.SeedCampaigns {
		err = store.CreateCampaign(&domain.Campaign{
			BrandID:      brand.ID,
			Name:         sc.Name,
			DailySpend:   decimal.RequireFromString(sc.DailySpend),
			MonthlySpend: decimal.RequireFromString(sc.MonthlySpend),
			IsActive:     true,
			ScheduleID:   &sched.ID,
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
