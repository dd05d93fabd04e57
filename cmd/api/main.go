package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logging"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAuth "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/auth"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic",
		Short: "Clinic scheduling API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and the bootstrap admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func setup() (*config.Config, zerolog.Logger, error) {
	cfg := config.Load()
	logger := logging.New(cfg.Env, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, logger, err
	}
	timezone.SetClinic(cfg.Timezone)
	return cfg, logger, nil
}

// ======================================================
// MIGRATE
// ======================================================

func runMigrate() error {
	cfg, logger, err := setup()
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}
	if cfg.Store != config.StorePostgres {
		return errors.New("migrate needs STORE=postgres")
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return err
	}
	logger.Info().Msg("schema migrated")

	created, err := ucAuth.NewBootstrapAdmin(infraRepo.NewAccountGormRepository(db)).
		Execute(context.Background(), cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info().Str("username", cfg.AdminUsername).Msg("bootstrap admin created")
	}
	return nil
}

// ======================================================
// SERVE
// ======================================================

func runServer() error {
	cfg, logger, err := setup()
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	ctx := context.Background()
	deps := routes.Deps{
		Tokens:           auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		Locker:           lock.Noop{},
		Pings:            map[string]handlers.PingFunc{},
		CheckEmailDomain: cfg.CheckEmailDomain,
	}

	// --------------------------------------------------
	// Store
	// --------------------------------------------------
	switch cfg.Store {
	case config.StoreMemory:
		store := infraRepo.NewMemoryStore()
		deps.Appointments = store
		deps.Doctors = store
		deps.Patients = store
		deps.Accounts = store
		deps.AuditStore = store
		deps.Reports = store

		if _, err := ucAuth.NewBootstrapAdmin(store).Execute(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return err
		}
		logger.Warn().Msg("using in-memory store, data is lost on exit")

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			logger.Error().Err(err).Msg("failed to connect to database")
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		pool, err := dbpkg.ConnectPostgres(ctx, cfg.DBUrl)
		if err != nil {
			logger.Error().Err(err).Msg("failed to open reporting pool")
			return err
		}
		defer pool.Close()

		deps.Appointments = infraRepo.NewAppointmentGormRepository(db)
		deps.Doctors = infraRepo.NewDoctorGormRepository(db)
		deps.Patients = infraRepo.NewPatientGormRepository(db)
		deps.Accounts = infraRepo.NewAccountGormRepository(db)
		deps.AuditStore = infraRepo.NewAuditGormRepository(db)
		deps.Reports = infraRepo.NewReportPgRepository(pool)

		deps.Pings["postgres"] = sqlDB.PingContext
		deps.Pings["reporting"] = pool.Ping
		logger.Info().Msg("connected to database")
	}

	// --------------------------------------------------
	// Optional distributed slot lock
	// --------------------------------------------------
	if cfg.RedisAddr != "" {
		rdb, err := lock.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Error().Err(err).Msg("failed to connect to redis")
			return err
		}
		defer rdb.Close()

		deps.Locker = lock.NewRedisSlotLocker(rdb, cfg.LockTTL)
		deps.Pings["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logger.Info().Str("addr", cfg.RedisAddr).Msg("redis slot lock enabled")
	}

	dispatcher := audit.NewDispatcher(audit.New(deps.AuditStore), logger)
	defer dispatcher.Close()
	deps.Audit = dispatcher

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORSMiddleware(),
	)
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Str("timezone", cfg.Timezone).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error().Err(err).Msg("server failed")
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
