package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-enforcement-agent/config"
	chainAdapter "loan-enforcement-agent/internal/adapter/chain"
	deviceAdapter "loan-enforcement-agent/internal/adapter/device"
	httpHandler "loan-enforcement-agent/internal/adapter/http/handler"
	pgStorage "loan-enforcement-agent/internal/adapter/storage/postgres"
	redisStorage "loan-enforcement-agent/internal/adapter/storage/redis"
	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports"
	"loan-enforcement-agent/internal/observability"
	"loan-enforcement-agent/internal/service"
	"loan-enforcement-agent/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Uint64("chain_id", cfg.Chain.ChainID).
		Str("loan_contract", cfg.Chain.LoanContract).
		Int("port", cfg.Server.Port).
		Msg("Starting loan enforcement agent")

	ctx := context.Background()

	// Chain RPC backend
	backend, err := chainAdapter.Dial(cfg.Chain.RPCURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to dial chain RPC")
	}
	defer backend.Close()

	// Embedded wallet, chain-locked at enrollment
	wallet, err := chainAdapter.LoadWallet(cfg.Wallet.Keyfile, cfg.Chain.ChainID, cfg.Wallet.ProviderURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load wallet enrollment record")
	}
	if err := wallet.EnsureNetwork(ctx); err != nil {
		// Fatal at startup: all writes would fail with the same latched error.
		log.Fatal().Err(err).Msg("Wallet chain mismatch")
	}
	address := wallet.Identity().Address
	log.Info().Str("address", address).Msg("Wallet loaded")

	reader := chainAdapter.NewReader(backend, cfg.Chain.LoanContract, cfg.Chain.TokenAddress, log)
	submitter := chainAdapter.NewSubmitter(backend, wallet, cfg.Chain.LoanContract, cfg.Chain.TokenAddress, log)

	// Redis: idempotency + lock state survival across restarts
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	idemCache := redisStorage.NewIdempotencyCache(rdb)
	stateCache := redisStorage.NewStateCache(rdb)

	// PostgreSQL enforcement journal (optional)
	var enforcementRepo ports.EnforcementRepository
	healthCheckers := []ports.HealthChecker{
		chainAdapter.NewHealthCheck(backend),
		redisStorage.NewHealthCheck(rdb),
	}
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		enforcementRepo = pgStorage.NewEnforcementRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	auditSvc := service.NewAuditService(enforcementRepo, log)

	// Device pinning bridge
	var bridge ports.PinningBridge
	switch cfg.Device.Backend {
	case "exec":
		bridge = deviceAdapter.NewExecBridge(
			cfg.Device.PinCmd, cfg.Device.UnpinCmd,
			cfg.Device.DisableExitCmd, cfg.Device.EnableExitCmd, log)
	default:
		log.Warn().Str("backend", cfg.Device.Backend).Msg("Device pinning disabled")
		bridge = deviceAdapter.NewNoopBridge()
	}
	lockCtl := service.NewLockController(bridge, auditSvc, address, log)

	// Metrics
	metricsReg := prometheus.NewRegistry()
	metricsReg.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(metricsReg)

	// Monitor: owns the published lock state
	monitor := service.NewMonitorService(reader, address, service.MonitorConfig{
		PollInterval:    cfg.Monitor.PollInterval,
		ConfirmAttempts: cfg.Monitor.ConfirmAttempts,
		ConfirmInterval: cfg.Monitor.ConfirmInterval,
	}, stateCache, auditSvc, log)

	notifier := service.NewWebhookNotifier(cfg.Notify.CallbackURL, &http.Client{Timeout: cfg.Notify.Timeout}, log)

	monitor.Subscribe(func(update domain.LockUpdate) {
		metrics.ObserveUpdate(update)
		if err := lockCtl.ApplyState(ctx, update.State); err != nil {
			log.Error().Err(err).Str("state", string(update.State)).Msg("Failed to apply lock state")
		}
		notifier.NotifyStateChange(update)
	})

	loanSvc := service.NewLoanService(reader, wallet, submitter, idemCache, auditSvc, metrics, log)

	// Session token validation; disabled without a secret (trusted local AppShell)
	var tokenSvc ports.TokenService
	if cfg.JWT.Secret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	} else {
		log.Warn().Msg("JWT secret not set, API authentication disabled")
	}

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	monitor.Start(monitorCtx)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LoanSvc:        loanSvc,
		Monitor:        monitor,
		LockCtl:        lockCtl,
		TokenSvc:       tokenSvc,
		HealthCheckers: healthCheckers,
		MetricsReg:     metricsReg,
		Logger:         log,
	})

	// HTTP server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	stopMonitor()
	monitor.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Agent exited")
}
