// @title Case Opening Gateway API
// @version 1.0
// @description Local gateway between the case-opening UI and the game backend.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/samigvnc/csgo-frontend/docs"
	"github.com/samigvnc/csgo-frontend/internal/account"
	"github.com/samigvnc/csgo-frontend/internal/admin"
	"github.com/samigvnc/csgo-frontend/internal/backend"
	"github.com/samigvnc/csgo-frontend/internal/battle"
	"github.com/samigvnc/csgo-frontend/internal/bootstrap"
	"github.com/samigvnc/csgo-frontend/internal/catalog"
	"github.com/samigvnc/csgo-frontend/internal/config"
	"github.com/samigvnc/csgo-frontend/internal/contract"
	"github.com/samigvnc/csgo-frontend/internal/economy"
	"github.com/samigvnc/csgo-frontend/internal/handler"
	"github.com/samigvnc/csgo-frontend/internal/opening"
	"github.com/samigvnc/csgo-frontend/internal/scheduler"
	"github.com/samigvnc/csgo-frontend/internal/server"
	"github.com/samigvnc/csgo-frontend/internal/session"
	"github.com/samigvnc/csgo-frontend/internal/sse"
	"github.com/samigvnc/csgo-frontend/internal/validation"
	"github.com/samigvnc/csgo-frontend/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Gateway exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	handler.InitValidator()

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	bus := events.Publisher

	stores, err := bootstrap.InitializeStores(cfg)
	if err != nil {
		return err
	}

	game, err := bootstrap.LoadGameConfig(cfg, validation.NewSchemaValidator())
	if err != nil {
		return err
	}

	client := backend.NewClient(cfg.APIURL, cfg.BackendTimeout)
	if token := stores.Session.Token(); token != "" {
		client.SetToken(token)
	}

	syncer := session.NewSyncer(stores.Session, client, stores.Locks, bus)
	catalogSvc := catalog.NewService(client, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	accountSvc := account.NewService(client, syncer, stores.Session)
	openingSvc := opening.NewService(game.Engine, catalogSvc, client, stores.Session, stores.Locks, bus)
	battleSvc := battle.NewService(client, catalogSvc, game.Engine, game.RNG, stores.Session, bus,
		battle.Options{RequireServerWinner: cfg.RequireServerWinner})
	contractSvc := contract.NewService(game.Rules, game.RNG, client, stores.Session, stores.Locks, bus)
	economySvc := economy.NewService(client, stores.Session, stores.Locks, bus)
	adminSvc := admin.NewService(client, catalogSvc)

	hub := sse.NewHub()
	hub.Start()

	settleWorker := worker.NewRevealSettleWorker(openingSvc)
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:     bus,
		Hub:          hub,
		SettleWorker: settleWorker,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	syncJob := worker.BalanceSyncJob{Syncer: syncer}
	sched.Schedule("balance-sync", cfg.BalanceSyncInterval, syncJob)
	sched.RunNow(syncJob)

	srv := server.NewServer(cfg, server.Services{
		Account:  accountSvc,
		Catalog:  catalogSvc,
		Opening:  openingSvc,
		Battle:   battleSvc,
		Contract: contractSvc,
		Economy:  economySvc,
		Admin:    adminSvc,
		Backend:  client,
		Events:   hub,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var serveErr error
	select {
	case <-stop:
	case serveErr = <-errCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Hub:                hub,
		BattleService:      battleSvc,
		SettleWorker:       settleWorker,
		Scheduler:          sched,
		Pool:               pool,
		ResilientPublisher: events.Publisher,
		DeadLetter:         events.DeadLetter,
	})

	return serveErr
}
