package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/api"
	"github.com/mab2k/homebridge-teufel/internal/concurrency"
	"github.com/mab2k/homebridge-teufel/internal/config"
	"github.com/mab2k/homebridge-teufel/internal/gateway"
	"github.com/mab2k/homebridge-teufel/internal/homekit"
	"github.com/mab2k/homebridge-teufel/internal/reconciler"
	"github.com/mab2k/homebridge-teufel/internal/repos"
	"github.com/mab2k/homebridge-teufel/internal/switches"
	"github.com/mab2k/homebridge-teufel/internal/teufel"
	"github.com/mab2k/homebridge-teufel/internal/topology"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	// read the config file
	cfg, err := config.InitialiseConfig()
	if err != nil {
		log.Fatal("unable to read config", "err", err)
	}

	logger := newLogger(cfg)
	logger.Info("teufeld starting", "gateway", cfg.GatewayURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// storage
	db, err := repos.OpenDatabase(cfg.Database.Path)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()
	accessoryRepo, err := repos.NewAccessoryRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}

	// create/wire up services
	gatewayService := gateway.NewGatewayAPIService(logger, cfg.GatewayURL, cfg.Gateway.Timeout, cfg.Gateway.RateLimitRPS)
	eventConsumer := gateway.NewGatewayEventConsumer(logger, cfg.GatewayURL)
	tasks := concurrency.NewDelayedTasks()
	defer tasks.StopAll()
	snapshots := topology.NewCache()

	bridge := homekit.NewBridge(logger, cfg.HomeKit.Name, cfg.HomeKit.StoragePath, cfg.HomeKit.Pin, cfg.HomeKit.Address)
	rec := reconciler.NewReconciler(logger, accessoryRepo, bridge)
	projector := switches.NewProjector(logger, gatewayService, snapshots, bridge, tasks, cfg.Timing.StatePushDelay)
	dispatcher := switches.NewDispatcher(logger, gatewayService, tasks, cfg.Timing.VirtualZonePlayDelay)

	t := teufel.NewTeufel(logger, eventConsumer, gatewayService, accessoryRepo, rec, snapshots, projector, dispatcher, tasks, cfg.Timing.RefreshThrottle)
	bridge.Handle(t)

	if err := t.Initialise(ctx); err != nil {
		logger.Fatal(err)
	}

	server := &http.Server{
		Addr:              cfg.API.Address,
		Handler:           api.NewRouter(logger, t),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(3)

	// gateway event loop
	go func() {
		defer wg.Done()
		t.Run(ctx)
	}()

	go func() {
		defer wg.Done()
		if err := bridge.Run(ctx); err != nil {
			logger.Error("homekit bridge stopped", "err", err)
			stop()
		}
	}()

	go func() {
		defer wg.Done()
		logger.Info("status api listening", "address", cfg.API.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status api stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	// cleanup before exit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	wg.Wait()
	logger.Info("teufeld is closing")
}

func newLogger(cfg *config.Config) *log.Logger {
	var out io.Writer = os.Stderr
	if cfg.Log.File != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename: cfg.Log.File,
			MaxAge:   3,
		})
	}

	return log.NewWithOptions(out, log.Options{
		Level:           log.ParseLevel(cfg.Log.Level),
		ReportTimestamp: true,
		ReportCaller:    true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
}
