package internal

import (
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"lifedash/internal/backup/interfaces"
	"lifedash/internal/controllers"
	"lifedash/internal/providers"
	"lifedash/internal/storage"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

type App struct {
	*Core
	WebServer *http.Server
	scheduler interfaces.SchedulerInterface
}

func NewApp(core *Core, healthController *controllers.HealthController, scheduler interfaces.SchedulerInterface, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) *App {
	conf := core.Config

	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	// Wrap API routes with metrics middleware
	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return &App{
		Core: core,
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      providers.AccessLogMiddleware(core.Logger, mux),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		scheduler: scheduler,
	}
}

// Run serves HTTP until ctx is done or the process is signalled, then writes a final
// backup. The caller closes the Core.
func (a *App) Run(ctx context.Context) error {
	conf := a.Config
	logger := a.Logger
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	a.scheduler.Init()

	var watcher *storage.Watcher
	if fs := a.Store.FileStore(); fs != nil && conf.Storage.Watch {
		watcher = storage.NewWatcher(fs, logger)
		if err := watcher.Start(a.Reloader.Reload); err != nil {
			logger.Errorf(providers.TypeApp, "Store watcher disabled: %s", err)
			watcher = nil
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := a.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case <-ctx.Done():
		logger.Infof(providers.TypeApp, "Shutdown requested")
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if watcher != nil {
		watcher.Stop()
	}
	a.scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.WebServer.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	if err := a.scheduler.Persist(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}
