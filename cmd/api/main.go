package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"turnover_service/internal/adapter/http/handlers"
	"turnover_service/internal/adapter/http/routes"
	"turnover_service/internal/adapter/persistence/repository"
	"turnover_service/internal/config"
	"turnover_service/internal/domain/pricing"
	"turnover_service/internal/infrastructure/rendering"
	"turnover_service/internal/usecase"
	"turnover_service/pkg/logger"
	"turnover_service/pkg/metrics"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// @title           Turnover Cleaning API
// @version         1.0
// @description     Quotes, jobs, job checklists and linen orders for short-stay turnover cleaning.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /

func main() {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logs.Level).With("service", cfg.Server.ServiceName, "env", cfg.Server.Env)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("service stopped with error", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		m              *metrics.Metrics
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.NewMetrics("turnover", reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		log.Info("metrics enabled", "path", cfg.Metrics.Path)
	}

	store, closeStore, err := openDocumentStore(ctx, cfg.Store, m)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer closeStore()
	log.Info("document store ready", "driver", cfg.Store.Driver)

	engine := pricing.NewEngine(cfg.Pricing.Currency)

	quoteUseCase := usecase.NewQuoteUseCase(
		repository.NewQuoteRepository(store),
		engine,
		rendering.NewQuotePDFRenderer(cfg.Server.ServiceName),
		m,
	)
	jobUseCase := usecase.NewJobUseCase(repository.NewJobRepository(store), engine)
	linenUseCase := usecase.NewLinenOrderUseCase(repository.NewLinenOrderRepository(store), engine)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(routes.Handlers{
		Quote:      handlers.NewQuoteHandler(quoteUseCase, log),
		Job:        handlers.NewJobHandler(jobUseCase, log),
		LinenOrder: handlers.NewLinenOrderHandler(linenUseCase, log),
		System:     handlers.NewSystemHandler(cfg.Server.ServiceName, cfg.Server.Env),
	}, routes.Options{
		Logger:         log,
		Metrics:        m,
		MetricsPath:    cfg.Metrics.Path,
		MetricsHandler: metricsHandler,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
