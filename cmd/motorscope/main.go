package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/HerbHall/motorscope/internal/config"
	"github.com/HerbHall/motorscope/internal/explorer"
	"github.com/HerbHall/motorscope/internal/metrics"
	"github.com/HerbHall/motorscope/internal/server"
	"github.com/HerbHall/motorscope/internal/version"
	"github.com/HerbHall/motorscope/internal/web"
	"github.com/HerbHall/motorscope/pkg/catalog"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "query":
			runQuery(os.Args[2:])
			return
		case "validate":
			runValidate(os.Args[2:])
			return
		case "version":
			fmt.Println(version.Info())
			return
		}
	}
	runServe(os.Args[1:])
}

// loadCatalog returns the embedded catalog, or the dataset at path when set.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.NewCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return catalog.NewCatalogFromBytes(data), nil
}

func runServe(args []string) {
	fs := flag.NewFlagSet("motorscope", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("MotorScope server starting", zap.String("version", version.Short()))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	cat, err := loadCatalog(cfg.GetString("catalog.dataset"))
	if err != nil {
		logger.Fatal("failed to open dataset", zap.Error(err))
	}
	// Validate the dataset up front so a bad file never reaches the ranking.
	if _, err := cat.Engines(); err != nil {
		logger.Fatal("invalid catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("engines", cat.Len()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	m.CatalogEngines.Set(float64(cat.Len()))

	engine := explorer.NewEngine(cat)
	api := explorer.NewHandler(engine, m, logger.Named("api"))
	page, err := web.NewHandler(engine, m, web.Site{
		Name:         cfg.GetString("site.name"),
		CanonicalURL: cfg.GetString("site.canonical_url"),
	}, logger.Named("web"))
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	if cfg.GetBool("server.tracing") {
		shutdownTracing, err := server.InitTracing(os.Stderr, "motorscope")
		if err != nil {
			logger.Fatal("failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				logger.Error("tracer shutdown error", zap.Error(err))
			}
		}()
		logger.Info("tracing enabled", zap.String("exporter", "stdout"))
	}

	srv := server.New(cfg, logger.Named("http"), m, api, page)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("MotorScope server ready", zap.String("addr", srv.Addr()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("MotorScope server stopped")
}
