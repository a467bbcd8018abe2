package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/vilaca/profile-detective/internal/api"
	"github.com/vilaca/profile-detective/internal/api/github"
	"github.com/vilaca/profile-detective/internal/config"
	"github.com/vilaca/profile-detective/internal/dashboard"
	"github.com/vilaca/profile-detective/internal/observability"
	"github.com/vilaca/profile-detective/internal/search"
	"github.com/vilaca/profile-detective/internal/tui"
)

const serviceName = "profile-detective"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [serve | tui [username]]\n", os.Args[0])
	}
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode := flag.Arg(0)
	switch mode {
	case "", "serve":
		err = runServer(ctx, cfg)
	case "tui":
		err = runTUI(ctx, cfg, flag.Arg(1))
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", serviceName, err)
	}
}

// runServer serves the web front end until ctx is canceled.
func runServer(ctx context.Context, cfg *config.Config) error {
	logger, err := observability.NewLogger(observability.LoggerConfig{
		ServiceName: serviceName,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	handler, err := buildServer(cfg, logger.Sugar())
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting profile lookup server",
			zap.String("url", "http://localhost"+addr),
			zap.String("github_url", cfg.GitHubURL),
			zap.Bool("metrics", cfg.MetricsEnabled),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildServer wires up all dependencies and returns the configured HTTP handler.
// This is the composition root for the web front end.
func buildServer(cfg *config.Config, logger *zap.SugaredLogger) (http.Handler, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var (
		metrics  *observability.Metrics
		recorder search.Recorder
		registry *prometheus.Registry
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = observability.NewMetrics(registry)
		recorder = metrics
	}

	handler := dashboard.NewHandler(dashboard.HandlerConfig{
		Renderer: dashboard.NewHTMLRenderer(),
		Logger:   logger,
		Client:   newGitHubClient(cfg),
		Recorder: recorder,
		Location: location,
	})

	routerCfg := dashboard.RouterConfig{Logger: logger}
	if metrics != nil {
		routerCfg.Metrics = metrics
		routerCfg.Gatherer = registry
	}
	return dashboard.NewRouter(handler, routerCfg), nil
}

// runTUI runs the terminal front end. Logs go to a file because the terminal
// belongs to the widget.
func runTUI(ctx context.Context, cfg *config.Config, username string) error {
	location, err := cfg.Location()
	if err != nil {
		return err
	}

	logger, err := newTUILogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	controller := search.NewController(search.ControllerConfig{
		Client: newGitHubClient(cfg),
		Logger: logger.Sugar(),
	})
	model := tui.New(tui.Config{
		Context:      ctx,
		Controller:   controller,
		Location:     location,
		InitialQuery: username,
	})

	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// newTUILogger builds the terminal front end's logger. Without a configured
// file the logger discards everything, since stderr would corrupt the screen.
func newTUILogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.TUILogFile == "" {
		return zap.NewNop(), nil
	}
	logger, err := observability.NewLogger(observability.LoggerConfig{
		ServiceName: serviceName,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		OutputPath:  cfg.TUILogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open TUI log file: %w", err)
	}
	return logger, nil
}

func newGitHubClient(cfg *config.Config) *github.Client {
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout(),
	}
	return github.NewClient(api.ClientConfig{
		BaseURL:   cfg.GitHubURL,
		UserAgent: serviceName,
	}, httpClient)
}
