package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alumnihub/matchrank/internal/adapters/http/api"
	"github.com/alumnihub/matchrank/internal/adapters/remote"
	"github.com/alumnihub/matchrank/internal/adapters/repository"
	"github.com/alumnihub/matchrank/internal/app"
	"github.com/alumnihub/matchrank/internal/config"
	"github.com/alumnihub/matchrank/internal/domain/scoring"
	"github.com/alumnihub/matchrank/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store := repository.NewMemberStore()

	opts := []app.Option{
		app.WithDirectoryWriter(store),
		app.WithTopJobsLimit(cfg.TopJobsLimit),
		app.WithAlumniLimit(cfg.AlumniLimit),
		app.WithFeedLimit(cfg.FeedLimit),
		app.WithMinJobScore(cfg.MinJobScore),
		app.WithScorer(scoring.New(
			scoring.WithBranchBonus(cfg.BranchBonus),
		)),
		app.WithWeights(scoring.Weights{Skill: cfg.SkillWeight, Branch: cfg.BranchWeight}),
	}
	if cfg.RemoteEnabled {
		opts = append(opts,
			app.WithRemoteScorer(remote.NewClient(cfg.RemoteURL,
				remote.WithTimeout(time.Duration(cfg.RemoteTimeoutMS)*time.Millisecond),
				remote.WithMaxConcurrency(cfg.RemoteMaxConcurrency),
			)),
			app.WithRemotePairwise(cfg.RemotePairwise),
		)
		log.Info(ctx, "remote scoring enabled",
			logger.String("remote_url", cfg.RemoteURL),
			logger.Bool("pairwise", cfg.RemotePairwise),
		)
	}
	svc := app.New(store, store, opts...)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(ctx, mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "matchrank service listening", logger.String("addr", cfg.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info(context.Background(), "shutting down...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server failed", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "graceful shutdown failed", logger.Error(err))
	}
	log.Info(context.Background(), "matchrank service stopped")
}
