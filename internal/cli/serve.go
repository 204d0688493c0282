package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/newslens/app/web"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/session"
	"github.com/dmitrymomot/newslens/integration/database/redis"
	sessionredis "github.com/dmitrymomot/newslens/integration/sessionstore/redis"
	"github.com/dmitrymomot/newslens/middleware"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Run the web server until interrupted.

Configuration is read from the environment and an optional .env file.
SESSION_STORE=redis keeps sessions in the Redis instance at REDIS_URL so
several instances can share them.

Examples:
  newslens serve
  newslens serve --addr 0.0.0.0:8080
  SESSION_STORE=redis REDIS_URL=redis://localhost:6379/0 newslens serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"Listen address (overrides SERVER_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := web.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log, err := logger.NewFromConfig(cfg.Log, cfg.AppName,
		logger.WithContextExtractors(middleware.RequestIDExtractor),
		logger.WithAttr(logger.Version(Version)),
	)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger.SetAsDefault(log)

	opts := []web.Option{web.WithLogger(log)}

	if cfg.Session.Backend == session.BackendRedis {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer client.Close()

		opts = append(opts,
			web.WithStore(sessionredis.New(client, cfg.SessionRedis)),
			web.WithReadinessCheck("redis", redis.Healthcheck(client)),
		)
	}

	app, err := web.New(cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}

	log.InfoContext(ctx, "starting server",
		logger.Component("server"),
		logger.Event("start"),
		slog.String("addr", app.Addr()),
		slog.String("session_store", string(cfg.Session.Backend)),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.Run(ctx))

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server stopped", logger.Component("server"), logger.Event("stop"))
	return nil
}
