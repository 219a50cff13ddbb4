package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/FormGuard/pkg/config"
	"github.com/NeuralTrust/FormGuard/pkg/dependency_container"
	"github.com/NeuralTrust/FormGuard/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/FormGuard/pkg/infra/logger"
	_ "github.com/NeuralTrust/FormGuard/pkg/infra/migrations"
	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/FormGuard/pkg/server"
	"github.com/NeuralTrust/FormGuard/pkg/server/router"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger("formguard")

	if err := config.Load(configPath()); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		DBName:       cfg.Database.DBName,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
	})
	if err != nil {
		logger.Fatalf("failed to initialize container: %v", err)
	}
	defer container.Cache.Close()

	prometheus.Initialize(cfg.Metrics.Enabled)

	servers := []server.Server{
		server.NewAdminServer(server.AdminServerDI{
			Config: cfg,
			Logger: logger,
			Routers: []router.ServerRouter{
				router.NewAdminRouter(container.AdminMiddlewares, container.HandlerTransport, "/swagger.json"),
			},
		}),
		server.NewPublicServer(server.PublicServerDI{
			Config: cfg,
			Logger: logger,
			Routers: []router.ServerRouter{
				router.NewPublicRouter(container.PublicMiddlewares, container.HandlerTransport),
			},
		}),
	}
	if cfg.Metrics.Enabled {
		servers = append(servers, server.NewMetricsServer(cfg, logger))
	} else {
		logger.Info("prometheus metrics are disabled by configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(srv.Run)
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("server stopped with error")
		os.Exit(1)
	}
	logger.Info("servers gracefully stopped")
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "./config"
}
