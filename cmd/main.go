package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/oksasatya/medlink-api/config"
	"github.com/oksasatya/medlink-api/internal/container"
	pginfra "github.com/oksasatya/medlink-api/internal/infrastructure/postgres"
	"github.com/oksasatya/medlink-api/internal/router"
	"github.com/oksasatya/medlink-api/pkg/helpers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Initialize Postgres pool
	pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
		DSN:             cfg.PostgresDSN(),
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBMaxConnLife,
	})
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}

	// Run migrations using database/sql with pgx stdlib
	if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	c := container.New(cfg, logger, container.Infra{
		PGPool:    pool,
		Redis:     openRedis(ctx, cfg, logger),
		RabbitPub: openRabbit(cfg, logger),
		ES:        openES(ctx, cfg, logger),
	})
	defer c.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewEngine(c),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// openRedis returns nil when the cache is disabled or unreachable.
func openRedis(ctx context.Context, cfg *config.Config, logger *logrus.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(c).Err(); err != nil {
		helpers.LogWarn(logger, "redis unavailable; profile cache disabled", err, nil)
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// openRabbit returns nil when notification emails are disabled or the broker is unreachable.
func openRabbit(cfg *config.Config, logger *logrus.Logger) *helpers.RabbitPublisher {
	if !cfg.MailSendEnabled || cfg.RabbitMQURL == "" {
		return nil
	}
	pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
	if err != nil {
		helpers.LogWarn(logger, "rabbitmq unavailable; notification emails disabled", err, nil)
		return nil
	}
	return pub
}

// openES returns nil when directory search is disabled or the cluster is unreachable.
func openES(ctx context.Context, cfg *config.Config, logger *logrus.Logger) *elasticsearch.Client {
	addrs := cfg.ESAddrs()
	if len(addrs) == 0 {
		return nil
	}
	es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err == nil {
		c, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = helpers.PingES(c, es)
		cancel()
	}
	if err != nil {
		helpers.LogWarn(logger, "elasticsearch unavailable; directory search disabled", err, nil)
		return nil
	}
	return es
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	// Open sql DB via pgx stdlib
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
