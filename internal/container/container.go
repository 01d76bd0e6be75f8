package container

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/config"
	"github.com/oksasatya/medlink-api/internal/application"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
	"github.com/oksasatya/medlink-api/internal/infrastructure/cache"
	"github.com/oksasatya/medlink-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/medlink-api/internal/infrastructure/postgres"
	"github.com/oksasatya/medlink-api/internal/infrastructure/search"
	"github.com/oksasatya/medlink-api/pkg/helpers"
	mailtpl "github.com/oksasatya/medlink-api/pkg/mailer/templates"
)

// Infra holds the clients opened by main. Every field may be nil: a nil pool
// selects the in-memory store, and nil optional clients disable their feature.
type Infra struct {
	PGPool    *pgxpool.Pool
	Redis     *redis.Client
	RabbitPub *helpers.RabbitPublisher
	ES        *elasticsearch.Client
}

// Container is the application graph built once at startup and passed to the
// router explicitly.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Infra

	Users    repository.UserRepository
	Hasher   *helpers.BcryptHasher
	JWT      *helpers.JWTManager
	Auth     *application.AuthService
	Profiles *application.ProfileService
}

func New(cfg *config.Config, logger *logrus.Logger, infra Infra) *Container {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Infra:  infra,
		Hasher: helpers.NewBcryptHasher(cfg.BcryptCost),
		JWT:    helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL),
	}

	if infra.PGPool != nil {
		c.Users = pginfra.NewUserRepository(infra.PGPool)
	} else {
		logger.Warn("no postgres pool; using in-memory user store")
		c.Users = memory.NewUserRepository()
	}

	opts := []application.Option{application.WithLogger(logger)}
	if infra.Redis != nil {
		opts = append(opts, application.WithProfileCache(cache.NewProfileCache(infra.Redis, cfg.ProfileTTL)))
	}
	if infra.ES != nil {
		opts = append(opts, application.WithProfileIndex(search.NewProfileIndex(infra.ES, cfg.ESProfilesIndex)))
	}
	if infra.RabbitPub != nil && cfg.MailSendEnabled {
		brand := mailtpl.Branding{
			CompanyName: cfg.CompanyName,
			AppName:     cfg.AppName,
			SupportURL:  cfg.SupportURL,
			LoginURL:    cfg.LoginURL,
		}
		opts = append(opts, application.WithNotifier(application.NewNotifier(infra.RabbitPub, brand)))
	}

	c.Auth = application.NewAuthService(c.Users, c.Hasher, c.JWT, opts...)
	c.Profiles = application.NewProfileService(c.Users, c.Hasher, opts...)
	return c
}

// PingDB reports whether the primary store is reachable.
func (c *Container) PingDB(ctx context.Context) error {
	if c.PGPool == nil {
		return nil
	}
	return c.PGPool.Ping(ctx)
}

// PingRedis reports whether the profile cache is reachable.
func (c *Container) PingRedis(ctx context.Context) error {
	return c.Redis.Ping(ctx).Err()
}

// PingES reports whether the search cluster is reachable.
func (c *Container) PingES(ctx context.Context) error {
	return helpers.PingES(ctx, c.ES)
}

// Close releases the infrastructure clients.
func (c *Container) Close() {
	if c.RabbitPub != nil {
		c.RabbitPub.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}
