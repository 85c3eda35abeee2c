package app

import (
	"context"
	"log"
	"os"
	"time"

	"talenthub/internal/config"
	"talenthub/internal/database"
	"talenthub/internal/database/migration"
	dbpostgres "talenthub/internal/database/postgres"
	"talenthub/internal/infrastructure/cache"
	"talenthub/internal/infrastructure/email"
	"talenthub/migrations"
)

// Container owns the process-wide dependencies: the connection pool, the
// cache, the mailer and the shared logger.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Mailer *email.Mailer
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{FS: migrations.Files}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Mailer: email.NewMailer(cfg.SMTP, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
