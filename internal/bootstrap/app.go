package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"

	"museum-api/internal/app"
	"museum-api/internal/config"
	"museum-api/internal/logging"
	"museum-api/internal/model"
	"museum-api/internal/pkg/jwtutil"
	"museum-api/internal/pkg/password"
	"museum-api/internal/platform/database"
	"museum-api/internal/repository"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	SQL    *sql.DB

	Gate  *app.Gate
	Auth  *app.AuthService
	Users *app.UserService
	News  *app.NewsService

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	logger := logging.New(cfg.App.Env, os.Stdout)

	db, err := database.New(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db failed: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&model.User{}, &model.News{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	a, err := Wire(cfg, logger, repository.NewUserRepository(db), repository.NewNewsRepository(db))
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	a.DB = db
	a.SQL = sqlDB

	if err := a.seedAdmin(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return a, nil
}

// Wire builds the services on top of the given stores.
func Wire(cfg *config.Config, logger *slog.Logger, users app.UserStore, news app.NewsStore) (*App, error) {
	tokens, err := jwtutil.New(jwtutil.Config{
		Secret:    cfg.Auth.SecretKey,
		Algorithm: cfg.Auth.Algorithm,
		TTL:       cfg.AccessTokenTTL(),
	})
	if err != nil {
		return nil, fmt.Errorf("init token manager failed: %w", err)
	}
	hasher := password.NewHasher(cfg.Auth.BcryptCost)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Gate:      app.NewGate(users, tokens),
		Auth:      app.NewAuthService(users, hasher, tokens),
		Users:     app.NewUserService(users, hasher),
		News:      app.NewNewsService(news),
		StartedAt: time.Now(),
	}, nil
}

func (a *App) seedAdmin(ctx context.Context) error {
	created, err := a.Users.EnsureAdmin(ctx, app.AdminSeed{
		Email:    a.Config.Admin.Email,
		Username: a.Config.Admin.Username,
		Password: a.Config.Admin.Password,
		FullName: a.Config.Admin.Name,
	})
	if err != nil {
		return err
	}
	if created {
		a.Logger.InfoContext(ctx, "admin user created", "email", a.Config.Admin.Email)
	} else {
		a.Logger.InfoContext(ctx, "admin user already exists", "email", a.Config.Admin.Email)
	}
	return nil
}

func (a *App) Close() error {
	if a.SQL != nil {
		return a.SQL.Close()
	}
	return nil
}
