package app

import (
	"context"
	"log"
	"os"
	"time"

	"directin/internal/config"
	"directin/internal/database"
	dbpostgres "directin/internal/database/postgres"
	"directin/internal/database/seeder"
	"directin/internal/infrastructure/cache"
	"directin/internal/infrastructure/provider"
	"directin/internal/pkg/jwt"
	"directin/internal/repository"
	"directin/internal/scheduler"
	"directin/internal/usecase"
	"directin/internal/ws"
)

// Container holds every long-lived dependency, built once at startup.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Auth    usecase.AuthUsecase
	Profile usecase.ProfileUsecase
	Matches usecase.MatchesUsecase
	Badge   usecase.BadgeUsecase
	Refresh usecase.RefreshUsecase
	Tracked usecase.TrackedUsecase

	JWT       jwt.Service
	Scheduler *scheduler.Scheduler
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.SchemaSeeder{},
		seeder.CompanyDirectorySeeder{},
	}}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	profileRepo := repository.NewPostgresProfileRepository(db)
	trackedRepo := repository.NewPostgresTrackedJobRepository(db)
	directoryRepo := repository.NewPostgresCompanyDirectoryRepository(db)

	boards := provider.NewRegistry(
		provider.NewGreenhouseClient(logger),
		provider.NewLeverClient(logger),
	)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		JWT:    jwtSvc,
	}

	c.Auth = usecase.NewAuthService(cfg.Auth.AccessKeyHash, jwtSvc, int(cfg.Auth.TokenTTL.Seconds()), logger)
	c.Profile = usecase.NewProfileService(profileRepo, directoryRepo, trackedRepo, redisCache, boards, logger)
	c.Matches = usecase.NewMatchesService(profileRepo, redisCache)
	c.Badge = usecase.NewBadgeService(profileRepo, redisCache, cfg.Refresh.FreshnessDays, logger)
	c.Refresh = usecase.NewRefreshService(profileRepo, trackedRepo, redisCache, boards, notifier, cfg.Refresh.FreshnessDays, logger)
	c.Tracked = usecase.NewTrackedService(trackedRepo, redisCache, logger)

	c.Scheduler = scheduler.New(c.Refresh, cfg.Refresh.IntervalHours, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
