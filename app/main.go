package main

import (
	"context"
	"net/http"

	"github.com/go-co-op/gocron/v2"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/routes"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/services"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/config"
	apperrors "github.com/TATAaunt/hospital-surgery-equipment-management/pkg/errors"
	applogger "github.com/TATAaunt/hospital-surgery-equipment-management/pkg/logger"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/service"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err)
				utils.ErrorResponse(c, httpErr)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	e.Validator = utils.NewValidator(validator.New())

	ctx := context.Background()

	var (
		blobStore store.Store
		cache     store.Cache
	)
	switch cfg.Storage.Driver {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		blobStore = store.NewRedisStore(redisClient)
		cache = store.NewRedisCache(redisClient)
	case "postgres":
		pgStore, err := store.NewPgStore(ctx, cfg.Postgres.DSN, logger)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer pgStore.Close()
		blobStore = pgStore
		cache = store.NewMemoryCache()
	default:
		fileStore, err := store.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			logger.Fatal("failed to open file store", zap.Error(err), zap.String("dir", cfg.Storage.DataDir))
		}
		blobStore = fileStore
		cache = store.NewMemoryCache()
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	inventory := services.NewInventoryService(blobStore, logger)
	if err := inventory.Load(ctx); err != nil {
		logger.Fatal("failed to load inventory state", zap.Error(err))
	}

	maintenanceSvc := services.NewMaintenanceService(inventory, cfg.Maintenance.WarnDays, services.AdminUserID, logger)
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("failed to create scheduler", zap.Error(err))
	}
	if _, err := scheduler.NewJob(
		gocron.DurationJob(cfg.Maintenance.ScanInterval),
		gocron.NewTask(func() {
			created, err := maintenanceSvc.ScanDue(context.Background())
			if err != nil {
				logger.Error("maintenance scan failed", zap.Error(err))
				return
			}
			if created > 0 {
				logger.Info("maintenance scan created notifications", zap.Int("count", created))
			}
		}),
	); err != nil {
		logger.Fatal("failed to schedule maintenance scan", zap.Error(err))
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			logger.Warn("scheduler shutdown failed", zap.Error(err))
		}
	}()

	routes.InitRouter(e, inventory, cache, jwtSvc, cfg, logger)

	logger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
