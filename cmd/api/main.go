package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/class-coins-api/internal/handler"
	"github.com/noah-isme/class-coins-api/internal/middleware"
	"github.com/noah-isme/class-coins-api/internal/service"
	"github.com/noah-isme/class-coins-api/internal/store"
	"github.com/noah-isme/class-coins-api/pkg/cache"
	"github.com/noah-isme/class-coins-api/pkg/config"
	"github.com/noah-isme/class-coins-api/pkg/database"
	"github.com/noah-isme/class-coins-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/class-coins-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/class-coins-api/pkg/middleware/requestid"
	"github.com/noah-isme/class-coins-api/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	st := newStore(cfg, logr)

	metrics := service.NewMetricsService()
	cacheSvc := newCache(cfg, metrics, logr)

	codec := token.NewCodec(cfg.Token.Secret)
	authSvc := service.NewAuthService(codec, logr, cfg.Admin)
	classSvc := service.NewClassService(st, cacheSvc, nil, logr)
	studentSvc := service.NewStudentService(st, cacheSvc, nil, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.RegisterRoutes(r, handler.Deps{
		Auth:     authSvc,
		Classes:  classSvc,
		Students: studentSvc,
		Store:    st,
		Metrics:  metrics,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newStore selects the storage backend. An unset or placeholder
// connection string means in-memory; a broken one falls back to
// in-memory so the server still comes up.
func newStore(cfg *config.Config, logr *zap.Logger) store.Store {
	if cfg.UseMemoryStore() {
		logr.Info("using in-memory store")
		return store.NewMemoryStore()
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		logr.Warn("failed to open database, falling back to in-memory store", zap.Error(err))
		return store.NewMemoryStore()
	}

	logr.Info("using postgres store")
	return store.NewPostgresStore(db)
}

// newCache returns nil when caching is disabled or Redis is unreachable;
// the services treat a nil cache as a permanent miss.
func newCache(cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) *service.CacheService {
	if !cfg.Cache.Enabled {
		return nil
	}

	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("failed to connect to redis, caching disabled", zap.Error(err))
		return nil
	}

	logr.Info("listing cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	return service.NewCacheService(client, metrics, cfg.Cache.TTL, logr)
}
