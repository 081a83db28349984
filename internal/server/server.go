package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "crm/docs"
	"crm/internal/auth"
	"crm/internal/cache"
	"crm/internal/config"
	"crm/internal/database"
	"crm/internal/handler"
	"crm/internal/middleware"
	"crm/internal/repository"
	"crm/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// sessionTTL bounds how long an idle user's board state is remembered.
const sessionTTL = 30 * 24 * time.Hour

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, err
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("✅ Connected to redis")

	return New(cfg, db, rdb), nil
}

// New wires repositories, the deal cache and the board session store into a gin engine.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Server {
	handler.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	userRepo := repository.NewUserRepository(db)
	deals := cache.NewDealCache(repository.NewDealRepository(db), rdb, cfg.CacheTTL)
	contactRepo := repository.NewContactRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	sessions := session.NewRedisStore(rdb, sessionTTL)

	userHandler := handler.NewUserHandler(userRepo, auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry))
	pipelineHandler := handler.NewPipelineHandler(deals, sessions)
	dealHandler := handler.NewDealHandler(deals)
	contactHandler := handler.NewContactHandler(contactRepo)
	activityHandler := handler.NewActivityHandler(activityRepo)
	proposalHandler := handler.NewProposalHandler(proposalRepo, deals)
	metricsHandler := handler.NewMetricsHandler(deals, contactRepo, activityRepo, proposalRepo)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		authorized.GET("/pipeline", pipelineHandler.Get)
		authorized.GET("/pipeline/stages", pipelineHandler.Stages)
		authorized.PUT("/pipeline/search", pipelineHandler.Search)
		authorized.POST("/pipeline/sort", pipelineHandler.Sort)
		authorized.POST("/pipeline/view", pipelineHandler.ToggleView)
		authorized.POST("/pipeline/drag", pipelineHandler.Drag)
		authorized.GET("/pipeline/deals/:id", pipelineHandler.OpenDetail)
		authorized.DELETE("/pipeline/detail", pipelineHandler.CloseDetail)

		authorized.GET("/deals", dealHandler.List)
		authorized.POST("/deals", dealHandler.Create)
		authorized.GET("/deals/:id", dealHandler.GetByID)
		authorized.PATCH("/deals/:id", dealHandler.Update)

		authorized.GET("/contacts", contactHandler.List)
		authorized.POST("/contacts", contactHandler.Create)

		authorized.GET("/activities", activityHandler.List)
		authorized.POST("/activities", activityHandler.Create)
		authorized.PATCH("/activities/:id", activityHandler.Update)

		authorized.GET("/proposals", proposalHandler.List)
		authorized.POST("/proposals", proposalHandler.Create)
		authorized.PATCH("/proposals/:id", proposalHandler.Update)

		authorized.GET("/dashboard", metricsHandler.Dashboard)
		authorized.GET("/reports", metricsHandler.Reports)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Redis:  rdb,
		Config: cfg,
	}
}

// Run serves until SIGINT or SIGTERM, then shuts down within five seconds.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", s.Config.ServerPort).Info("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to listen: %w", err)
	case <-quit:
	}
	log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := s.Redis.Close(); err != nil {
		log.WithError(err).Warn("failed to close redis client")
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("✅ Server exited properly")
	return nil
}
