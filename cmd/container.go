package main

import (
	"context"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/config"
	"github.com/Abraxas-365/jobboard/pkg/database"
	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/Abraxas-365/jobboard/recruitment/application/applicationapi"
	"github.com/Abraxas-365/jobboard/recruitment/application/applicationinfra"
	"github.com/Abraxas-365/jobboard/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/jobboard/recruitment/job/jobapi"
	"github.com/Abraxas-365/jobboard/recruitment/job/jobinfra"
	"github.com/Abraxas-365/jobboard/recruitment/job/jobsrv"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies
type Container struct {
	Config config.Config

	// Infrastructure
	DB     *sqlx.DB
	Redis  *redis.Client
	Events *applicationinfra.RedisEventPublisher

	// Services
	TokenService       *auth.JWTService
	JobService         *jobsrv.JobService
	ApplicationService *applicationsrv.ApplicationService

	// API Handlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	c.initHandlers()
	return c
}

// Close releases the database pool and the redis client
func (c *Container) Close() {
	if err := c.Redis.Close(); err != nil {
		logx.Warnf("Failed to close Redis client: %v", err)
	}
	if err := c.DB.Close(); err != nil {
		logx.Warnf("Failed to close database: %v", err)
	}
}

func (c *Container) initInfrastructure() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Database connection and schema
	db, err := database.Connect(ctx, c.Config.Database)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		logx.Fatalf("Failed to migrate database: %v", err)
	}
	c.DB = db

	// 2. Redis connection; the API keeps serving without it
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
	c.Events = applicationinfra.NewRedisEventPublisher(c.Redis, c.Config.Redis.EventsKey)

	// 3. Token verification
	secret := c.Config.JWT.SecretKey
	if secret == "" {
		if c.Config.IsProduction() {
			logx.Fatal("JWT_SECRET must be set in production")
		}
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		secret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = auth.NewJWTService(secret, c.Config.JWT.AccessTokenTTL, c.Config.JWT.Issuer)
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService)
}

func (c *Container) initServices() {
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	c.JobService = jobsrv.NewJobService(jobRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, jobRepo, c.Events)
}

func (c *Container) initHandlers() {
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
}
