package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/iam/auth"
	"github.com/TechnologicalJerry/job-portal-website/pkg/logx"
	"github.com/TechnologicalJerry/job-portal-website/portal/job/jobapi"
	"github.com/TechnologicalJerry/job-portal-website/portal/job/jobinfra"
	"github.com/TechnologicalJerry/job-portal-website/portal/job/jobsrv"
	"github.com/TechnologicalJerry/job-portal-website/portal/user/userapi"
	"github.com/TechnologicalJerry/job-portal-website/portal/user/userinfra"
	"github.com/TechnologicalJerry/job-portal-website/portal/user/usersrv"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const jobCacheTTL = 30 * time.Second

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Services
	TokenService auth.TokenService
	UserService  *usersrv.UserService
	JobService   *jobsrv.JobService

	// API Handlers
	UserHandlers *userapi.Handlers
	JobHandlers  *jobapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	jobRepo := jobinfra.NewCachedJobRepository(
		jobinfra.NewPostgresJobRepository(c.DB),
		c.Redis,
		jobCacheTTL,
	)

	// --- Infrastructure Services ---
	passwordHasher := userinfra.NewBcryptPasswordHasher()

	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.RefreshTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)

	// --- Domain Services ---
	c.UserService = usersrv.NewUserService(userRepo, passwordHasher, c.TokenService)
	c.JobService = jobsrv.NewJobService(jobRepo, userRepo)

	// --- Handlers ---
	c.UserHandlers = userapi.NewHandlers(c.UserService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService)
}
