package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/config"
	httpx "github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/http"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/http/handlers"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/http/middleware"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/auth"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/database"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/notifications"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/repositories"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/storage"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/metrics"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Log    logging.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService
	Metrics     *metrics.Metrics

	// Repositories
	UserRepo         domain.UserRepository
	ContributionRepo domain.ContributionRepository
	ScreenshotRepo   domain.ScreenshotRepository
	ExpenseRepo      domain.ExpenseRepository
	FeedbackRepo     domain.FeedbackRepository
	Denylist         domain.TokenDenylist

	// Services
	Audit           domain.AuditLogger
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	Storage         domain.ObjectStorage
	PolicySvc       domain.PolicyService
	AuthSvc         domain.AuthService
	UserSvc         domain.UserService
	ContributionSvc domain.ContributionService
	ScreenshotSvc   domain.ScreenshotService
	ExpenseSvc      domain.ExpenseService
	FeedbackSvc     domain.FeedbackService
}

// NewContainer opens every connection and wires repositories and services.
// Callers must Close the container.
func NewContainer(ctx context.Context, cfg *config.Config, log logging.Logger) (*Container, error) {
	c := &Container{Config: cfg, Log: log, Metrics: metrics.New()}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(ctx); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.initPolicy(); err != nil {
		c.Close()
		return nil, err
	}

	c.initRepositories()

	if err := c.initServices(ctx); err != nil {
		c.Close()
		return nil, err
	}

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN, logger.Warn)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

// initRedis connects the denylist store; it is skipped when revocation is off.
func (c *Container) initRedis(ctx context.Context) error {
	if !c.Config.RevocationEnabled {
		return nil
	}
	rdb := database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := rdb.Ping(ctx); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	c.RedisClient = rdb.Client
	return nil
}

func (c *Container) initPolicy() error {
	cas, err := auth.NewCasbinService(c.DB)
	if err != nil {
		return err
	}
	seeded, err := cas.SeedDefaults()
	if err != nil {
		return fmt.Errorf("seed policies: %w", err)
	}
	if seeded {
		c.Log.Info(context.Background(), "casbin: seeded default policies")
	}
	c.Casbin = cas
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.ContributionRepo = repositories.NewContributionRepository(c.DB)
	c.ScreenshotRepo = repositories.NewScreenshotRepository(c.DB)
	c.ExpenseRepo = repositories.NewExpenseRepository(c.DB)
	c.FeedbackRepo = repositories.NewFeedbackRepository(c.DB)
	if c.RedisClient != nil {
		c.Denylist = repositories.NewTokenDenylist(c.RedisClient)
	}
}

func (c *Container) initServices(ctx context.Context) error {
	cfg := c.Config

	s3, err := storage.NewS3Storage(ctx, storage.S3Config{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
		PresignTTL:    cfg.S3PresignTTL,
	})
	if err != nil {
		return err
	}
	c.Storage = s3

	c.Audit = logging.NewAuditLogger(c.Log)
	c.PasswordSvc = auth.NewPasswordService(cfg.BcryptCost)
	c.TokenSvc = auth.NewJWTService(cfg.AccessSecret, cfg.RefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, c.Log)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E, c.Audit)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.Denylist, c.Audit)
	c.UserSvc = services.NewUserService(c.UserRepo, c.PolicySvc, c.NotificationSvc, c.Audit, c.Log)
	c.ContributionSvc = services.NewContributionService(c.ContributionRepo, c.UserRepo, c.PolicySvc, c.Audit)
	c.ScreenshotSvc = services.NewScreenshotService(c.ScreenshotRepo, c.ContributionSvc, c.Storage, c.PolicySvc, c.Audit)
	c.ExpenseSvc = services.NewExpenseService(c.ExpenseRepo, c.PolicySvc, c.Audit)
	c.FeedbackSvc = services.NewFeedbackService(c.FeedbackRepo, c.PolicySvc)

	return nil
}

// Router builds the HTTP engine for the wired services
func (c *Container) Router() *gin.Engine {
	h := httpx.Handlers{
		Auth:          handlers.NewAuthHandlers(c.AuthSvc, c.Config.RefreshTTL, c.Config.IsProduction(), c.Log),
		Users:         handlers.NewUserHandlers(c.UserSvc, c.Log),
		Contributions: handlers.NewContributionHandlers(c.ContributionSvc, c.Log),
		Screenshots:   handlers.NewScreenshotHandlers(c.ScreenshotSvc, c.Log),
		Expenses:      handlers.NewExpenseHandlers(c.ExpenseSvc, c.Log),
		Feedback:      handlers.NewFeedbackHandlers(c.FeedbackSvc, c.Log),
		Policies:      handlers.NewPolicyHandlers(c.PolicySvc, c.Log),
	}

	return httpx.BuildRouter(h, httpx.RouterDeps{
		JWT:         middleware.NewAuthMW(c.TokenSvc, c.UserRepo, c.Denylist, c.Metrics),
		Policy:      c.PolicySvc,
		Log:         c.Log,
		Metrics:     c.Metrics,
		CORSOrigins: c.Config.CORSOrigins,
	})
}

// Close closes all connections
func (c *Container) Close() error {
	var errs []error
	if c.RedisClient != nil {
		errs = append(errs, c.RedisClient.Close())
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			errs = append(errs, err)
		} else {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
