package e2e

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/app"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/config"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/auth"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/database"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/repositories"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/metrics"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/mocks"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/services"
)

const (
	testAccessSecret  = "e2e-access-secret"
	testRefreshSecret = "e2e-refresh-secret"
	testIssuer        = "aakasmik-nidhi"
	testPassword      = "pass1234"
)

// testClock is the clock shared by token issuance and verification
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// TestEnv is a fully wired service backed by in-memory stores
type TestEnv struct {
	Server    *httptest.Server
	Client    *http.Client
	Container *app.Container
	DB        *gorm.DB
	Redis     *miniredis.Miniredis
	Clock     *testClock
	Notifier  *mocks.MockNotificationService
}

type envOptions struct {
	revocation bool
}

type EnvOption func(*envOptions)

// WithRevocation backs logout with a Redis denylist
func WithRevocation() EnvOption {
	return func(o *envOptions) { o.revocation = true }
}

// NewTestEnv wires the production router over SQLite, an in-memory policy
// store and, optionally, miniredis.
func NewTestEnv(t *testing.T, opts ...EnvOption) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var o envOptions
	for _, opt := range opts {
		opt(&o)
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cas, err := auth.NewMemoryCasbinService()
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}
	if _, err := cas.SeedDefaults(); err != nil {
		t.Fatalf("failed to seed policies: %v", err)
	}

	cfg := &config.Config{
		Env:           "test",
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		JWTIssuer:     testIssuer,
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		BcryptCost:    4,
	}

	env := &TestEnv{
		DB:       db,
		Clock:    &testClock{now: time.Now().UTC().Truncate(time.Second)},
		Notifier: mocks.NewMockNotificationService(),
	}

	log := logging.Nop()
	c := &app.Container{
		Config:           cfg,
		Log:              log,
		DB:               db,
		Casbin:           cas,
		Metrics:          metrics.New(),
		UserRepo:         repositories.NewUserRepository(db),
		ContributionRepo: repositories.NewContributionRepository(db),
		ScreenshotRepo:   repositories.NewScreenshotRepository(db),
		ExpenseRepo:      repositories.NewExpenseRepository(db),
		FeedbackRepo:     repositories.NewFeedbackRepository(db),
		Audit:            logging.NewAuditLogger(log),
		PasswordSvc:      auth.NewPasswordService(cfg.BcryptCost),
		TokenSvc: auth.NewJWTService(cfg.AccessSecret, cfg.RefreshSecret, cfg.JWTIssuer,
			cfg.AccessTTL, cfg.RefreshTTL, auth.WithClock(env.Clock.Now)),
		NotificationSvc: env.Notifier,
		Storage:         mocks.NewMockObjectStorage(),
	}

	if o.revocation {
		mr, err := miniredis.Run()
		if err != nil {
			t.Fatalf("failed to start miniredis: %v", err)
		}
		t.Cleanup(mr.Close)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })

		env.Redis = mr
		c.RedisClient = client
		c.Denylist = repositories.NewTokenDenylist(client)
	}

	c.PolicySvc = services.NewPolicyService(cas.E, c.Audit)
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.Denylist, c.Audit)
	c.UserSvc = services.NewUserService(c.UserRepo, c.PolicySvc, c.NotificationSvc, c.Audit, log)
	c.ContributionSvc = services.NewContributionService(c.ContributionRepo, c.UserRepo, c.PolicySvc, c.Audit)
	c.ScreenshotSvc = services.NewScreenshotService(c.ScreenshotRepo, c.ContributionSvc, c.Storage, c.PolicySvc, c.Audit)
	c.ExpenseSvc = services.NewExpenseService(c.ExpenseRepo, c.PolicySvc, c.Audit)
	c.FeedbackSvc = services.NewFeedbackService(c.FeedbackRepo, c.PolicySvc)

	env.Container = c
	env.Server = httptest.NewServer(c.Router())
	env.Client = env.Server.Client()
	t.Cleanup(env.Server.Close)

	return env
}

// SeedUser registers a user directly through the auth service with the
// given role; admins and superadmins are marked verified.
func (e *TestEnv) SeedUser(t *testing.T, name, mobile string, role domain.Role) *domain.User {
	t.Helper()
	ctx := context.Background()

	user, err := e.Container.AuthSvc.Register(ctx, domain.RegisterInput{
		Name:       name,
		FatherName: name + " Sr",
		Mobile:     mobile,
		Password:   testPassword,
		Role:       role,
	})
	if err != nil {
		t.Fatalf("failed to seed %s: %v", mobile, err)
	}
	if role != domain.RoleMember {
		if err := e.Container.UserRepo.SetVerified(ctx, user.ID, true); err != nil {
			t.Fatalf("failed to verify %s: %v", mobile, err)
		}
		user.Verified = true
	}
	return user
}

// FindUser reads a user straight from the store
func (e *TestEnv) FindUser(t *testing.T, id uint) *domain.User {
	t.Helper()
	user, err := e.Container.UserRepo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to load user %d: %v", id, err)
	}
	return user
}
