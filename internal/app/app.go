package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/config"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/auth"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/database"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/infrastructure/repositories"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/services"
)

const shutdownTimeout = 10 * time.Second

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", srv.Addr, "env", cfg.Env, "revocation", cfg.RevocationEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Migrate creates or updates the schema and seeds the default policies.
func Migrate(cfg *config.Config, log logging.Logger) error {
	db, err := database.Open(cfg.DSN, logger.Warn)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(db)
	if err != nil {
		return err
	}
	seeded, err := cas.SeedDefaults()
	if err != nil {
		return err
	}
	log.Info(context.Background(), "migration complete", "policies_seeded", seeded)
	return nil
}

// SuperAdminInput describes the bootstrap account
type SuperAdminInput struct {
	Mobile     string
	Name       string
	FatherName string
	Password   string
}

// CreateSuperAdmin registers a verified superadmin. It is the only way to
// create the first privileged account.
func CreateSuperAdmin(ctx context.Context, cfg *config.Config, log logging.Logger, in SuperAdminInput) (*domain.User, error) {
	db, err := database.Open(cfg.DSN, logger.Warn)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	users := repositories.NewUserRepository(db)
	authSvc := services.NewAuthService(
		users,
		auth.NewPasswordService(cfg.BcryptCost),
		auth.NewJWTService(cfg.AccessSecret, cfg.RefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL),
		nil,
		logging.NewAuditLogger(log),
	)

	user, err := authSvc.Register(ctx, domain.RegisterInput{
		Name:       in.Name,
		FatherName: in.FatherName,
		Mobile:     in.Mobile,
		Password:   in.Password,
		Role:       domain.RoleSuperAdmin,
	})
	if err != nil {
		return nil, err
	}
	if err := users.SetVerified(ctx, user.ID, true); err != nil {
		return nil, fmt.Errorf("verify superadmin: %w", err)
	}
	user.Verified = true
	return user, nil
}
