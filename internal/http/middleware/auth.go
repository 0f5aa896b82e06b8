package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/metrics"
)

const (
	userKey        = "user"
	accessTokenKey = "access_token"
)

type userCtxKey struct{}

// AuthMW wraps the token service and user store for middleware
type AuthMW struct {
	tokenSvc domain.TokenService
	userRepo domain.UserRepository
	denylist domain.TokenDenylist
	metrics  *metrics.Metrics
}

// NewAuthMW creates new auth middleware wrapper. denylist and m may be nil.
func NewAuthMW(tokenSvc domain.TokenService, userRepo domain.UserRepository, denylist domain.TokenDenylist, m *metrics.Metrics) *AuthMW {
	return &AuthMW{
		tokenSvc: tokenSvc,
		userRepo: userRepo,
		denylist: denylist,
		metrics:  m,
	}
}

// WithJWT returns the JWT middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.userRepo, mw.denylist, mw.metrics)
}

// CurrentUser returns the member loaded by the auth middleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}

// AccessToken returns the bearer token the request was authenticated with
func AccessToken(c *gin.Context) string {
	return c.GetString(accessTokenKey)
}

// UserFromContext returns the member stored on a request context
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*domain.User)
	return user, ok && user != nil
}

func contextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}
