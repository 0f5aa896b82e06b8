package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/metrics"
)

// AuthMiddleware authenticates a request in three steps: a bearer token must
// be present, it must verify against the access secret, and the member it
// names must still exist. The member is loaded once per request.
func AuthMiddleware(tokenSvc domain.TokenService, userRepo domain.UserRepository, denylist domain.TokenDenylist, m *metrics.Metrics) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.AuthFailure("missing_token")
			abort(c, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := tokenSvc.VerifyAccessToken(token)
		if err != nil {
			m.AuthFailure("invalid_token")
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if denylist != nil {
			revoked, err := denylist.IsRevoked(c.Request.Context(), claims.TokenID)
			if err != nil {
				abort(c, http.StatusInternalServerError, "Internal server error")
				return
			}
			if revoked {
				m.AuthFailure("revoked_token")
				abort(c, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				m.AuthFailure("user_not_found")
				abort(c, http.StatusUnauthorized, "User not found")
				return
			}
			abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(userKey, user)
		c.Set(accessTokenKey, token)
		c.Request = c.Request.WithContext(contextWithUser(c.Request.Context(), user))

		c.Next()
	})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
