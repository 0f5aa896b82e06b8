package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// RequirePermission rejects the request with 403 unless the authenticated
// member's role is granted action on resource. It must run after WithJWT.
func RequirePermission(policy domain.PolicyService, resource domain.Resource, action domain.Action) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "No token provided")
			return
		}

		if err := policy.Require(c.Request.Context(), user, resource, action); err != nil {
			if errors.Is(err, domain.ErrForbidden) {
				abort(c, http.StatusForbidden, "Access denied")
				return
			}
			abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Next()
	})
}
