package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/http/middleware"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

// respondError translates a service error into the HTTP status taxonomy.
// Anything unrecognised is logged and reported as a generic 500.
func respondError(c *gin.Context, log logging.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Msg})
	case errors.Is(err, domain.ErrDuplicateMobile):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mobile already registered."})
	case errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered."})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid mobile number or password."})
	case errors.Is(err, domain.ErrNoRefreshToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No refresh token"})
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		c.JSON(http.StatusForbidden, gin.H{"message": "Invalid refresh token"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, domain.ErrContributionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Contribution not found"})
	case errors.Is(err, domain.ErrScreenshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Screenshot not found"})
	case errors.Is(err, domain.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
	default:
		log.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// actor returns the authenticated member or writes a 401.
func actor(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return nil, false
	}
	return user, true
}

// idParam parses the :id path segment or writes a 400.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// intQuery parses a required integer query parameter or writes a 400.
func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		badRequest(c, name+" is required")
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, name+" must be a number")
		return 0, false
	}
	return v, true
}
