package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/http/middleware"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

// RefreshCookieName is the cookie carrying the refresh token
const RefreshCookieName = "refreshToken"

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc      domain.AuthService
	cookieMaxAge time.Duration
	secureCookie bool
	log          logging.Logger
}

// NewAuthHandlers creates new auth handlers. cookieMaxAge should match the
// refresh token lifetime; secureCookie is set in production.
func NewAuthHandlers(authSvc domain.AuthService, cookieMaxAge time.Duration, secureCookie bool, log logging.Logger) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
		log:          log,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name       string `json:"name"`
	FatherName string `json:"fatherName"`
	Email      string `json:"email,omitempty"`
	Mobile     string `json:"mobile"`
	Occupation string `json:"occupation,omitempty"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// Register handles member registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	// Elevated roles are only granted through the CLI or make-admin.
	role, err := domain.ParseRole(strings.TrimSpace(req.Role))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if role != domain.RoleMember {
		badRequest(c, "Registration can only create members")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Name:       req.Name,
		FatherName: req.FatherName,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Occupation: req.Occupation,
		Password:   req.Password,
		Role:       role,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles member login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Mobile, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken, int(h.cookieMaxAge.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"accessToken": result.AccessToken,
		"expiresIn":   result.ExpiresIn,
		"user":        result.User,
		"message":     "Login successful",
	})
}

// Refresh mints a new access token from the refresh cookie
func (h *AuthHandlers) Refresh(c *gin.Context) {
	token, _ := c.Cookie(RefreshCookieName)

	accessToken, err := h.authSvc.Refresh(c.Request.Context(), token)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logout clears the refresh cookie and revokes the presented tokens when revocation is enabled
func (h *AuthHandlers) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(RefreshCookieName)
	accessToken, _ := middleware.BearerToken(c.GetHeader("Authorization"))

	h.setRefreshCookie(c, "", -1)

	if err := h.authSvc.Logout(c.Request.Context(), refreshToken, accessToken); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandlers) setRefreshCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}
