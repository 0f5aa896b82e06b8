package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/http/handlers"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/http/middleware"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/metrics"
)

// Handlers groups the HTTP handlers mounted by BuildRouter
type Handlers struct {
	Auth          *handlers.AuthHandlers
	Users         *handlers.UserHandlers
	Contributions *handlers.ContributionHandlers
	Screenshots   *handlers.ScreenshotHandlers
	Expenses      *handlers.ExpenseHandlers
	Feedback      *handlers.FeedbackHandlers
	Policies      *handlers.PolicyHandlers
}

// RouterDeps carries the cross-cutting pieces the router wires in. Metrics may be nil.
type RouterDeps struct {
	JWT         *middleware.AuthMW
	Policy      domain.PolicyService
	Log         logging.Logger
	Metrics     *metrics.Metrics
	CORSOrigins []string
}

// BuildRouter wires the handlers and middleware into a gin engine.
func BuildRouter(h Handlers, d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(d.CORSOrigins), middleware.ClientContext(), middleware.RequestLogger(d.Log, d.Metrics))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	auth := r.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.GET("/refresh-token", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	v := r.Group("/", d.JWT.WithJWT())
	allow := func(res domain.Resource, act domain.Action) gin.HandlerFunc {
		return middleware.RequirePermission(d.Policy, res, act)
	}

	users := v.Group("/users")
	users.GET("/me", h.Users.Me)
	users.PUT("/me", h.Users.UpdateMe)
	users.GET("", allow(domain.ResourceUser, domain.ActionList), h.Users.List)
	users.GET("/:id", allow(domain.ResourceUser, domain.ActionList), h.Users.Get)
	users.PATCH("/:id/verify", allow(domain.ResourceMember, domain.ActionVerify), h.Users.Verify)
	users.PATCH("/:id/make-admin", allow(domain.ResourceUser, domain.ActionPromote), h.Users.MakeAdmin)
	users.DELETE("/:id", allow(domain.ResourceUser, domain.ActionDelete), h.Users.Delete)

	contributions := v.Group("/contributions")
	contributions.GET("", h.Contributions.ForMonth)
	contributions.GET("/me", h.Contributions.Mine)
	contributions.GET("/summary", h.Contributions.Summary)
	contributions.GET("/user/:id", h.Contributions.ForUser)
	contributions.POST("", allow(domain.ResourceContribution, domain.ActionWrite), h.Contributions.Record)
	contributions.PUT("/:id", allow(domain.ResourceContribution, domain.ActionWrite), h.Contributions.Update)
	contributions.DELETE("/:id", allow(domain.ResourceContribution, domain.ActionWrite), h.Contributions.Delete)

	screenshots := v.Group("/screenshots")
	screenshots.POST("/upload-url", h.Screenshots.UploadURL)
	screenshots.POST("", h.Screenshots.Submit)
	screenshots.GET("/me", h.Screenshots.Mine)
	screenshots.GET("", allow(domain.ResourceScreenshot, domain.ActionReview), h.Screenshots.ForMonth)
	screenshots.POST("/:id/verify", allow(domain.ResourceScreenshot, domain.ActionReview), h.Screenshots.Verify)

	expenses := v.Group("/expenses")
	expenses.GET("", h.Expenses.List)
	expenses.GET("/summary", h.Expenses.Summary)
	expenses.POST("", allow(domain.ResourceExpense, domain.ActionWrite), h.Expenses.Create)
	expenses.PUT("/:id", allow(domain.ResourceExpense, domain.ActionWrite), h.Expenses.Update)
	expenses.DELETE("/:id", allow(domain.ResourceExpense, domain.ActionWrite), h.Expenses.Delete)

	feedback := v.Group("/feedback")
	feedback.POST("", h.Feedback.Submit)
	feedback.GET("", allow(domain.ResourceFeedback, domain.ActionRead), h.Feedback.List)

	adm := v.Group("/admin")
	adm.GET("/policies", allow(domain.ResourceUser, domain.ActionPromote), h.Policies.List)

	return r
}
