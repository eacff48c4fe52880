package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/contest-tracker/internal/middleware"
)

// RouterDeps holds everything the HTTP routes need.
type RouterDeps struct {
	Auth      *AuthHandler
	Contests  *ContestHandler
	Bookmarks *BookmarkHandler
	Solutions *SolutionHandler

	Resolver middleware.IdentityResolver

	// Redis backs the login and register rate limiter. Nil disables limiting
	// only when LoginRateLimit is zero; otherwise requests fail open.
	Redis           *redis.Client
	LoginRateLimit  int
	LoginRateWindow time.Duration

	WebRoot string
}

// RegisterRoutes mounts the API, health, metrics and page routes on r.
// Session middleware must already be installed.
func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	r.Use(middleware.Identity(deps.Resolver))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Contest Tracker API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimit(deps.Redis, "register", deps.LoginRateLimit, deps.LoginRateWindow), deps.Auth.Register)
			auth.POST("/login", middleware.RateLimit(deps.Redis, "login", deps.LoginRateLimit, deps.LoginRateWindow), deps.Auth.Login)
			auth.POST("/logout", deps.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), deps.Auth.Me)
			auth.PUT("/profile", middleware.RequireAuth(), deps.Auth.UpdateProfile)
		}

		// Reads are public and personalized when a viewer is present.
		contests := api.Group("/contests")
		{
			contests.GET("", deps.Contests.ListContests)
			contests.GET("/upcoming", deps.Contests.ListUpcoming)
			contests.GET("/:id", deps.Contests.GetContest)
			contests.GET("/:id/solutions", deps.Solutions.ListContestSolutions)

			contests.POST("", middleware.RequireAuth(), deps.Contests.CreateContest)
			contests.POST("/draft", middleware.RequireAuth(), deps.Contests.DraftContest)
			contests.PATCH("/:id", middleware.RequireAuth(), deps.Contests.UpdateContest)
			contests.DELETE("/:id", middleware.RequireAuth(), deps.Contests.DeleteContest)
			contests.POST("/:id/bookmark", middleware.RequireAuth(), deps.Bookmarks.ToggleBookmark)
			contests.PUT("/:id/solution", middleware.RequireAuth(), deps.Solutions.SaveSolution)
			contests.DELETE("/:id/solution", middleware.RequireAuth(), deps.Solutions.DeleteSolution)
		}

		api.GET("/bookmarks", middleware.RequireAuth(), deps.Bookmarks.ListBookmarks)
		api.GET("/solutions", middleware.RequireAuth(), deps.Solutions.ListMySolutions)
	}

	r.NoRoute(middleware.AccessGate(), StaticPages(deps.WebRoot))
}
