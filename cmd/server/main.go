package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/contest-tracker/internal/config"
	"github.com/yukikurage/contest-tracker/internal/constants"
	"github.com/yukikurage/contest-tracker/internal/database"
	"github.com/yukikurage/contest-tracker/internal/handlers"
	"github.com/yukikurage/contest-tracker/internal/logging"
	"github.com/yukikurage/contest-tracker/internal/middleware"
	"github.com/yukikurage/contest-tracker/internal/repository"
	"github.com/yukikurage/contest-tracker/internal/security"
	"github.com/yukikurage/contest-tracker/internal/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel))
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	store, err := newSessionStore(cfg)
	if err != nil {
		return err
	}

	// Initialize AI service
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	} else {
		slog.Info("OPENAI_API_KEY not set, contest drafts disabled")
	}

	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	contestRepo := repository.NewContestRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	userRepo := repository.NewUserRepository(db)

	contestService := services.NewContestService(contestRepo, bookmarkRepo, solutionRepo, aiService, services.SystemClock)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, contestService, services.SystemClock)
	solutionService := services.NewSolutionService(solutionRepo, contestService, services.SystemClock)
	authService := services.NewAuthService(userRepo, tokens)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics())
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	handlers.RegisterRoutes(r, handlers.RouterDeps{
		Auth:            handlers.NewAuthHandler(authService, cfg.TokenTTL, cfg.IsProduction()),
		Contests:        handlers.NewContestHandler(contestService),
		Bookmarks:       handlers.NewBookmarkHandler(bookmarkService),
		Solutions:       handlers.NewSolutionHandler(solutionService),
		Resolver:        security.NewIdentityResolver(tokens),
		Redis:           rdb,
		LoginRateLimit:  cfg.LoginRateLimit,
		LoginRateWindow: cfg.LoginRateWindow,
		WebRoot:         cfg.WebRoot,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "db_driver", cfg.DBDriver, "session_store", cfg.SessionStore)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server exited cleanly")
	return nil
}

// newSessionStore builds the store carrying the post-login callback.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	options := sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	if cfg.SessionStore == "redis" {
		store, err := redisStore.NewStore(
			10,    // pool size
			"tcp", // network type
			cfg.RedisAddr(),
			cfg.RedisPassword,
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, err
		}
		store.Options(options)
		return store, nil
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(options)
	return store, nil
}
