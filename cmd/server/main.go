package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/adapters"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/assessment"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/cache"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/database"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/errors"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/monitoring"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/ratelimit"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/security"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/suggestions"
	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// app bundles the services the HTTP handlers depend on.
type app struct {
	repo        *database.Repository
	userService *database.UserService
	assessor    *assessment.Assessor
	selector    *suggestions.Selector
	openai      *adapters.OpenAIAdapter
	cache       *cache.Cache
	metrics     *monitoring.Metrics
	logger      *monitoring.Logger
}

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment with defaults
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	jwtSecret := getEnvOrDefault("JWT_SECRET", "your-super-secret-jwt-key-change-in-production")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	port := getEnvOrDefault("PORT", "8080")

	// Initialize database and user service
	db, err := database.NewDB(dataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	userService := database.NewUserService(repo, jwtSecret)

	// Assessment pipeline: the repository doubles as the training corpus
	assessor := assessment.NewAssessor(dataDir, repo)
	selector := suggestions.NewSelector()
	openaiAdapter := adapters.NewOpenAIAdapter(openaiKey)

	// Initialize monitoring system
	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	// Initialize rate limiting with Redis and in-memory fallback
	redisClient, err := ratelimit.NewRedisClient(redisAddr, redisPassword, 0)
	if err != nil {
		slog.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}
	defer redisClient.Close()
	rateLimiter := ratelimit.NewRateLimiter(redisClient, ratelimit.DefaultConfig(), appMetrics)

	// Initialize cache for history and trend reads (5 minutes TTL)
	appCache := cache.NewCache(5 * time.Minute)

	a := &app{
		repo:        repo,
		userService: userService,
		assessor:    assessor,
		selector:    selector,
		openai:      openaiAdapter,
		cache:       appCache,
		metrics:     appMetrics,
		logger:      appLogger,
	}

	r := setupRouter(a, rateLimiter)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// setupRouter wires middleware and routes. Split out from main so handler
// tests can run against the full middleware chain.
func setupRouter(a *app, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	r := gin.New()

	// Monitoring middleware first (to capture all requests)
	r.Use(monitoring.MonitoringMiddleware(a.metrics, a.logger))

	// Error handling middleware
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	// Security middleware
	securityConfig := security.DefaultSecurityConfig()
	securityMiddleware := security.NewSecurityMiddleware(securityConfig)
	r.Use(security.SecurityHeadersMiddleware())
	r.Use(securityMiddleware.RequestTimeout)
	r.Use(securityMiddleware.ValidateContentType)
	r.Use(securityMiddleware.LimitBodySize)

	// CORS for the web frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = securityConfig.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Rate limiting and session resolution
	if rateLimiter != nil {
		r.Use(rateLimiter.IPRateLimitMiddleware())
	}
	r.Use(sessionMiddleware(a.userService))

	// Cached read endpoints
	r.Use(a.cache.Middleware(a.metrics, "/users/"))

	r.GET("/health", a.handleHealth)
	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.metrics.GetStats())
	})
	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.cache.Stats())
	})
	r.GET("/pools/database", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"pool":  "database",
			"stats": a.repo.PoolStats(),
		})
	})

	r.POST("/session/token", a.handleSessionToken)
	r.POST("/assess", a.handleAssess)

	suggestionHandlers := []gin.HandlerFunc{}
	if rateLimiter != nil {
		suggestionHandlers = append(suggestionHandlers, rateLimiter.UserRateLimitMiddleware())
	}
	suggestionHandlers = append(suggestionHandlers, a.handleSuggestions)
	r.GET("/suggestions", suggestionHandlers...)

	r.GET("/quote", func(c *gin.Context) {
		c.JSON(http.StatusOK, suggestions.RandomQuote())
	})

	r.GET("/users/:id/history", a.handleHistory)
	r.GET("/users/:id/trend", a.handleTrend)

	r.GET("/model", a.handleModelState)
	r.POST("/model/retrain", a.handleRetrain)

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// sessionMiddleware resolves the requesting user from a bearer token when
// present, falling back to IP plus user agent identity. The resolved user ID
// is stored in the request context for downstream handlers.
func sessionMiddleware(userService *database.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}

		user, err := userService.ResolveUser(token, c.ClientIP(), c.GetHeader("User-Agent"))
		if err != nil {
			slog.Warn("Failed to resolve user", "ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}

func (a *app) handleHealth(c *gin.Context) {
	state := a.assessor.Trainer().State()
	model := gin.H{"fitted": state != nil}
	if state != nil {
		model["sample_count"] = state.SampleCount
		model["trained_at"] = state.TrainedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
		"model":     model,
		"metrics":   a.metrics.GetStats(),
	})
}

func (a *app) handleSessionToken(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not identified"})
		return
	}

	token, err := a.userService.GenerateSessionToken(userID)
	if err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": userID,
	})
}

// handleAssess scores a submitted check-in. The submission always succeeds
// with at least a deterministic score; the model overlay and persistence
// failures degrade rather than reject.
func (a *app) handleAssess(c *gin.Context) {
	start := time.Now()

	var req types.AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.NewValidationError("invalid JSON payload", err.Error())
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	userID, _ := contextUserID(c)
	record := a.assessor.BuildRecord(userID, &req)

	// Persistence failures never block the response: the scores are already
	// computed. The record just won't appear in history or the corpus.
	notice := ""
	if err := a.repo.AppendResponse(record); err != nil {
		slog.Error("Failed to persist response, serving scores anyway",
			"record_id", record.ID,
			"error", err)
		notice = "response could not be saved to history"
	} else {
		// New corpus data invalidates the fitted model and any cached reads
		a.assessor.Trainer().Invalidate()
		a.cache.Clear()
	}

	score, source := a.assessor.Assess(record)
	if source == assessment.ScoreSourceModel {
		a.metrics.IncrementModelPredict()
	} else {
		a.metrics.IncrementModelFallback()
	}
	a.metrics.IncrementSubmission()

	picked := a.selector.Select(record.Platform, record.Metrics())

	a.logger.SubmissionLogger(string(record.Platform), score, source, len(picked), time.Since(start))

	c.JSON(http.StatusOK, types.AssessResponse{
		Record:      record,
		Score:       score,
		ScoreSource: source,
		Suggestions: picked,
		Notice:      notice,
	})
}

// handleSuggestions serves wellness suggestions for the given metrics. With
// ai=true and a configured API key the suggestions come from OpenAI, falling
// back to the static catalog on any failure.
func (a *app) handleSuggestions(c *gin.Context) {
	platform := types.ParsePlatform(c.Query("platform"))
	metrics := assessment.NormalizeGeneral(
		queryInt(c, "mood"),
		queryInt(c, "sleep"),
		queryInt(c, "stress"),
		queryBool(c, "anxiety"),
	)

	if c.Query("ai") == "true" && a.openai.IsConfigured() {
		a.metrics.IncrementOpenAICall()
		aiStart := time.Now()

		generated, err := a.openai.GenerateSuggestions(c.Request.Context(), metrics, platform)
		a.logger.ExternalAPILogger("OpenAI", "generate_suggestions", time.Since(aiStart), err == nil)

		if err != nil {
			a.metrics.IncrementOpenAIFailure()
			slog.Warn("AI suggestion generation failed, serving fallback", "error", err)
			c.JSON(http.StatusOK, gin.H{
				"suggestions": suggestions.FallbackSuggestions,
				"source":      "fallback",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"suggestions": generated,
			"source":      "ai",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": a.selector.Select(platform, metrics),
		"source":      "catalog",
	})
}

func (a *app) handleHistory(c *gin.Context) {
	userID := c.Param("id")

	history, err := a.userService.History(userID)
	if err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"count":   len(history),
		"history": history,
	})
}

func (a *app) handleTrend(c *gin.Context) {
	userID := c.Param("id")

	trend, err := a.userService.Trend(userID)
	if err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, trend)
}

func (a *app) handleModelState(c *gin.Context) {
	state := a.assessor.Trainer().State()
	if state == nil {
		c.JSON(http.StatusOK, gin.H{"fitted": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fitted":       true,
		"columns":      state.Columns,
		"sample_count": state.SampleCount,
		"trained_at":   state.TrainedAt.Format(time.RFC3339),
	})
}

func (a *app) handleRetrain(c *gin.Context) {
	start := time.Now()

	state, err := a.assessor.Trainer().Fit()
	if err != nil {
		a.metrics.IncrementModelFitFailure()
		a.logger.ModelLogger("fit", 0, 0, time.Since(start), err)

		appErr := errors.NewModelUnavailableError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	a.metrics.IncrementModelFit()
	a.logger.ModelLogger("fit", state.SampleCount, len(state.Columns), time.Since(start), nil)

	c.JSON(http.StatusOK, gin.H{
		"fitted":       true,
		"sample_count": state.SampleCount,
		"columns":      len(state.Columns),
		"trained_at":   state.TrainedAt.Format(time.RFC3339),
	})
}

func contextUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func queryInt(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
