package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"bookworm/database"
	"bookworm/internal/cache"
	"bookworm/internal/config"
	"bookworm/internal/http-api/handler"
	"bookworm/internal/http-api/middleware"
	"bookworm/internal/http-api/repository"
	"bookworm/internal/http-api/service"
	"bookworm/internal/mailer"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Redis backs the OTP store and the dashboard cache. In development
	// the server runs without it.
	var rdb *redis.Client
	var otpStore cache.OTPStore
	var statsCache cache.StatsCache
	rdb, err = cache.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		if cfg.IsProduction() {
			logger.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		logger.Warn("redis unavailable, using in-process fallbacks", "error", err)
		otpStore = cache.NewMemoryOTPStore()
		statsCache = cache.NoopStatsCache{}
	} else {
		otpStore = cache.NewRedisOTPStore(rdb)
		statsCache = cache.NewRedisStatsCache(rdb)
	}

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		logger.Warn("SMTP_HOST not set, reset codes are logged instead of mailed")
		mail = mailer.LogMailer{Logger: logger}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	genreRepo := repository.NewGenreRepo(db)
	bookRepo := repository.NewBookRepo(db)
	reviewRepo := repository.NewReviewRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	tutorialRepo := repository.NewTutorialRepository(db)
	collegeRepo := repository.NewCollegeRepo(db)
	admissionRepo := repository.NewAdmissionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, refreshTokenRepo, otpStore, mail, cfg)
	genreSvc := service.NewGenreService(genreRepo)
	bookSvc := service.NewBookService(bookRepo, genreRepo)
	reviewSvc := service.NewReviewService(reviewRepo, bookRepo)
	librarySvc := service.NewLibraryService(libraryRepo, bookRepo)
	recommendationSvc := service.NewRecommendationService(
		recommendationRepo, reviewRepo, service.DefaultRecommendationWeights())
	tutorialSvc := service.NewTutorialService(tutorialRepo)
	collegeSvc := service.NewCollegeService(collegeRepo)
	admissionSvc := service.NewAdmissionService(admissionRepo, collegeRepo)
	studentSvc := service.NewStudentService(studentRepo)
	dashboardSvc := service.NewDashboardService(statsRepo, statsCache, cfg.CacheTTL, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authSvc)
	requireAdmin := middleware.RequireRole("admin")

	api := r.Group("/api/v1")
	handler.NewAuthHandler(authSvc).RegisterRoutes(api.Group("/auth"), requireAuth, requireAdmin)
	handler.NewGenreHandler(genreSvc).RegisterRoutes(api.Group("/genres"), requireAuth, requireAdmin)
	handler.NewBookHandler(bookSvc).RegisterRoutes(api.Group("/books"), requireAuth, requireAdmin)
	handler.NewReviewHandler(reviewSvc).RegisterRoutes(api.Group("/reviews"), requireAuth, requireAdmin)
	handler.NewLibraryHandler(librarySvc).RegisterRoutes(api.Group("/library"), requireAuth)
	handler.NewRecommendationHandler(recommendationSvc).RegisterRoutes(api.Group("/recommendations"))
	handler.NewTutorialHandler(tutorialSvc).RegisterRoutes(api.Group("/tutorials"), requireAuth, requireAdmin)
	handler.NewCollegeHandler(collegeSvc).RegisterRoutes(api.Group("/colleges"), requireAuth, requireAdmin)
	handler.NewAdmissionHandler(admissionSvc).RegisterRoutes(api.Group("/admissions"), requireAuth, requireAdmin)
	handler.NewStudentHandler(studentSvc).RegisterRoutes(api.Group("/students"), requireAuth, requireAdmin)
	handler.NewDashboardHandler(dashboardSvc).RegisterRoutes(api.Group("/dashboard"), requireAuth, requireAdmin)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
