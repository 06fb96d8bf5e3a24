package server

import (
	"log"
	"strings"
	"time"

	"fitfam.app/familyfit/internal/config"
	"fitfam.app/familyfit/internal/middleware"
	"fitfam.app/familyfit/pkg/storage"

	activityHttp "fitfam.app/familyfit/internal/modules/activity/delivery/http"
	activityRepo "fitfam.app/familyfit/internal/modules/activity/repository"
	activityService "fitfam.app/familyfit/internal/modules/activity/service"

	checklistHttp "fitfam.app/familyfit/internal/modules/checklist/delivery/http"
	checklistRepo "fitfam.app/familyfit/internal/modules/checklist/repository"
	checklistService "fitfam.app/familyfit/internal/modules/checklist/service"

	leaderboardHttp "fitfam.app/familyfit/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "fitfam.app/familyfit/internal/modules/leaderboard/repository"
	leaderboardService "fitfam.app/familyfit/internal/modules/leaderboard/service"

	profileHttp "fitfam.app/familyfit/internal/modules/profile/delivery/http"
	profileService "fitfam.app/familyfit/internal/modules/profile/service"

	searchService "fitfam.app/familyfit/internal/modules/search/service"

	userHttp "fitfam.app/familyfit/internal/modules/user/delivery/http"
	userRepo "fitfam.app/familyfit/internal/modules/user/repository"
	userService "fitfam.app/familyfit/internal/modules/user/service"

	weightHttp "fitfam.app/familyfit/internal/modules/weight/delivery/http"
	weightRepo "fitfam.app/familyfit/internal/modules/weight/repository"
	weightService "fitfam.app/familyfit/internal/modules/weight/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	usersRepo := userRepo.NewUserRepository(db)
	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}

	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	meiliSvc := searchService.NewMeiliSearchService(meiliClient)

	authSvc := userService.NewAuthService(usersRepo)
	authHandler := userHttp.NewAuthHandler(authSvc)

	profileSvc := profileService.NewProfileService(usersRepo, imageStorage)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	boardRepo := leaderboardRepo.NewLeaderboardRepository(db)
	boardSvc := leaderboardService.NewLeaderboardService(boardRepo, usersRepo, redisClient)
	boardHandler := leaderboardHttp.NewLeaderboardHandler(boardSvc, redisClient)

	activitiesRepo := activityRepo.NewActivityRepository(db)
	activitySvc := activityService.NewActivityService(activitiesRepo, redisClient, meiliSvc, boardSvc, cfg.RateLimitActivity)
	activityHandler := activityHttp.NewActivityHandler(activitySvc)

	checklistsRepo := checklistRepo.NewChecklistRepository(db)
	checklistSvc := checklistService.NewChecklistService(checklistsRepo, boardSvc)
	checklistHandler := checklistHttp.NewChecklistHandler(checklistSvc)

	weightsRepo := weightRepo.NewWeightRepository(db)
	weightSvc := weightService.NewWeightService(weightsRepo, usersRepo)
	weightHandler := weightHttp.NewWeightHandler(weightSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(usersRepo)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/users", authHandler.GetAllUsers)
			adminGroup.POST("/users/:username/reset-password", authHandler.ResetPassword)
			adminGroup.GET("/weights", weightHandler.GetAdminWeightReport)
		}

		// Activity routes
		protected.POST("/activities", activityHandler.LogActivity)
		protected.GET("/activities", activityHandler.GetActivities)
		protected.GET("/activities/search", activityHandler.SearchActivities)

		// Checklist routes
		protected.GET("/checklist", checklistHandler.GetChecklist)
		protected.PUT("/checklist", checklistHandler.SaveChecklist)
		protected.POST("/checklist/complete", checklistHandler.CompleteChecklist)

		// Weight routes
		protected.POST("/weight", weightHandler.LogWeight)
		protected.GET("/weight", weightHandler.GetHistory)
		protected.GET("/weight/progress", weightHandler.GetMyProgress)
		protected.GET("/weight/:date", weightHandler.GetForDate)

		// Profile routes
		protected.GET("/profile/me", profileHandler.GetCurrentProfile)
		protected.GET("/profile/:username", profileHandler.GetProfileByUsername)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// Leaderboard routes
		protected.GET("/leaderboard", boardHandler.GetLeaderboard)
		protected.GET("/leaderboard/ws", boardHandler.HandleWebSocket)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
