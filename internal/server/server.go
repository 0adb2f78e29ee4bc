package server

import (
	"context"
	"log"
	"strings"
	"time"

	"anoa.com/arcadehub/internal/config"
	"anoa.com/arcadehub/internal/middleware"
	"anoa.com/arcadehub/pkg/storage"

	gameHttp "anoa.com/arcadehub/internal/modules/game/delivery/http"
	gameRepo "anoa.com/arcadehub/internal/modules/game/repository"
	gameService "anoa.com/arcadehub/internal/modules/game/service"

	leaderboardHttp "anoa.com/arcadehub/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "anoa.com/arcadehub/internal/modules/leaderboard/repository"
	leaderboardService "anoa.com/arcadehub/internal/modules/leaderboard/service"

	notifHttp "anoa.com/arcadehub/internal/modules/notification/delivery/http"
	notifRepo "anoa.com/arcadehub/internal/modules/notification/repository"
	notifService "anoa.com/arcadehub/internal/modules/notification/service"

	rewardHttp "anoa.com/arcadehub/internal/modules/reward/delivery/http"
	rewardRepo "anoa.com/arcadehub/internal/modules/reward/repository"
	rewardService "anoa.com/arcadehub/internal/modules/reward/service"

	searchService "anoa.com/arcadehub/internal/modules/search/service"

	statsHttp "anoa.com/arcadehub/internal/modules/stats/delivery/http"
	statsService "anoa.com/arcadehub/internal/modules/stats/service"

	userHttp "anoa.com/arcadehub/internal/modules/user/delivery/http"
	userRepo "anoa.com/arcadehub/internal/modules/user/repository"
	userService "anoa.com/arcadehub/internal/modules/user/service"

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
	users := userRepo.NewUserRepository(db)

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		// Avatars are optional; everything else still works.
		log.Printf("Cloudinary storage disabled: %v", err)
		imageStorage = nil
	}

	authSvc := userService.NewAuthService(users, imageStorage)
	authHandler := userHttp.NewAuthHandler(authSvc)

	games := gameRepo.NewGameRepository(db)

	// Notification Module
	notifications := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notifications, redisClient)
	notificationHandler := notifHttp.NewNotificationHandler(notificationSvc, redisClient)

	// Reward Module
	var rewardStore rewardRepo.Store
	if redisClient != nil {
		rewardStore = rewardRepo.NewRedisStore(redisClient)
	} else {
		log.Println("Redis not configured, reward state kept in memory")
		rewardStore = rewardRepo.NewMemoryStore()
	}
	rewardSvc := rewardService.NewRewardService(rewardStore, users, notificationSvc)
	rewardHandler := rewardHttp.NewRewardHandler(rewardSvc)

	// Player search (optional)
	var searchSvc searchService.PlayerSearchService
	if cfg.MeiliSearchHost != "" {
		meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		searchSvc = searchService.NewPlayerSearchService(meiliClient)
	}

	// Leaderboard Module
	reference := leaderboardRepo.NewReferenceRepository(db)
	leaderboardSvc := leaderboardService.NewLeaderboardService(reference, users, games)
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc, searchSvc)

	if searchSvc != nil {
		go indexReferencePlayers(reference, searchSvc)
	}

	gameSvc := gameService.NewGameService(games, authSvc, rewardSvc, notificationSvc, searchSvc)
	gameHandler := gameHttp.NewGameHandler(gameSvc)

	statSvc := statsService.NewStatService(games)
	statHandler := statsHttp.NewStatHandler(statSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware()

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Profile routes
		protected.GET("/profile/me", authHandler.GetCurrentProfile)
		protected.PUT("/profile/avatar", authHandler.UpdateAvatar)

		// Game routes
		protected.POST("/games/complete", gameHandler.CompleteGame)
		protected.GET("/games/history", gameHandler.GetHistory)

		// Stats routes
		protected.GET("/stats/me", statHandler.GetMyStats)

		// Reward routes
		protected.GET("/rewards/daily", rewardHandler.GetDailyBonuses)
		protected.POST("/rewards/daily/claim", rewardHandler.ClaimDailyBonus)
		protected.GET("/rewards/streak", rewardHandler.GetStreak)
		protected.GET("/rewards/achievements", rewardHandler.GetAchievements)
		protected.POST("/rewards/achievements/progress", rewardHandler.UpdateProgress)

		// Leaderboard routes
		protected.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
		protected.GET("/leaderboard/me", leaderboardHandler.GetMyRank)
		protected.GET("/leaderboard/search", leaderboardHandler.SearchPlayers)

		// Notification routes
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// indexReferencePlayers pushes the seeded snapshot into the search index so
// reference players are findable before anyone plays.
func indexReferencePlayers(reference leaderboardRepo.ReferenceRepository, search searchService.PlayerSearchService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snapshot, err := reference.Snapshot(ctx)
	if err != nil {
		log.Printf("Failed to load reference players for indexing: %v", err)
		return
	}

	docs := make([]searchService.PlayerDocument, 0, len(snapshot))
	for _, player := range snapshot {
		docs = append(docs, searchService.PlayerDocument{
			DocID:       "reference-" + player.Username,
			Username:    player.Username,
			TotalCoins:  player.TotalCoins,
			Level:       player.Level,
			GamesPlayed: player.GamesPlayed,
			GamesWon:    player.GamesWon,
		})
	}

	if err := search.IndexPlayers(docs); err != nil {
		log.Printf("Failed to index reference players: %v", err)
	}
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
