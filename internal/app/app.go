package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "game-platform/internal/controller/http"
	"game-platform/internal/models"
	"game-platform/internal/presenter"
	"game-platform/internal/repo"
	"game-platform/pkg/config"
	"game-platform/pkg/jwt"
	"game-platform/pkg/logger"
	"game-platform/pkg/middleware"
	"game-platform/pkg/queue"
	"game-platform/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "game-platform/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Repositories
	userRepo := repo.NewUserRepository(db)
	profileRepo := repo.NewProfileRepository(db)
	socialAuthRepo := repo.NewSocialAuthRepository(db)
	gameRepo := repo.NewGameRepository(db)
	userGameRepo := repo.NewUserGameRepository(db)
	achievementRepo := repo.NewAchievementRepository(db)
	postRepo := repo.NewPostRepository(db)
	galleryRepo := repo.NewGalleryRepository(db)
	postLikeRepo := repo.NewPostLikeRepository(db)
	postCommentRepo := repo.NewPostCommentRepository(db)
	planRepo := repo.NewPlanRepository(db)
	subscriptionRepo := repo.NewSubscriptionRepository(db)
	purchaseRepo := repo.NewPurchaseRepository(db)
	transactionRepo := repo.NewTransactionRepository(db)
	followRepo := repo.NewFollowRepository(db)
	reviewRepo := repo.NewReviewRepository(db)
	conversationRepo := repo.NewConversationRepository(db)
	participantRepo := repo.NewParticipantRepository(db)
	messageRepo := repo.NewMessageRepository(db)
	notificationRepo := repo.NewNotificationRepository(db)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RequestLogger(log))
	api.Use(middleware.Metrics())
	api.Use(middleware.IdentityMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute)) // 100 requests per minute

	// Handlers with behavior beyond plain CRUD
	apiHTTP.NewUsersHandler(userRepo, log).Register(api)
	apiHTTP.NewProfilesHandler(profileRepo, log).Register(api)
	apiHTTP.NewPostsHandler(postRepo, log).Register(api)
	apiHTTP.NewPlansHandler(planRepo, log).Register(api)
	if queueClient != nil {
		apiHTTP.NewNotificationsHandler(notificationRepo, queueClient, log).Register(api)
	} else {
		apiHTTP.NewNotificationsHandler(notificationRepo, nil, log).Register(api)
	}
	if s3Client != nil {
		apiHTTP.NewUploadsHandler(s3Client, log).Register(api)
		apiHTTP.NewGalleryHandler(galleryRepo, s3Client, log).Register(api)
	} else {
		apiHTTP.NewUploadsHandler(nil, log).Register(api)
		apiHTTP.NewGalleryHandler(galleryRepo, nil, log).Register(api)
	}

	// Plain resource collections
	apiHTTP.RegisterResource[models.SocialAuth](api, "social-auth", socialAuthRepo, identity[models.SocialAuth], log)
	apiHTTP.RegisterResource[models.Game](api, "games", gameRepo, func(g *models.Game) interface{} { return presenter.Game(*g) }, log)
	apiHTTP.RegisterResource[models.UserGame](api, "user-games", userGameRepo, func(ug *models.UserGame) interface{} { return presenter.UserGame(*ug) }, log)
	apiHTTP.RegisterResource[models.Achievement](api, "achievements", achievementRepo, identity[models.Achievement], log)
	apiHTTP.RegisterResource[models.PostLike](api, "post-likes", postLikeRepo, identity[models.PostLike], log)
	apiHTTP.RegisterResource[models.PostComment](api, "post-comments", postCommentRepo, identity[models.PostComment], log)
	apiHTTP.RegisterResource[models.UserSubscription](api, "subscriptions", subscriptionRepo, identity[models.UserSubscription], log)
	apiHTTP.RegisterResource[models.Purchase](api, "purchases", purchaseRepo, identity[models.Purchase], log)
	apiHTTP.RegisterResource[models.PaymentTransaction](api, "payment-transactions", transactionRepo, identity[models.PaymentTransaction], log)
	apiHTTP.RegisterResource[models.Follow](api, "follows", followRepo, identity[models.Follow], log)
	apiHTTP.RegisterResource[models.Review](api, "reviews", reviewRepo, identity[models.Review], log)
	apiHTTP.RegisterResource[models.Conversation](api, "conversations", conversationRepo, identity[models.Conversation], log)
	apiHTTP.RegisterResource[models.ConversationParticipant](api, "conversation-participants", participantRepo, identity[models.ConversationParticipant], log)
	apiHTTP.RegisterResource[models.Message](api, "messages", messageRepo, identity[models.Message], log)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}

// identity presents a row as-is; collections with no computed or embedded
// fields serialize their model directly.
func identity[T any](m *T) interface{} { return m }
