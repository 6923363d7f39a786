package main

import (
	"os"

	dbadapter "cuff/internal/adapters/database"
	"cuff/internal/adapters/httpapi"
	redisadapter "cuff/internal/adapters/redis"
	"cuff/internal/config"
	"cuff/internal/core/analytics"
	analyticsapp "cuff/internal/core/analytics/service"
	"cuff/internal/core/notification"
	notificationapp "cuff/internal/core/notification/service"
	"cuff/internal/core/post"
	postapp "cuff/internal/core/post/service"
	"cuff/internal/core/user"
	userapp "cuff/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&notification.Notification{},
		&analytics.Event{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	notificationRepo := dbadapter.NewNotificationRepositoryDatabase()
	analyticsRepo := dbadapter.NewAnalyticsRepositoryDatabase()
	feed := redisadapter.NewFeedRepositoryRedis(config.RedisClient)

	userSvc := userapp.NewUserService(userRepo, jwtKey)
	notificationSvc := notificationapp.NewNotificationService(notificationRepo, userRepo, config.Logger)
	analyticsSvc := analyticsapp.NewAnalyticsService(analyticsRepo)
	postSvc := postapp.NewPostService(postRepo, userRepo, notificationSvc, feed, analyticsSvc, config.Logger)

	r := httpapi.SetupRoutes(userSvc, postSvc, notificationSvc, analyticsSvc, jwtKey)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
