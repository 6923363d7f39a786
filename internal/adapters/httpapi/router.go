package httpapi

import (
	"context"

	"cuff/internal/adapters/httpapi/middleware"
	analyticsPort "cuff/internal/ports/analytics"
	notificationPort "cuff/internal/ports/notification"
	postPort "cuff/internal/ports/post"
	userPort "cuff/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: the interfaces the controllers need from the services.

type UserUseCase interface {
	RegisterUser(ctx context.Context, in userPort.RegisterInput) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	GetUserByID(ctx context.Context, id uint) (*userPort.UserDTO, error)
	GetUserByEmail(ctx context.Context, email string) (*userPort.UserDTO, error)
	ListUsers(ctx context.Context) ([]*userPort.UserDTO, error)
	DeleteUser(ctx context.Context, id uint) error
	UpdatePreferences(ctx context.Context, userID uint, prefs userPort.PreferencesDTO) (*userPort.PreferencesDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error)
	GetPostByID(ctx context.Context, id uint) (*postPort.PostDTO, error)
	ListActivePosts(ctx context.Context) ([]*postPort.PostDTO, error)
	ListRecentPosts(ctx context.Context, limit int64) ([]*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, id uint, in postPort.UpdatePostInput) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id uint) error
}

type NotificationUseCase interface {
	SendToUser(ctx context.Context, userID uint, message string) (*notificationPort.NotificationDTO, error)
	GetNotificationByID(ctx context.Context, id uint) (*notificationPort.NotificationDTO, error)
	ListNotifications(ctx context.Context) ([]*notificationPort.NotificationDTO, error)
	ListNotificationsByUser(ctx context.Context, userID uint) ([]*notificationPort.NotificationDTO, error)
	DeleteNotification(ctx context.Context, id uint) error
}

type AnalyticsUseCase interface {
	RecordEvent(ctx context.Context, in analyticsPort.RecordEventInput) (*analyticsPort.EventDTO, error)
	GetEventByID(ctx context.Context, id uint) (*analyticsPort.EventDTO, error)
	ListEvents(ctx context.Context) ([]*analyticsPort.EventDTO, error)
	DeleteEvent(ctx context.Context, id uint) error
}

// SetupRoutes wires the controllers; use cases are injected from main.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	notificationUC NotificationUseCase,
	analyticsUC AnalyticsUseCase,
	jwtKey []byte,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	nc := NewNotificationController(notificationUC)
	ac := NewAnalyticsController(analyticsUC)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	api := r.Group("/api")

	api.GET("/posts", pc.ListActivePosts)
	api.GET("/posts/recent", pc.ListRecentPosts)
	api.GET("/posts/:id", pc.GetPostByID)
	api.POST("/posts", pc.CreatePost)
	api.PUT("/posts/:id", pc.UpdatePost)
	api.DELETE("/posts/:id", pc.DeletePost)

	api.GET("/users", uc.ListUsers)
	api.GET("/users/by-email", uc.GetUserByEmail)
	api.GET("/users/:id", uc.GetUserByID)
	api.DELETE("/users/:id", uc.DeleteUser)
	api.PUT("/users/preferences/:userId", uc.UpdatePreferences)

	// Broadcast has no route on purpose: it only runs as a side effect
	// of creating a post.
	api.POST("/notifications", nc.SendToUser)
	api.GET("/notifications", nc.ListNotifications)
	api.GET("/notifications/user/:userId", nc.ListNotificationsByUser)
	api.GET("/notifications/:id", nc.GetNotificationByID)
	api.DELETE("/notifications/:id", nc.DeleteNotification)

	protected := api.Group("/analytics", middleware.JWTAuthMiddleware(jwtKey))
	protected.POST("", ac.RecordEvent)
	protected.GET("", ac.ListEvents)
	protected.GET("/:id", ac.GetEventByID)
	protected.DELETE("/:id", ac.DeleteEvent)

	return r
}
