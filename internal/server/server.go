// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodieframe/internal/cache"
	"foodieframe/internal/config"
	"foodieframe/internal/database"
	"foodieframe/internal/middleware"
	"foodieframe/internal/models"
	"foodieframe/internal/repository"
	"foodieframe/internal/service"
	"foodieframe/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	media          *storage.MediaStore

	userRepo repository.UserRepository
	postRepo repository.PostRepository

	userService        *service.UserService
	postService        *service.PostService
	eventService       *service.EventService
	categoryService    *service.CategoryService
	commentService     *service.CommentService
	friendService      *service.FriendService
	interactionService *service.InteractionService
	groupService       *service.GroupService
	savedService       *service.SavedRecipeService
	maintenance        *service.MaintenanceService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	media, err := storage.NewMediaStore(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("media store init failed: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	eventRepo := repository.NewEventRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	savedRepo := repository.NewSavedRecipeRepository(db)

	prom := middleware.InitMetrics("foodieframe-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		media:          media,
		userRepo:       userRepo,
		postRepo:       postRepo,
	}
	server.userService = service.NewUserService(userRepo)
	server.postService = service.NewPostService(postRepo, userRepo, media)
	server.eventService = service.NewEventService(eventRepo, media)
	server.categoryService = service.NewCategoryService(categoryRepo)
	server.commentService = service.NewCommentService(commentRepo)
	server.friendService = service.NewFriendService(friendRepo, userRepo)
	server.interactionService = service.NewInteractionService(interactionRepo)
	server.groupService = service.NewGroupService(groupRepo, userRepo)
	server.savedService = service.NewSavedRecipeService(savedRepo, postRepo)
	server.maintenance = service.NewMaintenanceService(postRepo, media, cfg.OrphanSweepBatchSize)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Server span per request
	app.Use(middleware.TracingMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting per IP
	perMinute := s.config.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 100
	}
	app.Use(limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Uploaded media
	app.Static("/uploads", s.config.UploadDir)

	// User routes. Specific paths before the generic /:id.
	users := api.Group("/users")
	users.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	users.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	users.Get("/", s.GetUsers)
	users.Get("/search", s.SearchUsers)
	users.Get("/recent", s.GetRecentUsers)
	users.Get("/check-username/:username", s.CheckUsername)
	users.Get("/check-email/:email", s.CheckEmail)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	// Post routes
	posts := api.Group("/posts")
	posts.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	posts.Post("/upload", middleware.RateLimit(
		s.redis, 5, time.Minute, "upload_post"), s.UploadPost)
	posts.Get("/", s.GetPosts)
	posts.Get("/search", s.SearchPosts)
	posts.Get("/user/:userId", s.GetUserPosts)
	posts.Get("/category/:category", s.GetPostsByCategory)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Event routes
	events := api.Group("/events")
	events.Post("/", s.CreateEvent)
	events.Post("/upload", middleware.RateLimit(
		s.redis, 5, time.Minute, "upload_event"), s.UploadEvent)
	events.Get("/", s.GetEvents)
	events.Get("/search", s.SearchEvents)
	events.Get("/user/:userId", s.GetUserEvents)
	events.Get("/:id", s.GetEvent)
	events.Put("/:id", s.UpdateEvent)
	events.Delete("/:id", s.DeleteEvent)

	// Category routes
	categories := api.Group("/categories")
	categories.Post("/", s.CreateCategory)
	categories.Get("/", s.GetCategories)
	categories.Get("/search", s.SearchCategories)
	categories.Get("/name/:name", s.GetCategoryByName)
	categories.Get("/:id", s.GetCategory)
	categories.Put("/:id", s.UpdateCategory)
	categories.Delete("/:id", s.DeleteCategory)

	// Comment routes
	comments := api.Group("/comments")
	comments.Post("/", s.CreateComment)
	comments.Get("/", s.GetComments)
	comments.Get("/user/:userId", s.GetUserComments)
	comments.Get("/post/:postId", s.GetPostComments)
	comments.Get("/event/:eventId", s.GetEventComments)
	comments.Get("/:id", s.GetComment)
	comments.Put("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)

	// Friend routes. Each path carries the acting user explicitly.
	friends := api.Group("/friends")
	friends.Post("/request/:userId/:friendId", s.SendFriendRequest)
	friends.Put("/accept/:userId/:friendId", s.AcceptFriendRequest)
	friends.Put("/accept/:id", s.AcceptFriendRequestByID)
	friends.Delete("/reject/:userId/:friendId", s.RejectFriendRequest)
	friends.Delete("/remove/:userId/:friendId", s.RemoveFriend)
	friends.Post("/block/:userId/:friendId", s.BlockUser)
	friends.Delete("/unblock/:userId/:friendId", s.UnblockUser)
	friends.Get("/user/:userId", s.GetFriends)
	friends.Get("/user/:userId/users", s.GetFriendUsers)
	friends.Get("/user/:userId/pending", s.GetPendingRequests)
	friends.Get("/user/:userId/sent", s.GetSentRequests)
	friends.Get("/user/:userId/blocked", s.GetBlockedUsers)
	friends.Get("/is-friend/:userId/:friendId", s.AreFriends)

	// Interaction routes
	interactions := api.Group("/interactions")
	interactions.Post("/", s.CreateInteraction)
	interactions.Get("/recipe/:recipeId", s.GetRecipeInteractions)
	interactions.Get("/recipe/:recipeId/type/:type", s.GetRecipeInteractionsByType)
	interactions.Get("/recipe/:recipeId/type/:type/count", s.GetInteractionCount)
	interactions.Get("/user/:userId/type/:type", s.GetUserInteractionsByType)
	interactions.Get("/exists/:userId/:recipeId/:type", s.HasUserInteracted)
	interactions.Put("/:id", s.UpdateInteraction)
	interactions.Delete("/user/:userId/recipe/:recipeId/type/:type", s.DeleteUserInteraction)
	interactions.Delete("/recipe/:recipeId/type/:type", s.DeleteRecipeInteractionsByType)
	interactions.Delete("/:id", s.DeleteInteraction)

	// Recipe group routes. Member sub-resource before the generic /:id.
	groups := api.Group("/recipe-groups")
	groups.Post("/", s.CreateGroup)
	groups.Get("/", s.GetGroups)
	groups.Get("/search", s.SearchGroups)
	groups.Get("/public", s.GetPublicGroups)
	groups.Get("/creator/:userId", s.GetGroupsByCreator)
	groups.Get("/user/:userId", s.GetUserGroups)
	groups.Get("/user/:userId/memberships", s.GetUserMemberships)
	groups.Post("/:id/members", s.AddGroupMember)
	groups.Get("/:id/members", s.GetGroupMembers)
	groups.Get("/:id/members/active", s.GetActiveGroupMembers)
	groups.Get("/:id/members/admins", s.GetGroupAdmins)
	groups.Get("/:id/members/count", s.CountGroupMembers)
	groups.Get("/:id/members/:userId/is-member", s.IsGroupMember)
	groups.Get("/:id/members/:userId/is-admin", s.IsGroupAdmin)
	groups.Put("/:id/members/:userId/role", s.UpdateGroupMemberRole)
	groups.Put("/:id/members/:userId/status", s.UpdateGroupMemberStatus)
	groups.Delete("/:id/members/:userId", s.RemoveGroupMember)
	groups.Get("/:id", s.GetGroup)
	groups.Put("/:id", s.UpdateGroup)
	groups.Delete("/:id", s.DeleteGroup)

	// Saved recipe routes
	saved := api.Group("/saved-recipes")
	saved.Post("/", s.SaveRecipe)
	saved.Get("/user/:userId", s.GetUserSavedRecipes)
	saved.Get("/user/:userId/post/:postId", s.GetSavedRecipe)
	saved.Get("/user/:userId/post/:postId/exists", s.IsRecipeSaved)
	saved.Get("/post/:postId/count", s.CountSavesByRecipe)
	saved.Put("/user/:userId/post/:postId", s.UpdateSavedRecipeNote)
	saved.Delete("/user/:userId/post/:postId", s.RemoveSavedRecipe)

	// Maintenance routes require authentication
	maintenance := api.Group("/maintenance", s.AuthRequired())
	maintenance.Post("/sweep-orphans", s.SweepOrphanedFiles)
	maintenance.Delete("/posts/:id/files", s.DeletePostFiles)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is optional; "unavailable" does not fail readiness.
	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	bodyLimit := s.config.MaxUploadSizeMB
	if bodyLimit <= 0 {
		bodyLimit = 50
	}

	app := fiber.New(fiber.Config{
		AppName:   "FoodieFrame API",
		BodyLimit: bodyLimit * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.ErrorContext(c.UserContext(), "unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	slog.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			slog.Error("error shutting down HTTP server", "error", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			slog.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			slog.Error("error closing redis", "error", rerr)
		}
	}

	slog.Info("server shutdown complete")
	return nil
}
