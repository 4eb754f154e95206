package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/skazhukov/task-manager/internal/config"
	"github.com/skazhukov/task-manager/internal/database"
	"github.com/skazhukov/task-manager/internal/handlers"
	"github.com/skazhukov/task-manager/internal/middleware"
	"github.com/skazhukov/task-manager/internal/repository"
	"github.com/skazhukov/task-manager/internal/services"
	"github.com/skazhukov/task-manager/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	statusService := services.NewStatusService(statusRepo)
	labelService := services.NewLabelService(labelRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, statusRepo, labelRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	statusHandler := handlers.NewStatusHandler(statusService)
	labelHandler := handlers.NewLabelHandler(labelService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager API is running",
		})
	})

	requireAuth := middleware.RequireAuth(tokens, authService)

	// API routes
	api := r.Group("/api")
	{
		// Login (public)
		api.POST("/login", authHandler.Login)

		// User routes (signup and reads are public, mutations self-only)
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", requireAuth, userHandler.UpdateUser)
			users.DELETE("/:id", requireAuth, userHandler.DeleteUser)
		}

		// Status routes (protected)
		statuses := api.Group("/statuses")
		statuses.Use(requireAuth)
		{
			statuses.GET("", statusHandler.ListStatuses)
			statuses.POST("", statusHandler.CreateStatus)
			statuses.GET("/:id", statusHandler.GetStatus)
			statuses.PUT("/:id", statusHandler.UpdateStatus)
			statuses.DELETE("/:id", statusHandler.DeleteStatus)
		}

		// Label routes (protected)
		labels := api.Group("/labels")
		labels.Use(requireAuth)
		{
			labels.GET("", labelHandler.ListLabels)
			labels.POST("", labelHandler.CreateLabel)
			labels.GET("/:id", labelHandler.GetLabel)
			labels.PUT("/:id", labelHandler.UpdateLabel)
			labels.DELETE("/:id", labelHandler.DeleteLabel)
		}

		// Task routes (protected; delete is author-only)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
