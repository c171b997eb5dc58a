package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mrosati84/DetectiveBoard/internal/config"
	"github.com/mrosati84/DetectiveBoard/internal/database"
	"github.com/mrosati84/DetectiveBoard/internal/handlers"
	"github.com/mrosati84/DetectiveBoard/internal/middleware"
	"github.com/mrosati84/DetectiveBoard/internal/repository"
	"github.com/mrosati84/DetectiveBoard/internal/services"
	"github.com/mrosati84/DetectiveBoard/internal/storage"
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

	// Image uploads live on local disk under the configured directory
	images, err := storage.NewImageStore(cfg.UploadDir, "/static/uploads")
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	// Wire repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	cardRepo := repository.NewCardRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	connRepo := repository.NewConnectionRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	boardService := services.NewBoardService(boardRepo, cardRepo, noteRepo, connRepo)
	cardService := services.NewCardService(cardRepo, boardRepo, images)
	noteService := services.NewNoteService(noteRepo, boardRepo)
	connService := services.NewConnectionService(connRepo, cardRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	boardHandler := handlers.NewBoardHandler(boardService)
	cardHandler := handlers.NewCardHandler(cardService)
	noteHandler := handlers.NewNoteHandler(noteService)
	connHandler := handlers.NewConnectionHandler(connService)

	// Initialize Gin router
	r := gin.Default()

	// Uploaded images are served statically
	r.Static("/static/uploads", images.Dir())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "DetectiveBoard API is running",
		})
	})

	requireAuth := middleware.RequireAuth(tokenService)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Board routes (protected)
		boards := api.Group("/boards")
		boards.Use(requireAuth)
		{
			boards.GET("", boardHandler.ListBoards)
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.PATCH("/:id", boardHandler.RenameBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
			boards.POST("/:id/cards", cardHandler.CreateCard)
			boards.POST("/:id/notes", noteHandler.CreateNote)
			boards.POST("/:id/share", boardHandler.EnableSharing)
			boards.DELETE("/:id/share", boardHandler.DisableSharing)
		}

		// Card routes (protected)
		cards := api.Group("/cards")
		cards.Use(requireAuth)
		{
			cards.PUT("/:id", cardHandler.UpdateCard)
			cards.DELETE("/:id", cardHandler.DeleteCard)
		}

		// Note routes (protected)
		notes := api.Group("/notes")
		notes.Use(requireAuth)
		{
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		// Connection routes (protected)
		connections := api.Group("/connections")
		connections.Use(requireAuth)
		{
			connections.POST("", connHandler.CreateConnection)
			connections.DELETE("", connHandler.DeleteConnection)
		}

		// Public read-only view of a shared board
		api.GET("/share/:token", boardHandler.GetSharedBoard)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
