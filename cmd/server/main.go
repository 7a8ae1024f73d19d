package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/dashboard-demo-api/internal/config"
	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/database"
	"github.com/yukikurage/dashboard-demo-api/internal/handlers"
	"github.com/yukikurage/dashboard-demo-api/internal/middleware"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Open slot storage
	slots, err := openSlotRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	// Initialize AI service
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Initialize services
	tableOrderService, err := services.NewTableOrderService(ctx, slots)
	if err != nil {
		log.Fatalf("Failed to initialize order table: %v", err)
	}
	kanbanService, err := services.NewKanbanService(ctx, slots, aiService)
	if err != nil {
		log.Fatalf("Failed to initialize kanban board: %v", err)
	}
	foodService, err := services.NewFoodService(ctx, slots)
	if err != nil {
		log.Fatalf("Failed to initialize food catalog: %v", err)
	}
	checkoutService, err := services.NewCheckoutService(ctx, slots)
	if err != nil {
		log.Fatalf("Failed to initialize checkout: %v", err)
	}
	settingService := services.NewSettingService(slots)
	if _, err := settingService.Load(ctx); err != nil {
		log.Printf("Failed to load settings, starting empty: %v", err)
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	// Setup session middleware
	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize handlers
	tableOrderHandler := handlers.NewTableOrderHandler(tableOrderService)
	kanbanHandler := handlers.NewKanbanHandler(kanbanService)
	foodHandler := handlers.NewFoodHandler(foodService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, foodService)
	settingHandler := handlers.NewSettingHandler(settingService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Dashboard Demo API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		tableOrders := api.Group("/table-orders")
		{
			tableOrders.GET("", tableOrderHandler.ListOrders)
			tableOrders.POST("", tableOrderHandler.CreateOrder)

			view := tableOrders.Group("/view")
			view.Use(middleware.LoadOrderView())
			{
				view.GET("", tableOrderHandler.GetView)
				view.PATCH("", tableOrderHandler.UpdateView)
				view.POST("/sort", tableOrderHandler.SetSort)
				view.POST("/clear", tableOrderHandler.ClearView)
			}

			tableOrders.GET("/:id", middleware.RequireRecordID(), tableOrderHandler.GetOrder)
			tableOrders.PUT("/:id", middleware.RequireRecordID(), tableOrderHandler.UpdateOrder)
			tableOrders.DELETE("/:id", middleware.RequireRecordID(), tableOrderHandler.DeleteOrder)
		}

		kanban := api.Group("/kanban")
		{
			kanban.GET("/columns", kanbanHandler.GetBoard)
			kanban.GET("/tasks", kanbanHandler.ListTasks)
			kanban.POST("/tasks", kanbanHandler.CreateTask)
			kanban.POST("/tasks/generate", kanbanHandler.GenerateTasks)
			kanban.GET("/tasks/:id", middleware.RequireRecordID(), kanbanHandler.GetTask)
			kanban.PATCH("/tasks/:id", middleware.RequireRecordID(), kanbanHandler.UpdateTask)
			kanban.POST("/tasks/:id/move", middleware.RequireRecordID(), kanbanHandler.MoveTask)
			kanban.PATCH("/tasks/:id/meta", middleware.RequireRecordID(), kanbanHandler.UpdateTaskMeta)
			kanban.DELETE("/tasks/:id", middleware.RequireRecordID(), kanbanHandler.DeleteTask)
		}

		foods := api.Group("/foods")
		{
			foods.GET("", foodHandler.ListFoods)
			foods.GET("/categories", foodHandler.ListCategories)
			foods.PUT("", foodHandler.UpsertFood)
			foods.DELETE("", foodHandler.ClearFoods)
			foods.POST("/reset", foodHandler.ResetFoods)
			foods.DELETE("/:id", middleware.RequireRecordID(), foodHandler.DeleteFood)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", checkoutHandler.GetCart)
			cart.POST("/items", checkoutHandler.AddToCart)
			cart.POST("/items/:id/increase", middleware.RequireRecordID(), checkoutHandler.IncreaseQty)
			cart.POST("/items/:id/decrease", middleware.RequireRecordID(), checkoutHandler.DecreaseQty)
			cart.DELETE("/items/:id", middleware.RequireRecordID(), checkoutHandler.RemoveFromCart)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("", checkoutHandler.GetWishlist)
			wishlist.POST("/toggle", checkoutHandler.ToggleWishlist)
			wishlist.DELETE("", checkoutHandler.ClearWishlist)
			wishlist.POST("/edit", checkoutHandler.ToggleEditMode)
			wishlist.POST("/selection/all", checkoutHandler.SelectAll)
			wishlist.POST("/selection/:id", middleware.RequireRecordID(), checkoutHandler.ToggleSelect)
			wishlist.DELETE("/selection", checkoutHandler.ClearSelection)
			wishlist.DELETE("/selected", checkoutHandler.RemoveSelected)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", checkoutHandler.ListOrders)
			orders.POST("", checkoutHandler.PlaceOrder)
			orders.DELETE("/:id", checkoutHandler.RemoveOrder)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", settingHandler.GetSettings)
			settings.PATCH("", settingHandler.PatchSettings)
			settings.PUT("", settingHandler.ReplaceSettings)
			settings.DELETE("", settingHandler.ResetSettings)
			settings.POST("/save", settingHandler.SaveSettings)
			settings.POST("/load", settingHandler.LoadSettings)
			settings.PUT("/photo", settingHandler.UploadPhoto)
			settings.DELETE("/photo", settingHandler.DeletePhoto)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openSlotRepository connects the storage backend named by STORAGE_DRIVER
func openSlotRepository(ctx context.Context, cfg *config.Config) (repository.SlotRepository, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Println("Using in-memory storage, state is lost on restart")
		return repository.NewMemorySlotRepository(), nil
	case config.DriverS3:
		return repository.OpenS3SlotRepository(ctx, repository.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			PathStyle:       cfg.S3PathStyle,
		})
	default:
		if err := database.Connect(cfg); err != nil {
			return nil, err
		}
		if err := database.Migrate(); err != nil {
			return nil, err
		}
		return repository.NewSlotRepository(database.GetDB()), nil
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	switch cfg.SessionStore {
	case config.SessionStoreCookie:
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	case config.SessionStoreRedis:
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		return redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret), // authentication key
		)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
