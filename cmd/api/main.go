package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"promptpix/internal/config"
	"promptpix/internal/handler"
	"promptpix/internal/middleware"
	"promptpix/internal/repository"
	"promptpix/internal/service"
	"promptpix/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (picked creations will not be cached)", err)
		redis = nil
	}
	if redis != nil {
		defer redis.Close()
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to set up content store: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, store, redis, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    64 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageBackend == config.StorageMinIO {
		client, err := config.NewMinIOClient(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewMinIO(client, cfg.MinIOBucket, cfg.MinIOPublicEndpoint, cfg.MinIOPublicUseSSL), nil
	}
	return storage.NewLocal(cfg.UploadDir, cfg.UploadURLPrefix)
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)

	feed := v1.Group("/feed")
	feed.Get("/", h.Feed.GetFeed)
	feed.Get("/picked", h.Feed.GetPicked)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/users/me", h.Auth.Me)

	creations := protected.Group("/creations")
	creations.Post("/", h.Creation.Upload)
	creations.Get("/mine", h.Creation.ListMine)
	creations.Delete("/:creationId", h.Creation.Delete)
	creations.Post("/:creationId/like", h.Creation.Like)
	creations.Delete("/:creationId/like", h.Creation.Unlike)
	creations.Get("/:creationId/liked", h.Creation.Liked)

	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.Patch("/creations/:creationId/pick", h.Admin.TogglePick)

	// Locally hosted media and the SPA shell. Everything that is not an API
	// or static route falls through to index.html for client-side routing.
	app.Static(cfg.UploadURLPrefix, cfg.UploadDir)
	app.Static("/assets", cfg.SPADistDir+"/assets")
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(cfg.SPADistDir + "/index.html")
	})
}
