package main

import (
	"log"

	"github.com/forumx/forumx/internal/config"
	"github.com/forumx/forumx/internal/db"
	"github.com/forumx/forumx/internal/handlers"
	"github.com/forumx/forumx/internal/services"
	"github.com/forumx/forumx/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg := config.Load()

	// Connect to MongoDB; the client is shared by all requests and closed
	// at shutdown.
	client := db.Connect(cfg.MongoURI)
	defer db.Disconnect(client)
	database := client.Database(cfg.MongoDB)

	// Pick the image backend: ImgBB by default, MinIO when self-hosting.
	var imageStore storage.ImageStore
	if cfg.ImageBackend == "minio" {
		minioStore, err := storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket)
		if err != nil {
			log.Fatalf("MinIO init failed: %v", err)
		}
		imageStore = minioStore
	} else {
		imageStore = storage.NewImgBBStore(cfg.ImgBBEndpoint, cfg.ImgBBAPIKey)
	}

	users := handlers.NewUserHandler(services.NewUserService(database, cfg.JWTSecret))
	posts := handlers.NewPostHandler(services.NewPostService(database))
	comments := handlers.NewCommentHandler(services.NewCommentService(database))
	tags := handlers.NewTagHandler(services.NewTagService(database))
	images := handlers.NewImageHandler(services.NewImageService(imageStore))

	// Fiber's default body limit is 4 MB, below the 5 MiB image cap.
	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Forum-X Server is Running...")
	})

	// User routes
	app.Get("/users", users.List)
	app.Get("/users/:email", users.GetByEmail)
	app.Post("/register-user", users.Register)
	app.Post("/login", users.Login)

	// Image upload proxy
	app.Post("/upload-image", images.Upload)

	// Post routes; the author routes must register before /posts/:id
	app.Post("/add-posts", posts.Create)
	app.Get("/posts", posts.List)
	app.Get("/posts/user/:email/all", posts.AllByAuthor)
	app.Get("/posts/user/:email", posts.ByAuthor)
	app.Get("/posts/:id", posts.Get)
	app.Put("/posts/:id/upvote", posts.Upvote)
	app.Put("/posts/:id/downvote", posts.Downvote)

	// Tag routes
	app.Post("/tags", tags.Create)
	app.Get("/tags", tags.List)

	// Comment routes
	app.Post("/comments", comments.Create)
	app.Get("/comments", comments.List)

	log.Fatal(app.Listen(":" + cfg.Port))
}
