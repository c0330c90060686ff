package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"crowdfunding-service/internal/config"
	"crowdfunding-service/internal/handlers"
	"crowdfunding-service/internal/metrics"
	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
	"crowdfunding-service/internal/services"
	"crowdfunding-service/internal/storage"

	_ "crowdfunding-service/docs"
)

// @title Crowdfunding Platform API
// @version 1.0
// @description Backend for a crowdfunding platform: projects, investments, reviews, users and categories.
// @BasePath /api
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)

	projectRepo := repository.NewProjectRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	projectService := services.NewProjectService(projectRepo, categoryRepo, userRepo)
	investmentService := services.NewInvestmentService(investmentRepo, projectRepo, userRepo)
	reviewService := services.NewReviewService(reviewRepo, projectRepo, userRepo)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	statsService := services.NewStatsService(statsRepo)

	var imageService *services.ImageService
	if cfg.MinioEnabled() {
		imageService = services.NewImageService(projectRepo, InitMinIOClient(cfg), cfg.MinioBucket)
	} else {
		log.Println("MINIO_ENDPOINT not set, project image uploads disabled")
	}

	app := fiber.New()
	app.Use(cors.New())
	app.Use(metrics.Middleware())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	projectHandler := handlers.NewProjectHandler(projectService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	platformHandler := handlers.NewPlatformHandler(projectService, statsService)
	imageHandler := handlers.NewImageHandler(imageService)

	api := app.Group("/api")
	api.Get("/projects", projectHandler.ListProjects)
	api.Post("/projects", projectHandler.CreateProject)
	api.Get("/projects/:id", projectHandler.GetProject)
	api.Put("/projects/:id", projectHandler.UpdateProject)
	api.Post("/projects/:id/image", imageHandler.UploadImage)
	api.Get("/projects/:id/image", imageHandler.DownloadImage)
	api.Post("/investments", investmentHandler.CreateInvestment)
	api.Get("/investments/project/:id", investmentHandler.ListProjectInvestments)
	api.Post("/reviews", reviewHandler.CreateReview)
	api.Get("/reviews/project/:id", reviewHandler.ListProjectReviews)
	api.Post("/users", userHandler.CreateUser)
	api.Get("/users/:id", userHandler.GetUser)
	api.Get("/categories", categoryHandler.ListCategories)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Get("/search", platformHandler.Search)
	api.Get("/statistics", platformHandler.Statistics)
	api.Get("/featured-projects", projectHandler.FeaturedProjects)

	api.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", platformHandler.Health)

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8000"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.Investment{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func InitMinIOClient(cfg *config.Config) *minio.Client {
	minioClient, err := storage.NewMinioClient(cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	return minioClient
}
