package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/sheetcal/configs"
	"github.com/maheshrc27/sheetcal/internal/api/handlers"
	"github.com/maheshrc27/sheetcal/internal/api/middleware"
	job "github.com/maheshrc27/sheetcal/internal/jobs"
	"github.com/maheshrc27/sheetcal/internal/queue"
	"github.com/maheshrc27/sheetcal/internal/repository"
	"github.com/maheshrc27/sheetcal/internal/service"
	"github.com/maheshrc27/sheetcal/internal/sheets"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	sheetsClient, err := sheets.NewClient(context.Background(), cfg.ServiceAccountEmail, cfg.ServiceAccountKey)
	if err != nil {
		log.Fatalf("Failed to create sheets client: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    25 * 1024 * 1024, // 25 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postRepo := repository.NewPostRepository(sheetsClient)

	brandService := service.NewBrandService()
	if len(brandService.List()) == 0 {
		log.Println("Warning: no brands configured, set BRAND_1_NAME and friends")
	}
	authService := service.NewAuthService(*cfg)
	postService := service.NewPostService(brandService, postRepo)
	calendarService := service.NewCalendarService(postService)
	uploadService := service.NewUploadService(*cfg)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	brand := handlers.NewBrandHandler(brandService)
	api.Get("/brands", brand.ListBrands)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts", post.CreatePost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Delete("/posts/:id", post.RemovePost)

	calendar := handlers.NewCalendarHandler(calendarService)
	api.Get("/calendar", calendar.GetMonthView)
	api.Post("/posts/:id/reschedule", calendar.ReschedulePost)

	upload := handlers.NewUploadHandler(uploadService)
	api.Post("/uploads", upload.UploadImage)

	// publishing is optional: without redis the calendar is plan-only and
	// Posted_At stays whatever the sheet says
	var client *asynq.Client
	if cfg.RedisURI != "" {
		redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
		client = asynq.NewClient(redisConn)

		sweepJob := job.NewPublishSweepJob(brandService, postRepo, client)

		c := cron.New()
		c.AddFunc("@every 00h10m00s", sweepJob.SweepDuePosts)
		c.Start()

		queueW := queue.NewQueue(brandService, postRepo)

		go func() {
			server := asynq.NewServer(redisConn, asynq.Config{
				Concurrency: 10,
			})

			mux := asynq.NewServeMux()
			mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

			log.Println("Starting the Asynq server...")
			if err := server.Run(mux); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	}

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, client)
}

func gracefulShutdown(app *fiber.App, client *asynq.Client) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if client != nil {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close asynq client: %v", err)
		}
	}

	log.Println("Server shutdown complete.")
}
