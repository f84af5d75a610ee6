package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/mainamuchara/course_market/configs"
	"github.com/mainamuchara/course_market/database"
	"github.com/mainamuchara/course_market/handlers"
	"github.com/mainamuchara/course_market/jobs"
	"github.com/mainamuchara/course_market/repository"
	"github.com/mainamuchara/course_market/routes"
	"github.com/mainamuchara/course_market/services"
	"github.com/mainamuchara/course_market/storage"
)

func main() {
	database.ConnectDB()
	database.Migrate()

	repo := repository.NewRepository(database.DB)

	uploader, err := storage.NewUploader()
	if err != nil {
		log.Fatalf("🔥 Failed to configure upload provider: %v", err)
	}

	courseService := services.NewCourseService(repo, uploader)
	courseHandler := handlers.NewCourseHandler(courseService)

	c := cron.New()
	c.AddFunc("@hourly", jobs.ReportPendingCourses)
	go c.Start()
	log.Println("✅ Cron job for pending-course reporting scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Course Market",
		CaseSensitive: true,
		StrictRouting: false,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"timestamp": time.Now(),
				"error":     err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.CourseRoutes(app, courseHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
