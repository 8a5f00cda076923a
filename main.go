package main

import (
	"lms/config"
	"lms/database"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	mediaRoutes "lms/routers/mediaRoutes"
	orderRoutes "lms/routers/orderRoutes"
	progressRoutes "lms/routers/progressRoutes"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitPayPal()
	utils.InitCloudinary()

	app := fiber.New(fiber.Config{
		BodyLimit: utils.MaxUploadSize,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.Origins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-Requested-With",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Health check route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "LMS backend is running!"})
	})

	authRoutes.SetupAuthRoutes(app)
	mediaRoutes.SetupMediaRoutes(app)
	courseRoutes.SetupInstructorCourseRoutes(app)
	courseRoutes.SetupStudentCourseRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	progressRoutes.SetupProgressRoutes(app)

	scheduler := utils.StartOrderScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
