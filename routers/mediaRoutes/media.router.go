package mediaRoutes

import (
	mediaControllers "lms/controllers/media"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMediaRoutes(app *fiber.App) {
	mediaGroup := app.Group("/media", middleware.JWTMiddleware)

	mediaGroup.Post("/upload", mediaControllers.Upload)
	mediaGroup.Post("/bulk-upload", mediaControllers.BulkUpload)
	mediaGroup.Delete("/delete/:id", mediaControllers.Delete)
}
