package orderRoutes

import (
	orderControllers "lms/controllers/order"
	"lms/middleware"
	orderValidators "lms/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/student/order", middleware.JWTMiddleware)

	orderGroup.Post("/create-order", orderValidators.CreateOrder(), orderControllers.CreateOrder)
	orderGroup.Post("/capture-payment", orderValidators.CapturePayment(), orderControllers.CapturePayment)
	orderGroup.Post("/enroll-free-course", orderValidators.EnrollFreeCourse(), orderControllers.EnrollFreeCourse)
}
