package orderValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateOrderRequest starts a paid checkout. Pricing must be a positive
// number before any gateway call is made.
type CreateOrderRequest struct {
	CourseID      uint     `json:"courseId" validate:"required"`
	CoursePricing *float64 `json:"coursePricing" validate:"required,gt=0"`
	PaymentMethod string   `json:"paymentMethod"`
}

// CapturePaymentRequest finalizes a previously approved payment
type CapturePaymentRequest struct {
	OrderID   uint   `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	PayerID   string `json:"payerId" validate:"required"`
}

// EnrollFreeCourseRequest enrolls a student without touching the gateway
type EnrollFreeCourseRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

// CreateOrder validator middleware
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}

// CapturePayment validator middleware
func CapturePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CapturePaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedCapturePayment", reqData)
		return c.Next()
	}
}

// EnrollFreeCourse validator middleware
func EnrollFreeCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollFreeCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedEnrollFree", reqData)
		return c.Next()
	}
}
