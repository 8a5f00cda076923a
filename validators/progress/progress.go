package progressValidator

import (
	"lms/middleware"
	"lms/validators"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MarkLectureViewedRequest marks one curriculum item as watched
type MarkLectureViewedRequest struct {
	CourseID  uint `json:"courseId" validate:"required"`
	LectureID uint `json:"lectureId" validate:"required"`
}

// ResetProgressRequest wipes a student's progress for a course
type ResetProgressRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

// MarkLectureViewed validator middleware
func MarkLectureViewed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkLectureViewedRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedMarkViewed", reqData)
		return c.Next()
	}
}

// ResetProgress validator middleware
func ResetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedResetProgress", reqData)
		return c.Next()
	}
}

// GetProgress validates the :courseId route param
func GetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("courseId"))
		if err != nil || courseID < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Invalid course id!",
			})
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
