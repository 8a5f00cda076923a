package courseValidator

import (
	"lms/middleware"
	"lms/validators"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// LectureRequest is one curriculum item in a course payload
type LectureRequest struct {
	Title       string `json:"title" validate:"required"`
	VideoURL    string `json:"videoUrl"`
	PublicID    string `json:"publicId"`
	FreePreview bool   `json:"freePreview"`
}

// CourseRequest is the instructor course create/update schema
type CourseRequest struct {
	Title           string           `json:"title" validate:"required,min=3"`
	Subtitle        string           `json:"subtitle"`
	Category        string           `json:"category" validate:"required"`
	Level           string           `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	PrimaryLanguage string           `json:"primaryLanguage" validate:"required"`
	Description     string           `json:"description"`
	Image           string           `json:"image"`
	WelcomeMessage  string           `json:"welcomeMessage"`
	Pricing         *float64         `json:"pricing" validate:"required,gte=0"`
	Objectives      string           `json:"objectives"`
	IsPublished     bool             `json:"isPublished"`
	Curriculum      []LectureRequest `json:"curriculum" validate:"dive"`
}

// AddCourse validator middleware
func AddCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the :id param plus the course payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Invalid course id!",
			})
		}

		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}

		c.Locals("courseID", uint(courseID))
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
