package courseValidator

import (
	"lms/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CourseListRequest carries the catalog filter/sort/pagination query
type CourseListRequest struct {
	Category        string `query:"category"`
	Level           string `query:"level"`
	PrimaryLanguage string `query:"primaryLanguage"`
	SortBy          string `query:"sortBy"`
	Page            int    `query:"page"`
	Limit           int    `query:"limit"`
}

var allowedSortKeys = map[string]bool{
	"price-lowtohigh": true,
	"price-hightolow": true,
	"title-atoz":      true,
	"title-ztoa":      true,
}

// CourseList validator middleware
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.SortBy == "" {
			reqData.SortBy = "price-lowtohigh"
		}
		if !allowedSortKeys[reqData.SortBy] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"sortBy": "Unknown sort key!",
			})
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 12
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// GetCourseDetail validates the :id route param
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Invalid course id!",
			})
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// PurchaseInfo validates the :id/:studentId route params
func PurchaseInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Invalid course id!",
			})
		}

		studentID, err := strconv.Atoi(c.Params("studentId"))
		if err != nil || studentID < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"studentId": "Invalid student id!",
			})
		}

		c.Locals("courseID", uint(courseID))
		c.Locals("studentID", uint(studentID))
		return c.Next()
	}
}
