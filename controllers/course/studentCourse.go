package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	courseValidator "lms/validators/course"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var sortClauses = map[string]string{
	"price-lowtohigh": "pricing asc",
	"price-hightolow": "pricing desc",
	"title-atoz":      "title asc",
	"title-ztoa":      "title desc",
}

// GetAllCourses lists published courses with inclusion-list filters,
// sorting and pagination.
func GetAllCourses(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourseList").(*courseValidator.CourseListRequest)

	db := database.Database.Db
	query := db.Model(&models.Course{}).Where("is_published = ? AND is_deleted = ?", true, false)

	if reqData.Category != "" {
		query = query.Where("category IN ?", strings.Split(reqData.Category, ","))
	}
	if reqData.Level != "" {
		query = query.Where("level IN ?", strings.Split(reqData.Level, ","))
	}
	if reqData.PrimaryLanguage != "" {
		query = query.Where("primary_language IN ?", strings.Split(reqData.PrimaryLanguage, ","))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []models.Course
	if err := query.Order(sortClauses[reqData.SortBy]).
		Offset(offset).Limit(reqData.Limit).
		Preload("Students").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	totalPages := (total + int64(reqData.Limit) - 1) / int64(reqData.Limit)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    courses,
		"pagination": fiber.Map{
			"currentPage": reqData.Page,
			"totalPages":  totalPages,
			"totalCount":  total,
			"hasNextPage": int64(reqData.Page) < totalPages,
			"hasPrevPage": reqData.Page > 1,
		},
	})
}

// GetCourseDetails returns the full course document, curriculum included
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", courseID, false).
		Preload("Curriculum", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("Students").
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched!", course)
}

// CheckCoursePurchaseInfo reports whether the student already bought the
// course. No-record and record-without-course both come back false.
func CheckCoursePurchaseInfo(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	studentID := c.Locals("studentID").(uint)

	purchased, err := utils.IsEnrolled(database.Database.Db, studentID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check purchase info!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase info fetched!", purchased)
}
