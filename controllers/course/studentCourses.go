package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCoursesByStudentID returns the student's enrolled course list. A
// student with no record gets an empty list, not an error.
func GetCoursesByStudentID(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.Params("studentId"))
	if err != nil || studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	var record models.StudentCourse
	err = database.Database.Db.
		Where("user_id = ?", uint(studentID)).
		Preload("Courses").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", []models.EnrolledCourse{})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", record.Courses)
}
