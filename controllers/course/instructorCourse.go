package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// AddCourse creates a course owned by the authenticated instructor
func AddCourse(c *fiber.Ctx) error {
	instructorID := c.Locals("userId").(uint)
	instructorName, _ := c.Locals("userName").(string)
	reqData := c.Locals("validatedCourse").(*courseValidator.CourseRequest)

	course := models.Course{
		InstructorID:    instructorID,
		InstructorName:  instructorName,
		Title:           reqData.Title,
		Subtitle:        reqData.Subtitle,
		Category:        reqData.Category,
		Level:           reqData.Level,
		PrimaryLanguage: reqData.PrimaryLanguage,
		Description:     reqData.Description,
		ImageURL:        reqData.Image,
		WelcomeMessage:  reqData.WelcomeMessage,
		Pricing:         *reqData.Pricing,
		Objectives:      reqData.Objectives,
		IsPublished:     reqData.IsPublished,
	}
	for i, lecture := range reqData.Curriculum {
		course.Curriculum = append(course.Curriculum, models.Lecture{
			Title:       lecture.Title,
			VideoURL:    lecture.VideoURL,
			PublicID:    lecture.PublicID,
			FreePreview: lecture.FreePreview,
			OrderIndex:  i,
		})
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error saving course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse rewrites course metadata and curriculum. Only the owning
// instructor may update; the students list is never touched here.
func UpdateCourse(c *fiber.Ctx) error {
	instructorID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedCourse").(*courseValidator.CourseRequest)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if course.InstructorID != instructorID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	course.Title = reqData.Title
	course.Subtitle = reqData.Subtitle
	course.Category = reqData.Category
	course.Level = reqData.Level
	course.PrimaryLanguage = reqData.PrimaryLanguage
	course.Description = reqData.Description
	course.ImageURL = reqData.Image
	course.WelcomeMessage = reqData.WelcomeMessage
	course.Pricing = *reqData.Pricing
	course.Objectives = reqData.Objectives
	course.IsPublished = reqData.IsPublished

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&course).Error; err != nil {
			return err
		}

		// Replace the curriculum wholesale; ordering comes from the payload
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Lecture{}).Error; err != nil {
			return err
		}
		for i, lecture := range reqData.Curriculum {
			item := models.Lecture{
				CourseID:    course.ID,
				Title:       lecture.Title,
				VideoURL:    lecture.VideoURL,
				PublicID:    lecture.PublicID,
				FreePreview: lecture.FreePreview,
				OrderIndex:  i,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// GetInstructorCourses lists the authenticated instructor's courses
func GetInstructorCourses(c *fiber.Ctx) error {
	instructorID := c.Locals("userId").(uint)

	var courses []models.Course
	err := database.Database.Db.
		Where("instructor_id = ? AND is_deleted = ?", instructorID, false).
		Preload("Students").
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", courses)
}

// GetInstructorCourseDetails returns one of the instructor's own courses
func GetInstructorCourseDetails(c *fiber.Ctx) error {
	instructorID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	err := database.Database.Db.
		Where("id = ? AND instructor_id = ? AND is_deleted = ?", courseID, instructorID, false).
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

// GetInstructorDashboard aggregates students and revenue across the
// instructor's courses, including the running month.
func GetInstructorDashboard(c *fiber.Ctx) error {
	instructorID := c.Locals("userId").(uint)

	db := database.Database.Db

	var courseIDs []uint
	if err := db.Model(&models.Course{}).
		Where("instructor_id = ? AND is_deleted = ?", instructorID, false).
		Pluck("id", &courseIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	if len(courseIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched!", fiber.Map{
			"totalStudents": 0,
			"totalRevenue":  0.0,
			"monthRevenue":  0.0,
		})
	}

	var totalStudents int64
	if err := db.Model(&models.CourseStudent{}).
		Where("course_id IN ?", courseIDs).
		Count(&totalStudents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var totalRevenue float64
	db.Model(&models.CourseStudent{}).
		Where("course_id IN ?", courseIDs).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&totalRevenue)

	var monthRevenue float64
	db.Model(&models.CourseStudent{}).
		Where("course_id IN ? AND created_at >= ?", courseIDs, now.BeginningOfMonth()).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&monthRevenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched!", fiber.Map{
		"totalStudents": totalStudents,
		"totalRevenue":  totalRevenue,
		"monthRevenue":  monthRevenue,
	})
}
