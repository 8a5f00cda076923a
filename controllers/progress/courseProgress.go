package progressController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	progressValidator "lms/validators/progress"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MarkLectureViewed records that the student watched a lecture. When the
// last lecture of the curriculum is viewed the course is marked complete.
func MarkLectureViewed(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedMarkViewed").(*progressValidator.MarkLectureViewedRequest)

	db := database.Database.Db

	enrolled, err := utils.IsEnrolled(db, userID, reqData.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var lecture models.Lecture
	if err := db.Where("id = ? AND course_id = ?", reqData.LectureID, reqData.CourseID).First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found", nil)
	}

	var progress models.CourseProgress
	err = db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&progress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
		progress = models.CourseProgress{UserID: userID, CourseID: reqData.CourseID}
		if err := db.Create(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	nowTime := time.Now()

	var entry models.LectureProgress
	err = db.Where("course_progress_id = ? AND lecture_id = ?", progress.ID, reqData.LectureID).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		entry = models.LectureProgress{
			CourseProgressID: progress.ID,
			LectureID:        reqData.LectureID,
			Viewed:           true,
			DateViewed:       &nowTime,
		}
		if err := db.Create(&entry).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	} else if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	} else if !entry.Viewed {
		entry.Viewed = true
		entry.DateViewed = &nowTime
		if err := db.Save(&entry).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	// Completion check: every lecture of the course viewed
	var totalLectures int64
	db.Model(&models.Lecture{}).Where("course_id = ?", reqData.CourseID).Count(&totalLectures)

	var viewedLectures int64
	db.Model(&models.LectureProgress{}).
		Where("course_progress_id = ? AND viewed = ?", progress.ID, true).
		Count(&viewedLectures)

	if totalLectures > 0 && viewedLectures >= totalLectures && !progress.Completed {
		progress.Completed = true
		progress.CompletionDate = &nowTime
		if err := db.Save(&progress).Error; err != nil {
			log.Printf("Error marking course complete: %v", err)
		}
	}

	db.Preload("LecturesProgress").First(&progress, progress.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture marked as viewed!", progress)
}

// GetCurrentCourseProgress returns the student's progress for a course.
// Not-purchased comes back as a flagged response, not an error.
func GetCurrentCourseProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	enrolled, err := utils.IsEnrolled(db, userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You need to purchase the course to access it.", fiber.Map{
			"isPurchased": false,
		})
	}

	var course models.Course
	err = db.Where("id = ? AND is_deleted = ?", courseID, false).
		Preload("Curriculum", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	var progress models.CourseProgress
	err = db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Preload("LecturesProgress").
		First(&progress).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched!", fiber.Map{
		"isPurchased":      true,
		"courseDetails":    course,
		"completed":        progress.Completed,
		"completionDate":   progress.CompletionDate,
		"lecturesProgress": progress.LecturesProgress,
	})
}

// ResetProgress wipes the student's progress so the course can be
// rewatched from the start.
func ResetProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedResetProgress").(*progressValidator.ResetProgressRequest)

	db := database.Database.Db

	var progress models.CourseProgress
	if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress not found", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_progress_id = ?", progress.ID).Delete(&models.LectureProgress{}).Error; err != nil {
			return err
		}
		progress.Completed = false
		progress.CompletionDate = nil
		return tx.Save(&progress).Error
	})
	if err != nil {
		log.Printf("Error resetting progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress reset!", progress)
}
