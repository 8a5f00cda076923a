package progressRoutes

import (
	progressControllers "lms/controllers/progress"
	"lms/middleware"
	progressValidators "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/student/course-progress", middleware.JWTMiddleware)

	progressGroup.Post("/mark-lecture-viewed", progressValidators.MarkLectureViewed(), progressControllers.MarkLectureViewed)
	progressGroup.Get("/get/:courseId", progressValidators.GetProgress(), progressControllers.GetCurrentCourseProgress)
	progressGroup.Post("/reset-progress", progressValidators.ResetProgress(), progressControllers.ResetProgress)
}
