package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentCourseRoutes sets up the public catalog plus the
// student-facing purchase lookups.
func SetupStudentCourseRoutes(app *fiber.App) {
	studentGroup := app.Group("/student/course")

	studentGroup.Get("/", validators.CourseList(), controllers.GetAllCourses)
	studentGroup.Get("/purchase-info/:id/:studentId", middleware.JWTMiddleware, validators.PurchaseInfo(), controllers.CheckCoursePurchaseInfo)
	studentGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)

	boughtGroup := app.Group("/student/courses-bought")
	boughtGroup.Get("/:studentId", middleware.JWTMiddleware, controllers.GetCoursesByStudentID)
}
