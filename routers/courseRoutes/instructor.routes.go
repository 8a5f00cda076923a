package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorCourseRoutes sets up the instructor authoring surface
func SetupInstructorCourseRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor))

	courseGroup := instructorGroup.Group("/course")
	courseGroup.Post("/add", validators.AddCourse(), controllers.AddCourse)
	courseGroup.Put("/update/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Get("/get", controllers.GetInstructorCourses)
	courseGroup.Get("/get/detail/:id", validators.GetCourseDetail(), controllers.GetInstructorCourseDetails)

	instructorGroup.Get("/dashboard", controllers.GetInstructorDashboard)
}
