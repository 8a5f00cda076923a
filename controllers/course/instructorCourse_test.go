package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseRoutes "lms/routers/courseRoutes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInstructor(t *testing.T) (*fiber.App, *gorm.DB, models.User, string) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	instructor := models.User{Name: "prof", Email: "prof@example.com", Password: "x", Role: models.RoleInstructor}
	require.NoError(t, db.Create(&instructor).Error)

	token, err := middleware.GenerateJWT(instructor.ID, instructor.Name, instructor.Email, instructor.Role)
	require.NoError(t, err)

	app := fiber.New()
	courseRoutes.SetupInstructorCourseRoutes(app)
	return app, db, instructor, token
}

func postJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestAddCourseWithCurriculum(t *testing.T) {
	app, db, instructor, token := setupInstructor(t)

	status, body := postJSON(t, app, "POST", "/instructor/course/add", token, fiber.Map{
		"title":           "Go from scratch",
		"category":        "web-development",
		"level":           "beginner",
		"primaryLanguage": "english",
		"pricing":         29.99,
		"isPublished":     true,
		"curriculum": []fiber.Map{
			{"title": "Intro", "videoUrl": "https://cdn.example/intro.mp4", "freePreview": true},
			{"title": "Setup", "videoUrl": "https://cdn.example/setup.mp4"},
		},
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.Equal(t, true, body["success"])

	var course models.Course
	require.NoError(t, db.Where("title = ?", "Go from scratch").Preload("Curriculum").First(&course).Error)
	assert.Equal(t, instructor.ID, course.InstructorID)
	assert.Equal(t, "prof", course.InstructorName)
	require.Len(t, course.Curriculum, 2)
	assert.Equal(t, "Intro", course.Curriculum[0].Title)
	assert.True(t, course.Curriculum[0].FreePreview)
	assert.Equal(t, 1, course.Curriculum[1].OrderIndex)
}

func TestUpdateCourseOwnershipEnforced(t *testing.T) {
	app, db, _, _ := setupInstructor(t)

	other := models.User{Name: "intruder", Email: "intruder@example.com", Password: "x", Role: models.RoleInstructor}
	require.NoError(t, db.Create(&other).Error)
	otherToken, err := middleware.GenerateJWT(other.ID, other.Name, other.Email, other.Role)
	require.NoError(t, err)

	course := models.Course{InstructorID: 1, Title: "Owned course", Category: "cloud", Level: "beginner", PrimaryLanguage: "english", Pricing: 10, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	status, _ := postJSON(t, app, "PUT", fmt.Sprintf("/instructor/course/update/%d", course.ID), otherToken, fiber.Map{
		"title":           "Hijacked",
		"category":        "cloud",
		"level":           "beginner",
		"primaryLanguage": "english",
		"pricing":         10,
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	var reloaded models.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, "Owned course", reloaded.Title)
}

func TestInstructorRoutesRequireInstructorRole(t *testing.T) {
	app, db, _, _ := setupInstructor(t)

	student := models.User{Name: "alice", Email: "alice@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)
	studentToken, err := middleware.GenerateJWT(student.ID, student.Name, student.Email, student.Role)
	require.NoError(t, err)

	status, _ := postJSON(t, app, "POST", "/instructor/course/add", studentToken, fiber.Map{
		"title":           "Nope",
		"category":        "cloud",
		"level":           "beginner",
		"primaryLanguage": "english",
		"pricing":         10,
	})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestInstructorDashboard(t *testing.T) {
	app, db, instructor, token := setupInstructor(t)

	course := models.Course{InstructorID: instructor.ID, Title: "Revenue course", Category: "cloud", Level: "beginner", PrimaryLanguage: "english", Pricing: 25, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	students := []models.CourseStudent{
		{CourseID: course.ID, StudentID: 101, StudentName: "a", PaidAmount: 25},
		{CourseID: course.ID, StudentID: 102, StudentName: "b", PaidAmount: 25},
	}
	for i := range students {
		require.NoError(t, db.Create(&students[i]).Error)
	}

	req := httptest.NewRequest("GET", "/instructor/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["totalStudents"])
	assert.EqualValues(t, 50, data["totalRevenue"])
	assert.EqualValues(t, 50, data["monthRevenue"])
}
