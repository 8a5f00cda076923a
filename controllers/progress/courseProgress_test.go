package progressController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	progressRoutes "lms/routers/progressRoutes"
	"lms/utils"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type progressEnv struct {
	app      *fiber.App
	db       *gorm.DB
	student  models.User
	course   models.Course
	lectures []models.Lecture
	token    string
}

func setupProgress(t *testing.T, enroll bool) *progressEnv {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	student := models.User{Name: "alice", Email: "alice@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)

	course := models.Course{InstructorID: 1, Title: "Go course", Category: "web-development", Level: "beginner", PrimaryLanguage: "english", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	lectures := []models.Lecture{
		{CourseID: course.ID, Title: "Intro", OrderIndex: 0},
		{CourseID: course.ID, Title: "Middle", OrderIndex: 1},
		{CourseID: course.ID, Title: "Outro", OrderIndex: 2},
	}
	for i := range lectures {
		require.NoError(t, db.Create(&lectures[i]).Error)
	}

	if enroll {
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			return utils.EnrollStudent(tx, student, course, 0, time.Now())
		}))
	}

	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Email, student.Role)
	require.NoError(t, err)

	app := fiber.New()
	progressRoutes.SetupProgressRoutes(app)
	return &progressEnv{app: app, db: db, student: student, course: course, lectures: lectures, token: token}
}

func (e *progressEnv) post(t *testing.T, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func (e *progressEnv) markViewed(t *testing.T, lectureID uint) (int, map[string]interface{}) {
	return e.post(t, "/student/course-progress/mark-lecture-viewed", fiber.Map{
		"courseId":  e.course.ID,
		"lectureId": lectureID,
	})
}

func TestMarkLectureViewedRequiresEnrollment(t *testing.T) {
	env := setupProgress(t, false)

	status, _ := env.markViewed(t, env.lectures[0].ID)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestProgressCompletion(t *testing.T) {
	env := setupProgress(t, true)

	for _, lecture := range env.lectures[:2] {
		status, _ := env.markViewed(t, lecture.ID)
		require.Equal(t, fiber.StatusOK, status)
	}

	var progress models.CourseProgress
	require.NoError(t, env.db.Where("user_id = ? AND course_id = ?", env.student.ID, env.course.ID).First(&progress).Error)
	assert.False(t, progress.Completed)

	// Viewing the final lecture completes the course
	status, _ := env.markViewed(t, env.lectures[2].ID)
	require.Equal(t, fiber.StatusOK, status)

	require.NoError(t, env.db.Where("user_id = ? AND course_id = ?", env.student.ID, env.course.ID).First(&progress).Error)
	assert.True(t, progress.Completed)
	assert.NotNil(t, progress.CompletionDate)
}

func TestMarkLectureViewedTwice(t *testing.T) {
	env := setupProgress(t, true)

	for i := 0; i < 2; i++ {
		status, _ := env.markViewed(t, env.lectures[0].ID)
		require.Equal(t, fiber.StatusOK, status)
	}

	var entries int64
	env.db.Model(&models.LectureProgress{}).Where("lecture_id = ?", env.lectures[0].ID).Count(&entries)
	assert.EqualValues(t, 1, entries)
}

func TestGetProgressNotPurchased(t *testing.T) {
	env := setupProgress(t, false)

	req := httptest.NewRequest("GET", fmt.Sprintf("/student/course-progress/get/%d", env.course.ID), nil)
	req.Header.Set("Authorization", "Bearer "+env.token)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["isPurchased"])
}

func TestResetProgress(t *testing.T) {
	env := setupProgress(t, true)

	for _, lecture := range env.lectures {
		status, _ := env.markViewed(t, lecture.ID)
		require.Equal(t, fiber.StatusOK, status)
	}

	status, _ := env.post(t, "/student/course-progress/reset-progress", fiber.Map{
		"courseId": env.course.ID,
	})
	require.Equal(t, fiber.StatusOK, status)

	var progress models.CourseProgress
	require.NoError(t, env.db.Where("user_id = ? AND course_id = ?", env.student.ID, env.course.ID).First(&progress).Error)
	assert.False(t, progress.Completed)
	assert.Nil(t, progress.CompletionDate)

	var entries int64
	env.db.Model(&models.LectureProgress{}).Where("course_progress_id = ?", progress.ID).Count(&entries)
	assert.EqualValues(t, 0, entries)
}
