package orderController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	orderRoutes "lms/routers/orderRoutes"
	"lms/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeGateway stands in for the PayPal client and records its calls
type fakeGateway struct {
	createCalls  int
	executeCalls int
	failCreate   bool
	failExecute  bool
}

func (f *fakeGateway) CreatePayment(courseTitle string, courseID uint, amount float64, receiptTag string) (*utils.PaymentSession, error) {
	f.createCalls++
	if f.failCreate {
		return nil, fmt.Errorf("payment gateway rejected payment")
	}
	return &utils.PaymentSession{
		PaymentID:  fmt.Sprintf("PAY-%d", f.createCalls),
		ApproveURL: "https://paypal.example/approve",
	}, nil
}

func (f *fakeGateway) ExecutePayment(paymentID, payerID string) error {
	f.executeCalls++
	if f.failExecute {
		return fmt.Errorf("payment gateway capture failed")
	}
	return nil
}

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	gateway *fakeGateway
	student models.User
	course  models.Course
	token   string
}

func setupTestEnv(t *testing.T, pricing float64) *testEnv {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	gateway := &fakeGateway{}
	utils.PaymentClient = gateway

	student := models.User{Name: "alice", Email: "alice@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)

	course := models.Course{
		InstructorID:   42,
		InstructorName: "prof",
		Title:          "Go from scratch",
		Category:       "web-development",
		Pricing:        pricing,
		IsPublished:    true,
	}
	require.NoError(t, db.Create(&course).Error)

	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Email, student.Role)
	require.NoError(t, err)

	app := fiber.New()
	orderRoutes.SetupOrderRoutes(app)

	return &testEnv{app: app, db: db, gateway: gateway, student: student, course: course, token: token}
}

func (e *testEnv) request(t *testing.T, target string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestCreateOrderInvalidPricing(t *testing.T) {
	env := setupTestEnv(t, 29.99)

	resp := env.request(t, "/student/order/create-order", fiber.Map{
		"courseId":      env.course.ID,
		"coursePricing": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.request(t, "/student/order/create-order", fiber.Map{
		"courseId":      env.course.ID,
		"coursePricing": -5,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.request(t, "/student/order/create-order", fiber.Map{
		"courseId":      env.course.ID,
		"coursePricing": "not-a-number",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Validation failed before any gateway call was made
	assert.Equal(t, 0, env.gateway.createCalls)

	var count int64
	env.db.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCheckoutAndCapture(t *testing.T) {
	env := setupTestEnv(t, 29.99)

	resp := env.request(t, "/student/order/create-order", fiber.Map{
		"courseId":      env.course.ID,
		"coursePricing": 29.99,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "https://paypal.example/approve", data["approveUrl"])
	orderID := uint(data["orderId"].(float64))

	var order models.Order
	require.NoError(t, env.db.First(&order, orderID).Error)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusCreated, order.OrderStatus)
	assert.Equal(t, "PAY-1", order.PaymentID)

	resp = env.request(t, "/student/order/capture-payment", fiber.Map{
		"orderId":   orderID,
		"paymentId": "PAY-1",
		"payerId":   "PAYER-1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, env.gateway.executeCalls)

	require.NoError(t, env.db.First(&order, orderID).Error)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusConfirmed, order.OrderStatus)
	assert.Equal(t, "PAYER-1", order.PayerID)

	// The student's enrollment list contains the course
	enrolled, err := utils.IsEnrolled(env.db, env.student.ID, env.course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)

	// The course's students list contains the student with the paid amount
	var courseStudent models.CourseStudent
	require.NoError(t, env.db.Where("course_id = ? AND student_id = ?", env.course.ID, env.student.ID).First(&courseStudent).Error)
	assert.InDelta(t, 29.99, courseStudent.PaidAmount, 0.001)
	assert.Equal(t, "alice@example.com", courseStudent.StudentEmail)
}

func TestCaptureIsIdempotent(t *testing.T) {
	env := setupTestEnv(t, 19.99)

	resp := env.request(t, "/student/order/create-order", fiber.Map{
		"courseId":      env.course.ID,
		"coursePricing": 19.99,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	orderID := uint(decodeBody(t, resp)["data"].(map[string]interface{})["orderId"].(float64))

	capture := fiber.Map{"orderId": orderID, "paymentId": "PAY-1", "payerId": "PAYER-1"}

	resp = env.request(t, "/student/order/capture-payment", capture)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Second capture is a no-op: no second gateway call, still one
	// enrollment entry on each side.
	resp = env.request(t, "/student/order/capture-payment", capture)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, env.gateway.executeCalls)

	var entries int64
	env.db.Model(&models.EnrolledCourse{}).Where("course_id = ?", env.course.ID).Count(&entries)
	assert.EqualValues(t, 1, entries)

	env.db.Model(&models.CourseStudent{}).Where("course_id = ? AND student_id = ?", env.course.ID, env.student.ID).Count(&entries)
	assert.EqualValues(t, 1, entries)
}

func TestCaptureUnknownOrder(t *testing.T) {
	env := setupTestEnv(t, 9.99)

	resp := env.request(t, "/student/order/capture-payment", fiber.Map{
		"orderId":   9999,
		"paymentId": "PAY-1",
		"payerId":   "PAYER-1",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, env.gateway.executeCalls)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	env := setupTestEnv(t, 29.99)
	env.gateway.failCreate = true

	resp := env.request(t, "/student/order/create-order", fiber.Map{
		"courseId":      env.course.ID,
		"coursePricing": 29.99,
	})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	// The pending order stays behind without gateway identifiers
	var order models.Order
	require.NoError(t, env.db.Where("user_id = ?", env.student.ID).First(&order).Error)
	assert.Equal(t, models.OrderStatusCreated, order.OrderStatus)
	assert.Empty(t, order.PaymentID)
}

func TestEnrollFreeCourseIdempotent(t *testing.T) {
	env := setupTestEnv(t, 0)

	for i := 0; i < 2; i++ {
		resp := env.request(t, "/student/order/enroll-free-course", fiber.Map{
			"courseId": env.course.ID,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// Exactly one entry on each side after enrolling twice
	var entries int64
	env.db.Model(&models.EnrolledCourse{}).Where("course_id = ?", env.course.ID).Count(&entries)
	assert.EqualValues(t, 1, entries)

	var courseStudent models.CourseStudent
	require.NoError(t, env.db.Where("course_id = ? AND student_id = ?", env.course.ID, env.student.ID).First(&courseStudent).Error)
	assert.Zero(t, courseStudent.PaidAmount)

	env.db.Model(&models.CourseStudent{}).Where("course_id = ?", env.course.ID).Count(&entries)
	assert.EqualValues(t, 1, entries)

	assert.Equal(t, 0, env.gateway.createCalls)
}

func TestEnrollFreeCourseRejectsPaidCourse(t *testing.T) {
	env := setupTestEnv(t, 49.99)

	resp := env.request(t, "/student/order/enroll-free-course", fiber.Map{
		"courseId": env.course.ID,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
