package orderController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	orderValidator "lms/validators/order"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateOrder starts a paid checkout: persists a pending order, asks the
// gateway for an approval session and returns the redirect URL.
func CreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedCreateOrder").(*orderValidator.CreateOrderRequest)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", reqData.CourseID, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	paymentMethod := reqData.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "paypal"
	}

	order := models.Order{
		UserID:         user.ID,
		UserName:       user.Name,
		UserEmail:      user.Email,
		CourseID:       course.ID,
		CourseTitle:    course.Title,
		CourseImage:    course.ImageURL,
		InstructorID:   course.InstructorID,
		InstructorName: course.InstructorName,
		CoursePricing:  *reqData.CoursePricing,
		PaymentMethod:  paymentMethod,
		PaymentStatus:  models.PaymentStatusPending,
		OrderStatus:    models.OrderStatusCreated,
		ReceiptTag:     uuid.NewString(),
		OrderDate:      time.Now(),
	}

	if err := db.Create(&order).Error; err != nil {
		log.Printf("Error saving order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	session, err := utils.PaymentClient.CreatePayment(course.Title, course.ID, order.CoursePricing, order.ReceiptTag)
	if err != nil {
		// The pending order stays behind without gateway identifiers; the
		// scheduler sweeps it after a day.
		log.Printf("Error creating payment at gateway: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Error while creating paypal payment!", nil)
	}

	order.PaymentID = session.PaymentID
	if err := db.Save(&order).Error; err != nil {
		log.Printf("Error saving gateway identifiers: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created!", fiber.Map{
		"approveUrl": session.ApproveURL,
		"orderId":    order.ID,
	})
}

// CapturePayment finalizes an approved payment: captures at the gateway,
// then confirms the order and runs the enrollment fan-out in a single
// transaction. A capture for an already confirmed order is a no-op.
func CapturePayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCapturePayment").(*orderValidator.CapturePaymentRequest)

	db := database.Database.Db

	var order models.Order
	if err := db.Where("id = ?", reqData.OrderID).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order can not be found", nil)
	}

	// Double capture: idempotent no-op
	if order.OrderStatus == models.OrderStatusConfirmed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Order already confirmed", order)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", order.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", order.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if err := utils.PaymentClient.ExecutePayment(reqData.PaymentID, reqData.PayerID); err != nil {
		log.Printf("Error capturing payment at gateway: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Error while capturing paypal payment!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		order.PaymentStatus = models.PaymentStatusPaid
		order.OrderStatus = models.OrderStatusConfirmed
		order.PaymentID = reqData.PaymentID
		order.PayerID = reqData.PayerID
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		return utils.EnrollStudent(tx, user, course, order.CoursePricing, order.OrderDate)
	})
	if err != nil {
		log.Printf("Error finalizing order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finalize order!", nil)
	}

	go func(name, email, title string) {
		if err := utils.SendEnrollmentEmail(name, email, title); err != nil {
			log.Printf("Error sending enrollment email: %v", err)
		}
	}(user.Name, user.Email, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order confirmed", order)
}

// EnrollFreeCourse runs the enrollment fan-out with a zero paid amount,
// bypassing the gateway. Enrolling twice is a no-op.
func EnrollFreeCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedEnrollFree").(*orderValidator.EnrollFreeCourseRequest)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", reqData.CourseID, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if course.Pricing > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not free!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return utils.EnrollStudent(tx, user, course, 0, time.Now())
	})
	if err != nil {
		log.Printf("Error enrolling in free course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in free course.", nil)
	}

	go func(name, email, title string) {
		if err := utils.SendEnrollmentEmail(name, email, title); err != nil {
			log.Printf("Error sending enrollment email: %v", err)
		}
	}(user.Name, user.Email, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in free course!", nil)
}
