package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	OrderStatusCreated   = "created"
	OrderStatusConfirmed = "confirmed"
)

// Order is a purchase-intent record bridging a student, a course and a
// payment-gateway transaction. It transitions created/pending to
// confirmed/paid exactly once, when the gateway capture succeeds.
type Order struct {
	gorm.Model
	UserID         uint      `json:"userId" gorm:"index;not null"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	CourseID       uint      `json:"courseId" gorm:"index;not null"`
	CourseTitle    string    `json:"courseTitle"`
	CourseImage    string    `json:"courseImage"`
	InstructorID   uint      `json:"instructorId"`
	InstructorName string    `json:"instructorName"`
	CoursePricing  float64   `json:"coursePricing" gorm:"not null"`
	PaymentMethod  string    `json:"paymentMethod" gorm:"default:'paypal'"`
	PaymentStatus  string    `json:"paymentStatus" gorm:"default:'pending'"` // pending, paid
	OrderStatus    string    `json:"orderStatus" gorm:"default:'created'"`   // created, confirmed
	PaymentID      string    `json:"paymentId" gorm:"index"`
	PayerID        string    `json:"payerId"`
	ReceiptTag     string    `json:"receiptTag"` // internal reference passed to the gateway
	OrderDate      time.Time `json:"orderDate"`
}
