package utils

import (
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func logScheduler(message string) {
	log.Printf("[ORDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileConfirmedOrders re-runs the enrollment fan-out for confirmed
// orders whose enrollment rows are missing. Catches the window where a
// capture confirmed the order but the process died before both appends
// landed.
func ReconcileConfirmedOrders() {
	db := database.Database.Db

	var orders []models.Order
	if err := db.Where("order_status = ? AND payment_status = ?",
		models.OrderStatusConfirmed, models.PaymentStatusPaid).Find(&orders).Error; err != nil {
		logScheduler("Error fetching confirmed orders: " + err.Error())
		return
	}

	for _, order := range orders {
		enrolled, err := IsEnrolled(db, order.UserID, order.CourseID)
		if err != nil {
			logScheduler("Error checking enrollment: " + err.Error())
			continue
		}
		if enrolled {
			continue
		}

		var user models.User
		if err := db.Where("id = ? AND is_deleted = false", order.UserID).First(&user).Error; err != nil {
			continue
		}
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = false", order.CourseID).First(&course).Error; err != nil {
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			return EnrollStudent(tx, user, course, order.CoursePricing, order.OrderDate)
		})
		if err != nil {
			logScheduler("Error reconciling order: " + err.Error())
			continue
		}
		logScheduler("Reconciled missing enrollment for confirmed order")
	}
}

// SweepStalePendingOrders drops pending orders that never obtained a
// gateway session and are older than a day.
func SweepStalePendingOrders() {
	db := database.Database.Db

	cutoff := time.Now().Add(-24 * time.Hour)
	result := db.Where("order_status = ? AND payment_id = '' AND created_at < ?",
		models.OrderStatusCreated, cutoff).Delete(&models.Order{})
	if result.Error != nil {
		logScheduler("Error sweeping stale orders: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Swept stale pending orders")
	}
}

// StartOrderScheduler runs the reconciler every five minutes and the
// stale-order sweep once a day.
func StartOrderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", ReconcileConfirmedOrders); err != nil {
		log.Fatalf("Failed to schedule order reconciler: %v", err)
	}
	if _, err := c.AddFunc("30 2 * * *", SweepStalePendingOrders); err != nil {
		log.Fatalf("Failed to schedule stale order sweep: %v", err)
	}

	c.Start()
	logScheduler("Order scheduler started")
	return c
}
