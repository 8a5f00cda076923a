package utils

import (
	"lms/models"
	"time"

	"gorm.io/gorm"
)

// EnrollStudent appends a course to the student's enrollment record and
// the student to the course's students list. Both appends are idempotent:
// an entry that already exists is left untouched, so re-running for the
// same (student, course) pair is a no-op. Run it inside a transaction to
// get the all-or-nothing guarantee across both stores.
func EnrollStudent(db *gorm.DB, user models.User, course models.Course, paidAmount float64, purchaseDate time.Time) error {
	// Per-student enrollment record, created on first purchase
	var record models.StudentCourse
	err := db.Where("user_id = ?", user.ID).First(&record).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		record = models.StudentCourse{UserID: user.ID}
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}

	var enrolled models.EnrolledCourse
	err = db.Where("student_course_id = ? AND course_id = ?", record.ID, course.ID).First(&enrolled).Error
	if err == gorm.ErrRecordNotFound {
		enrolled = models.EnrolledCourse{
			StudentCourseID: record.ID,
			CourseID:        course.ID,
			Title:           course.Title,
			InstructorID:    course.InstructorID,
			InstructorName:  course.InstructorName,
			DateOfPurchase:  purchaseDate,
			CourseImage:     course.ImageURL,
		}
		if err := db.Create(&enrolled).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	// Course side of the fan-out
	var student models.CourseStudent
	err = db.Where("course_id = ? AND student_id = ?", course.ID, user.ID).First(&student).Error
	if err == gorm.ErrRecordNotFound {
		student = models.CourseStudent{
			CourseID:     course.ID,
			StudentID:    user.ID,
			StudentName:  user.Name,
			StudentEmail: user.Email,
			PaidAmount:   paidAmount,
		}
		if err := db.Create(&student).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return nil
}

// IsEnrolled reports whether the student's enrollment record contains the
// course. A missing record and a record without the course both count as
// not enrolled.
func IsEnrolled(db *gorm.DB, userID, courseID uint) (bool, error) {
	var record models.StudentCourse
	if err := db.Where("user_id = ?", userID).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	var count int64
	if err := db.Model(&models.EnrolledCourse{}).
		Where("student_course_id = ? AND course_id = ?", record.ID, courseID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
