package models

import (
	"time"

	"gorm.io/gorm"
)

// StudentCourse is the per-student enrollment record. One row per student,
// with the purchased courses attached.
type StudentCourse struct {
	gorm.Model
	UserID  uint             `json:"userId" gorm:"uniqueIndex;not null"`
	Courses []EnrolledCourse `json:"courses" gorm:"foreignKey:StudentCourseID"`
}

// EnrolledCourse is one purchased/enrolled course inside a student's record
type EnrolledCourse struct {
	gorm.Model
	StudentCourseID uint      `json:"-" gorm:"uniqueIndex:idx_student_enrolled;not null"`
	CourseID        uint      `json:"courseId" gorm:"uniqueIndex:idx_student_enrolled;not null"`
	Title           string    `json:"title"`
	InstructorID    uint      `json:"instructorId"`
	InstructorName  string    `json:"instructorName"`
	DateOfPurchase  time.Time `json:"dateOfPurchase"`
	CourseImage     string    `json:"courseImage"`
}
