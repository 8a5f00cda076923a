package models

import (
	"time"

	"gorm.io/gorm"
)

// CourseProgress tracks a student's viewing progress through a course
type CourseProgress struct {
	gorm.Model
	UserID         uint       `json:"userId" gorm:"uniqueIndex:idx_user_course_progress;not null"`
	CourseID       uint       `json:"courseId" gorm:"uniqueIndex:idx_user_course_progress;not null"`
	Completed      bool       `json:"completed" gorm:"default:false"`
	CompletionDate *time.Time `json:"completionDate"`

	LecturesProgress []LectureProgress `json:"lecturesProgress" gorm:"foreignKey:CourseProgressID"`
}

// LectureProgress marks a single lecture as viewed
type LectureProgress struct {
	gorm.Model
	CourseProgressID uint       `json:"-" gorm:"uniqueIndex:idx_progress_lecture;not null"`
	LectureID        uint       `json:"lectureId" gorm:"uniqueIndex:idx_progress_lecture;not null"`
	Viewed           bool       `json:"viewed" gorm:"default:false"`
	DateViewed       *time.Time `json:"dateViewed"`
}
