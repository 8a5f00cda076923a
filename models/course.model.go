package models

import "gorm.io/gorm"

// Course represents a published or draft learning course
type Course struct {
	gorm.Model
	InstructorID    uint    `json:"instructorId" gorm:"index;not null"`
	InstructorName  string  `json:"instructorName"`
	Title           string  `json:"title"`
	Subtitle        string  `json:"subtitle"`
	Category        string  `json:"category" gorm:"index"`
	Level           string  `json:"level" gorm:"index"` // beginner, intermediate, advanced
	PrimaryLanguage string  `json:"primaryLanguage" gorm:"index"`
	Description     string  `json:"description" gorm:"type:text"`
	ImageURL        string  `json:"image"`
	WelcomeMessage  string  `json:"welcomeMessage"`
	Pricing         float64 `json:"pricing" gorm:"default:0"`
	Objectives      string  `json:"objectives" gorm:"type:text"`
	IsPublished     bool    `json:"isPublished" gorm:"default:false"`
	IsDeleted       bool    `json:"-" gorm:"default:false"`

	Curriculum []Lecture       `json:"curriculum" gorm:"foreignKey:CourseID"`
	Students   []CourseStudent `json:"students" gorm:"foreignKey:CourseID"`
}

// Lecture is a single curriculum item within a course
type Lecture struct {
	gorm.Model
	CourseID    uint   `json:"courseId" gorm:"index;not null"`
	Title       string `json:"title"`
	VideoURL    string `json:"videoUrl"`
	PublicID    string `json:"publicId"` // media storage asset id
	FreePreview bool   `json:"freePreview" gorm:"default:false"`
	OrderIndex  int    `json:"orderIndex" gorm:"default:0"`
}

// CourseStudent is a purchase entry in a course's students list.
// The composite unique index makes re-enrollment a no-op at the database level.
type CourseStudent struct {
	gorm.Model
	CourseID     uint    `json:"courseId" gorm:"uniqueIndex:idx_course_student;not null"`
	StudentID    uint    `json:"studentId" gorm:"uniqueIndex:idx_course_student;not null"`
	StudentName  string  `json:"studentName"`
	StudentEmail string  `json:"studentEmail"`
	PaidAmount   float64 `json:"paidAmount" gorm:"default:0"`
}
