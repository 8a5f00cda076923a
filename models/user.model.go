package models

import "gorm.io/gorm"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

type User struct {
	gorm.Model
	Name      string `json:"userName" gorm:"unique;not null"`
	Email     string `json:"userEmail" gorm:"unique;not null"`
	Password  string `json:"-" gorm:"not null"`
	Role      string `json:"role" gorm:"default:'student'"` // student, instructor
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
