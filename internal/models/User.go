package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	UserID     string `json:"user_id" gorm:"uniqueIndex"`
	Name       string `json:"name"`
	Role       string `json:"role"` // "admin", "driver", "hod", "employee"
	Department string `json:"department"`
	Password   string `json:"-"` // bcrypt hash, never serialized
}
