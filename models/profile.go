package models

import (
	"gorm.io/gorm"
)

// Profile is the one-to-one user profile record, created at signup and
// mutated from the profile page.
type Profile struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex"`
	User      User   `json:"-" gorm:"foreignKey:UserID"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar_url"`
}
