package models

import "gorm.io/gorm"

// User is an account in the store. Admin accounts can manage orders and
// see the dashboard.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null"               json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null"   json:"email"`
	Password string `gorm:"size:255;not null"               json:"-"` // hashed, never serialised
	Admin    bool   `gorm:"not null;default:false"          json:"is_admin"`
}
