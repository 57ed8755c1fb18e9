package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	Username     string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	FullName     *string   `gorm:"size:128" json:"full_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:false" json:"is_active"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
