package models

import "time"

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"firstname" gorm:"not null"`
	LastName       string    `json:"lastname" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone          string    `json:"phone_number" gorm:"uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"not null"`
	IsAdmin        bool      `json:"is_admin" gorm:"default:false"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	ActivationCode int       `json:"-"` // also doubles as the password-reset code
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Notification is an in-app message for a user (e.g. booking updates)
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
