package models

import "time"

type Restaurant struct {
	ID             uint     `json:"id" gorm:"primaryKey"`
	Name           string   `json:"name" gorm:"not null;index"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone_number"`
	Description    string   `json:"description"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	NumberOfPeople int      `json:"number_of_people" gorm:"not null"`
	// SeatsLeft only moves through the conditional decrement in the
	// reservation transaction; 0 <= SeatsLeft <= NumberOfPeople.
	SeatsLeft int               `json:"seats_left" gorm:"not null"`
	IsOpen    bool              `json:"is_open" gorm:"default:true"`
	ChatID    string            `json:"-"` // Telegram chat that receives booking requests
	PhotoURL  string            `json:"photo_url"`
	Photos    []RestaurantPhoto `json:"photos,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// RestaurantOwner links a user to a restaurant they manage. One
// restaurant may have several owners, so this is a relation table
// rather than an owner_id column.
type RestaurantOwner struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_owner_pair"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_owner_pair"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time `json:"created_at"`
}

type RestaurantPhoto struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	RestaurantID uint   `json:"restaurant_id" gorm:"not null;index"`
	PhotoURL     string `json:"photo_url"`
}

type MenuCategory struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	RestaurantID uint   `json:"restaurant_id" gorm:"not null;index"`
	Name         string `json:"name" gorm:"not null"`
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CategoryID  uint      `json:"food_category_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	PhotoURL    string    `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
