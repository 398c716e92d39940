package models

import "time"

type Reservation struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"user_id" gorm:"not null;index"`
	RestaurantID    uint       `json:"restaurant_id" gorm:"not null;index"`
	User            User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Restaurant      Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	NumPeople       int        `json:"num_people" gorm:"not null"`
	ReservationTime time.Time  `json:"reservation_time"`
	SpecialRequest  string     `json:"special_request"`
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time  `json:"created_at"`
}

type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Rating       int       `json:"rating" gorm:"not null"` // 1..5
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type FavoriteRestaurant struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_pair"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_favorite_pair"`
	CreatedAt    time.Time `json:"created_at"`
}
