package handlers

import (
	"errors"
	"net/http"
	"time"

	"restaurant-reservation-api/authz"
	"restaurant-reservation-api/config"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"
	"restaurant-reservation-api/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errNoSeatsLeft = errors.New("no seats left")

type MakeOrderRequest struct {
	RestaurantID    uint      `json:"restaurant_id" binding:"required"`
	NumberOfPeople  int       `json:"number_of_people" binding:"required,gt=0"`
	ReservationTime time.Time `json:"reservation_time" binding:"required"`
	SpecialRequest  string    `json:"special_request"`
}

// MakeOrder books a table. The seat check and decrement run as one
// conditional UPDATE inside the same transaction as the reservation
// insert, so concurrent bookings can never drive seats_left negative.
// A party that would consume the last seats exactly is rejected: the
// condition is seats_left - n > 0, strictly.
func MakeOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req MakeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	reservation := models.Reservation{
		UserID:          userID,
		RestaurantID:    req.RestaurantID,
		NumPeople:       req.NumberOfPeople,
		ReservationTime: req.ReservationTime,
		SpecialRequest:  req.SpecialRequest,
		IsActive:        true,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Restaurant{}).
			Where("id = ? AND seats_left - ? > 0", req.RestaurantID, req.NumberOfPeople).
			Update("seats_left", gorm.Expr("seats_left - ?", req.NumberOfPeople))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errNoSeatsLeft
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		if errors.Is(err, errNoSeatsLeft) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No seats left"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil {
		go notify.SendBookingToTelegram(config.TelegramBotToken, notify.BookingNotification{
			GuestName: user.FirstName + " " + user.LastName,
			Phone:     restaurant.Phone,
			Date:      req.ReservationTime,
			Guests:    req.NumberOfPeople,
			ChatID:    restaurant.ChatID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"order":   reservation,
	})
}

// DeleteOrder cancels a reservation. The caller must be the owner of
// this specific reservation (or an admin). Seats are not restored on
// delete; no-refund policy pending product confirmation.
func DeleteOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if reservation.UserID != userID && !authz.IsAdmin(config.DB, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := config.DB.Delete(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Order deleted successfully",
		"order_id": req.OrderID,
	})
}

// GetMyOrders lists the caller's reservations
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Reservation
	config.DB.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
