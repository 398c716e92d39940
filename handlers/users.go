package handlers

import (
	"net/http"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
)

// GetUserInfo returns the authenticated user's profile
func GetUserInfo(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetMyNotifications lists the caller's in-app notifications
func GetMyNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var notifications []models.Notification
	config.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&notifications)
	c.JSON(http.StatusOK, gin.H{"count": len(notifications), "notifications": notifications})
}

// ReadNotification marks one of the caller's notifications as read
func ReadNotification(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		NotificationID uint `json:"notification_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var notification models.Notification
	if err := config.DB.Where("id = ? AND user_id = ?", req.NotificationID, userID).
		First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	config.DB.Model(&notification).Update("is_read", true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddFavorite saves a restaurant to the caller's favorites
func AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	favorite := models.FavoriteRestaurant{UserID: userID, RestaurantID: req.RestaurantID}
	if err := config.DB.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant already in favorites"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "favorite": favorite})
}

// GetMyFavorites lists the caller's favorite restaurants
func GetMyFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var restaurants []models.Restaurant
	config.DB.
		Joins("JOIN favorite_restaurants ON favorite_restaurants.restaurant_id = restaurants.id").
		Where("favorite_restaurants.user_id = ?", userID).
		Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// DeleteFavorite removes a restaurant from the caller's favorites
func DeleteFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Where("user_id = ? AND restaurant_id = ?", userID, req.RestaurantID).
		Delete(&models.FavoriteRestaurant{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
