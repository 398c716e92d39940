package handlers

import (
	"net/http"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
)

type OwnerRequest struct {
	UserID       uint `json:"user_id" binding:"required"`
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

// AddOwner links a user to a restaurant through the ownership
// relation — admin only. A restaurant can carry any number of owners.
func AddOwner(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	owner := models.RestaurantOwner{UserID: req.UserID, RestaurantID: req.RestaurantID}
	if err := config.DB.Create(&owner).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already owns this restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Owner added successfully"})
}

// GetAllOwners lists ownership rows, optionally for one restaurant — admin only
func GetAllOwners(c *gin.Context) {
	var owners []models.RestaurantOwner
	query := config.DB.Preload("User")
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	query.Find(&owners)
	c.JSON(http.StatusOK, gin.H{"count": len(owners), "owners": owners})
}

// DeleteOwner removes an ownership link — admin only
func DeleteOwner(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Where("user_id = ? AND restaurant_id = ?", req.UserID, req.RestaurantID).
		Delete(&models.RestaurantOwner{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Owner deleted successfully"})
}
