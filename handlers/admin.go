package handlers

import (
	"net/http"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
)

// AdminGetAllUsers returns every account — admin only
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if active := c.Query("active"); active == "true" {
		query = query.Where("is_active = ?", true)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminDeleteUser removes an account — admin only
func AdminDeleteUser(c *gin.Context) {
	var req struct {
		UserID uint `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.ID == middleware.GetUserID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}
	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

// AdminPromoteUser grants the admin flag to another account. Explicit
// elevation: only an existing admin reaches this handler.
func AdminPromoteUser(c *gin.Context) {
	var req struct {
		UserID uint `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := config.DB.Model(&user).Update("is_admin", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User promoted to admin"})
}

// AdminGetAllOrders returns every reservation in the system — admin only
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Reservation
	query := config.DB.Preload("User").Preload("Restaurant")
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	query.Order("created_at desc").Find(&orders)

	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "You do not have orders yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
