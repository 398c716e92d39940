// Package authz resolves whether an authenticated user may act on a
// resource. Two tiers, always in this order: the global admin flag
// grants everything; otherwise a row in the restaurant_owners relation
// grants management of that one restaurant.
package authz

import (
	"net/http"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IsAdmin reports whether the account exists and carries the admin flag.
func IsAdmin(db *gorm.DB, userID uint) bool {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return false
	}
	return user.IsAdmin
}

// CanManageRestaurant reports whether the user may manage the given
// restaurant: admins unconditionally, owners through the relation
// table. Never returns an error; missing rows simply mean "no".
func CanManageRestaurant(db *gorm.DB, userID, restaurantID uint) bool {
	if IsAdmin(db, userID) {
		return true
	}
	var count int64
	db.Model(&models.RestaurantOwner{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count)
	return count > 0
}

// RequireAdmin guards global-scope routes. Ownership is never enough
// here: deleting arbitrary users or restaurants is admin-only.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if !IsAdmin(config.DB, userID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}
