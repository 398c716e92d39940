package handlers

import (
	"net/http"
	"strconv"

	"restaurant-reservation-api/authz"
	"restaurant-reservation-api/config"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
)

type AddCategoryRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Name         string `json:"category_name" binding:"required"`
}

// AddFoodCategory creates a menu category — owner or admin
func AddFoodCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !authz.CanManageRestaurant(config.DB, userID, restaurant.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to add a category"})
		return
	}

	category := models.MenuCategory{RestaurantID: req.RestaurantID, Name: req.Name}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": category})
}

// GetFoodCategories lists categories, optionally for one restaurant (public)
func GetFoodCategories(c *gin.Context) {
	var categories []models.MenuCategory
	query := config.DB
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	query.Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// AddFoodToCategory adds a menu item with its photo (multipart) —
// owner or admin of the category's restaurant
func AddFoodToCategory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	categoryID, err := strconv.Atoi(c.PostForm("food_category_id"))
	if err != nil || categoryID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_category_id is required"})
		return
	}
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive number"})
		return
	}

	var category models.MenuCategory
	if err := config.DB.First(&category, categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food category not found"})
		return
	}
	if !authz.CanManageRestaurant(config.DB, userID, category.RestaurantID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to add a food item"})
		return
	}

	path, ok := savePhoto(c, "image")
	if !ok {
		return
	}

	item := models.MenuItem{
		CategoryID:  uint(categoryID),
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		PhotoURL:    path,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "food_item_id": item.ID})
}

// GetFoodItems lists items in a category (public)
func GetFoodItems(c *gin.Context) {
	categoryID := c.Query("food_category_id")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_category_id is required"})
		return
	}
	var items []models.MenuItem
	config.DB.Where("category_id = ?", categoryID).Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetFoodByID returns one menu item (public)
func GetFoodByID(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Query("menu_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// GetFoodPhoto serves a menu item's photo inline or as download (public)
func GetFoodPhoto(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Query("food_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	servePhoto(c, item.PhotoURL)
}

// UpdateFoodItemRequest mirrors the restaurant update: optional tagged fields
type UpdateFoodItemRequest struct {
	ItemID      uint     `json:"item_id" binding:"required"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// UpdateFoodItem edits a menu item — owner or admin
func UpdateFoodItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req UpdateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, req.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var category models.MenuCategory
	if err := config.DB.First(&category, item.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food category not found"})
		return
	}
	if !authz.CanManageRestaurant(config.DB, userID, category.RestaurantID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to edit this food item"})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive number"})
			return
		}
		update["price"] = *req.Price
	}
	if len(update) > 0 {
		if err := config.DB.Model(&item).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food item"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// DeleteFoodItem removes a menu item — owner or admin
func DeleteFoodItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		ItemID uint `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, req.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var category models.MenuCategory
	if err := config.DB.First(&category, item.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food category not found"})
		return
	}
	if !authz.CanManageRestaurant(config.DB, userID, category.RestaurantID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to delete this food item"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete food item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food item deleted"})
}
