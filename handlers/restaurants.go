package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"restaurant-reservation-api/authz"
	"restaurant-reservation-api/config"
	"restaurant-reservation-api/geo"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateRestaurantRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Phone          string `json:"phone_number"`
	Description    string `json:"description"`
	NumberOfPeople int    `json:"number_of_people" binding:"required,gt=0"`
	ChatID         string `json:"chat_id"`
}

// AddRestaurant creates a restaurant — admin only. Seats start at full
// capacity.
func AddRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Description:    req.Description,
		NumberOfPeople: req.NumberOfPeople,
		SeatsLeft:      req.NumberOfPeople,
		ChatID:         req.ChatID,
		IsOpen:         true,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "restaurant": restaurant})
}

// ListRestaurants is the public home-page listing of open restaurants
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Where("is_open = ?", true)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// AdminListRestaurants returns full restaurant records — admin only
func AdminListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Preload("Photos").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns a single restaurant with its photos
func GetRestaurant(c *gin.Context) {
	id := c.Query("restaurant_id")
	if id == "" {
		id = c.Param("id")
	}
	var restaurant models.Restaurant
	if err := config.DB.Preload("Photos").First(&restaurant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateRestaurantRequest is the tagged optional-field set: only
// present fields are applied, after the authorization check.
type UpdateRestaurantRequest struct {
	RestaurantID   uint    `json:"restaurant_id" binding:"required"`
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone_number"`
	Description    *string `json:"description"`
	NumberOfPeople *int    `json:"number_of_people"`
	IsOpen         *bool   `json:"is_open"`
}

// UpdateRestaurant applies a partial update — owner or admin
func UpdateRestaurant(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req UpdateRestaurantRequest
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
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to update this restaurant"})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if req.Phone != nil {
		update["phone"] = *req.Phone
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.NumberOfPeople != nil {
		if *req.NumberOfPeople <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "number_of_people must be positive"})
			return
		}
		update["number_of_people"] = *req.NumberOfPeople
		if restaurant.SeatsLeft > *req.NumberOfPeople {
			update["seats_left"] = *req.NumberOfPeople
		}
	}
	if req.IsOpen != nil {
		update["is_open"] = *req.IsOpen
	}

	if len(update) > 0 {
		if err := config.DB.Model(&restaurant).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}

// DeleteRestaurant removes a restaurant — admin only
func DeleteRestaurant(c *gin.Context) {
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
	if err := config.DB.Delete(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Restaurant deleted successfully"})
}

type AddLocationRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"required"`
	Longitude    float64 `json:"longitude" binding:"required"`
}

// AddLocation pins a restaurant on the map — owner or admin
func AddLocation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !geo.ValidCoordinates(req.Latitude, req.Longitude) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !authz.CanManageRestaurant(config.DB, userID, restaurant.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to update this restaurant"})
		return
	}

	if err := config.DB.Model(&restaurant).Updates(map[string]interface{}{
		"latitude":  req.Latitude,
		"longitude": req.Longitude,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Location saved"})
}

// NearbyRestaurants lists open restaurants within radius km of a point
func NearbyRestaurants(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}
	long, err := strconv.ParseFloat(c.Query("long"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}
	if !geo.ValidCoordinates(lat, long) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}
	radius := 5.0
	if r := c.Query("radius"); r != "" {
		radius, err = strconv.ParseFloat(r, 64)
		if err != nil || radius <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
			return
		}
	}

	var restaurants []models.Restaurant
	config.DB.Where("is_open = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true).
		Find(&restaurants)

	type nearbyResult struct {
		models.Restaurant
		DistanceKm float64 `json:"distance_km"`
	}
	results := []nearbyResult{}
	for _, r := range restaurants {
		d := geo.Haversine(lat, long, *r.Latitude, *r.Longitude)
		if d <= radius {
			results = append(results, nearbyResult{Restaurant: r, DistanceKm: d})
		}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(results), "restaurants": results})
}

// savePhoto stores an uploaded image under a randomized name and
// returns its relative path. Only jpg/jpeg/png pass.
func savePhoto(c *gin.Context, field string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return "", false
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext != "jpg" && ext != "jpeg" && ext != "png" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format. Allowed formats are: jpg, jpeg, png"})
		return "", false
	}

	filename := uuid.NewString() + "." + ext
	dst := filepath.Join(config.PhotoDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
		return "", false
	}
	return dst, true
}

// UploadRestaurantPhoto attaches a photo to a restaurant — owner or admin
func UploadRestaurantPhoto(c *gin.Context) {
	userID := middleware.GetUserID(c)
	restaurantID, err := strconv.Atoi(c.PostForm("restaurant_id"))
	if err != nil || restaurantID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !authz.CanManageRestaurant(config.DB, userID, restaurant.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to update this restaurant"})
		return
	}

	path, ok := savePhoto(c, "photo")
	if !ok {
		return
	}

	photo := models.RestaurantPhoto{RestaurantID: restaurant.ID, PhotoURL: path}
	if err := config.DB.Create(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
		return
	}
	if restaurant.PhotoURL == "" {
		config.DB.Model(&restaurant).Update("photo_url", path)
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "photo": photo})
}

// GetRestaurantPhoto serves a restaurant photo inline or as download
func GetRestaurantPhoto(c *gin.Context) {
	var photo models.RestaurantPhoto
	if err := config.DB.First(&photo, c.Query("photo_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}
	servePhoto(c, photo.PhotoURL)
}

func servePhoto(c *gin.Context, path string) {
	if path == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo file not found"})
		return
	}
	if c.Query("download") == "true" {
		c.FileAttachment(path, filepath.Base(path))
		return
	}
	c.File(path)
}
