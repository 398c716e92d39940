package handlers

import (
	"math/rand"
	"net/http"
	"strconv"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"
	"restaurant-reservation-api/notify"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone_number" binding:"required"`
	Password1 string `json:"password1" binding:"required,min=6"`
	Password2 string `json:"password2" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account. The very first account in the system
// becomes admin; everyone after that starts as a plain user.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password1 != req.Password2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords are not the same!"})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists!"})
		return
	}
	if err := config.DB.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already exists!"})
		return
	}

	var userCount int64
	config.DB.Model(&models.User{}).Count(&userCount)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	activationCode := newCode()
	user := models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordHash:   string(hash),
		IsAdmin:        userCount == 0,
		IsActive:       true,
		ActivationCode: activationCode,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	go notify.SendSMS(user.Phone, "Your activation code: "+strconv.Itoa(activationCode))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"user": gin.H{
			"id":        user.ID,
			"firstname": user.FirstName,
			"lastname":  user.LastName,
			"email":     user.Email,
			"is_admin":  user.IsAdmin,
		},
	})
}

// Login verifies credentials and issues the access/refresh pair. A
// pending reset code is cleared on successful login.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email or password is not correct!"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email or password is not correct!"})
		return
	}

	tokens, err := middleware.GenerateTokenPair(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	if user.ActivationCode != 0 {
		config.DB.Model(&user).Update("activation_code", 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   tokens,
		"user": gin.H{
			"id":        user.ID,
			"firstname": user.FirstName,
			"lastname":  user.LastName,
			"email":     user.Email,
			"is_admin":  user.IsAdmin,
		},
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
func RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := middleware.ParseToken(req.RefreshToken)
	if err != nil || claims.TokenType != middleware.TokenTypeRefresh {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	tokens, err := middleware.GenerateTokenPair(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": tokens})
}

// ForgetPassword stores a reset code on the account and sends it out
// of band. The SMS is best effort.
func ForgetPassword(c *gin.Context) {
	email := c.Param("email")
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	code := newCode()
	if err := config.DB.Model(&user).Update("activation_code", code).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reset code"})
		return
	}

	go notify.SendSMS(user.Phone, "Your password reset code: "+strconv.Itoa(code))

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reset code sent"})
}

type ResetPasswordRequest struct {
	Code      int    `json:"code" binding:"required"`
	Password1 string `json:"password1" binding:"required,min=6"`
	Password2 string `json:"password2" binding:"required"`
}

// ResetPassword swaps the password if the reset code matches.
func ResetPassword(c *gin.Context) {
	email := c.Param("email")
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password1 != req.Password2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords are not the same!"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.ActivationCode == 0 || user.ActivationCode != req.Code {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reset code"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"password_hash":   string(hash),
		"activation_code": 0,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}

// Activate flips the account active once the emailed/SMSed code matches.
func Activate(c *gin.Context) {
	email := c.Param("email")
	codeStr := c.Query("code")
	code, err := strconv.Atoi(codeStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activation code"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.ActivationCode == 0 || user.ActivationCode != code {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activation code"})
		return
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"is_active":       true,
		"activation_code": 0,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account activated"})
}

// newCode returns a five-digit one-time code.
func newCode() int {
	return 10000 + rand.Intn(90000)
}
