package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/middleware"
	"restaurant-reservation-api/models"
	"restaurant-reservation-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRouter wires the full route table against a fresh in-memory
// database. One connection only, so concurrent transactions serialize
// instead of tripping SQLITE_BUSY.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// createUser inserts an account directly and returns it with a signed
// access token.
func createUser(t *testing.T, email, phone string, isAdmin bool) (*models.User, string) {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	tokens, err := middleware.GenerateTokenPair(user.ID)
	if err != nil {
		t.Fatalf("failed to generate tokens: %v", err)
	}
	return &user, tokens.AccessToken
}

func createRestaurant(t *testing.T, name string, capacity int) *models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		Name:           name,
		Address:        "1 Test St",
		Phone:          "+998901234567",
		NumberOfPeople: capacity,
		SeatsLeft:      capacity,
		IsOpen:         true,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		t.Fatalf("failed to create restaurant: %v", err)
	}
	return &restaurant
}

// doJSON performs a request with an optional bearer token and JSON body
func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", resp.Body.String(), err)
	}
	return body
}
