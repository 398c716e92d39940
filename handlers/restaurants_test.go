package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/models"
)

func TestAddRestaurantAdminOnly(t *testing.T) {
	r := setupTestRouter(t)
	_, userToken := createUser(t, "user@example.com", "+998900000001", false)
	_, adminToken := createUser(t, "admin@example.com", "+998900000002", true)

	body := map[string]interface{}{
		"name":             "Plov Center",
		"address":          "1 Osh St",
		"number_of_people": 40,
	}
	resp := doJSON(r, http.MethodPost, "/add-restaurant", userToken, body)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}

	resp = doJSON(r, http.MethodPost, "/add-restaurant", adminToken, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d: %s", resp.Code, resp.Body.String())
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("name = ?", "Plov Center").First(&restaurant).Error; err != nil {
		t.Fatalf("restaurant missing: %v", err)
	}
	if restaurant.SeatsLeft != 40 {
		t.Errorf("new restaurant should start at full capacity, got %d", restaurant.SeatsLeft)
	}
}

// Partial update goes through the two-tier authorization: admin always,
// otherwise an ownership row for exactly that restaurant.
func TestUpdateRestaurantAuthorization(t *testing.T) {
	r := setupTestRouter(t)
	owner, ownerToken := createUser(t, "owner@example.com", "+998900000001", false)
	_, strangerToken := createUser(t, "stranger@example.com", "+998900000002", false)
	_, adminToken := createUser(t, "admin@example.com", "+998900000003", true)

	restaurant := createRestaurant(t, "Cafe", 20)
	if err := config.DB.Create(&models.RestaurantOwner{UserID: owner.ID, RestaurantID: restaurant.ID}).Error; err != nil {
		t.Fatalf("failed to seed ownership: %v", err)
	}

	name := "Cafe Renamed"
	body := map[string]interface{}{"restaurant_id": restaurant.ID, "name": name}

	resp := doJSON(r, http.MethodPut, "/update-restaurant", strangerToken, body)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for stranger, got %d", resp.Code)
	}
	resp = doJSON(r, http.MethodPut, "/update-restaurant", ownerToken, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d: %s", resp.Code, resp.Body.String())
	}
	resp = doJSON(r, http.MethodPut, "/update-restaurant", adminToken,
		map[string]interface{}{"restaurant_id": restaurant.ID, "description": "admin touch"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}

	var updated models.Restaurant
	config.DB.First(&updated, restaurant.ID)
	if updated.Name != name {
		t.Errorf("expected name %q, got %q", name, updated.Name)
	}
	if updated.Description != "admin touch" {
		t.Errorf("expected description updated, got %q", updated.Description)
	}
}

// Shrinking capacity clamps seats_left so the invariant
// seats_left <= number_of_people keeps holding.
func TestUpdateRestaurantCapacityClampsSeats(t *testing.T) {
	r := setupTestRouter(t)
	_, adminToken := createUser(t, "admin@example.com", "+998900000001", true)
	restaurant := createRestaurant(t, "Shrink", 30)

	resp := doJSON(r, http.MethodPut, "/update-restaurant", adminToken,
		map[string]interface{}{"restaurant_id": restaurant.ID, "number_of_people": 10})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var updated models.Restaurant
	config.DB.First(&updated, restaurant.ID)
	if updated.NumberOfPeople != 10 || updated.SeatsLeft != 10 {
		t.Errorf("expected capacity 10 and seats clamped to 10, got %d/%d",
			updated.NumberOfPeople, updated.SeatsLeft)
	}
}

func TestAddOwnerFlow(t *testing.T) {
	r := setupTestRouter(t)
	user, userToken := createUser(t, "user@example.com", "+998900000001", false)
	_, adminToken := createUser(t, "admin@example.com", "+998900000002", true)
	restaurant := createRestaurant(t, "Owned", 20)

	body := map[string]interface{}{"user_id": user.ID, "restaurant_id": restaurant.ID}

	// add-owner is a global admin operation
	resp := doJSON(r, http.MethodPost, "/add-owner", userToken, body)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}
	resp = doJSON(r, http.MethodPost, "/add-owner", adminToken, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	// Duplicate link rejected
	resp = doJSON(r, http.MethodPost, "/add-owner", adminToken, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate owner, got %d", resp.Code)
	}

	// The fresh owner can now manage the restaurant
	resp = doJSON(r, http.MethodPut, "/update-restaurant", userToken,
		map[string]interface{}{"restaurant_id": restaurant.ID, "name": "Now Mine"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for new owner, got %d", resp.Code)
	}

	// Remove the link; management rights go with it
	resp = doJSON(r, http.MethodDelete, "/delete-owner", adminToken, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	resp = doJSON(r, http.MethodPut, "/update-restaurant", userToken,
		map[string]interface{}{"restaurant_id": restaurant.ID, "name": "Not Anymore"})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 after owner removal, got %d", resp.Code)
	}
}

func TestNearbyRestaurants(t *testing.T) {
	r := setupTestRouter(t)

	near := createRestaurant(t, "Near", 10)
	lat, long := 41.3111, 69.2797
	config.DB.Model(near).Updates(map[string]interface{}{"latitude": lat, "longitude": long})

	far := createRestaurant(t, "Far", 10)
	config.DB.Model(far).Updates(map[string]interface{}{"latitude": 39.6542, "longitude": 66.9597})

	createRestaurant(t, "Unpinned", 10) // no coordinates, never listed

	resp := doJSON(r, http.MethodGet, "/nearby-restaurants?lat=41.31&long=69.28&radius=5", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["count"].(float64) != 1 {
		t.Fatalf("expected exactly the nearby restaurant, got %v", body["count"])
	}

	resp = doJSON(r, http.MethodGet, "/nearby-restaurants?lat=banana&long=69.28", "", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed coordinates, got %d", resp.Code)
	}
	resp = doJSON(r, http.MethodGet, "/nearby-restaurants?lat=95&long=69.28", "", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range coordinates, got %d", resp.Code)
	}
}
