package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/models"
)

func TestCreateReviewRatingBounds(t *testing.T) {
	r := setupTestRouter(t)
	_, token := createUser(t, "guest@example.com", "+998900000001", false)
	restaurant := createRestaurant(t, "Reviewed", 10)

	for _, rating := range []int{0, 6, -1} {
		resp := doJSON(r, http.MethodPost, "/reviews", token, map[string]interface{}{
			"restaurant_id": restaurant.ID,
			"rating":        rating,
		})
		if resp.Code != http.StatusBadRequest {
			t.Errorf("rating %d: expected 400, got %d", rating, resp.Code)
		}
	}

	for _, rating := range []int{1, 5} {
		resp := doJSON(r, http.MethodPost, "/reviews", token, map[string]interface{}{
			"restaurant_id": restaurant.ID,
			"rating":        rating,
			"comment":       "fine",
		})
		if resp.Code != http.StatusCreated {
			t.Errorf("rating %d: expected 201, got %d: %s", rating, resp.Code, resp.Body.String())
		}
	}

	resp := doJSON(r, http.MethodPost, "/reviews", token, map[string]interface{}{
		"restaurant_id": uint(9999),
		"rating":        3,
	})
	if resp.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown restaurant, got %d", resp.Code)
	}
}

func TestGetReviewsPublic(t *testing.T) {
	r := setupTestRouter(t)
	guest, _ := createUser(t, "guest@example.com", "+998900000001", false)
	restaurant := createRestaurant(t, "Reviewed", 10)

	for i := 1; i <= 3; i++ {
		review := models.Review{UserID: guest.ID, RestaurantID: restaurant.ID, Rating: i + 2}
		if err := config.DB.Create(&review).Error; err != nil {
			t.Fatalf("failed to seed review: %v", err)
		}
	}

	resp := doJSON(r, http.MethodGet, fmt.Sprintf("/reviews?restaurant_id=%d", restaurant.ID), "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["count"].(float64) != 3 {
		t.Fatalf("expected 3 reviews, got %v", body["count"])
	}

	resp = doJSON(r, http.MethodGet, "/reviews", "", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without restaurant_id, got %d", resp.Code)
	}
}

func TestDeleteReviewAuthorOrAdmin(t *testing.T) {
	r := setupTestRouter(t)
	author, authorToken := createUser(t, "author@example.com", "+998900000001", false)
	_, strangerToken := createUser(t, "stranger@example.com", "+998900000002", false)
	_, adminToken := createUser(t, "admin@example.com", "+998900000003", true)
	restaurant := createRestaurant(t, "Reviewed", 10)

	seed := func() uint {
		review := models.Review{UserID: author.ID, RestaurantID: restaurant.ID, Rating: 4}
		if err := config.DB.Create(&review).Error; err != nil {
			t.Fatalf("failed to seed review: %v", err)
		}
		return review.ID
	}

	id := seed()
	resp := doJSON(r, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), strangerToken, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for stranger, got %d", resp.Code)
	}
	resp = doJSON(r, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), authorToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for author, got %d", resp.Code)
	}

	id = seed()
	resp = doJSON(r, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), adminToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}

	resp = doJSON(r, http.MethodDelete, "/reviews/9999", adminToken, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing review, got %d", resp.Code)
	}
}
