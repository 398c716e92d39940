package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-reservation-api/config"
	"restaurant-reservation-api/models"
)

func TestAdminUserManagement(t *testing.T) {
	r := setupTestRouter(t)
	target, targetToken := createUser(t, "target@example.com", "+998900000001", false)
	admin, adminToken := createUser(t, "admin@example.com", "+998900000002", true)

	// Listing users is admin only
	resp := doJSON(r, http.MethodGet, "/get-all-users", targetToken, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}
	resp = doJSON(r, http.MethodGet, "/get-all-users", adminToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["count"].(float64) != 2 {
		t.Fatalf("expected 2 users, got %v", body["count"])
	}

	// Self-deletion is refused, other accounts are deletable
	resp = doJSON(r, http.MethodDelete, "/delete-user", adminToken,
		map[string]interface{}{"user_id": admin.ID})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for self-delete, got %d", resp.Code)
	}
	resp = doJSON(r, http.MethodDelete, "/delete-user", adminToken,
		map[string]interface{}{"user_id": target.ID})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var count int64
	config.DB.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user left, got %d", count)
	}
}

func TestAdminPromoteUser(t *testing.T) {
	r := setupTestRouter(t)
	target, targetToken := createUser(t, "target@example.com", "+998900000001", false)
	_, adminToken := createUser(t, "admin@example.com", "+998900000002", true)

	// Non-admins cannot reach the elevation operation
	resp := doJSON(r, http.MethodPost, "/promote-user", targetToken,
		map[string]interface{}{"user_id": target.ID})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for self-promotion attempt, got %d", resp.Code)
	}

	resp = doJSON(r, http.MethodPost, "/promote-user", adminToken,
		map[string]interface{}{"user_id": target.ID})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var promoted models.User
	config.DB.First(&promoted, target.ID)
	if !promoted.IsAdmin {
		t.Error("expected target to carry the admin flag after promotion")
	}

	// The fresh admin may now use admin routes
	resp = doJSON(r, http.MethodGet, "/get-all-users", targetToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for promoted admin, got %d", resp.Code)
	}
}
