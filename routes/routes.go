package routes

import (
	"restaurant-reservation-api/authz"
	"restaurant-reservation-api/handlers"
	"restaurant-reservation-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/")
	{
		// Auth
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)
		public.POST("/refresh-token", handlers.RefreshToken)
		public.GET("/forget-password/:email", handlers.ForgetPassword)
		public.POST("/reset-password/:email", handlers.ResetPassword)
		public.GET("/activate/:email", handlers.Activate)

		// Discovery (no auth needed)
		public.GET("/get-all-restaurants-public", handlers.ListRestaurants)
		public.GET("/get-restaurant-by-id", handlers.GetRestaurant)
		public.GET("/nearby-restaurants", handlers.NearbyRestaurants)
		public.GET("/get-restaurant-photo", handlers.GetRestaurantPhoto)

		// Menu browsing
		public.GET("/get-food-categories", handlers.GetFoodCategories)
		public.GET("/get-food-items", handlers.GetFoodItems)
		public.GET("/get-food-by-id", handlers.GetFoodByID)
		public.GET("/get-food-photo", handlers.GetFoodPhoto)

		// Reviews
		public.GET("/reviews", handlers.GetReviews)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/get-user-info", handlers.GetUserInfo)

		// Reservations
		auth.POST("/make-order", handlers.MakeOrder)
		auth.DELETE("/delete-order", handlers.DeleteOrder)
		auth.GET("/my-orders", handlers.GetMyOrders)

		// Reviews
		auth.POST("/reviews", handlers.CreateReview)
		auth.DELETE("/reviews/:id", handlers.DeleteReview)

		// Favorites
		auth.POST("/add-favorite", handlers.AddFavorite)
		auth.GET("/my-favorites", handlers.GetMyFavorites)
		auth.DELETE("/delete-favorite", handlers.DeleteFavorite)

		// Notifications
		auth.GET("/my-notifications", handlers.GetMyNotifications)
		auth.PUT("/read-notification", handlers.ReadNotification)

		// Restaurant management — per-restaurant permission is
		// resolved inside the handlers (admin or ownership row)
		auth.PUT("/update-restaurant", handlers.UpdateRestaurant)
		auth.POST("/add-location", handlers.AddLocation)
		auth.POST("/upload-restaurant-photo", handlers.UploadRestaurantPhoto)
		auth.POST("/add-food-category", handlers.AddFoodCategory)
		auth.POST("/add-food-to-category", handlers.AddFoodToCategory)
		auth.PUT("/update-food-item", handlers.UpdateFoodItem)
		auth.DELETE("/delete-food-item", handlers.DeleteFoodItem)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/")
	admin.Use(middleware.AuthRequired(), authz.RequireAdmin())
	{
		admin.GET("/get-all-users", handlers.AdminGetAllUsers)
		admin.DELETE("/delete-user", handlers.AdminDeleteUser)
		admin.POST("/promote-user", handlers.AdminPromoteUser)

		admin.POST("/add-restaurant", handlers.AddRestaurant)
		admin.GET("/get-all-restaurants", handlers.AdminListRestaurants)
		admin.DELETE("/delete-restaurant", handlers.DeleteRestaurant)

		admin.POST("/add-owner", handlers.AddOwner)
		admin.GET("/get-all-owners", handlers.GetAllOwners)
		admin.DELETE("/delete-owner", handlers.DeleteOwner)

		admin.GET("/orders", handlers.AdminGetAllOrders)
	}
}
