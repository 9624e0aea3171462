package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eats-backend/internal/shared/authz"
	"eats-backend/internal/shared/middleware"
	"eats-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupRestaurantRoutes(v1, c)
		setupDishRoutes(v1, c)
		setupOrderRoutes(v1, c)
		setupPaymentRoutes(v1, c)
		setupSubscriptionRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/verify-email", c.UserHandler.VerifyEmail)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.GET("/me", middleware.RequireOperation(authz.OpMe), c.UserHandler.Me)
		authed.PUT("/me", middleware.RequireOperation(authz.OpEditProfile), c.UserHandler.EditProfile)
		authed.GET("/users/:id", middleware.RequireOperation(authz.OpUserProfile), c.UserHandler.UserProfile)
	}
}

// ========================================
// RESTAURANT ROUTES
// ========================================
func setupRestaurantRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Public browsing
	v1.GET("/restaurants", c.RestaurantHandler.ListRestaurants)
	v1.GET("/restaurants/search", c.RestaurantHandler.SearchRestaurants)
	v1.GET("/restaurants/:id", c.RestaurantHandler.GetRestaurant)
	v1.GET("/categories", c.RestaurantHandler.ListCategories)
	v1.GET("/categories/:slug", c.RestaurantHandler.GetCategory)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.GET("/restaurants/mine", middleware.RequireOperation(authz.OpMyRestaurants), c.RestaurantHandler.MyRestaurants)
		authed.POST("/restaurants", middleware.RequireOperation(authz.OpCreateRestaurant), c.RestaurantHandler.CreateRestaurant)
		authed.PUT("/restaurants/:id", middleware.RequireOperation(authz.OpEditRestaurant), c.RestaurantHandler.EditRestaurant)
		authed.DELETE("/restaurants/:id", middleware.RequireOperation(authz.OpDeleteRestaurant), c.RestaurantHandler.DeleteRestaurant)
		authed.POST("/restaurants/cover-image", middleware.RequireOperation(authz.OpCreateRestaurant), c.RestaurantHandler.UploadCoverImage)
	}
}

// ========================================
// DISH ROUTES
// ========================================
func setupDishRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := v1.Group("/dishes")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.POST("", middleware.RequireOperation(authz.OpCreateDish), c.RestaurantHandler.CreateDish)
		authed.PUT("/:id", middleware.RequireOperation(authz.OpEditDish), c.RestaurantHandler.EditDish)
		authed.DELETE("/:id", middleware.RequireOperation(authz.OpDeleteDish), c.RestaurantHandler.DeleteDish)
	}
}

// ========================================
// ORDER ROUTES
// ========================================
func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	orders := v1.Group("/orders")
	orders.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		orders.POST("", middleware.RequireOperation(authz.OpCreateOrder), c.OrderHandler.CreateOrder)
		orders.GET("", middleware.RequireOperation(authz.OpGetOrders), c.OrderHandler.ListOrders)
		orders.GET("/:id", middleware.RequireOperation(authz.OpGetOrder), c.OrderHandler.GetOrder)
		orders.PUT("/:id", middleware.RequireOperation(authz.OpEditOrder), c.OrderHandler.EditOrder)
		orders.POST("/:id/take", middleware.RequireOperation(authz.OpTakeOrder), c.OrderHandler.TakeOrder)
	}
}

// ========================================
// PAYMENT ROUTES
// ========================================
func setupPaymentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	payments := v1.Group("/payments")
	payments.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		payments.POST("", middleware.RequireOperation(authz.OpCreatePayment), c.PaymentHandler.CreatePayment)
		payments.GET("", middleware.RequireOperation(authz.OpGetPayments), c.PaymentHandler.ListPayments)
	}
}

// ========================================
// SUBSCRIPTION ROUTES (WEBSOCKET)
// ========================================
func setupSubscriptionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	subs := v1.Group("/subscriptions")
	subs.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		subs.GET("/pending-orders", middleware.RequireOperation(authz.OpPendingOrders), c.OrderHandler.PendingOrders)
		subs.GET("/cooked-orders", middleware.RequireOperation(authz.OpCookedOrders), c.OrderHandler.CookedOrders)
		subs.GET("/orders/:id", middleware.RequireOperation(authz.OpOrderUpdates), c.OrderHandler.OrderUpdates)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  "database unreachable",
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
