package http

import (
	"reflect"
	"strings"

	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"github.com/MikeRez0/techxchange/internal/adapter/metrics"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

type Handlers struct {
	User         *UserHandler
	Product      *ProductHandler
	Order        *OrderHandler
	Notification *NotificationHandler
	Review       *ReviewHandler
	SavedItem    *SavedItemHandler
}

func NewRouter(
	conf *config.App,
	tokenService port.TokenService,
	m *metrics.Metrics,
	h Handlers,
	log *zap.Logger) (*Router, error) {

	if conf.Mode != config.AppModeDevelop {
		gin.SetMode(gin.ReleaseMode)
	}
	// report validation failures by their JSON names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	auth := authCheck(tokenService)
	buyer := requireRole(domain.RoleBuyer)
	seller := requireRole(domain.RoleSeller)
	admin := requireRole(domain.RoleAdmin)

	api := router.Group("/api")
	{
		users := api.Group("/auth")
		{
			users.POST("/register", h.User.RegisterUser)
			users.POST("/login", h.User.LoginUser)
			users.GET("/me", auth, h.User.Profile)
		}

		products := api.Group("/products")
		{
			products.GET("", h.Product.ListProducts)
			products.GET("/:id", h.Product.GetProduct)

			sellers := products.Group("/seller", auth, seller)
			sellers.POST("", h.Product.CreateProduct)
			sellers.GET("/my-products", h.Product.ListSellerProducts)

			admins := products.Group("/admin", auth, admin)
			admins.GET("/pending", h.Product.ListPendingProducts)
			admins.PUT("/:id/approve", h.Product.ApproveProduct)
			admins.PUT("/:id/reject", h.Product.RejectProduct)
		}

		orders := api.Group("/orders", auth)
		{
			orders.GET("/:orderId", h.Order.GetOrder)

			buyers := orders.Group("/buyer", buyer)
			buyers.POST("/product/:productId", h.Order.CreateOrder)
			buyers.GET("/my-orders", h.Order.ListBuyerOrders)
			buyers.PUT("/:orderId/cancel", h.Order.CancelOrder)

			sellers := orders.Group("/seller", seller)
			sellers.GET("/my-orders", h.Order.ListSellerOrders)
			sellers.PUT("/:orderId/status", h.Order.UpdateOrderStatus)
		}

		notifications := api.Group("/notifications", auth)
		{
			notifications.GET("/my-notifications", h.Notification.ListNotifications)
			notifications.GET("/count", h.Notification.CountNotifications)
			notifications.PUT("/mark-all-read", h.Notification.MarkAllAsRead)
			notifications.PUT("/:id/read", h.Notification.MarkAsRead)
			notifications.DELETE("/delete-all", h.Notification.DeleteAllNotifications)
			notifications.DELETE("/:id", h.Notification.DeleteNotification)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/product/:productId", h.Review.ListProductReviews)
			reviews.POST("/product/:productId", auth, h.Review.CreateReview)
			reviews.GET("/user/my-reviews", auth, h.Review.ListMyReviews)
			reviews.PUT("/:reviewId", auth, h.Review.UpdateReview)
			reviews.DELETE("/:reviewId", auth, h.Review.DeleteReview)
			reviews.POST("/:reviewId/helpful", auth, h.Review.ToggleHelpful)
		}

		savedItems := api.Group("/saved-items", auth)
		{
			savedItems.POST("/product/:productId", h.SavedItem.SaveItem)
			savedItems.GET("/my-saved-items", h.SavedItem.ListSavedItems)
			savedItems.GET("/check/:productId", h.SavedItem.CheckSaved)
			savedItems.PUT("/:savedItemId", h.SavedItem.UpdateSavedItem)
			savedItems.DELETE("/:savedItemId", h.SavedItem.RemoveSavedItem)
		}
	}

	return &Router{router}, nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
	}
	return name
}
