package port

import (
	"context"

	"github.com/MikeRez0/techxchange/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type UserService interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (string, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetPublicProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListApprovedProducts(ctx context.Context, page domain.Page) ([]*domain.Product, domain.Pagination, error)
	ListSellerProducts(ctx context.Context, sellerID string, page domain.Page) ([]*domain.Product, domain.Pagination, error)
	ListPendingProducts(ctx context.Context, page domain.Page) ([]*domain.Product, domain.Pagination, error)
	ReviewProduct(ctx context.Context, review domain.ProductReview) (*domain.Product, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, cmd domain.PlaceOrderCommand) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string, caller domain.Identity) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.Page) ([]*domain.Order, domain.Pagination, error)
	UpdateOrderStatus(ctx context.Context, cmd domain.UpdateOrderStatusCommand) (*domain.Order, error)
	CancelOrder(ctx context.Context, cmd domain.CancelOrderCommand) (*domain.Order, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, filter domain.NotificationFilter, page domain.Page) ([]*domain.Notification, domain.Pagination, int64, error)
	CountNotifications(ctx context.Context, userID string) (*domain.NotificationCount, error)
	MarkAsRead(ctx context.Context, userID string, notificationID string) (*domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, userID string, notificationID string) error
	DeleteAllNotifications(ctx context.Context, userID string) (int64, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, cmd domain.CreateReviewCommand) (*domain.Review, error)
	UpdateReview(ctx context.Context, cmd domain.UpdateReviewCommand) (*domain.Review, error)
	DeleteReview(ctx context.Context, userID string, reviewID string) error
	ToggleHelpful(ctx context.Context, userID string, reviewID string) (*domain.HelpfulVote, error)
	ListProductReviews(ctx context.Context, filter domain.ReviewFilter, page domain.Page) ([]*domain.Review, domain.Pagination, *domain.RatingSummary, error)
	ListUserReviews(ctx context.Context, userID string, page domain.Page) ([]*domain.Review, domain.Pagination, error)
}

type SavedItemService interface {
	SaveItem(ctx context.Context, userID string, productID string, notes string) (*domain.SavedItem, error)
	ListSavedItems(ctx context.Context, userID string, page domain.Page) ([]*domain.SavedItem, domain.Pagination, error)
	UpdateSavedItem(ctx context.Context, userID string, savedItemID string, notes string) (*domain.SavedItem, error)
	RemoveSavedItem(ctx context.Context, userID string, savedItemID string) error
	CheckSaved(ctx context.Context, userID string, productID string) (*domain.SavedItem, error)
}
