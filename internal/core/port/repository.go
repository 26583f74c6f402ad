package port

import (
	"context"

	"github.com/MikeRez0/techxchange/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// Product
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter, page domain.Page) ([]*domain.Product, int64, error)
	UpdateProduct(ctx context.Context, productID string, updateFn UpdateProductFn) (*domain.Product, error)

	// Order
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.Page) ([]*domain.Order, int64, error)
	UpdateOrder(ctx context.Context, orderID string, updateFn UpdateOrderFn) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string, updateFn UpdateOrderFn) (*domain.Order, error)
	HasDeliveredOrder(ctx context.Context, buyerID string, productID string) (bool, error)

	// Review
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ReadReview(ctx context.Context, reviewID string) (*domain.Review, error)
	ListReviews(ctx context.Context, filter domain.ReviewFilter, page domain.Page) ([]*domain.Review, int64, error)
	UpdateReview(ctx context.Context, reviewID string, updateFn UpdateReviewFn) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
	ToggleReviewHelpful(ctx context.Context, reviewID string, userID string) (*domain.HelpfulVote, error)
	CountRatings(ctx context.Context, productID string) (map[int]int64, error)

	// Saved item
	CreateSavedItem(ctx context.Context, item *domain.SavedItem) (*domain.SavedItem, error)
	ReadSavedItem(ctx context.Context, savedItemID string) (*domain.SavedItem, error)
	FindSavedItem(ctx context.Context, userID string, productID string) (*domain.SavedItem, error)
	ListSavedItems(ctx context.Context, userID string, page domain.Page) ([]*domain.SavedItem, int64, error)
	UpdateSavedItem(ctx context.Context, savedItemID string, updateFn UpdateSavedItemFn) (*domain.SavedItem, error)
	DeleteSavedItem(ctx context.Context, savedItemID string) error
}

// UpdateOrderFn runs against the locked order row; a returned error aborts the write.
type UpdateOrderFn func(*domain.Order) error

// UpdateProductFn runs against the locked product row; a returned error aborts the write.
type UpdateProductFn func(*domain.Product) error

// UpdateReviewFn runs against the locked review row; a returned error aborts the write.
type UpdateReviewFn func(*domain.Review) error

// UpdateSavedItemFn runs against the locked saved item row; a returned error aborts the write.
type UpdateSavedItemFn func(*domain.SavedItem) error

type ProductFilter struct {
	SellerID string
	Status   domain.ProductStatus
}
