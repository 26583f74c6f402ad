package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService struct {
	repo     port.Repository
	notifier port.Notifier
	logger   *zap.Logger
}

func NewProductService(repo port.Repository, notifier port.Notifier, logger *zap.Logger) (*ProductService, error) {
	return &ProductService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// CreateProduct lists a new product for the seller. It stays hidden from buyers until approved.
func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Normalize(); err != nil {
		return nil, err
	}

	now := time.Now()
	product.ID = uuid.NewString()
	product.Status = domain.ProductStatusPending
	product.AdminNotes = nil
	product.ApprovedBy = nil
	product.ApprovedAt = nil
	product.CreatedAt = now
	product.UpdatedAt = now

	newProduct, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Create product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return newProduct, nil
}

func (s *ProductService) GetPublicProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if product.Status != domain.ProductStatusApproved {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) ListApprovedProducts(ctx context.Context,
	page domain.Page) ([]*domain.Product, domain.Pagination, error) {
	return s.list(ctx, port.ProductFilter{Status: domain.ProductStatusApproved}, page)
}

func (s *ProductService) ListSellerProducts(ctx context.Context, sellerID string,
	page domain.Page) ([]*domain.Product, domain.Pagination, error) {
	return s.list(ctx, port.ProductFilter{SellerID: sellerID}, page)
}

func (s *ProductService) ListPendingProducts(ctx context.Context,
	page domain.Page) ([]*domain.Product, domain.Pagination, error) {
	return s.list(ctx, port.ProductFilter{Status: domain.ProductStatusPending}, page)
}

func (s *ProductService) list(ctx context.Context, filter port.ProductFilter,
	page domain.Page) ([]*domain.Product, domain.Pagination, error) {
	list, total, err := s.repo.ListProducts(ctx, filter, page)
	if err != nil {
		s.logger.Error("List products", zap.Error(err))
		return nil, domain.Pagination{}, domain.ErrInternal
	}
	return list, domain.NewPagination(page, total), nil
}

// ReviewProduct approves or rejects a listing and tells the seller about it.
func (s *ProductService) ReviewProduct(ctx context.Context, review domain.ProductReview) (*domain.Product, error) {
	notes := strings.TrimSpace(review.AdminNotes)
	switch review.Status {
	case domain.ProductStatusApproved:
	case domain.ProductStatusRejected:
		if notes == "" {
			return nil, domain.NewValidationError("adminNotes", "Admin notes are required when rejecting a product")
		}
	default:
		return nil, domain.NewValidationError("status", "Review status must be approved or rejected")
	}

	now := time.Now()
	product, err := s.repo.UpdateProduct(ctx, review.ProductID, func(p *domain.Product) error {
		p.Status = review.Status
		p.UpdatedAt = now
		p.AdminNotes = optionalString(notes)
		if review.Status == domain.ProductStatusApproved {
			p.ApprovedBy = &review.AdminID
			p.ApprovedAt = &now
		} else {
			p.ApprovedBy = nil
			p.ApprovedAt = nil
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Review product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	n := &domain.Notification{
		UserID:       product.SellerID,
		RelatedID:    product.ID,
		RelatedModel: domain.RelatedModelProduct,
		Metadata: map[string]any{
			"productId":   product.ID,
			"productName": product.Name,
		},
		CreatedAt: now,
	}
	if review.Status == domain.ProductStatusApproved {
		n.Type = domain.NotificationProductApproved
		n.Title = "Product Approved"
		n.Message = fmt.Sprintf("Your product %q has been approved and is now visible to buyers", product.Name)
	} else {
		n.Type = domain.NotificationProductRejected
		n.Title = "Product Rejected"
		n.Message = fmt.Sprintf("Your product %q has been rejected: %s", product.Name, notes)
		n.Metadata["adminNotes"] = notes
	}
	n.Fit()
	s.notifier.Notify(context.WithoutCancel(ctx), n)

	return product, nil
}
