package service_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/MikeRez0/techxchange/internal/core/port/mock"
	"github.com/MikeRez0/techxchange/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func applyProduct(stored domain.Product) func(context.Context, string, port.UpdateProductFn) (*domain.Product, error) {
	return func(_ context.Context, _ string, fn port.UpdateProductFn) (*domain.Product, error) {
		p := stored
		if err := fn(&p); err != nil {
			return nil, err
		}
		return &p, nil
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			return p, nil
		})

	s, err := service.NewProductService(repo, notifier, logger)
	require.NoError(t, err)

	product, err := s.CreateProduct(context.Background(), &domain.Product{
		SellerID: sellerID,
		Name:     "  Mechanical Keyboard ",
		Price:    decimal.MustParse("49.90"),
		Currency: "eur",
		Stock:    3,
		Status:   domain.ProductStatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", product.Name)
	assert.Equal(t, "EUR", product.Currency)
	assert.Equal(t, domain.ProductConditionNew, product.Condition)
	assert.Equal(t, domain.ProductStatusPending, product.Status)
	assert.NotEmpty(t, product.ID)

	_, err = s.CreateProduct(context.Background(), &domain.Product{Name: "Broken", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductService_GetPublicProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	tests := []struct {
		name     string
		stored   *domain.Product
		repoErr  error
		expError error
	}{
		{name: "Approved", stored: approvedProduct(1)},
		{
			name:     "Pending is hidden",
			stored:   &domain.Product{ID: productID, Status: domain.ProductStatusPending},
			expError: domain.ErrProductNotFound,
		},
		{name: "Missing", repoErr: domain.ErrDataNotFound, expError: domain.ErrProductNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			repo.EXPECT().ReadProduct(gomock.Any(), productID).Return(test.stored, test.repoErr)

			s, err := service.NewProductService(repo, mock.NewMockNotifier(mockCtrl), logger)
			require.NoError(t, err)

			product, err := s.GetPublicProduct(context.Background(), productID)
			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, test.stored, product)
			}
		})
	}
}

func TestProductService_ListPendingProducts(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	page := domain.NewPage(1, 10, domain.DefaultPageSize)
	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().ListProducts(gomock.Any(), port.ProductFilter{Status: domain.ProductStatusPending}, page).
		Return([]*domain.Product{{ID: "p-1"}}, int64(1), nil)

	s, err := service.NewProductService(repo, mock.NewMockNotifier(mockCtrl), logger)
	require.NoError(t, err)

	list, pagination, err := s.ListPendingProducts(context.Background(), page)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
}

func TestProductService_ReviewProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	pending := domain.Product{ID: productID, SellerID: sellerID, Name: "Mechanical Keyboard", Status: domain.ProductStatusPending}

	tests := []struct {
		name     string
		review   domain.ProductReview
		expError error
		expType  domain.NotificationType
	}{
		{
			name:    "Approve",
			review:  domain.ProductReview{ProductID: productID, AdminID: "admin-1", Status: domain.ProductStatusApproved},
			expType: domain.NotificationProductApproved,
		},
		{
			name: "Reject with notes",
			review: domain.ProductReview{
				ProductID: productID, AdminID: "admin-1",
				Status: domain.ProductStatusRejected, AdminNotes: "Photos are missing",
			},
			expType: domain.NotificationProductRejected,
		},
		{
			name: "Reject with long notes",
			review: domain.ProductReview{
				ProductID: productID, AdminID: "admin-1",
				Status: domain.ProductStatusRejected, AdminNotes: strings.Repeat("é", 1000),
			},
			expType: domain.NotificationProductRejected,
		},
		{
			name:     "Reject without notes",
			review:   domain.ProductReview{ProductID: productID, AdminID: "admin-1", Status: domain.ProductStatusRejected},
			expError: domain.ErrValidation,
		},
		{
			name:     "Unsupported decision",
			review:   domain.ProductReview{ProductID: productID, AdminID: "admin-1", Status: domain.ProductStatusInactive},
			expError: domain.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			if test.expError == nil {
				repo.EXPECT().UpdateProduct(gomock.Any(), productID, gomock.Any()).DoAndReturn(applyProduct(pending))
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, n *domain.Notification) {
						assert.Equal(t, sellerID, n.UserID)
						assert.Equal(t, test.expType, n.Type)
						assert.Equal(t, domain.RelatedModelProduct, n.RelatedModel)
						assert.LessOrEqual(t, utf8.RuneCountInString(n.Message), domain.MaxNotificationMessage)
						assert.True(t, utf8.ValidString(n.Message))
					})
			}

			s, err := service.NewProductService(repo, notifier, logger)
			require.NoError(t, err)

			product, err := s.ReviewProduct(context.Background(), test.review)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.review.Status, product.Status)
			if test.review.Status == domain.ProductStatusApproved {
				require.NotNil(t, product.ApprovedBy)
				assert.Equal(t, "admin-1", *product.ApprovedBy)
				assert.NotNil(t, product.ApprovedAt)
			} else {
				require.NotNil(t, product.AdminNotes)
				assert.Equal(t, test.review.AdminNotes, *product.AdminNotes)
			}
		})
	}
}
