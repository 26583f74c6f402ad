package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/MikeRez0/techxchange/internal/core/port/mock"
	"github.com/MikeRez0/techxchange/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const reviewID = "review-1"

func applyReview(stored domain.Review) func(context.Context, string, port.UpdateReviewFn) (*domain.Review, error) {
	return func(_ context.Context, _ string, fn port.UpdateReviewFn) (*domain.Review, error) {
		r := stored
		if err := fn(&r); err != nil {
			return nil, err
		}
		return &r, nil
	}
}

func TestReviewService_CreateReview(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	valid := domain.ReviewContent{Rating: 4, Comment: "  Solid keyboard, loud switches  "}
	pending := approvedProduct(3)
	pending.Status = domain.ProductStatusPending

	tests := []struct {
		name        string
		content     domain.ReviewContent
		prepare     func(repo *mock.MockRepository)
		expError    error
		expVerified bool
	}{
		{
			name:    "Verified buyer",
			content: valid,
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadProduct(gomock.Any(), productID).Return(approvedProduct(3), nil)
				repo.EXPECT().HasDeliveredOrder(gomock.Any(), buyerID, productID).Return(true, nil)
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						assert.NotEmpty(t, r.ID)
						assert.Equal(t, "Solid keyboard, loud switches", r.Comment)
						return r, nil
					})
			},
			expVerified: true,
		},
		{
			name:    "Unverified buyer",
			content: valid,
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadProduct(gomock.Any(), productID).Return(approvedProduct(3), nil)
				repo.EXPECT().HasDeliveredOrder(gomock.Any(), buyerID, productID).Return(false, nil)
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *domain.Review) (*domain.Review, error) {
						return r, nil
					})
			},
		},
		{
			name:     "Rating out of range",
			content:  domain.ReviewContent{Rating: 6, Comment: valid.Comment},
			expError: domain.ErrValidation,
		},
		{
			name:     "Comment too short",
			content:  domain.ReviewContent{Rating: 5, Comment: "   great    "},
			expError: domain.ErrValidation,
		},
		{
			name:    "Unknown product",
			content: valid,
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadProduct(gomock.Any(), productID).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrProductNotFound,
		},
		{
			name:    "Unapproved product",
			content: valid,
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadProduct(gomock.Any(), productID).Return(pending, nil)
			},
			expError: domain.ErrProductNotReviewable,
		},
		{
			name:    "Second review",
			content: valid,
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadProduct(gomock.Any(), productID).Return(approvedProduct(3), nil)
				repo.EXPECT().HasDeliveredOrder(gomock.Any(), buyerID, productID).Return(false, nil)
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflictingData)
			},
			expError: domain.ErrAlreadyReviewed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			if test.prepare != nil {
				test.prepare(repo)
			}

			s, err := service.NewReviewService(repo, logger)
			require.NoError(t, err)

			review, err := s.CreateReview(context.Background(), domain.CreateReviewCommand{
				ProductID:     productID,
				UserID:        buyerID,
				ReviewContent: test.content,
			})
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 4, review.Rating)
			assert.Equal(t, test.expVerified, review.IsVerified)
		})
	}
}

func TestReviewService_UpdateReview(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	stored := domain.Review{ID: reviewID, ProductID: productID, UserID: buyerID, Rating: 2, Comment: "Not great at all"}
	content := domain.ReviewContent{Rating: 5, Comment: "Grew on me after a week"}

	tests := []struct {
		name     string
		userID   string
		repoErr  error
		expError error
	}{
		{name: "Author", userID: buyerID},
		{name: "Someone else", userID: sellerID, expError: domain.ErrNotReviewAuthor},
		{name: "Missing", userID: buyerID, repoErr: domain.ErrDataNotFound, expError: domain.ErrReviewNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			if test.repoErr != nil {
				repo.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any()).Return(nil, test.repoErr)
			} else {
				repo.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any()).DoAndReturn(applyReview(stored))
			}

			s, err := service.NewReviewService(repo, logger)
			require.NoError(t, err)

			review, err := s.UpdateReview(context.Background(), domain.UpdateReviewCommand{
				ReviewID: reviewID, UserID: test.userID, ReviewContent: content,
			})
			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, 5, review.Rating)
				assert.Equal(t, content.Comment, review.Comment)
				assert.False(t, review.UpdatedAt.IsZero())
			}
		})
	}
}

func TestReviewService_DeleteReview(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	stored := &domain.Review{ID: reviewID, UserID: buyerID}

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().ReadReview(gomock.Any(), reviewID).Return(stored, nil).Times(2)
	repo.EXPECT().DeleteReview(gomock.Any(), reviewID).Return(nil)
	repo.EXPECT().ReadReview(gomock.Any(), "missing").Return(nil, domain.ErrDataNotFound)

	s, err := service.NewReviewService(repo, logger)
	require.NoError(t, err)

	assert.Equal(t, domain.ErrNotReviewAuthor, s.DeleteReview(context.Background(), sellerID, reviewID))
	assert.NoError(t, s.DeleteReview(context.Background(), buyerID, reviewID))
	assert.Equal(t, domain.ErrReviewNotFound, s.DeleteReview(context.Background(), buyerID, "missing"))
}

func TestReviewService_ToggleHelpful(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	gomock.InOrder(
		repo.EXPECT().ToggleReviewHelpful(gomock.Any(), reviewID, sellerID).
			Return(&domain.HelpfulVote{HelpfulCount: 3, IsHelpful: true}, nil),
		repo.EXPECT().ToggleReviewHelpful(gomock.Any(), reviewID, sellerID).
			Return(&domain.HelpfulVote{HelpfulCount: 2, IsHelpful: false}, nil),
		repo.EXPECT().ToggleReviewHelpful(gomock.Any(), "missing", sellerID).
			Return(nil, domain.ErrDataNotFound),
	)

	s, err := service.NewReviewService(repo, logger)
	require.NoError(t, err)

	vote, err := s.ToggleHelpful(context.Background(), sellerID, reviewID)
	require.NoError(t, err)
	assert.True(t, vote.IsHelpful)
	assert.Equal(t, 3, vote.HelpfulCount)

	vote, err = s.ToggleHelpful(context.Background(), sellerID, reviewID)
	require.NoError(t, err)
	assert.False(t, vote.IsHelpful)

	_, err = s.ToggleHelpful(context.Background(), sellerID, "missing")
	assert.Equal(t, domain.ErrReviewNotFound, err)
}

func TestReviewService_ListProductReviews(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	filter := domain.ReviewFilter{ProductID: productID, Rating: 5, Sort: domain.ReviewSortHelpful}
	page := domain.NewPage(1, 2, domain.DefaultPageSize)
	list := []*domain.Review{{ID: "r-1", Rating: 5}, {ID: "r-2", Rating: 5}}

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().ReadProduct(gomock.Any(), productID).Return(approvedProduct(1), nil)
	repo.EXPECT().ListReviews(gomock.Any(), filter, page).Return(list, int64(3), nil)
	repo.EXPECT().CountRatings(gomock.Any(), productID).Return(map[int]int64{5: 2, 4: 1, 1: 1}, nil)

	s, err := service.NewReviewService(repo, logger)
	require.NoError(t, err)

	result, pagination, summary, err := s.ListProductReviews(context.Background(), filter, page)
	require.NoError(t, err)
	assert.Equal(t, list, result)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.True(t, pagination.HasNext)

	assert.Equal(t, int64(4), summary.TotalReviews)
	assert.Equal(t, "3.8", summary.AverageRating.String())
	assert.Equal(t, map[int]int64{1: 1, 2: 0, 3: 0, 4: 1, 5: 2}, summary.Distribution)
	assert.Equal(t, "Mechanical Keyboard", summary.ProductName)
}

func TestReviewService_ListProductReviewsHidden(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	pending := approvedProduct(1)
	pending.Status = domain.ProductStatusPending

	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().ReadProduct(gomock.Any(), productID).Return(pending, nil)
	repo.EXPECT().ReadProduct(gomock.Any(), "other").Return(nil, errors.New("conn closed"))

	s, err := service.NewReviewService(repo, logger)
	require.NoError(t, err)

	_, _, _, err = s.ListProductReviews(context.Background(), domain.ReviewFilter{ProductID: productID}, domain.NewPage(1, 0, 10))
	assert.Equal(t, domain.ErrProductNotFound, err)

	_, _, _, err = s.ListProductReviews(context.Background(), domain.ReviewFilter{ProductID: "other"}, domain.NewPage(1, 0, 10))
	assert.Equal(t, domain.ErrInternal, err)
}

func TestReviewService_ListUserReviews(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	logger, _ := zap.NewProduction()

	page := domain.NewPage(1, 0, domain.DefaultPageSize)
	repo := mock.NewMockRepository(mockCtrl)
	repo.EXPECT().ListReviews(gomock.Any(), domain.ReviewFilter{UserID: buyerID, Sort: domain.ReviewSortNewest}, page).
		Return([]*domain.Review{{ID: "r-1"}}, int64(1), nil)

	s, err := service.NewReviewService(repo, logger)
	require.NoError(t, err)

	list, pagination, err := s.ListUserReviews(context.Background(), buyerID, page)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, pagination.TotalPages)
}
