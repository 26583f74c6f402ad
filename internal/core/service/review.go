package service

import (
	"context"
	"errors"
	"time"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService struct {
	repo   port.Repository
	logger *zap.Logger
}

func NewReviewService(repo port.Repository, logger *zap.Logger) (*ReviewService, error) {
	return &ReviewService{repo: repo, logger: logger}, nil
}

// CreateReview rates an approved product. Reviews from buyers with a delivered order are verified.
func (s *ReviewService) CreateReview(ctx context.Context, cmd domain.CreateReviewCommand) (*domain.Review, error) {
	content := cmd.ReviewContent
	if err := content.Normalize(); err != nil {
		return nil, err
	}

	product, err := s.repo.ReadProduct(ctx, cmd.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if product.Status != domain.ProductStatusApproved {
		return nil, domain.ErrProductNotReviewable
	}

	verified, err := s.repo.HasDeliveredOrder(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		s.logger.Error("Check delivered order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	now := time.Now()
	review, err := s.repo.CreateReview(ctx, &domain.Review{
		ID:         uuid.NewString(),
		ProductID:  cmd.ProductID,
		UserID:     cmd.UserID,
		Rating:     content.Rating,
		Comment:    content.Comment,
		IsVerified: verified,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrAlreadyReviewed
		}
		s.logger.Error("Create review", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.logger.Debug("Review created",
		zap.String("review", review.ID), zap.String("product", review.ProductID), zap.Int("rating", review.Rating))
	return review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, cmd domain.UpdateReviewCommand) (*domain.Review, error) {
	content := cmd.ReviewContent
	if err := content.Normalize(); err != nil {
		return nil, err
	}

	review, err := s.repo.UpdateReview(ctx, cmd.ReviewID, func(r *domain.Review) error {
		if r.UserID != cmd.UserID {
			return domain.ErrNotReviewAuthor
		}
		r.Rating = content.Rating
		r.Comment = content.Comment
		r.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, s.mapError("Update review", err)
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID string, reviewID string) error {
	review, err := s.repo.ReadReview(ctx, reviewID)
	if err != nil {
		return s.mapError("Read review", err)
	}
	if review.UserID != userID {
		return domain.ErrNotReviewAuthor
	}
	if err := s.repo.DeleteReview(ctx, reviewID); err != nil {
		return s.mapError("Delete review", err)
	}
	return nil
}

// ToggleHelpful marks the review helpful for the user, or clears an earlier mark.
func (s *ReviewService) ToggleHelpful(ctx context.Context, userID string, reviewID string) (*domain.HelpfulVote, error) {
	vote, err := s.repo.ToggleReviewHelpful(ctx, reviewID, userID)
	if err != nil {
		return nil, s.mapError("Toggle helpful", err)
	}
	return vote, nil
}

// ListProductReviews pages through a public product's reviews along with its rating summary.
// The summary always covers every review, whatever the rating filter.
func (s *ReviewService) ListProductReviews(ctx context.Context, filter domain.ReviewFilter,
	page domain.Page) ([]*domain.Review, domain.Pagination, *domain.RatingSummary, error) {
	product, err := s.repo.ReadProduct(ctx, filter.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.Pagination{}, nil, domain.ErrProductNotFound
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.Pagination{}, nil, domain.ErrInternal
	}
	if product.Status != domain.ProductStatusApproved {
		return nil, domain.Pagination{}, nil, domain.ErrProductNotFound
	}

	filter.UserID = ""
	list, total, err := s.repo.ListReviews(ctx, filter, page)
	if err != nil {
		s.logger.Error("List reviews", zap.Error(err))
		return nil, domain.Pagination{}, nil, domain.ErrInternal
	}

	counts, err := s.repo.CountRatings(ctx, product.ID)
	if err != nil {
		s.logger.Error("Count ratings", zap.Error(err))
		return nil, domain.Pagination{}, nil, domain.ErrInternal
	}
	summary := domain.NewRatingSummary(product)
	for rating, n := range counts {
		summary.Add(rating, n)
	}

	return list, domain.NewPagination(page, total), summary, nil
}

func (s *ReviewService) ListUserReviews(ctx context.Context, userID string,
	page domain.Page) ([]*domain.Review, domain.Pagination, error) {
	list, total, err := s.repo.ListReviews(ctx, domain.ReviewFilter{UserID: userID, Sort: domain.ReviewSortNewest}, page)
	if err != nil {
		s.logger.Error("List reviews", zap.Error(err))
		return nil, domain.Pagination{}, domain.ErrInternal
	}
	return list, domain.NewPagination(page, total), nil
}

func (s *ReviewService) mapError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrDataNotFound):
		return domain.ErrReviewNotFound
	case errors.Is(err, domain.ErrNotReviewAuthor):
		return domain.ErrNotReviewAuthor
	}
	s.logger.Error(op, zap.Error(err))
	return domain.ErrInternal
}
