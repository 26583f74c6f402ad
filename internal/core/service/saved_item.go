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

type SavedItemService struct {
	repo   port.Repository
	logger *zap.Logger
}

func NewSavedItemService(repo port.Repository, logger *zap.Logger) (*SavedItemService, error) {
	return &SavedItemService{repo: repo, logger: logger}, nil
}

// SaveItem bookmarks an approved product for the user. Each product is saved at most once per user.
func (s *SavedItemService) SaveItem(ctx context.Context, userID string, productID string,
	notes string) (*domain.SavedItem, error) {
	normalized, err := domain.NormalizeSavedItemNotes(notes)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Read product", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if product.Status != domain.ProductStatusApproved {
		return nil, domain.ErrProductNotSaveable
	}

	now := time.Now()
	item, err := s.repo.CreateSavedItem(ctx, &domain.SavedItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Notes:     normalized,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrAlreadySaved
		}
		s.logger.Error("Create saved item", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return item, nil
}

func (s *SavedItemService) ListSavedItems(ctx context.Context, userID string,
	page domain.Page) ([]*domain.SavedItem, domain.Pagination, error) {
	list, total, err := s.repo.ListSavedItems(ctx, userID, page)
	if err != nil {
		s.logger.Error("List saved items", zap.Error(err))
		return nil, domain.Pagination{}, domain.ErrInternal
	}
	return list, domain.NewPagination(page, total), nil
}

func (s *SavedItemService) UpdateSavedItem(ctx context.Context, userID string, savedItemID string,
	notes string) (*domain.SavedItem, error) {
	normalized, err := domain.NormalizeSavedItemNotes(notes)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.UpdateSavedItem(ctx, savedItemID, func(si *domain.SavedItem) error {
		if si.UserID != userID {
			return domain.ErrNotSavedItemOwner
		}
		si.Notes = normalized
		si.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, s.mapError("Update saved item", err)
	}
	return item, nil
}

func (s *SavedItemService) RemoveSavedItem(ctx context.Context, userID string, savedItemID string) error {
	item, err := s.repo.ReadSavedItem(ctx, savedItemID)
	if err != nil {
		return s.mapError("Read saved item", err)
	}
	if item.UserID != userID {
		return domain.ErrNotSavedItemOwner
	}
	if err := s.repo.DeleteSavedItem(ctx, savedItemID); err != nil {
		return s.mapError("Delete saved item", err)
	}
	return nil
}

// CheckSaved returns the user's saved entry for the product, or nil when it is not saved.
func (s *SavedItemService) CheckSaved(ctx context.Context, userID string, productID string) (*domain.SavedItem, error) {
	item, err := s.repo.FindSavedItem(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, nil
		}
		s.logger.Error("Find saved item", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return item, nil
}

func (s *SavedItemService) mapError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrDataNotFound):
		return domain.ErrSavedItemNotFound
	case errors.Is(err, domain.ErrNotSavedItemOwner):
		return domain.ErrNotSavedItemOwner
	}
	s.logger.Error(op, zap.Error(err))
	return domain.ErrInternal
}
