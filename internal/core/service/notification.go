package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"go.uber.org/zap"
)

const DefaultNotificationPageSize = 20

type NotificationService struct {
	store  port.NotificationStore
	logger *zap.Logger
}

func NewNotificationService(store port.NotificationStore, logger *zap.Logger) (*NotificationService, error) {
	return &NotificationService{store: store, logger: logger}, nil
}

// ListNotifications returns one page of the user's inbox, newest first, and the unread total.
func (s *NotificationService) ListNotifications(ctx context.Context, filter domain.NotificationFilter,
	page domain.Page) ([]*domain.Notification, domain.Pagination, int64, error) {
	list, total, err := s.store.ListNotifications(ctx, filter, page)
	if err != nil {
		s.logger.Error("List notifications", zap.Error(err))
		return nil, domain.Pagination{}, 0, domain.ErrInternal
	}
	count, err := s.store.CountNotifications(ctx, filter.UserID)
	if err != nil {
		s.logger.Error("Count notifications", zap.Error(err))
		return nil, domain.Pagination{}, 0, domain.ErrInternal
	}
	return list, domain.NewPagination(page, total), count.Unread, nil
}

func (s *NotificationService) CountNotifications(ctx context.Context, userID string) (*domain.NotificationCount, error) {
	count, err := s.store.CountNotifications(ctx, userID)
	if err != nil {
		s.logger.Error("Count notifications", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return count, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID string,
	notificationID string) (*domain.Notification, error) {
	if err := s.checkOwner(ctx, userID, notificationID); err != nil {
		return nil, err
	}
	n, err := s.store.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		return nil, s.mapError("Mark notification read", err)
	}
	return n, nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	updated, err := s.store.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		s.logger.Error("Mark all notifications read", zap.Error(err))
		return domain.ErrInternal
	}
	s.logger.Debug("Notifications marked read", zap.String("user", userID), zap.Int64("count", updated))
	return nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, userID string, notificationID string) error {
	if err := s.checkOwner(ctx, userID, notificationID); err != nil {
		return err
	}
	if err := s.store.DeleteNotification(ctx, notificationID); err != nil {
		return s.mapError("Delete notification", err)
	}
	return nil
}

// DeleteAllNotifications empties the user's inbox and reports how many notifications were removed.
func (s *NotificationService) DeleteAllNotifications(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.store.DeleteAllNotifications(ctx, userID)
	if err != nil {
		s.logger.Error("Delete all notifications", zap.Error(err))
		return 0, domain.ErrInternal
	}
	return deleted, nil
}

func (s *NotificationService) checkOwner(ctx context.Context, userID string, notificationID string) error {
	n, err := s.store.ReadNotification(ctx, notificationID)
	if err != nil {
		return s.mapError("Read notification", err)
	}
	if n.UserID != userID {
		return domain.ErrNotNotificationOwner
	}
	return nil
}

func (s *NotificationService) mapError(op string, err error) error {
	if errors.Is(err, domain.ErrDataNotFound) {
		return domain.ErrNotificationNotFound
	}
	s.logger.Error(op, zap.Error(err))
	return domain.ErrInternal
}
