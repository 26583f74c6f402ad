package port

import (
	"context"
	"time"

	"github.com/MikeRez0/techxchange/internal/core/domain"
)

// Notifier accepts notifications for delivery without waiting for them to be stored.
//
//go:generate mockgen -source=notification.go -destination=mock/notification.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, n *domain.Notification)
}

type NotificationStore interface {
	InsertNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, filter domain.NotificationFilter, page domain.Page) ([]*domain.Notification, int64, error)
	CountNotifications(ctx context.Context, userID string) (*domain.NotificationCount, error)
	ReadNotification(ctx context.Context, id string) (*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (*domain.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
	DeleteNotification(ctx context.Context, id string) error
	DeleteAllNotifications(ctx context.Context, userID string) (int64, error)
}

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status.changed"
)

type OrderEvent struct {
	Type           OrderEventType
	OrderID        string
	BuyerID        string
	SellerID       string
	ProductID      string
	PreviousStatus domain.OrderStatus
	CurrentStatus  domain.OrderStatus
	ActorID        string
	Quantity       int
	OccurredAt     time.Time
}

// OrderEventPublisher streams committed order changes to downstream consumers.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
