package domain

import (
	"time"
	"unicode/utf8"
)

type NotificationType string

const (
	NotificationOrderCreated    NotificationType = "order_created"
	NotificationOrderConfirmed  NotificationType = "order_confirmed"
	NotificationOrderShipped    NotificationType = "order_shipped"
	NotificationOrderDelivered  NotificationType = "order_delivered"
	NotificationOrderCancelled  NotificationType = "order_cancelled"
	NotificationOrderRefunded   NotificationType = "order_refunded"
	NotificationProductApproved NotificationType = "product_approved"
	NotificationProductRejected NotificationType = "product_rejected"
)

const (
	RelatedModelOrder   = "Order"
	RelatedModelProduct = "Product"
)

const (
	MaxNotificationTitle   = 100
	MaxNotificationMessage = 500
)

type Notification struct {
	ID           string
	UserID       string
	Type         NotificationType
	Title        string
	Message      string
	IsRead       bool
	RelatedID    string
	RelatedModel string
	Metadata     map[string]any
	CreatedAt    time.Time
}

// Fit cuts title and message down to the stored limits without splitting a rune.
func (n *Notification) Fit() {
	n.Title = truncateRunes(n.Title, MaxNotificationTitle)
	n.Message = truncateRunes(n.Message, MaxNotificationMessage)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

var statusNotificationTypes = map[OrderStatus]NotificationType{
	OrderStatusConfirmed: NotificationOrderConfirmed,
	OrderStatusShipped:   NotificationOrderShipped,
	OrderStatusDelivered: NotificationOrderDelivered,
	OrderStatusCancelled: NotificationOrderCancelled,
	OrderStatusRefunded:  NotificationOrderRefunded,
}

// StatusNotificationType maps a new order status to the buyer notification type.
// ok is false for statuses without a template.
func StatusNotificationType(status OrderStatus) (NotificationType, bool) {
	t, ok := statusNotificationTypes[status]
	return t, ok
}

type NotificationFilter struct {
	UserID     string
	UnreadOnly bool
}

type NotificationCount struct {
	Unread int64
	Total  int64
}
