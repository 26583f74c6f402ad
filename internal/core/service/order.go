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

// orderErrors pass through the service unchanged; anything else is logged and hidden.
var orderErrors = []error{
	domain.ErrValidation,
	domain.ErrProductNotFound,
	domain.ErrProductNotApproved,
	domain.ErrInsufficientStock,
	domain.ErrNotOrderSeller,
	domain.ErrNotOrderBuyer,
	domain.ErrInvalidTransition,
	domain.ErrUnknownOrderStatus,
	domain.ErrOrderNotCancellable,
	domain.ErrOrderConcurrentWrite,
}

type OrderService struct {
	repo     port.Repository
	notifier port.Notifier
	events   port.OrderEventPublisher
	logger   *zap.Logger
	clock    func() time.Time
	newID    func() string
}

// NewOrderService wires the order lifecycle engine. events may be nil.
func NewOrderService(repo port.Repository, notifier port.Notifier,
	events port.OrderEventPublisher, logger *zap.Logger) (*OrderService, error) {
	if repo == nil {
		return nil, errors.New("order service: repository is required")
	}
	if notifier == nil {
		return nil, errors.New("order service: notifier is required")
	}
	return &OrderService{
		repo:     repo,
		notifier: notifier,
		events:   events,
		logger:   logger,
		clock:    time.Now,
		newID:    uuid.NewString,
	}, nil
}

func (s *OrderService) PlaceOrder(ctx context.Context, cmd domain.PlaceOrderCommand) (*domain.Order, error) {
	if cmd.BuyerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	product, err := s.repo.ReadProduct(ctx, cmd.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		s.logger.Error("Read product", zap.String("product", cmd.ProductID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if product.Status != domain.ProductStatusApproved {
		return nil, domain.ErrProductNotApproved
	}

	quantity := cmd.OrderQuantity()
	if product.Stock < quantity {
		return nil, domain.ErrInsufficientStock
	}

	method := cmd.OrderShippingMethod()
	shippingCost := domain.ShippingCost(method)
	total, err := domain.OrderTotal(product.Price, quantity, shippingCost)
	if err != nil {
		s.logger.Error("Order total", zap.Error(err))
		return nil, domain.ErrInternal
	}

	now := s.clock()
	order := &domain.Order{
		ID:              s.newID(),
		BuyerID:         cmd.BuyerID,
		SellerID:        product.SellerID,
		ProductID:       product.ID,
		Quantity:        quantity,
		UnitPrice:       product.Price,
		TotalAmount:     total,
		Currency:        product.Currency,
		PaymentMethod:   cmd.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		ShippingAddress: *cmd.ShippingAddress,
		ShippingMethod:  method,
		ShippingCost:    shippingCost,
		Notes:           optionalString(cmd.Notes),
		Status:          domain.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	placed, err := s.repo.PlaceOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, s.mapError("Place order", err)
	}

	s.notifier.Notify(context.WithoutCancel(ctx), &domain.Notification{
		UserID:       product.SellerID,
		Type:         domain.NotificationOrderCreated,
		Title:        "New Order Received",
		Message:      fmt.Sprintf("You have received a new order for %s", productName(product)),
		RelatedID:    placed.ID,
		RelatedModel: domain.RelatedModelOrder,
		Metadata: map[string]any{
			"orderId":     placed.ID,
			"productName": productName(product),
			"quantity":    quantity,
			"totalAmount": total.String(),
		},
		CreatedAt: now,
	})
	s.publish(ctx, port.OrderEvent{
		Type:          port.OrderEventCreated,
		OrderID:       placed.ID,
		BuyerID:       placed.BuyerID,
		SellerID:      placed.SellerID,
		ProductID:     placed.ProductID,
		CurrentStatus: placed.Status,
		ActorID:       cmd.BuyerID,
		Quantity:      placed.Quantity,
		OccurredAt:    now,
	})

	return placed, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string, caller domain.Identity) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, s.mapError("Read order", err)
	}
	if !order.IsParty(caller.UserID) {
		return nil, domain.ErrNotOrderParty
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderFilter,
	page domain.Page) ([]*domain.Order, domain.Pagination, error) {
	list, total, err := s.repo.ListOrders(ctx, filter, page)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.Pagination{}, domain.ErrInternal
	}
	return list, domain.NewPagination(page, total), nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, cmd domain.UpdateOrderStatusCommand) (*domain.Order, error) {
	now := s.clock()
	var previous domain.OrderStatus

	order, err := s.repo.UpdateOrder(ctx, cmd.OrderID, func(o *domain.Order) error {
		if o.SellerID != cmd.SellerID {
			return domain.ErrNotOrderSeller
		}
		if err := domain.CheckTransition(o.Status, cmd.Status); err != nil {
			return err
		}

		previous = o.Status
		o.Status = cmd.Status
		o.UpdatedAt = now
		if tracking := strings.TrimSpace(cmd.TrackingNumber); tracking != "" {
			o.TrackingNumber = &tracking
		}
		if cmd.EstimatedDelivery != nil {
			eta := *cmd.EstimatedDelivery
			o.EstimatedDelivery = &eta
		}
		if cmd.Status == domain.OrderStatusCancelled {
			o.CancelledAt = &now
			o.CancelledBy = &cmd.SellerID
		}
		return nil
	})
	if err != nil {
		return nil, s.mapError("Update order status", err)
	}

	if notificationType, ok := domain.StatusNotificationType(order.Status); ok {
		metadata := map[string]any{
			"orderId": order.ID,
			"status":  string(order.Status),
		}
		if order.TrackingNumber != nil {
			metadata["trackingNumber"] = *order.TrackingNumber
		}
		s.notifier.Notify(context.WithoutCancel(ctx), &domain.Notification{
			UserID:       order.BuyerID,
			Type:         notificationType,
			Title:        "Order " + capitalize(string(order.Status)),
			Message:      fmt.Sprintf("Your order has been %s", order.Status),
			RelatedID:    order.ID,
			RelatedModel: domain.RelatedModelOrder,
			Metadata:     metadata,
			CreatedAt:    now,
		})
	}
	s.publish(ctx, port.OrderEvent{
		Type:           port.OrderEventStatusChanged,
		OrderID:        order.ID,
		BuyerID:        order.BuyerID,
		SellerID:       order.SellerID,
		ProductID:      order.ProductID,
		PreviousStatus: previous,
		CurrentStatus:  order.Status,
		ActorID:        cmd.SellerID,
		Quantity:       order.Quantity,
		OccurredAt:     now,
	})

	return order, nil
}

// CancelOrder lets the buyer abort a pending or confirmed order. The repository restores
// the product stock in the same transaction as the status change.
func (s *OrderService) CancelOrder(ctx context.Context, cmd domain.CancelOrderCommand) (*domain.Order, error) {
	now := s.clock()
	reason := strings.TrimSpace(cmd.Reason)
	var previous domain.OrderStatus

	order, err := s.repo.CancelOrder(ctx, cmd.OrderID, func(o *domain.Order) error {
		if o.BuyerID != cmd.BuyerID {
			return domain.ErrNotOrderBuyer
		}
		if !domain.CanBeCancelledByBuyer(o.Status) {
			return domain.ErrOrderNotCancellable
		}

		previous = o.Status
		o.Status = domain.OrderStatusCancelled
		o.UpdatedAt = now
		o.CancelledAt = &now
		o.CancelledBy = &cmd.BuyerID
		o.CancellationReason = optionalString(reason)
		return nil
	})
	if err != nil {
		return nil, s.mapError("Cancel order", err)
	}

	s.notifier.Notify(context.WithoutCancel(ctx), &domain.Notification{
		UserID:       order.SellerID,
		Type:         domain.NotificationOrderCancelled,
		Title:        "Order Cancelled",
		Message:      "An order has been cancelled by the buyer",
		RelatedID:    order.ID,
		RelatedModel: domain.RelatedModelOrder,
		Metadata: map[string]any{
			"orderId": order.ID,
			"reason":  reason,
		},
		CreatedAt: now,
	})
	s.publish(ctx, port.OrderEvent{
		Type:           port.OrderEventStatusChanged,
		OrderID:        order.ID,
		BuyerID:        order.BuyerID,
		SellerID:       order.SellerID,
		ProductID:      order.ProductID,
		PreviousStatus: previous,
		CurrentStatus:  order.Status,
		ActorID:        cmd.BuyerID,
		Quantity:       order.Quantity,
		OccurredAt:     now,
	})

	return order, nil
}

func (s *OrderService) publish(ctx context.Context, event port.OrderEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishOrderEvent(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Warn("Publish order event",
			zap.String("type", string(event.Type)),
			zap.String("order", event.OrderID),
			zap.Error(err))
	}
}

func (s *OrderService) mapError(op string, err error) error {
	if errors.Is(err, domain.ErrDataNotFound) {
		return domain.ErrOrderNotFound
	}
	for _, known := range orderErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	s.logger.Error(op, zap.Error(err))
	return domain.ErrInternal
}

func productName(p *domain.Product) string {
	if p.Name == "" {
		return "Product"
	}
	return p.Name
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
