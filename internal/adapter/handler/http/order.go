package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type shippingAddressRequest struct {
	Street  string `json:"street" binding:"required,min=5,max=100"`
	City    string `json:"city" binding:"required,min=2,max=50"`
	State   string `json:"state" binding:"required,min=2,max=50"`
	ZipCode string `json:"zipCode" binding:"required,min=3,max=10"`
	Country string `json:"country" binding:"required,min=2,max=50"`
	Phone   string `json:"phone" binding:"required,min=5,max=20"`
}

// Field order is the order preconditions are reported in.
type createOrderRequest struct {
	PaymentMethod   string                  `json:"paymentMethod" binding:"required,oneof=credit_card card paypal bank_transfer cash_on_delivery"`
	ShippingAddress *shippingAddressRequest `json:"shippingAddress" binding:"required"`
	Quantity        *int                    `json:"quantity" binding:"omitempty,min=1"`
	ShippingMethod  string                  `json:"shippingMethod" binding:"max=50"`
	Notes           string                  `json:"notes" binding:"max=500"`
}

type updateOrderStatusRequest struct {
	Status            string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled refunded"`
	TrackingNumber    string `json:"trackingNumber" binding:"omitempty,min=5,max=50"`
	EstimatedDelivery string `json:"estimatedDelivery" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason" binding:"required,min=10,max=200"`
}

type orderListQuery struct {
	pageQuery
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed shipped delivered cancelled refunded"`
}

// CreateOrder godoc
//
//	@Summary	Place an order for an approved product
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productId	path	string	true	"Product ID"
//	@Param		order	body	createOrderRequest	true	"Order details"
//	@Success	201	{object}	successResponse
//	@Failure	400,401,403,404	{object}	errorResponse
//	@Router		/api/orders/buyer/product/{productId} [post]
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	addr := req.ShippingAddress
	order, err := oh.service.PlaceOrder(ctx, domain.PlaceOrderCommand{
		BuyerID:       getAuthPayload(ctx).UserID,
		ProductID:     ctx.Param("productId"),
		Quantity:      req.Quantity,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		ShippingAddress: &domain.ShippingAddress{
			Street:  addr.Street,
			City:    addr.City,
			State:   addr.State,
			ZipCode: addr.ZipCode,
			Country: addr.Country,
			Phone:   addr.Phone,
		},
		ShippingMethod: domain.ShippingMethod(req.ShippingMethod),
		Notes:          req.Notes,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, "Order created successfully", newOrderResponse(order), http.StatusCreated)
}

// ListBuyerOrders godoc
//
//	@Summary	List the caller's purchases
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Param		status	query	string	false	"Order status"
//	@Success	200	{object}	successResponse
//	@Failure	400,401,403	{object}	errorResponse
//	@Router		/api/orders/buyer/my-orders [get]
func (oh *OrderHandler) ListBuyerOrders(ctx *gin.Context) {
	oh.list(ctx, domain.OrderFilter{BuyerID: getAuthPayload(ctx).UserID})
}

// ListSellerOrders godoc
//
//	@Summary	List orders for the caller's products
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Param		status	query	string	false	"Order status"
//	@Success	200	{object}	successResponse
//	@Failure	400,401,403	{object}	errorResponse
//	@Router		/api/orders/seller/my-orders [get]
func (oh *OrderHandler) ListSellerOrders(ctx *gin.Context) {
	oh.list(ctx, domain.OrderFilter{SellerID: getAuthPayload(ctx).UserID})
}

func (oh *OrderHandler) list(ctx *gin.Context, filter domain.OrderFilter) {
	query := orderListQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	filter.Status = domain.OrderStatus(query.Status)

	list, pagination, err := oh.service.ListOrders(ctx, filter, query.page(domain.DefaultPageSize))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	orders := make([]*orderResponse, 0, len(list))
	for _, o := range list {
		orders = append(orders, newOrderResponse(o))
	}
	oh.handleSuccess(ctx, gin.H{
		"orders":     orders,
		"pagination": paginationJSON(pagination, "totalOrders"),
	})
}

// GetOrder godoc
//
//	@Summary	Show an order to its buyer, its seller or an admin
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path	string	true	"Order ID"
//	@Success	200	{object}	successResponse
//	@Failure	401,403,404	{object}	errorResponse
//	@Router		/api/orders/{orderId} [get]
func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("orderId"), getAuthPayload(ctx).Identity())
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, newOrderResponse(order))
}

// UpdateOrderStatus godoc
//
//	@Summary	Move an order along its lifecycle
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path	string	true	"Order ID"
//	@Param		status	body	updateOrderStatusRequest	true	"New status"
//	@Success	200	{object}	successResponse
//	@Failure	400,401,403,404,409	{object}	errorResponse
//	@Router		/api/orders/seller/{orderId}/status [put]
func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	req := updateOrderStatusRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	cmd := domain.UpdateOrderStatusCommand{
		OrderID:        ctx.Param("orderId"),
		SellerID:       getAuthPayload(ctx).UserID,
		Status:         domain.OrderStatus(req.Status),
		TrackingNumber: req.TrackingNumber,
	}
	if req.EstimatedDelivery != "" {
		// format already checked by the datetime binding
		eta, _ := time.Parse(time.RFC3339, req.EstimatedDelivery)
		cmd.EstimatedDelivery = &eta
	}

	order, err := oh.service.UpdateOrderStatus(ctx, cmd)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, "Order status updated successfully", newOrderResponse(order), http.StatusOK)
}

// CancelOrder godoc
//
//	@Summary	Cancel a pending or confirmed order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path	string	true	"Order ID"
//	@Param		cancel	body	cancelOrderRequest	true	"Reason"
//	@Success	200	{object}	successResponse
//	@Failure	400,401,403,404,409	{object}	errorResponse
//	@Router		/api/orders/buyer/{orderId}/cancel [put]
func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	req := cancelOrderRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	reason := strings.TrimSpace(req.Reason)
	if len([]rune(reason)) < 10 {
		oh.handleError(ctx, domain.NewValidationError("reason", "Cancellation reason must be between 10 and 200 characters"))
		return
	}

	order, err := oh.service.CancelOrder(ctx, domain.CancelOrderCommand{
		OrderID: ctx.Param("orderId"),
		BuyerID: getAuthPayload(ctx).UserID,
		Reason:  reason,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, "Order cancelled successfully", newOrderResponse(order), http.StatusOK)
}
