package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/MikeRez0/techxchange/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	buyerToken  = "buyer-token"
	sellerToken = "seller-token"
	adminToken  = "admin-token"
	buyerID     = "buyer-1"
	sellerID    = "seller-1"
	adminID     = "admin-1"
)

type testServices struct {
	users         *mock.MockUserService
	products      *mock.MockProductService
	orders        *mock.MockOrderService
	notifications *mock.MockNotificationService
	reviews       *mock.MockReviewService
	savedItems    *mock.MockSavedItemService
}

func newTestRouter(t *testing.T) (*Router, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := zap.NewNop()

	tokens := mock.NewMockTokenService(ctrl)
	tokens.EXPECT().VerifyToken(buyerToken).
		Return(&port.TokenPayload{UserID: buyerID, Role: domain.RoleBuyer}, nil).AnyTimes()
	tokens.EXPECT().VerifyToken(sellerToken).
		Return(&port.TokenPayload{UserID: sellerID, Role: domain.RoleSeller}, nil).AnyTimes()
	tokens.EXPECT().VerifyToken(adminToken).
		Return(&port.TokenPayload{UserID: adminID, Role: domain.RoleAdmin}, nil).AnyTimes()
	tokens.EXPECT().VerifyToken("stale").Return(nil, domain.ErrExpiredToken).AnyTimes()

	svc := &testServices{
		users:         mock.NewMockUserService(ctrl),
		products:      mock.NewMockProductService(ctrl),
		orders:        mock.NewMockOrderService(ctrl),
		notifications: mock.NewMockNotificationService(ctrl),
		reviews:       mock.NewMockReviewService(ctrl),
		savedItems:    mock.NewMockSavedItemService(ctrl),
	}

	var h Handlers
	var err error
	h.User, err = NewUserHandler(svc.users, logger)
	require.NoError(t, err)
	h.Product, err = NewProductHandler(svc.products, logger)
	require.NoError(t, err)
	h.Order, err = NewOrderHandler(svc.orders, logger)
	require.NoError(t, err)
	h.Notification, err = NewNotificationHandler(svc.notifications, logger)
	require.NoError(t, err)
	h.Review, err = NewReviewHandler(svc.reviews, logger)
	require.NoError(t, err)
	h.SavedItem, err = NewSavedItemHandler(svc.savedItems, logger)
	require.NoError(t, err)

	r, err := NewRouter(&config.App{Mode: config.AppModeProduction}, tokens, nil, h, logger)
	require.NoError(t, err)
	return r, svc
}

type testResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	Data             json.RawMessage `json:"data"`
	Errors           []fieldError    `json:"errors"`
	ValidTransitions []string        `json:"validTransitions"`
}

func doRequest(t *testing.T, r *Router, method, path, token string, body any) (int, testResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	return doRequestRaw(t, r, method, path, token, buf.String())
}

func doRequestRaw(t *testing.T, r *Router, method, path, token string, body string) (int, testResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func validOrderBody() map[string]any {
	return map[string]any{
		"quantity":      2,
		"paymentMethod": "card",
		"shippingAddress": map[string]any{
			"street":  "1 High St",
			"city":    "London",
			"state":   "London",
			"zipCode": "N1 1AA",
			"country": "UK",
			"phone":   "07000000000",
		},
		"shippingMethod": "express",
	}
}

func placedOrder() *domain.Order {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Order{
		ID:             "order-1",
		BuyerID:        buyerID,
		SellerID:       sellerID,
		ProductID:      "product-1",
		Quantity:       2,
		UnitPrice:      decimal.MustParse("100.00"),
		TotalAmount:    decimal.MustParse("212.99"),
		Currency:       "GBP",
		PaymentMethod:  domain.PaymentMethodCard,
		PaymentStatus:  domain.PaymentStatusPending,
		ShippingMethod: domain.ShippingMethodExpress,
		ShippingCost:   decimal.MustParse("12.99"),
		Status:         domain.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		Product:        &domain.Product{Name: "Phone", Price: decimal.MustParse("100.00"), Currency: "GBP"},
	}
}

func TestRouter_CreateOrder(t *testing.T) {
	type createOrderTest struct {
		name       string
		token      string
		body       func() map[string]any
		prepare    func(s *testServices)
		expStatus  int
		expMessage string
		expField   string
	}

	tests := []createOrderTest{
		{
			name:  "Created",
			token: buyerToken,
			body:  validOrderBody,
			prepare: func(s *testServices) {
				s.orders.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, cmd domain.PlaceOrderCommand) (*domain.Order, error) {
						assert.Equal(t, buyerID, cmd.BuyerID)
						assert.Equal(t, "product-1", cmd.ProductID)
						assert.Equal(t, 2, *cmd.Quantity)
						assert.Equal(t, "London", cmd.ShippingAddress.City)
						return placedOrder(), nil
					})
			},
			expStatus:  http.StatusCreated,
			expMessage: "Order created successfully",
		},
		{
			name:      "No token",
			body:      validOrderBody,
			expStatus: http.StatusUnauthorized,
		},
		{
			name:       "Expired token",
			token:      "stale",
			body:       validOrderBody,
			expStatus:  http.StatusUnauthorized,
			expMessage: domain.ErrExpiredToken.Error(),
		},
		{
			name:       "Seller cannot buy",
			token:      sellerToken,
			body:       validOrderBody,
			expStatus:  http.StatusForbidden,
			expMessage: domain.ErrForbidden.Error(),
		},
		{
			name:  "Missing payment method",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				delete(b, "paymentMethod")
				return b
			},
			expStatus:  http.StatusBadRequest,
			expMessage: "paymentMethod is required",
			expField:   "paymentMethod",
		},
		{
			name:  "Missing city",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				delete(b["shippingAddress"].(map[string]any), "city")
				return b
			},
			expStatus: http.StatusBadRequest,
			expField:  "shippingAddress.city",
		},
		{
			name:  "Zero quantity",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				b["quantity"] = 0
				return b
			},
			expStatus: http.StatusBadRequest,
			expField:  "quantity",
		},
		{
			name:  "Payment method reported before quantity",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				delete(b, "paymentMethod")
				b["quantity"] = 0
				return b
			},
			expStatus:  http.StatusBadRequest,
			expMessage: "paymentMethod is required",
			expField:   "paymentMethod",
		},
		{
			name:  "Address reported before quantity",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				delete(b, "shippingAddress")
				b["quantity"] = 0
				return b
			},
			expStatus:  http.StatusBadRequest,
			expMessage: "shippingAddress is required",
			expField:   "shippingAddress",
		},
		{
			name:  "Street too short",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				b["shippingAddress"].(map[string]any)["street"] = "x"
				return b
			},
			expStatus:  http.StatusBadRequest,
			expMessage: "shippingAddress.street must be at least 5 characters",
			expField:   "shippingAddress.street",
		},
		{
			name:  "City too short",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				b["shippingAddress"].(map[string]any)["city"] = "L"
				return b
			},
			expStatus: http.StatusBadRequest,
			expField:  "shippingAddress.city",
		},
		{
			name:  "State too long",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				b["shippingAddress"].(map[string]any)["state"] = strings.Repeat("s", 51)
				return b
			},
			expStatus:  http.StatusBadRequest,
			expMessage: "shippingAddress.state cannot exceed 50 characters",
			expField:   "shippingAddress.state",
		},
		{
			name:  "Zip code too short",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				b["shippingAddress"].(map[string]any)["zipCode"] = "1"
				return b
			},
			expStatus: http.StatusBadRequest,
			expField:  "shippingAddress.zipCode",
		},
		{
			name:  "Zip code too long",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				b["shippingAddress"].(map[string]any)["zipCode"] = "12345678901"
				return b
			},
			expStatus: http.StatusBadRequest,
			expField:  "shippingAddress.zipCode",
		},
		{
			name:  "Country too short",
			token: buyerToken,
			body: func() map[string]any {
				b := validOrderBody()
				b["shippingAddress"].(map[string]any)["country"] = "U"
				return b
			},
			expStatus: http.StatusBadRequest,
			expField:  "shippingAddress.country",
		},
		{
			name:  "Insufficient stock",
			token: buyerToken,
			body:  validOrderBody,
			prepare: func(s *testServices) {
				s.orders.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInsufficientStock)
			},
			expStatus:  http.StatusBadRequest,
			expMessage: domain.ErrInsufficientStock.Error(),
		},
		{
			name:  "Unexpected error is hidden",
			token: buyerToken,
			body:  validOrderBody,
			prepare: func(s *testServices) {
				s.orders.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("pool exhausted"))
			},
			expStatus:  http.StatusInternalServerError,
			expMessage: domain.ErrInternal.Error(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			if test.prepare != nil {
				test.prepare(svc)
			}

			status, resp := doRequest(t, r, http.MethodPost, "/api/orders/buyer/product/product-1", test.token, test.body())
			assert.Equal(t, test.expStatus, status)
			assert.Equal(t, status < 300, resp.Success)
			if test.expMessage != "" {
				assert.Equal(t, test.expMessage, resp.Message)
			}
			if test.expField != "" {
				require.NotEmpty(t, resp.Errors)
				assert.Equal(t, test.expField, resp.Errors[0].Field)
			}
		})
	}
}

func TestRouter_CreateOrderResponseShape(t *testing.T) {
	r, svc := newTestRouter(t)
	svc.orders.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(placedOrder(), nil)

	_, resp := doRequest(t, r, http.MethodPost, "/api/orders/buyer/product/product-1", buyerToken, validOrderBody())

	var data map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "order-1", data["id"])
	assert.Equal(t, 212.99, data["totalAmount"])
	assert.Equal(t, 12.99, data["shippingCost"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "Phone", data["product"].(map[string]any)["name"])
	assert.Equal(t, buyerID, data["buyer"].(map[string]any)["id"])
}

func TestRouter_UpdateOrderStatus(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.orders.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).
		Return(nil, &domain.TransitionError{
			From:    domain.OrderStatusShipped,
			To:      domain.OrderStatusPending,
			Allowed: []domain.OrderStatus{domain.OrderStatusDelivered},
		})
	status, resp := doRequest(t, r, http.MethodPut, "/api/orders/seller/order-1/status", sellerToken,
		map[string]any{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp.Message, "Valid transitions are: delivered")
	assert.Equal(t, []string{"delivered"}, resp.ValidTransitions)

	svc.orders.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, cmd domain.UpdateOrderStatusCommand) (*domain.Order, error) {
			assert.Equal(t, "order-1", cmd.OrderID)
			assert.Equal(t, sellerID, cmd.SellerID)
			assert.Equal(t, "TRACK123", cmd.TrackingNumber)
			require.NotNil(t, cmd.EstimatedDelivery)
			assert.Equal(t, 2024, cmd.EstimatedDelivery.Year())
			o := placedOrder()
			o.Status = cmd.Status
			return o, nil
		})
	status, resp = doRequest(t, r, http.MethodPut, "/api/orders/seller/order-1/status", sellerToken,
		map[string]any{
			"status":            "shipped",
			"trackingNumber":    "TRACK123",
			"estimatedDelivery": "2024-05-10T12:00:00Z",
		})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Order status updated successfully", resp.Message)

	status, resp = doRequest(t, r, http.MethodPut, "/api/orders/seller/order-1/status", sellerToken,
		map[string]any{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "status", resp.Errors[0].Field)

	status, _ = doRequest(t, r, http.MethodPut, "/api/orders/seller/order-1/status", buyerToken,
		map[string]any{"status": "shipped"})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRouter_CancelOrder(t *testing.T) {
	r, svc := newTestRouter(t)

	status, resp := doRequest(t, r, http.MethodPut, "/api/orders/buyer/order-1/cancel", buyerToken,
		map[string]any{"reason": "short"})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "reason", resp.Errors[0].Field)

	status, _ = doRequest(t, r, http.MethodPut, "/api/orders/buyer/order-1/cancel", buyerToken,
		map[string]any{"reason": "     padded    "})
	assert.Equal(t, http.StatusBadRequest, status)

	svc.orders.EXPECT().CancelOrder(gomock.Any(), domain.CancelOrderCommand{
		OrderID: "order-1", BuyerID: buyerID, Reason: "found it cheaper",
	}).Return(nil, domain.ErrOrderNotCancellable)
	status, resp = doRequest(t, r, http.MethodPut, "/api/orders/buyer/order-1/cancel", buyerToken,
		map[string]any{"reason": " found it cheaper "})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.ErrOrderNotCancellable.Error(), resp.Message)

	svc.orders.EXPECT().CancelOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotOrderBuyer)
	status, _ = doRequest(t, r, http.MethodPut, "/api/orders/buyer/order-1/cancel", buyerToken,
		map[string]any{"reason": "found it cheaper"})
	assert.Equal(t, http.StatusForbidden, status)

	svc.orders.EXPECT().CancelOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrOrderNotFound)
	status, _ = doRequest(t, r, http.MethodPut, "/api/orders/buyer/order-1/cancel", buyerToken,
		map[string]any{"reason": "found it cheaper"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_ListOrders(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.orders.EXPECT().ListOrders(gomock.Any(),
		domain.OrderFilter{BuyerID: buyerID, Status: domain.OrderStatusPending},
		domain.Page{Number: 2, Limit: 5}).
		Return([]*domain.Order{placedOrder()}, domain.Pagination{
			CurrentPage: 2, TotalPages: 3, Total: 11, HasNext: true, HasPrev: true,
		}, nil)

	status, resp := doRequest(t, r, http.MethodGet, "/api/orders/buyer/my-orders?page=2&limit=5&status=pending", buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)

	var data struct {
		Orders     []map[string]any `json:"orders"`
		Pagination map[string]any   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data.Orders, 1)
	assert.Equal(t, float64(11), data.Pagination["totalOrders"])
	assert.Equal(t, float64(2), data.Pagination["currentPage"])
	assert.Equal(t, true, data.Pagination["hasNext"])

	svc.orders.EXPECT().ListOrders(gomock.Any(),
		domain.OrderFilter{SellerID: sellerID},
		domain.Page{Number: 1, Limit: domain.DefaultPageSize}).
		Return(nil, domain.Pagination{CurrentPage: 1}, nil)
	status, _ = doRequest(t, r, http.MethodGet, "/api/orders/seller/my-orders", sellerToken, nil)
	assert.Equal(t, http.StatusOK, status)

	svc.orders.EXPECT().ListOrders(gomock.Any(),
		domain.OrderFilter{BuyerID: buyerID},
		domain.Page{Number: domain.MaxPage, Limit: domain.DefaultPageSize}).
		Return(nil, domain.Pagination{CurrentPage: domain.MaxPage}, nil)
	status, _ = doRequest(t, r, http.MethodGet, "/api/orders/buyer/my-orders?page=4611686018427387904", buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, r, http.MethodGet, "/api/orders/buyer/my-orders?status=lost", buyerToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_GetOrder(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.orders.EXPECT().GetOrder(gomock.Any(), "order-1", domain.Identity{UserID: sellerID, Role: domain.RoleSeller}).
		Return(placedOrder(), nil)
	status, _ := doRequest(t, r, http.MethodGet, "/api/orders/order-1", sellerToken, nil)
	assert.Equal(t, http.StatusOK, status)

	svc.orders.EXPECT().GetOrder(gomock.Any(), "order-1", gomock.Any()).Return(nil, domain.ErrNotOrderParty)
	status, resp := doRequest(t, r, http.MethodGet, "/api/orders/order-1", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, domain.ErrNotOrderParty.Error(), resp.Message)
}

func TestRouter_Products(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p *domain.Product) (*domain.Product, error) {
			assert.Equal(t, sellerID, p.SellerID)
			assert.Equal(t, "99.5", p.Price.Trim(0).String())
			p.ID = "product-1"
			p.Status = domain.ProductStatusPending
			return p, nil
		})
	status, resp := doRequest(t, r, http.MethodPost, "/api/products/seller", sellerToken,
		map[string]any{"name": "Phone", "price": 99.5, "stock": 3, "currency": "GBP"})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Product submitted for approval", resp.Message)

	status, resp = doRequest(t, r, http.MethodPost, "/api/products/seller", sellerToken,
		map[string]any{"name": "Phone", "price": 0, "stock": 3})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "price", resp.Errors[0].Field)

	svc.products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p *domain.Product) (*domain.Product, error) {
			assert.Equal(t, "0.30000000000000001", p.Price.String())
			return p, nil
		})
	status, _ = doRequestRaw(t, r, http.MethodPost, "/api/products/seller", sellerToken,
		`{"name": "Cable", "price": 0.30000000000000001, "stock": 1}`)
	assert.Equal(t, http.StatusCreated, status)

	svc.products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, p *domain.Product) (*domain.Product, error) {
			assert.Equal(t, "19.99", p.Price.String())
			return p, nil
		})
	status, _ = doRequestRaw(t, r, http.MethodPost, "/api/products/seller", sellerToken,
		`{"name": "Cable", "price": "19.99", "stock": 1}`)
	assert.Equal(t, http.StatusCreated, status)

	status, resp = doRequestRaw(t, r, http.MethodPost, "/api/products/seller", sellerToken,
		`{"name": "Cable", "price": "cheap", "stock": 1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "price", resp.Errors[0].Field)

	status, resp = doRequestRaw(t, r, http.MethodPost, "/api/products/seller", sellerToken,
		`{"name": "Cable", "stock": 1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "price is required", resp.Message)

	svc.products.EXPECT().GetPublicProduct(gomock.Any(), "missing").Return(nil, domain.ErrProductNotFound)
	status, _ = doRequest(t, r, http.MethodGet, "/api/products/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	svc.products.EXPECT().ReviewProduct(gomock.Any(), domain.ProductReview{
		ProductID: "product-1", AdminID: adminID, Status: domain.ProductStatusRejected, AdminNotes: "blurry photos",
	}).Return(&domain.Product{ID: "product-1", Status: domain.ProductStatusRejected}, nil)
	status, _ = doRequest(t, r, http.MethodPut, "/api/products/admin/product-1/reject", adminToken,
		map[string]any{"adminNotes": "blurry photos"})
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, r, http.MethodGet, "/api/products/admin/pending", sellerToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRouter_Notifications(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.notifications.EXPECT().ListNotifications(gomock.Any(),
		domain.NotificationFilter{UserID: buyerID, UnreadOnly: true},
		domain.Page{Number: 1, Limit: defaultNotificationLimit}).
		Return([]*domain.Notification{{ID: "n1", UserID: buyerID, Type: domain.NotificationOrderShipped}},
			domain.Pagination{CurrentPage: 1, TotalPages: 1, Total: 1}, int64(4), nil)
	status, resp := doRequest(t, r, http.MethodGet, "/api/notifications/my-notifications?unreadOnly=true", buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	var data map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, float64(4), data["unreadCount"])
	assert.Equal(t, float64(1), data["pagination"].(map[string]any)["totalNotifications"])

	svc.notifications.EXPECT().CountNotifications(gomock.Any(), buyerID).
		Return(&domain.NotificationCount{Unread: 2, Total: 7}, nil)
	status, resp = doRequest(t, r, http.MethodGet, "/api/notifications/count", buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"unreadCount":2,"totalCount":7}`, string(resp.Data))

	svc.notifications.EXPECT().MarkAsRead(gomock.Any(), buyerID, "n9").Return(nil, domain.ErrNotNotificationOwner)
	status, _ = doRequest(t, r, http.MethodPut, "/api/notifications/n9/read", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	svc.notifications.EXPECT().DeleteNotification(gomock.Any(), buyerID, "n1").Return(nil)
	status, resp = doRequest(t, r, http.MethodDelete, "/api/notifications/n1", buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)

	svc.notifications.EXPECT().DeleteAllNotifications(gomock.Any(), buyerID).Return(int64(6), nil)
	status, resp = doRequest(t, r, http.MethodDelete, "/api/notifications/delete-all", buyerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "All notifications deleted", resp.Message)
	assert.JSONEq(t, `{"deletedCount":6}`, string(resp.Data))
}

func TestRouter_RegisterUser(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.users.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(&domain.User{ID: "u1", FullName: "Ann", Email: "ann@example.com", Role: domain.RoleBuyer}, nil)
	svc.users.EXPECT().LoginUser(gomock.Any(), "ann@example.com", "secret123").Return("token", nil)
	status, resp := doRequest(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]any{"fullName": "Ann", "email": "ann@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusCreated, status)
	var data map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "token", data["token"])

	status, resp = doRequest(t, r, http.MethodPost, "/api/auth/register", "",
		map[string]any{"fullName": "Ann", "email": "ann@example.com", "password": "secret123", "role": "admin"})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "role", resp.Errors[0].Field)

	svc.users.EXPECT().LoginUser(gomock.Any(), "ann@example.com", "bad").Return("", domain.ErrInvalidCredentials)
	status, _ = doRequest(t, r, http.MethodPost, "/api/auth/login", "",
		map[string]any{"email": "ann@example.com", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRouter_Docs(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/docs/index.html", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

func TestRouter_Reviews(t *testing.T) {
	r, svc := newTestRouter(t)

	review := &domain.Review{
		ID: "review-1", ProductID: "product-1", UserID: buyerID, Rating: 4,
		Comment: "Works as described", IsVerified: true,
	}
	validBody := map[string]any{"rating": 4, "comment": "Works as described"}

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       any
		prepare    func()
		expStatus  int
		expMessage string
		expField   string
		expData    string
	}{
		{
			name:   "Create",
			method: http.MethodPost, path: "/api/reviews/product/product-1", token: buyerToken, body: validBody,
			prepare: func() {
				svc.reviews.EXPECT().CreateReview(gomock.Any(), domain.CreateReviewCommand{
					ProductID: "product-1", UserID: buyerID,
					ReviewContent: domain.ReviewContent{Rating: 4, Comment: "Works as described"},
				}).Return(review, nil)
			},
			expStatus:  http.StatusCreated,
			expMessage: "Review created successfully",
		},
		{
			name:   "Create needs a token",
			method: http.MethodPost, path: "/api/reviews/product/product-1", body: validBody,
			expStatus: http.StatusUnauthorized,
		},
		{
			name:   "Rating above five",
			method: http.MethodPost, path: "/api/reviews/product/product-1", token: buyerToken,
			body:      map[string]any{"rating": 6, "comment": "Works as described"},
			expStatus: http.StatusBadRequest, expField: "rating",
			expMessage: "rating cannot exceed 5",
		},
		{
			name:   "Comment too short",
			method: http.MethodPost, path: "/api/reviews/product/product-1", token: buyerToken,
			body:      map[string]any{"rating": 3, "comment": "meh"},
			expStatus: http.StatusBadRequest, expField: "comment",
			expMessage: "comment must be at least 10 characters",
		},
		{
			name:   "Second review",
			method: http.MethodPost, path: "/api/reviews/product/product-1", token: buyerToken, body: validBody,
			prepare: func() {
				svc.reviews.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAlreadyReviewed)
			},
			expStatus:  http.StatusBadRequest,
			expMessage: domain.ErrAlreadyReviewed.Error(),
		},
		{
			name:   "Update by someone else",
			method: http.MethodPut, path: "/api/reviews/review-1", token: sellerToken, body: validBody,
			prepare: func() {
				svc.reviews.EXPECT().UpdateReview(gomock.Any(), domain.UpdateReviewCommand{
					ReviewID: "review-1", UserID: sellerID,
					ReviewContent: domain.ReviewContent{Rating: 4, Comment: "Works as described"},
				}).Return(nil, domain.ErrNotReviewAuthor)
			},
			expStatus:  http.StatusForbidden,
			expMessage: domain.ErrNotReviewAuthor.Error(),
		},
		{
			name:   "Delete missing",
			method: http.MethodDelete, path: "/api/reviews/missing", token: buyerToken,
			prepare: func() {
				svc.reviews.EXPECT().DeleteReview(gomock.Any(), buyerID, "missing").Return(domain.ErrReviewNotFound)
			},
			expStatus: http.StatusNotFound,
		},
		{
			name:   "Mark helpful",
			method: http.MethodPost, path: "/api/reviews/review-1/helpful", token: sellerToken,
			prepare: func() {
				svc.reviews.EXPECT().ToggleHelpful(gomock.Any(), sellerID, "review-1").
					Return(&domain.HelpfulVote{HelpfulCount: 3, IsHelpful: true}, nil)
			},
			expStatus:  http.StatusOK,
			expMessage: "Marked as helpful",
			expData:    `{"helpfulCount":3,"isHelpful":true}`,
		},
		{
			name:   "Clear helpful",
			method: http.MethodPost, path: "/api/reviews/review-1/helpful", token: sellerToken,
			prepare: func() {
				svc.reviews.EXPECT().ToggleHelpful(gomock.Any(), sellerID, "review-1").
					Return(&domain.HelpfulVote{HelpfulCount: 2}, nil)
			},
			expStatus:  http.StatusOK,
			expMessage: "Removed helpful vote",
			expData:    `{"helpfulCount":2,"isHelpful":false}`,
		},
		{
			name:   "Unknown sort",
			method: http.MethodGet, path: "/api/reviews/product/product-1?sort=random",
			expStatus: http.StatusBadRequest, expField: "sort",
			expMessage: "sort must be one of: newest, oldest, rating, helpful",
		},
		{
			name:   "My reviews",
			method: http.MethodGet, path: "/api/reviews/user/my-reviews", token: buyerToken,
			prepare: func() {
				svc.reviews.EXPECT().ListUserReviews(gomock.Any(), buyerID, domain.Page{Number: 1, Limit: defaultReviewLimit}).
					Return([]*domain.Review{review}, domain.Pagination{CurrentPage: 1, TotalPages: 1, Total: 1}, nil)
			},
			expStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}
			status, resp := doRequest(t, r, test.method, test.path, test.token, test.body)
			assert.Equal(t, test.expStatus, status)
			if test.expMessage != "" {
				assert.Equal(t, test.expMessage, resp.Message)
			}
			if test.expField != "" {
				require.NotEmpty(t, resp.Errors)
				assert.Equal(t, test.expField, resp.Errors[0].Field)
			}
			if test.expData != "" {
				assert.JSONEq(t, test.expData, string(resp.Data))
			}
		})
	}
}

func TestRouter_ListProductReviews(t *testing.T) {
	r, svc := newTestRouter(t)

	summary := domain.NewRatingSummary(&domain.Product{ID: "product-1", Name: "Phone"})
	summary.Add(5, 2)
	summary.Add(4, 1)
	summary.Add(1, 1)

	svc.reviews.EXPECT().ListProductReviews(gomock.Any(),
		domain.ReviewFilter{ProductID: "product-1", Rating: 5, Sort: domain.ReviewSortHelpful},
		domain.Page{Number: 2, Limit: defaultReviewLimit}).
		Return([]*domain.Review{{ID: "review-1", ProductID: "product-1", UserID: buyerID, Rating: 5}},
			domain.Pagination{CurrentPage: 2, TotalPages: 2, Total: 11, HasPrev: true}, summary, nil)

	status, resp := doRequest(t, r, http.MethodGet,
		"/api/reviews/product/product-1?rating=5&sort=helpful&page=2", "", nil)
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Reviews    []map[string]any `json:"reviews"`
		Pagination map[string]any   `json:"pagination"`
		Product    struct {
			ID                 string           `json:"id"`
			AverageRating      json.Number      `json:"averageRating"`
			TotalReviews       int64            `json:"totalReviews"`
			RatingDistribution map[string]int64 `json:"ratingDistribution"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data.Reviews, 1)
	assert.Equal(t, float64(11), data.Pagination["totalReviews"])
	assert.Equal(t, "product-1", data.Product.ID)
	assert.Equal(t, "3.8", data.Product.AverageRating.String())
	assert.Equal(t, int64(4), data.Product.TotalReviews)
	assert.Equal(t, map[string]int64{"1": 1, "2": 0, "3": 0, "4": 1, "5": 2}, data.Product.RatingDistribution)

	svc.reviews.EXPECT().ListProductReviews(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.Pagination{}, nil, domain.ErrProductNotFound)
	status, _ = doRequest(t, r, http.MethodGet, "/api/reviews/product/hidden", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_SavedItems(t *testing.T) {
	r, svc := newTestRouter(t)

	notes := "gift idea"
	item := &domain.SavedItem{
		ID: "saved-1", UserID: buyerID, ProductID: "product-1", Notes: &notes,
		Product: &domain.Product{ID: "product-1", Name: "Phone", Price: decimal.MustParse("99.50"), Currency: "GBP"},
	}

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       any
		prepare    func()
		expStatus  int
		expMessage string
		expField   string
		expData    string
	}{
		{
			name:   "Save without body",
			method: http.MethodPost, path: "/api/saved-items/product/product-1", token: buyerToken,
			prepare: func() {
				svc.savedItems.EXPECT().SaveItem(gomock.Any(), buyerID, "product-1", "").Return(item, nil)
			},
			expStatus:  http.StatusCreated,
			expMessage: "Product added to saved items",
		},
		{
			name:   "Save with notes",
			method: http.MethodPost, path: "/api/saved-items/product/product-1", token: buyerToken,
			body: map[string]any{"notes": notes},
			prepare: func() {
				svc.savedItems.EXPECT().SaveItem(gomock.Any(), buyerID, "product-1", notes).Return(item, nil)
			},
			expStatus: http.StatusCreated,
		},
		{
			name:   "Notes too long",
			method: http.MethodPost, path: "/api/saved-items/product/product-1", token: buyerToken,
			body:      map[string]any{"notes": strings.Repeat("n", 501)},
			expStatus: http.StatusBadRequest, expField: "notes",
			expMessage: "notes cannot exceed 500 characters",
		},
		{
			name:   "Already saved",
			method: http.MethodPost, path: "/api/saved-items/product/product-1", token: buyerToken,
			prepare: func() {
				svc.savedItems.EXPECT().SaveItem(gomock.Any(), buyerID, "product-1", "").Return(nil, domain.ErrAlreadySaved)
			},
			expStatus:  http.StatusBadRequest,
			expMessage: domain.ErrAlreadySaved.Error(),
		},
		{
			name:   "Needs a token",
			method: http.MethodGet, path: "/api/saved-items/my-saved-items",
			expStatus: http.StatusUnauthorized,
		},
		{
			name:   "Not saved",
			method: http.MethodGet, path: "/api/saved-items/check/product-2", token: buyerToken,
			prepare: func() {
				svc.savedItems.EXPECT().CheckSaved(gomock.Any(), buyerID, "product-2").Return(nil, nil)
			},
			expStatus: http.StatusOK,
			expData:   `{"isSaved":false,"savedItem":null}`,
		},
		{
			name:   "Update by someone else",
			method: http.MethodPut, path: "/api/saved-items/saved-1", token: sellerToken,
			body: map[string]any{"notes": "mine"},
			prepare: func() {
				svc.savedItems.EXPECT().UpdateSavedItem(gomock.Any(), sellerID, "saved-1", "mine").
					Return(nil, domain.ErrNotSavedItemOwner)
			},
			expStatus: http.StatusForbidden,
		},
		{
			name:   "Remove missing",
			method: http.MethodDelete, path: "/api/saved-items/missing", token: buyerToken,
			prepare: func() {
				svc.savedItems.EXPECT().RemoveSavedItem(gomock.Any(), buyerID, "missing").Return(domain.ErrSavedItemNotFound)
			},
			expStatus: http.StatusNotFound,
		},
		{
			name:   "Remove",
			method: http.MethodDelete, path: "/api/saved-items/saved-1", token: buyerToken,
			prepare: func() {
				svc.savedItems.EXPECT().RemoveSavedItem(gomock.Any(), buyerID, "saved-1").Return(nil)
			},
			expStatus:  http.StatusOK,
			expMessage: "Product removed from saved items",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare()
			}
			status, resp := doRequest(t, r, test.method, test.path, test.token, test.body)
			assert.Equal(t, test.expStatus, status)
			if test.expMessage != "" {
				assert.Equal(t, test.expMessage, resp.Message)
			}
			if test.expField != "" {
				require.NotEmpty(t, resp.Errors)
				assert.Equal(t, test.expField, resp.Errors[0].Field)
			}
			if test.expData != "" {
				assert.JSONEq(t, test.expData, string(resp.Data))
			}
		})
	}
}

func TestRouter_ListSavedItems(t *testing.T) {
	r, svc := newTestRouter(t)

	svc.savedItems.EXPECT().ListSavedItems(gomock.Any(), buyerID, domain.Page{Number: 1, Limit: defaultSavedItemLimit}).
		Return([]*domain.SavedItem{{ID: "saved-1", ProductID: "product-1"}},
			domain.Pagination{CurrentPage: 1, TotalPages: 1, Total: 1}, nil)

	status, resp := doRequest(t, r, http.MethodGet, "/api/saved-items/my-saved-items", buyerToken, nil)
	require.Equal(t, http.StatusOK, status)

	var data map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data["savedItems"], 1)
	assert.Equal(t, float64(1), data["pagination"].(map[string]any)["totalItems"])
}
