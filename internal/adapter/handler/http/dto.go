package http

import (
	"time"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/gin-gonic/gin"
)

type pageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (q pageQuery) page(defaultLimit int) domain.Page {
	return domain.NewPage(q.Page, q.Limit, defaultLimit)
}

// paginationJSON names the total after the listed collection, e.g. totalOrders.
func paginationJSON(p domain.Pagination, totalKey string) gin.H {
	return gin.H{
		"currentPage": p.CurrentPage,
		"totalPages":  p.TotalPages,
		totalKey:      p.Total,
		"hasNext":     p.HasNext,
		"hasPrev":     p.HasPrev,
	}
}

type userResponse struct {
	ID          string      `json:"id"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	Role        domain.Role `json:"role,omitempty"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
}

func newUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	resp := &userResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

type productResponse struct {
	ID          string                  `json:"id"`
	SellerID    string                  `json:"sellerId"`
	Seller      *userResponse           `json:"seller,omitempty"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Price       jsonDecimal             `json:"price"`
	Currency    string                  `json:"currency"`
	Condition   domain.ProductCondition `json:"condition,omitempty"`
	Stock       *int                    `json:"stock,omitempty"`
	Status      domain.ProductStatus    `json:"status,omitempty"`
	AdminNotes  *string                 `json:"adminNotes,omitempty"`
	ApprovedBy  *string                 `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time              `json:"approvedAt,omitempty"`
	CreatedAt   *time.Time              `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time              `json:"updatedAt,omitempty"`
}

func newProductResponse(p *domain.Product) *productResponse {
	if p == nil {
		return nil
	}
	resp := &productResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Seller:      newUserResponse(p.Seller),
		Name:        p.Name,
		Description: p.Description,
		Price:       jsonDecimal(p.Price),
		Currency:    p.Currency,
		Condition:   p.Condition,
		Status:      p.Status,
		AdminNotes:  p.AdminNotes,
		ApprovedBy:  p.ApprovedBy,
		ApprovedAt:  p.ApprovedAt,
	}
	if p.Status != "" {
		stock := p.Stock
		resp.Stock = &stock
	}
	if !p.CreatedAt.IsZero() {
		createdAt, updatedAt := p.CreatedAt, p.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

func newProductListResponse(list []*domain.Product) []*productResponse {
	result := make([]*productResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newProductResponse(p))
	}
	return result
}

type orderResponse struct {
	ID                 string                 `json:"id"`
	Buyer              *userResponse          `json:"buyer"`
	Seller             *userResponse          `json:"seller"`
	Product            *productResponse       `json:"product"`
	Quantity           int                    `json:"quantity"`
	UnitPrice          jsonDecimal            `json:"unitPrice"`
	TotalAmount        jsonDecimal            `json:"totalAmount"`
	Currency           string                 `json:"currency"`
	PaymentMethod      domain.PaymentMethod   `json:"paymentMethod"`
	PaymentStatus      domain.PaymentStatus   `json:"paymentStatus"`
	ShippingAddress    domain.ShippingAddress `json:"shippingAddress"`
	ShippingMethod     domain.ShippingMethod  `json:"shippingMethod"`
	ShippingCost       jsonDecimal            `json:"shippingCost"`
	TrackingNumber     *string                `json:"trackingNumber,omitempty"`
	EstimatedDelivery  *time.Time             `json:"estimatedDelivery,omitempty"`
	Notes              *string                `json:"notes,omitempty"`
	Status             domain.OrderStatus     `json:"status"`
	CancelledAt        *time.Time             `json:"cancelledAt,omitempty"`
	CancelledBy        *string                `json:"cancelledBy,omitempty"`
	CancellationReason *string                `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

func partyResponse(id string, u *domain.User) *userResponse {
	if u == nil {
		return &userResponse{ID: id}
	}
	return &userResponse{ID: id, FullName: u.FullName, Email: u.Email}
}

func newOrderResponse(o *domain.Order) *orderResponse {
	product := &productResponse{ID: o.ProductID, SellerID: o.SellerID}
	if o.Product != nil {
		product.Name = o.Product.Name
		product.Price = jsonDecimal(o.Product.Price)
		product.Currency = o.Product.Currency
		product.Condition = o.Product.Condition
	}
	return &orderResponse{
		ID:                 o.ID,
		Buyer:              partyResponse(o.BuyerID, o.Buyer),
		Seller:             partyResponse(o.SellerID, o.Seller),
		Product:            product,
		Quantity:           o.Quantity,
		UnitPrice:          jsonDecimal(o.UnitPrice),
		TotalAmount:        jsonDecimal(o.TotalAmount),
		Currency:           o.Currency,
		PaymentMethod:      o.PaymentMethod,
		PaymentStatus:      o.PaymentStatus,
		ShippingAddress:    o.ShippingAddress,
		ShippingMethod:     o.ShippingMethod,
		ShippingCost:       jsonDecimal(o.ShippingCost),
		TrackingNumber:     o.TrackingNumber,
		EstimatedDelivery:  o.EstimatedDelivery,
		Notes:              o.Notes,
		Status:             o.Status,
		CancelledAt:        o.CancelledAt,
		CancelledBy:        o.CancelledBy,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

type notificationResponse struct {
	ID           string                  `json:"id"`
	Type         domain.NotificationType `json:"type"`
	Title        string                  `json:"title"`
	Message      string                  `json:"message"`
	IsRead       bool                    `json:"isRead"`
	RelatedID    string                  `json:"relatedId,omitempty"`
	RelatedModel string                  `json:"relatedModel,omitempty"`
	Metadata     map[string]any          `json:"metadata,omitempty"`
	CreatedAt    time.Time               `json:"createdAt"`
}

func newNotificationResponse(n *domain.Notification) *notificationResponse {
	return &notificationResponse{
		ID:           n.ID,
		Type:         n.Type,
		Title:        n.Title,
		Message:      n.Message,
		IsRead:       n.IsRead,
		RelatedID:    n.RelatedID,
		RelatedModel: n.RelatedModel,
		Metadata:     n.Metadata,
		CreatedAt:    n.CreatedAt,
	}
}

type reviewResponse struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"productId"`
	Product      *productResponse `json:"product,omitempty"`
	User         *userResponse    `json:"user"`
	Rating       int              `json:"rating"`
	Comment      string           `json:"comment"`
	IsVerified   bool             `json:"isVerified"`
	HelpfulCount int              `json:"helpfulCount"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func newReviewResponse(r *domain.Review) *reviewResponse {
	resp := &reviewResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		User:         partyResponse(r.UserID, r.User),
		Rating:       r.Rating,
		Comment:      r.Comment,
		IsVerified:   r.IsVerified,
		HelpfulCount: r.HelpfulCount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Product != nil {
		resp.Product = &productResponse{ID: r.ProductID, Name: r.Product.Name}
	}
	return resp
}

func newReviewListResponse(list []*domain.Review) []*reviewResponse {
	result := make([]*reviewResponse, 0, len(list))
	for _, r := range list {
		result = append(result, newReviewResponse(r))
	}
	return result
}

type ratingSummaryResponse struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	AverageRating      jsonDecimal   `json:"averageRating"`
	TotalReviews       int64         `json:"totalReviews"`
	RatingDistribution map[int]int64 `json:"ratingDistribution"`
}

func newRatingSummaryResponse(s *domain.RatingSummary) *ratingSummaryResponse {
	return &ratingSummaryResponse{
		ID:                 s.ProductID,
		Name:               s.ProductName,
		AverageRating:      jsonDecimal(s.AverageRating),
		TotalReviews:       s.TotalReviews,
		RatingDistribution: s.Distribution,
	}
}

type savedItemResponse struct {
	ID        string           `json:"id"`
	Product   *productResponse `json:"product"`
	Notes     *string          `json:"notes"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func newSavedItemResponse(si *domain.SavedItem) *savedItemResponse {
	product := newProductResponse(si.Product)
	if product == nil {
		product = &productResponse{ID: si.ProductID}
	}
	return &savedItemResponse{
		ID:        si.ID,
		Product:   product,
		Notes:     si.Notes,
		CreatedAt: si.CreatedAt,
		UpdatedAt: si.UpdatedAt,
	}
}
