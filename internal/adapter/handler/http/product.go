package http

import (
	"net/http"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.ProductService
}

func NewProductHandler(service port.ProductService, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createProductRequest struct {
	Name        string       `json:"name" binding:"required,max=200"`
	Description string       `json:"description" binding:"max=2000"`
	Price       *jsonDecimal `json:"price" binding:"required"`
	Currency    string       `json:"currency" binding:"omitempty,oneof=GBP USD EUR gbp usd eur"`
	Condition   string       `json:"condition" binding:"omitempty,oneof=new like-new used refurbished"`
	Stock       *int         `json:"stock" binding:"required,min=0"`
}

type reviewProductRequest struct {
	AdminNotes string `json:"adminNotes" binding:"max=1000"`
}

// CreateProduct godoc
//
//	@Summary	Submit a product listing for approval
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		product	body	createProductRequest	true	"Listing"
//	@Success	201	{object}	successResponse
//	@Failure	400,401,403	{object}	errorResponse
//	@Router		/api/products/seller [post]
func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	req := createProductRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	price := decimal.Decimal(*req.Price)
	if !price.IsPos() {
		ph.handleError(ctx, domain.NewValidationError("price", "Price must be a positive number"))
		return
	}

	product, err := ph.service.CreateProduct(ctx, &domain.Product{
		SellerID:    getAuthPayload(ctx).UserID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Currency:    req.Currency,
		Condition:   domain.ProductCondition(req.Condition),
		Stock:       *req.Stock,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, "Product submitted for approval",
		newProductResponse(product), http.StatusCreated)
}

// GetProduct godoc
//
//	@Summary	Show an approved product
//	@Tags		products
//	@Produce	json
//	@Param		id	path	string	true	"Product ID"
//	@Success	200	{object}	successResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/products/{id} [get]
func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	product, err := ph.service.GetPublicProduct(ctx, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}

// ListProducts godoc
//
//	@Summary	List approved products
//	@Tags		products
//	@Produce	json
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Success	200	{object}	successResponse
//	@Failure	400	{object}	errorResponse
//	@Router		/api/products [get]
func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	ph.list(ctx, func(page domain.Page) ([]*domain.Product, domain.Pagination, error) {
		return ph.service.ListApprovedProducts(ctx, page)
	})
}

// ListSellerProducts godoc
//
//	@Summary	List the caller's own listings
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Success	200	{object}	successResponse
//	@Failure	400,401,403	{object}	errorResponse
//	@Router		/api/products/seller/my-products [get]
func (ph *ProductHandler) ListSellerProducts(ctx *gin.Context) {
	sellerID := getAuthPayload(ctx).UserID
	ph.list(ctx, func(page domain.Page) ([]*domain.Product, domain.Pagination, error) {
		return ph.service.ListSellerProducts(ctx, sellerID, page)
	})
}

// ListPendingProducts godoc
//
//	@Summary	List listings awaiting approval
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Success	200	{object}	successResponse
//	@Failure	400,401,403	{object}	errorResponse
//	@Router		/api/products/admin/pending [get]
func (ph *ProductHandler) ListPendingProducts(ctx *gin.Context) {
	ph.list(ctx, func(page domain.Page) ([]*domain.Product, domain.Pagination, error) {
		return ph.service.ListPendingProducts(ctx, page)
	})
}

func (ph *ProductHandler) list(ctx *gin.Context,
	fetch func(domain.Page) ([]*domain.Product, domain.Pagination, error)) {
	query := pageQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	list, pagination, err := fetch(query.page(domain.DefaultPageSize))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{
		"products":   newProductListResponse(list),
		"pagination": paginationJSON(pagination, "totalProducts"),
	})
}

// ApproveProduct godoc
//
//	@Summary	Approve a pending listing
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Product ID"
//	@Param		review	body	reviewProductRequest	false	"Admin notes"
//	@Success	200	{object}	successResponse
//	@Failure	400,401,403,404	{object}	errorResponse
//	@Router		/api/products/admin/{id}/approve [put]
func (ph *ProductHandler) ApproveProduct(ctx *gin.Context) {
	ph.review(ctx, domain.ProductStatusApproved, "Product approved successfully")
}

// RejectProduct godoc
//
//	@Summary	Reject a pending listing
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Product ID"
//	@Param		review	body	reviewProductRequest	false	"Admin notes"
//	@Success	200	{object}	successResponse
//	@Failure	400,401,403,404	{object}	errorResponse
//	@Router		/api/products/admin/{id}/reject [put]
func (ph *ProductHandler) RejectProduct(ctx *gin.Context) {
	ph.review(ctx, domain.ProductStatusRejected, "Product rejected successfully")
}

func (ph *ProductHandler) review(ctx *gin.Context, status domain.ProductStatus, message string) {
	req := reviewProductRequest{}
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ph.handleValidationError(ctx, err)
			return
		}
	}

	product, err := ph.service.ReviewProduct(ctx, domain.ProductReview{
		ProductID:  ctx.Param("id"),
		AdminID:    getAuthPayload(ctx).UserID,
		Status:     status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, message, newProductResponse(product), http.StatusOK)
}
