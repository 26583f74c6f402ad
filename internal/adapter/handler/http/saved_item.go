package http

import (
	"net/http"

	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultSavedItemLimit = 20

type SavedItemHandler struct {
	Handler
	service port.SavedItemService
}

func NewSavedItemHandler(service port.SavedItemService, logger *zap.Logger) (*SavedItemHandler, error) {
	return &SavedItemHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type savedItemRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

// SaveItem godoc
//
//	@Summary	Add an approved product to the caller's saved items
//	@Tags		saved-items
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productId	path		string				true	"Product ID"
//	@Param		item		body		savedItemRequest	false	"Optional notes"
//	@Success	201			{object}	successResponse
//	@Failure	400,401,404	{object}	errorResponse
//	@Router		/api/saved-items/product/{productId} [post]
func (sh *SavedItemHandler) SaveItem(ctx *gin.Context) {
	req := savedItemRequest{}
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			sh.handleValidationError(ctx, err)
			return
		}
	}

	item, err := sh.service.SaveItem(ctx, getAuthPayload(ctx).UserID, ctx.Param("productId"), req.Notes)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccessWithStatus(ctx, "Product added to saved items", newSavedItemResponse(item), http.StatusCreated)
}

// ListSavedItems godoc
//
//	@Summary	List the caller's saved items, newest first
//	@Tags		saved-items
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	successResponse
//	@Failure	400,401	{object}	errorResponse
//	@Router		/api/saved-items/my-saved-items [get]
func (sh *SavedItemHandler) ListSavedItems(ctx *gin.Context) {
	query := pageQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	list, pagination, err := sh.service.ListSavedItems(ctx, getAuthPayload(ctx).UserID, query.page(defaultSavedItemLimit))
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	items := make([]*savedItemResponse, 0, len(list))
	for _, si := range list {
		items = append(items, newSavedItemResponse(si))
	}
	sh.handleSuccess(ctx, gin.H{
		"savedItems": items,
		"pagination": paginationJSON(pagination, "totalItems"),
	})
}

// UpdateSavedItem godoc
//
//	@Summary	Replace the notes on one of the caller's saved items
//	@Tags		saved-items
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		savedItemId		path		string				true	"Saved item ID"
//	@Param		item			body		savedItemRequest	true	"Notes"
//	@Success	200				{object}	successResponse
//	@Failure	400,401,403,404	{object}	errorResponse
//	@Router		/api/saved-items/{savedItemId} [put]
func (sh *SavedItemHandler) UpdateSavedItem(ctx *gin.Context) {
	req := savedItemRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sh.handleValidationError(ctx, err)
		return
	}

	item, err := sh.service.UpdateSavedItem(ctx, getAuthPayload(ctx).UserID, ctx.Param("savedItemId"), req.Notes)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccessWithStatus(ctx, "Saved item updated successfully", newSavedItemResponse(item), http.StatusOK)
}

// RemoveSavedItem godoc
//
//	@Summary	Remove a product from the caller's saved items
//	@Tags		saved-items
//	@Produce	json
//	@Security	BearerAuth
//	@Param		savedItemId	path		string	true	"Saved item ID"
//	@Success	200			{object}	successResponse
//	@Failure	401,403,404	{object}	errorResponse
//	@Router		/api/saved-items/{savedItemId} [delete]
func (sh *SavedItemHandler) RemoveSavedItem(ctx *gin.Context) {
	if err := sh.service.RemoveSavedItem(ctx, getAuthPayload(ctx).UserID, ctx.Param("savedItemId")); err != nil {
		sh.handleError(ctx, err)
		return
	}
	sh.handleSuccessWithStatus(ctx, "Product removed from saved items", nil, http.StatusOK)
}

// CheckSaved godoc
//
//	@Summary	Report whether the caller has saved a product
//	@Tags		saved-items
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productId	path		string	true	"Product ID"
//	@Success	200			{object}	successResponse
//	@Failure	401			{object}	errorResponse
//	@Router		/api/saved-items/check/{productId} [get]
func (sh *SavedItemHandler) CheckSaved(ctx *gin.Context) {
	item, err := sh.service.CheckSaved(ctx, getAuthPayload(ctx).UserID, ctx.Param("productId"))
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	var saved *savedItemResponse
	if item != nil {
		saved = newSavedItemResponse(item)
	}
	sh.handleSuccess(ctx, gin.H{
		"isSaved":   item != nil,
		"savedItem": saved,
	})
}
