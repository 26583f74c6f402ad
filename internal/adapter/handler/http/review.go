package http

import (
	"net/http"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultReviewLimit = 10

type ReviewHandler struct {
	Handler
	service port.ReviewService
}

func NewReviewHandler(service port.ReviewService, logger *zap.Logger) (*ReviewHandler, error) {
	return &ReviewHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,min=10,max=1000"`
}

func (r reviewRequest) content() domain.ReviewContent {
	return domain.ReviewContent{Rating: r.Rating, Comment: r.Comment}
}

type reviewListQuery struct {
	pageQuery
	Rating int    `form:"rating" binding:"omitempty,min=1,max=5"`
	Sort   string `form:"sort" binding:"omitempty,oneof=newest oldest rating helpful"`
}

// ListProductReviews godoc
//
//	@Summary	List reviews of an approved product with its rating summary
//	@Tags		reviews
//	@Produce	json
//	@Param		productId	path		string	true	"Product ID"
//	@Param		page		query		int		false	"Page number"
//	@Param		limit		query		int		false	"Page size"
//	@Param		rating		query		int		false	"Only reviews with this rating"
//	@Param		sort		query		string	false	"newest, oldest, rating or helpful"
//	@Success	200			{object}	successResponse
//	@Failure	400,404		{object}	errorResponse
//	@Router		/api/reviews/product/{productId} [get]
func (rh *ReviewHandler) ListProductReviews(ctx *gin.Context) {
	query := reviewListQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	filter := domain.ReviewFilter{
		ProductID: ctx.Param("productId"),
		Rating:    query.Rating,
		Sort:      domain.ReviewSort(query.Sort),
	}
	list, pagination, summary, err := rh.service.ListProductReviews(ctx, filter, query.page(defaultReviewLimit))
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, gin.H{
		"reviews":    newReviewListResponse(list),
		"pagination": paginationJSON(pagination, "totalReviews"),
		"product":    newRatingSummaryResponse(summary),
	})
}

// ListMyReviews godoc
//
//	@Summary	List the caller's reviews, newest first
//	@Tags		reviews
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	successResponse
//	@Failure	400,401	{object}	errorResponse
//	@Router		/api/reviews/user/my-reviews [get]
func (rh *ReviewHandler) ListMyReviews(ctx *gin.Context) {
	query := pageQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	list, pagination, err := rh.service.ListUserReviews(ctx, getAuthPayload(ctx).UserID, query.page(defaultReviewLimit))
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, gin.H{
		"reviews":    newReviewListResponse(list),
		"pagination": paginationJSON(pagination, "totalReviews"),
	})
}

// CreateReview godoc
//
//	@Summary	Review an approved product
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productId	path		string			true	"Product ID"
//	@Param		review		body		reviewRequest	true	"Rating and comment"
//	@Success	201			{object}	successResponse
//	@Failure	400,401,404	{object}	errorResponse
//	@Router		/api/reviews/product/{productId} [post]
func (rh *ReviewHandler) CreateReview(ctx *gin.Context) {
	req := reviewRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	review, err := rh.service.CreateReview(ctx, domain.CreateReviewCommand{
		ProductID:     ctx.Param("productId"),
		UserID:        getAuthPayload(ctx).UserID,
		ReviewContent: req.content(),
	})
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccessWithStatus(ctx, "Review created successfully", newReviewResponse(review), http.StatusCreated)
}

// UpdateReview godoc
//
//	@Summary	Change the rating and comment of the caller's review
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		reviewId		path		string			true	"Review ID"
//	@Param		review			body		reviewRequest	true	"Rating and comment"
//	@Success	200				{object}	successResponse
//	@Failure	400,401,403,404	{object}	errorResponse
//	@Router		/api/reviews/{reviewId} [put]
func (rh *ReviewHandler) UpdateReview(ctx *gin.Context) {
	req := reviewRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	review, err := rh.service.UpdateReview(ctx, domain.UpdateReviewCommand{
		ReviewID:      ctx.Param("reviewId"),
		UserID:        getAuthPayload(ctx).UserID,
		ReviewContent: req.content(),
	})
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccessWithStatus(ctx, "Review updated successfully", newReviewResponse(review), http.StatusOK)
}

// DeleteReview godoc
//
//	@Summary	Delete the caller's review
//	@Tags		reviews
//	@Produce	json
//	@Security	BearerAuth
//	@Param		reviewId	path		string	true	"Review ID"
//	@Success	200			{object}	successResponse
//	@Failure	401,403,404	{object}	errorResponse
//	@Router		/api/reviews/{reviewId} [delete]
func (rh *ReviewHandler) DeleteReview(ctx *gin.Context) {
	if err := rh.service.DeleteReview(ctx, getAuthPayload(ctx).UserID, ctx.Param("reviewId")); err != nil {
		rh.handleError(ctx, err)
		return
	}
	rh.handleSuccessWithStatus(ctx, "Review deleted successfully", nil, http.StatusOK)
}

// ToggleHelpful godoc
//
//	@Summary	Mark a review helpful, or clear the caller's earlier mark
//	@Tags		reviews
//	@Produce	json
//	@Security	BearerAuth
//	@Param		reviewId	path		string	true	"Review ID"
//	@Success	200			{object}	successResponse
//	@Failure	401,404		{object}	errorResponse
//	@Router		/api/reviews/{reviewId}/helpful [post]
func (rh *ReviewHandler) ToggleHelpful(ctx *gin.Context) {
	vote, err := rh.service.ToggleHelpful(ctx, getAuthPayload(ctx).UserID, ctx.Param("reviewId"))
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	message := "Removed helpful vote"
	if vote.IsHelpful {
		message = "Marked as helpful"
	}
	rh.handleSuccessWithStatus(ctx, message, gin.H{
		"helpfulCount": vote.HelpfulCount,
		"isHelpful":    vote.IsHelpful,
	}, http.StatusOK)
}
