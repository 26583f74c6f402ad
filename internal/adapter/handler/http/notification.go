package http

import (
	"net/http"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultNotificationLimit = 20

type NotificationHandler struct {
	Handler
	service port.NotificationService
}

func NewNotificationHandler(service port.NotificationService, logger *zap.Logger) (*NotificationHandler, error) {
	return &NotificationHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type notificationListQuery struct {
	pageQuery
	UnreadOnly bool `form:"unreadOnly"`
}

// ListNotifications godoc
//
//	@Summary	List the caller's notifications
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Param		unreadOnly	query	bool	false	"Only unread"
//	@Success	200	{object}	successResponse
//	@Failure	400,401	{object}	errorResponse
//	@Router		/api/notifications/my-notifications [get]
func (nh *NotificationHandler) ListNotifications(ctx *gin.Context) {
	query := notificationListQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		nh.handleValidationError(ctx, err)
		return
	}

	filter := domain.NotificationFilter{
		UserID:     getAuthPayload(ctx).UserID,
		UnreadOnly: query.UnreadOnly,
	}
	list, pagination, unread, err := nh.service.ListNotifications(ctx, filter, query.page(defaultNotificationLimit))
	if err != nil {
		nh.handleError(ctx, err)
		return
	}

	notifications := make([]*notificationResponse, 0, len(list))
	for _, n := range list {
		notifications = append(notifications, newNotificationResponse(n))
	}
	page := paginationJSON(pagination, "totalNotifications")
	nh.handleSuccess(ctx, gin.H{
		"notifications": notifications,
		"pagination":    page,
		"unreadCount":   unread,
	})
}

// CountNotifications godoc
//
//	@Summary	Count the caller's notifications
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	successResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/api/notifications/count [get]
func (nh *NotificationHandler) CountNotifications(ctx *gin.Context) {
	count, err := nh.service.CountNotifications(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		nh.handleError(ctx, err)
		return
	}
	nh.handleSuccess(ctx, gin.H{
		"unreadCount": count.Unread,
		"totalCount":  count.Total,
	})
}

// MarkAsRead godoc
//
//	@Summary	Mark one notification read
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Notification ID"
//	@Success	200	{object}	successResponse
//	@Failure	401,403,404	{object}	errorResponse
//	@Router		/api/notifications/{id}/read [put]
func (nh *NotificationHandler) MarkAsRead(ctx *gin.Context) {
	n, err := nh.service.MarkAsRead(ctx, getAuthPayload(ctx).UserID, ctx.Param("id"))
	if err != nil {
		nh.handleError(ctx, err)
		return
	}
	nh.handleSuccessWithStatus(ctx, "Notification marked as read", newNotificationResponse(n), http.StatusOK)
}

// MarkAllAsRead godoc
//
//	@Summary	Mark every notification read
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	successResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/api/notifications/mark-all-read [put]
func (nh *NotificationHandler) MarkAllAsRead(ctx *gin.Context) {
	if err := nh.service.MarkAllAsRead(ctx, getAuthPayload(ctx).UserID); err != nil {
		nh.handleError(ctx, err)
		return
	}
	nh.handleSuccessWithStatus(ctx, "All notifications marked as read", nil, http.StatusOK)
}

// DeleteNotification godoc
//
//	@Summary	Delete one notification
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Notification ID"
//	@Success	200	{object}	successResponse
//	@Failure	401,403,404	{object}	errorResponse
//	@Router		/api/notifications/{id} [delete]
func (nh *NotificationHandler) DeleteNotification(ctx *gin.Context) {
	if err := nh.service.DeleteNotification(ctx, getAuthPayload(ctx).UserID, ctx.Param("id")); err != nil {
		nh.handleError(ctx, err)
		return
	}
	nh.handleSuccessWithStatus(ctx, "Notification deleted", nil, http.StatusOK)
}

// DeleteAllNotifications godoc
//
//	@Summary	Delete every notification of the caller
//	@Tags		notifications
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	successResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/api/notifications/delete-all [delete]
func (nh *NotificationHandler) DeleteAllNotifications(ctx *gin.Context) {
	deleted, err := nh.service.DeleteAllNotifications(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		nh.handleError(ctx, err)
		return
	}
	nh.handleSuccessWithStatus(ctx, "All notifications deleted", gin.H{"deletedCount": deleted}, http.StatusOK)
}
