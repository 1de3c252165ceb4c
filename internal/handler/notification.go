package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/notification"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/middleware"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/request"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/response"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/service"
)

// NotificationHandler wires the notification endpoints to the service.
// Every route behind it requires an authenticated user.
type NotificationHandler struct {
	notifSvc service.NotificationService
}

// NewNotificationHandler constructs a new NotificationHandler.
func NewNotificationHandler(notifSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifSvc: notifSvc}
}

// List godoc
// @Summary     List notifications
// @Description Returns a paginated, recency-ordered list of the caller's notifications.
// @Tags        notifications
// @Produce     json
// @Param       page  query int false "Page number"         default(1)
// @Param       limit query int false "Page size (max 100)" default(20)
// @Success     200 {object} response.NotificationsResponse
// @Failure     401 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Security    BearerAuth
// @Router      /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 20

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	notifications, err := h.notifSvc.List(r.Context(), middleware.UserID(r.Context()), page, limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromNotificationPage(notifications))
}

// UnreadCount godoc
// @Summary     Unread notification count
// @Tags        notifications
// @Produce     json
// @Success     200 {object} response.UnreadCountResponse
// @Failure     401 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Security    BearerAuth
// @Router      /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notifSvc.UnreadCount(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.UnreadCountPayload{Count: count})
}

// MarkRead godoc
// @Summary     Mark one notification as read
// @Tags        notifications
// @Produce     json
// @Param       id path string true "Notification id"
// @Success     200 {object} map[string]string
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Security    BearerAuth
// @Router      /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	status, err := h.notifSvc.MarkRead(r.Context(), middleware.UserID(r.Context()), id)
	h.respondStatus(w, status, err)
}

// MarkAllRead godoc
// @Summary     Mark all notifications as read
// @Tags        notifications
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Security    BearerAuth
// @Router      /notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	status, err := h.notifSvc.MarkAllRead(r.Context(), middleware.UserID(r.Context()))
	h.respondStatus(w, status, err)
}

// Delete godoc
// @Summary     Delete one notification
// @Tags        notifications
// @Produce     json
// @Param       id path string true "Notification id"
// @Success     200 {object} map[string]string
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Security    BearerAuth
// @Router      /notifications/{id} [delete]
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	status, err := h.notifSvc.Delete(r.Context(), middleware.UserID(r.Context()), id)
	h.respondStatus(w, status, err)
}

// DeleteAll godoc
// @Summary     Delete all notifications
// @Tags        notifications
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Security    BearerAuth
// @Router      /notifications [delete]
func (h *NotificationHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	status, err := h.notifSvc.DeleteAll(r.Context(), middleware.UserID(r.Context()))
	h.respondStatus(w, status, err)
}

// NotifyComment godoc
// @Summary     Fan a comment event out to watchers
// @Description Queues one notification per recipient; the request returns before the writes happen.
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Param       request body request.CommentNotificationRequest true "Comment event"
// @Success     202 {object} map[string]string
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Security    BearerAuth
// @Router      /notifications/comment [post]
func (h *NotificationHandler) NotifyComment(w http.ResponseWriter, r *http.Request) {
	var req request.CommentNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	if len(req.RecipientIDs) == 0 || req.CommentText == "" || req.CommentUsername == "" {
		response.RespondError(w, http.StatusBadRequest, "recipientIds, commentUsername and commentText are required")
		return
	}

	n := notification.NewNotification(
		req.CommentUsername,
		req.CommentText,
		movieID,
		req.MovieTitle,
	)
	h.notifSvc.NotifyComment(req.RecipientIDs, n)

	response.RespondJSON(w, http.StatusAccepted, map[string]string{"message": "notifications queued"})
}

// respondStatus maps a result status onto an HTTP response.
func (h *NotificationHandler) respondStatus(w http.ResponseWriter, status result.Status, err error) {
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch status {
	case result.Completed:
		response.RespondJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	case result.NotFound:
		response.RespondError(w, http.StatusNotFound, "notification not found")
	default:
		response.RespondError(w, http.StatusInternalServerError, status.String())
	}
}
