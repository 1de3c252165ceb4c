package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/chat"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/middleware"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/request"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/response"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/service"
)

// ChatHandler exposes the chat feature over HTTP. New messages only arrive
// through the real-time gateway; these routes cover reads, edits and deletes.
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler constructs a new ChatHandler.
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// GetRecentMessages godoc
// @Summary     Recent chat messages
// @Description Returns the most recent chat messages, newest first.
// @Tags        messages
// @Produce     json
// @Success     200 {object} response.RecentMessagesResponse
// @Failure     500 {object} map[string]string
// @Router      /messages/recent [get]
func (h *ChatHandler) GetRecentMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatSvc.GetRecent(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload := response.RecentMessagesPayload{
		Items: response.FromDomainMessages(messages),
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// UpdateMessage godoc
// @Summary     Edit a chat message
// @Description Rewrites the content of a message owned by the caller and marks it edited.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       id      path string                       true "Message id"
// @Param       request body request.UpdateMessageRequest true "New content"
// @Success     200 {object} response.MessageResponse
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Security    BearerAuth
// @Router      /messages/{id} [put]
func (h *ChatHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	var req request.UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.chatSvc.Update(r.Context(), middleware.UserID(r.Context()), id, req.Content)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyContent) || errors.Is(err, chat.ErrContentTooLong) {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch res.Status {
	case result.Completed:
		response.RespondJSON(w, http.StatusOK, response.FromDomainMessage(res.Value))
	case result.NotFound:
		response.RespondError(w, http.StatusNotFound, "message not found")
	default:
		response.RespondError(w, http.StatusInternalServerError, res.Status.String())
	}
}

// DeleteMessage godoc
// @Summary     Delete a chat message
// @Tags        messages
// @Produce     json
// @Param       id path string true "Message id"
// @Success     200 {object} map[string]string
// @Failure     400 {object} map[string]string
// @Failure     401 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Security    BearerAuth
// @Router      /messages/{id} [delete]
func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	status, err := h.chatSvc.Delete(r.Context(), middleware.UserID(r.Context()), id)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch status {
	case result.Completed:
		response.RespondJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	case result.NotFound:
		response.RespondError(w, http.StatusNotFound, "message not found")
	default:
		response.RespondError(w, http.StatusInternalServerError, status.String())
	}
}
