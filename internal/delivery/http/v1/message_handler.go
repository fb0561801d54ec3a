package v1

import (
	"net/http"

	"go-swipe-backend/internal/delivery/http/response"
	"go-swipe-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
	matchUC   domain.MatchUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase, matchUC domain.MatchUsecase) {
	handler := &MessageHandler{messageUC: messageUC, matchUC: matchUC}

	messages := protected.Group("/messages")
	{
		messages.GET("", handler.Conversations)
		messages.GET("/:matchId", handler.List)
		messages.POST("/:matchId", handler.Send)
		messages.PUT("/:matchId/read", handler.MarkAsRead)
	}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"trimmed_required"`
}

// Conversations godoc
// @Summary      List conversations
// @Description  Active matches with their last message and unread count
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.MatchSummary}
// @Failure      401  {object}  response.Response
// @Router       /messages [get]
// @Security     BearerAuth
func (h *MessageHandler) Conversations(c *gin.Context) {
	summaries, err := h.matchUC.ListMatches(c.Request.Context(), currentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Conversations retrieved", summaries)
}

// List godoc
// @Summary      Message history
// @Description  Messages of a match, oldest first. Also available after an unmatch.
// @Tags         messages
// @Produce      json
// @Param        matchId  path      string  true  "Match ID"
// @Success      200      {object}  response.Response{data=[]domain.Message}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /messages/{matchId} [get]
// @Security     BearerAuth
func (h *MessageHandler) List(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	msgs, err := h.messageUC.ListMessages(c.Request.Context(), matchID, currentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Messages retrieved", msgs)
}

// Send godoc
// @Summary      Send a message
// @Description  Only participants of an active match can write. Content is trimmed and limited to 5000 characters.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        matchId  path      string              true  "Match ID"
// @Param        message  body      SendMessageRequest  true  "Message JSON"
// @Success      201      {object}  response.Response{data=domain.Message}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /messages/{matchId} [post]
// @Security     BearerAuth
func (h *MessageHandler) Send(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "Invalid message", err)
		return
	}

	msg, err := h.messageUC.SendMessage(c.Request.Context(), matchID, currentUserID(c), req.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// MarkAsRead godoc
// @Summary      Mark conversation as read
// @Description  Marks every message the other participant sent as read
// @Tags         messages
// @Produce      json
// @Param        matchId  path      string  true  "Match ID"
// @Success      200      {object}  response.Response{data=domain.ReadReceipt}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /messages/{matchId}/read [put]
// @Security     BearerAuth
func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	receipt, err := h.messageUC.MarkAsRead(c.Request.Context(), matchID, currentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Messages marked as read", receipt)
}
