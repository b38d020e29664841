package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/franthony00/VoiceLink/internal/api/metrics"
	"github.com/franthony00/VoiceLink/internal/core/domain"
	"github.com/franthony00/VoiceLink/internal/core/ports"
)

// MessagingHandler handles conversation and message endpoints. The caller
// is always one of the participants; their identity comes from the token.
type MessagingHandler struct {
	messagingService ports.MessagingService
	authService      ports.AuthService
}

func NewMessagingHandler(messagingService ports.MessagingService, authService ports.AuthService) *MessagingHandler {
	return &MessagingHandler{messagingService: messagingService, authService: authService}
}

// Start opens (or returns) the thread between the caller and another user.
//
// @Summary      Start or resume a conversation
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      startConversationRequest  true  "The other participant"
// @Success      200   {object}  conversationResponse "existing thread"
// @Success      201   {object}  conversationResponse "new thread"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/conversations [post]
func (h *MessagingHandler) Start(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	other, err := h.authService.GetUserByID(c.Request().Context(), req.ParticipantID)
	if err != nil {
		return err
	}
	if other == nil {
		return domain.ErrUserNotFound
	}

	result, err := h.messagingService.StartConversation(c.Request().Context(), ports.StartConversationInput{
		UserAID:   id.UserID,
		UserAName: id.Name,
		UserBID:   other.ID,
		UserBName: other.Name,
	})
	if err != nil {
		return err
	}

	resp := conversationResponse{Conversation: result.Conversation, Existing: result.AlreadyExisted}
	if result.AlreadyExisted {
		metrics.ConversationStartsTotal.WithLabelValues("existing").Inc()
		return c.JSON(http.StatusOK, resp)
	}
	metrics.ConversationStartsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, resp)
}

// List returns the caller's conversations, most recent activity first.
//
// @Summary      List my conversations
// @Tags         messaging
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Conversation
// @Failure      401  {object}  errorResponse
// @Router       /v1/conversations [get]
func (h *MessagingHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	convs, err := h.messagingService.ListConversations(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}

	sort.Slice(convs, func(i, j int) bool {
		return convs[i].LastMessageTime.After(convs[j].LastMessageTime)
	})
	return c.JSON(http.StatusOK, convs)
}

// Messages returns a thread's full history in chronological order.
//
// @Summary      List a conversation's messages
// @Tags         messaging
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Conversation id"
// @Success      200  {array}  domain.Message
// @Failure      401  {object}  errorResponse
// @Router       /v1/conversations/{id}/messages [get]
func (h *MessagingHandler) Messages(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	msgs, err := h.messagingService.ListMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Send appends a message to a thread.
//
// @Summary      Send a message
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Conversation id"
// @Param        body  body      sendMessageRequest  true  "Message contents"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/conversations/{id}/messages [post]
func (h *MessagingHandler) Send(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messagingService.SendMessage(c.Request().Context(), ports.SendMessageInput{
		ConversationID: c.Param("id"),
		SenderID:       id.UserID,
		SenderName:     id.Name,
		ReceiverID:     req.ReceiverID,
		Content:        req.Content,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusCreated, msg)
}

// MarkRead zeroes the caller's unread counter on a thread.
//
// @Summary      Mark a conversation read
// @Tags         messaging
// @Security     BearerAuth
// @Param        id  path  string  true  "Conversation id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/conversations/{id}/read [post]
func (h *MessagingHandler) MarkRead(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.messagingService.MarkRead(c.Request().Context(), c.Param("id"), id.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
