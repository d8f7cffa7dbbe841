package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// ChatController handles 1:1 direct messaging
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// GetConversations godoc
// @Summary List conversations
// @Description Retrieve the caller's conversation list: one row per counterparty with the last message and unread count, newest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ConversationSummary}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chat/conversations [get]
func (c *ChatController) GetConversations(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	conversations, err := c.chatService.GetConversations(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(conversations, ""))
}

// GetMessages godoc
// @Summary Get messages with a user
// @Description Retrieve the full message history between the caller and another member, oldest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Counterparty user ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chat/messages/{userId} [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	otherUserID, ok := parseIDParam(ctx, "userId", "user ID")
	if !ok {
		return
	}

	messages, err := c.chatService.GetMessages(ctx, userID, otherUserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToMessageResponses(messages), ""))
}

// SendMessage godoc
// @Summary Send a direct message
// @Description Send a message to another member
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message details"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Empty content or self-messaging"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Receiver not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	message, err := c.chatService.SendMessage(ctx, userID, req.ReceiverID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToMessageResponse(message), ""))
}

// MarkAsRead godoc
// @Summary Mark messages as read
// @Description Mark all messages from a sender to the caller as read
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkReadRequest true "Sender whose messages to mark"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chat/messages/read [put]
func (c *ChatController) MarkAsRead(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.MarkReadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.chatService.MarkMessagesAsRead(ctx, userID, req.SenderID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Messages marked as read"}, ""))
}
