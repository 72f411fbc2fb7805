package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gametrade/internal/models/request_models"
	"gametrade/internal/services"
	"gametrade/pkg/utils"
)

type MessageController struct {
	messageService services.MessageServiceInterface
}

func NewMessageController(messageService services.MessageServiceInterface) *MessageController {
	return &MessageController{messageService: messageService}
}

func (m *MessageController) SendMessage(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	senderID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	message, err := m.messageService.SendMessage(c.Request.Context(), senderID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, message, "Message sent successfully")
}

func (m *MessageController) Conversation(c *gin.Context) {
	peerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))

	messages, err := m.messageService.Conversation(c.Request.Context(), userID, peerID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Conversation fetched successfully")
}
