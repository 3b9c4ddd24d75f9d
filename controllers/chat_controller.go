package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/models"
	"campus-backend/services"
)

type ChatController struct {
	chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

// Send appends a message from the caller to the administrator channel
func (ctl *ChatController) Send(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	msg, err := ctl.chat.Send(c.Request.Context(), c.GetString("userID"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "message sent",
		"data":    msg,
	})
}

// ListMessages returns the caller's conversation, oldest first
func (ctl *ChatController) ListMessages(c *gin.Context) {
	messages, err := ctl.chat.ListConversation(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
