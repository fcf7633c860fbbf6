package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	coresvc "github.com/Max-Ceph/zaman-hacknu/internal/core/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// chatHandler serves the conversational endpoint. It always answers 200 with
// a chat payload: the orchestrator degrades internal failures to a localized
// fallback reply, so the client never sees a raw error.
type chatHandler struct {
	chatService portssvc.ChatSvc
}

func newChatHandler(cs portssvc.ChatSvc) *chatHandler {
	return &chatHandler{chatService: cs}
}

// registerChatRoutes registers the rate-limited chat route.
func registerChatRoutes(rg *gin.RouterGroup, cs portssvc.ChatSvc, chatLimiter *limiter.Limiter) {
	h := newChatHandler(cs)
	rg.POST("/chat", middleware.RateLimit(chatLimiter), h.chat)
}

func (h *chatHandler) chat(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, coresvc.EmptyMessageResponse())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusOK, coresvc.EmptyMessageResponse())
		return
	}

	resp := h.chatService.Respond(c.Request.Context(), userID, req.Message)
	c.JSON(http.StatusOK, resp)
}
