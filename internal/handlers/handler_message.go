package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengabot/jenga_backend/internal/apperrors"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
	"github.com/jengabot/jenga_backend/internal/dto"
	"github.com/jengabot/jenga_backend/internal/middleware"
)

// messageHandler exposes the audit message log to the ops dashboard.
type messageHandler struct {
	messageService portssvc.MessageSvcFacade
}

func newMessageHandler(ms portssvc.MessageSvcFacade) *messageHandler {
	return &messageHandler{messageService: ms}
}

// registerMessageRoutes registers the audit log routes under /api/v1.
func registerMessageRoutes(rg *gin.RouterGroup, messageService portssvc.MessageSvcFacade) {
	h := newMessageHandler(messageService)

	messages := rg.Group("/messages")
	messages.GET("", h.listMessages)
}

// listMessages godoc
// @Summary List audit message records
// @Description Returns inbound and outbound message audit rows, newest first.
// @Tags messages
// @Produce json
// @Param profileID query string false "Filter by profile"
// @Param direction query string false "inbound or outbound"
// @Param processed query bool false "Filter by processed flag"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListMessagesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to list messages"
// @Security BearerAuth
// @Router /messages [get]
func (h *messageHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListMessagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind message list query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.messageService.ListMessages(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Profile not found for message list", slog.String("profile_id", params.ProfileID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error("Failed to list messages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMessagesResponse(records))
}
