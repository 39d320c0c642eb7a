package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
	"github.com/jengabot/jenga_backend/internal/dto"
	"github.com/jengabot/jenga_backend/internal/middleware"
)

// emptyTwiML acknowledges the webhook without queueing a reply through the
// response itself; replies go out via the Messages API instead.
const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

// webhookHandler receives inbound WhatsApp messages from Twilio.
type webhookHandler struct {
	webhookService portssvc.WebhookSvcFacade
}

func newWebhookHandler(ws portssvc.WebhookSvcFacade) *webhookHandler {
	return &webhookHandler{webhookService: ws}
}

// registerWebhookRoutes registers the public Twilio callback route.
func registerWebhookRoutes(rg *gin.RouterGroup, webhookService portssvc.WebhookSvcFacade) {
	h := newWebhookHandler(webhookService)
	rg.POST("/whatsapp", h.receiveMessage)
}

// receiveMessage godoc
// @Summary Receive an inbound WhatsApp message
// @Description Twilio posts each inbound message here. The endpoint always acknowledges with empty TwiML so the provider never retries a processed message; only a missing sender address is rejected.
// @Tags webhook
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param From formData string true "Sender address, e.g. whatsapp:+256700000001"
// @Param Body formData string false "Message text"
// @Param NumMedia formData int false "Attachment count"
// @Param MediaUrl0 formData string false "First attachment URL"
// @Param MessageSid formData string false "Provider message SID"
// @Success 200 {string} string "Empty TwiML response"
// @Failure 400 {object} map[string]string "Missing or malformed From"
// @Router /webhook/whatsapp [post]
func (h *webhookHandler) receiveMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TwilioWebhookRequest
	if err := c.ShouldBind(&req); err != nil {
		// The one rejectable condition. Anything after binding succeeds is
		// acknowledged so Twilio does not redeliver.
		logger.Warn("Rejected webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "From is required"})
		return
	}

	if err := h.webhookService.ProcessInbound(c.Request.Context(), req); err != nil {
		logger.Error("Inbound processing failed", slog.String("message_sid", req.MessageSid), slog.String("error", err.Error()))
	}

	c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte(emptyTwiML))
}
