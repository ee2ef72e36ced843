package handlers

import (
	"net/http"

	"maxxtravel/models"
	"maxxtravel/services/dialogue"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VoiceHandler exposes the voice-assistant webhook.
type VoiceHandler struct {
	Engine *dialogue.Engine
	Logger *zap.Logger
}

func NewVoiceHandler(engine *dialogue.Engine, logger *zap.Logger) *VoiceHandler {
	return &VoiceHandler{Engine: engine, Logger: logger}
}

// VoiceWebhookHandler handles one dialogue turn. Handled business failures
// (no results, unresolved cities) still return 200 with assistant text; 500
// is reserved for internal faults and always carries response_text so the
// voice platform has something to read out.
func (h *VoiceHandler) VoiceWebhookHandler(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.Logger.Error("voice webhook panic", zap.Any("error", r))
			c.JSON(http.StatusInternalServerError, models.VoiceResponse{
				ResponseText: "Sorry, something went wrong on our side. Please try again.",
			})
		}
	}()

	var req models.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.VoiceResponse{
			ResponseText: "I couldn't read that request.",
		})
		return
	}

	reply, err := h.Engine.HandleTurn(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("voice turn failed", zap.String("session", req.Session()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.VoiceResponse{
			ResponseText: "Sorry, something went wrong on our side. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, models.VoiceResponse{ResponseText: reply})
}
