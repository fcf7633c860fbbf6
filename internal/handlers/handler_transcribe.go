package handlers

import (
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxAudioBytes caps uploaded voice clips at 10 MiB.
const maxAudioBytes = 10 << 20

// transcribeHandler converts an uploaded audio clip into text so the client
// can feed voice input into the chat endpoint.
type transcribeHandler struct {
	transcriber portssvc.Transcriber
}

func newTranscribeHandler(t portssvc.Transcriber) *transcribeHandler {
	return &transcribeHandler{transcriber: t}
}

// registerTranscribeRoutes registers the transcription route.
func registerTranscribeRoutes(rg *gin.RouterGroup, t portssvc.Transcriber) {
	h := newTranscribeHandler(t)
	rg.POST("/transcribe", h.transcribe)
}

func (h *transcribeHandler) transcribe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing audio file"})
		return
	}
	if fileHeader.Size > maxAudioBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded audio", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio file"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		logger.Error("Failed to read uploaded audio", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio file"})
		return
	}

	text, err := h.transcriber.Transcribe(c.Request.Context(), fileHeader.Filename, audio)
	if err != nil {
		logger.Error("Failed to transcribe audio", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio"})
		return
	}

	c.JSON(http.StatusOK, dto.TranscribeResponse{TranscribedText: text})
}
