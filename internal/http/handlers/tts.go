package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyberowl/owl-tts/internal/core/timewords"
	"github.com/cyberowl/owl-tts/internal/core/tts"
	"github.com/cyberowl/owl-tts/internal/core/utterance"
	"github.com/cyberowl/owl-tts/internal/repo/memory"
	"github.com/cyberowl/owl-tts/pkg/types"
)

type TTSHandler struct {
	Rec *utterance.Recorder
	Log *zap.Logger
}

func NewTTSHandler(rec *utterance.Recorder, log *zap.Logger) *TTSHandler {
	return &TTSHandler{Rec: rec, Log: log}
}

// Form handles application/x-www-form-urlencoded posts with a text field.
func (h *TTSHandler) Form(c *gin.Context) {
	h.simple(c, c.PostForm("text"), c.PostForm("speaker"))
}

func (h *TTSHandler) JSON(c *gin.Context) {
	var req types.TextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	h.simple(c, req.Text, req.Speaker)
}

// Speak handles GET /api/speak?text=...
func (h *TTSHandler) Speak(c *gin.Context) {
	h.simple(c, c.Query("text"), c.Query("speaker"))
}

func (h *TTSHandler) simple(c *gin.Context, text, speaker string) {
	u, ok := h.speak(c, text, speaker)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, types.StatusResp{Status: "success", Text: u.Text})
}

// Synthesize handles POST /v1/tts, which can also read a clock time aloud.
func (h *TTSHandler) Synthesize(c *gin.Context) {
	var req types.TTSReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	text := req.Text
	if req.Time != "" {
		style, err := timewords.ParseStyle(req.Style)
		if err == nil {
			text, err = timewords.TimeToText(req.Time, style)
		}
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": timewords.Kind(err)})
			return
		}
	}
	u, ok := h.speak(c, text, req.Speaker)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, types.TTSResp{
		ID:         u.ID,
		Status:     "success",
		Text:       u.Text,
		AudioURL:   u.AudioURL,
		DurationMs: u.DurationMs,
		Cached:     u.Cached,
	})
}

func (h *TTSHandler) speak(c *gin.Context, text, speakerName string) (*memory.Utterance, bool) {
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text_required"})
		return nil, false
	}
	speaker, err := tts.ParseSpeaker(speakerName, "")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_speaker"})
		return nil, false
	}
	u, err := h.Rec.Speak(c.Request.Context(), tts.Request{Text: text, Speaker: speaker})
	if err != nil {
		if errors.Is(err, tts.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text_required"})
			return nil, false
		}
		h.Log.Error("tts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "tts_failed"})
		return nil, false
	}
	return u, true
}
