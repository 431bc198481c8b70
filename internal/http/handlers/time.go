package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cyberowl/owl-tts/internal/core/timewords"
	"github.com/cyberowl/owl-tts/pkg/types"
)

type TimeHandler struct {
	Now func() time.Time
}

func NewTimeHandler(now func() time.Time) *TimeHandler {
	if now == nil {
		now = time.Now
	}
	return &TimeHandler{Now: now}
}

// Words handles GET /api/time?time=HH:MM[:SS]&style=formal|spoken. Without a
// time parameter the current time is used.
func (h *TimeHandler) Words(c *gin.Context) {
	style, err := timewords.ParseStyle(c.Query("style"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": timewords.Kind(err)})
		return
	}
	var in any = h.Now()
	if q := c.Query("time"); q != "" {
		in = q
	}
	clock, err := timewords.Parse(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": timewords.Kind(err)})
		return
	}
	text, err := timewords.Compose(clock, style)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": timewords.Kind(err)})
		return
	}
	c.JSON(http.StatusOK, types.TimeResp{
		Time:    clock.String(),
		Style:   style.String(),
		Text:    text,
		Display: timewords.StripStress(text),
	})
}
