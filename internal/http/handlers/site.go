package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	DocRoot string
}

func NewSiteHandler(docRoot string) *SiteHandler {
	return &SiteHandler{DocRoot: docRoot}
}

func (h *SiteHandler) Index(c *gin.Context) {
	index := filepath.Join(h.DocRoot, "index.html")
	if st, err := os.Stat(index); err == nil && !st.IsDir() {
		c.File(index)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cyber Owl TTS API"})
}

func (h *SiteHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "TTS"})
}
