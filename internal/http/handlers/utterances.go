package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cyberowl/owl-tts/internal/core/utterance"
	"github.com/cyberowl/owl-tts/internal/repo/memory"
	"github.com/cyberowl/owl-tts/pkg/types"
)

type UtterancesHandler struct {
	Repo *memory.UtteranceRepo
}

func NewUtterancesHandler(repo *memory.UtteranceRepo) *UtterancesHandler {
	return &UtterancesHandler{Repo: repo}
}

func (h *UtterancesHandler) Get(c *gin.Context) {
	u, ok := h.Repo.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, utterance.Resp(u))
}

func (h *UtterancesHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_limit"})
		return
	}
	out := []*types.UtteranceResp{}
	for _, u := range h.Repo.Recent(limit) {
		out = append(out, utterance.Resp(u))
	}
	c.JSON(http.StatusOK, out)
}
