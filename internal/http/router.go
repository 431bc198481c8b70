package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyberowl/owl-tts/internal/config"
	"github.com/cyberowl/owl-tts/internal/core/utterance"
	"github.com/cyberowl/owl-tts/internal/http/handlers"
	"github.com/cyberowl/owl-tts/internal/metrics"
	"github.com/cyberowl/owl-tts/internal/repo/memory"
	"github.com/cyberowl/owl-tts/pkg/ws"
)

type Deps struct {
	// Recorder is built from TTS, Repo and Hub when nil.
	Recorder *utterance.Recorder
	TTS      utterance.Synthesizer
	Repo     *memory.UtteranceRepo
	Hub      *ws.Hub
	Metrics  *metrics.Collector
	Logger   *zap.Logger
	Now      func() time.Time
}

// NewRouter wires the routes. ctx bounds background work owned by the
// router, such as the rate limiter janitor.
func NewRouter(ctx context.Context, cfg config.Config, d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Repo == nil {
		d.Repo = memory.NewUtteranceRepo()
	}
	if d.Hub == nil {
		d.Hub = ws.NewHub()
	}
	log := d.Logger.With(zap.String("component", "http"))
	if d.Recorder == nil {
		d.Recorder = utterance.NewRecorder(d.TTS, d.Repo, d.Hub, log)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(log), observe(d.Metrics))

	site := handlers.NewSiteHandler(cfg.DocRoot)
	th := handlers.NewTTSHandler(d.Recorder, log)
	tm := handlers.NewTimeHandler(d.Now)
	uh := handlers.NewUtterancesHandler(d.Repo)
	eh := handlers.NewEventsHandler(d.Hub, d.Repo)

	r.GET("/", site.Index)
	r.GET("/health", site.Health)
	r.Static("/static", cfg.DocRoot)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	limited := rateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	api := r.Group("/api")
	api.POST("/tts", limited, th.Form)
	api.POST("/tts/json", limited, th.JSON)
	api.GET("/speak", limited, th.Speak)
	api.GET("/time", tm.Words)

	v1 := r.Group("/v1")
	v1.POST("/tts", limited, th.Synthesize)
	v1.GET("/utterances", uh.List)
	v1.GET("/utterances/:id", uh.Get)
	r.GET("/v1/events", eh.WS)
	return r
}
