package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cyberowl/owl-tts/internal/config"
	"github.com/cyberowl/owl-tts/internal/core/announce"
	"github.com/cyberowl/owl-tts/internal/core/audio"
	"github.com/cyberowl/owl-tts/internal/core/timewords"
	"github.com/cyberowl/owl-tts/internal/core/tts"
	"github.com/cyberowl/owl-tts/internal/core/utterance"
	h "github.com/cyberowl/owl-tts/internal/http"
	"github.com/cyberowl/owl-tts/internal/logging"
	"github.com/cyberowl/owl-tts/internal/metrics"
	"github.com/cyberowl/owl-tts/internal/repo/memory"
	"github.com/cyberowl/owl-tts/pkg/ws"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	m := metrics.NewCollector("owl")

	provider, err := newProvider(ctx, cfg, logger)
	if err != nil {
		return err
	}
	cache, closeCache, err := newCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	var player tts.Player = audio.NopPlayer{}
	if cfg.SoundEnabled {
		player = audio.NewPortAudioPlayer(cfg.SoundDevice, logger)
	}
	// Speaker and style were checked by cfg.Validate.
	speaker, _ := tts.ParseSpeaker(cfg.Speaker, tts.SpeakerKseniya)

	svc := tts.NewService(tts.ServiceOptions{
		Provider:       provider,
		Cache:          cache,
		Player:         player,
		DefaultSpeaker: speaker,
		SampleRate:     cfg.SampleRate,
		AudioDir:       filepath.Join(cfg.DocRoot, "audio"),
		AudioURL:       "/static/audio",
		Metrics:        m,
		Logger:         logger,
	})

	repo := memory.NewUtteranceRepo()
	hub := ws.NewHub()
	rec := utterance.NewRecorder(svc, repo, hub, logger)

	if cfg.AnnounceInterval > 0 {
		style, _ := timewords.ParseStyle(cfg.AnnounceStyle)
		a := &announce.Announcer{
			Interval: cfg.AnnounceInterval,
			Style:    style,
			Speaker:  rec,
			Metrics:  m,
			Logger:   logger,
		}
		go a.Run(ctx)
	}

	router := h.NewRouter(ctx, cfg, h.Deps{
		Recorder: rec,
		Repo:     repo,
		Hub:      hub,
		Metrics:  m,
		Logger:   logger,
	})
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("engine", provider.Name()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newProvider(ctx context.Context, cfg config.Config, logger *zap.Logger) (tts.Provider, error) {
	if cfg.Engine == "gemini" {
		return tts.NewGeminiEngine(ctx, tts.GeminiOptions{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
			Voice:  cfg.GeminiVoice,
		})
	}
	mm := &tts.ModelManager{
		URL:      cfg.ModelURL,
		Path:     cfg.ModelPath,
		Download: cfg.UseModelManager,
		Logger:   logger,
	}
	if err := mm.Ensure(ctx); err != nil {
		return nil, err
	}
	return tts.NewLocalEngine(cfg.RunnerPath, cfg.ModelPath, cfg.SampleRate)
}

// newCache returns the redis cache when an address is configured and the
// in-memory LRU otherwise.
func newCache(ctx context.Context, cfg config.Config) (tts.Cache, func(), error) {
	if cfg.RedisAddr == "" {
		return tts.NewMemoryCache(cfg.CacheSize), func() {}, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}
	return tts.NewRedisCache(client, cfg.CacheTTL), func() { client.Close() }, nil
}
