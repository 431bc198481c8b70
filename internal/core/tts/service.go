package tts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/cyberowl/owl-tts/internal/metrics"
)

// Player outputs audio on a sound device.
type Player interface {
	Play(ctx context.Context, a *Audio) error
}

type Result struct {
	Key        string
	Text       string
	Speaker    Speaker
	AudioURL   string
	DurationMs int64
	Cached     bool
	Played     bool
}

type ServiceOptions struct {
	Provider       Provider
	Cache          Cache
	Player         Player
	DefaultSpeaker Speaker
	SampleRate     int
	// AudioDir receives a WAV copy of every utterance; AudioURL is the
	// public prefix it is served under. Empty AudioDir disables the copy.
	AudioDir string
	AudioURL string
	Metrics  *metrics.Collector
	Logger   *zap.Logger
}

// Service synthesizes, caches, stores and plays utterances.
type Service struct {
	opts  ServiceOptions
	group singleflight.Group
	log   *zap.Logger
}

func NewService(opts ServiceOptions) *Service {
	if opts.Cache == nil {
		opts.Cache = NewMemoryCache(0)
	}
	if opts.DefaultSpeaker == "" {
		opts.DefaultSpeaker = SpeakerKseniya
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{opts: opts, log: log.With(zap.String("component", "tts"))}
}

func (s *Service) Speak(ctx context.Context, req Request) (*Result, error) {
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return nil, ErrEmptyText
	}
	if req.Speaker == "" {
		req.Speaker = s.opts.DefaultSpeaker
	}

	engine := s.opts.Provider.Name()
	key := Key(engine, s.opts.SampleRate, req)
	audio, cached, err := s.audio(ctx, key, req)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Key:        key,
		Text:       req.Text,
		Speaker:    req.Speaker,
		DurationMs: audio.Duration().Milliseconds(),
		Cached:     cached,
	}
	if s.opts.AudioDir != "" {
		if err := s.store(key, audio); err != nil {
			s.log.Warn("store wav failed", zap.String("key", key), zap.Error(err))
		} else {
			res.AudioURL = strings.TrimRight(s.opts.AudioURL, "/") + "/" + key + ".wav"
		}
	}
	if s.opts.Player != nil {
		if err := s.opts.Player.Play(ctx, audio); err != nil {
			s.log.Warn("playback failed", zap.String("key", key), zap.Error(err))
		} else {
			res.Played = true
		}
	}
	return res, nil
}

// SpeakText speaks text with the default speaker.
func (s *Service) SpeakText(ctx context.Context, text string) error {
	_, err := s.Speak(ctx, Request{Text: text})
	return err
}

func (s *Service) audio(ctx context.Context, key string, req Request) (*Audio, bool, error) {
	if a, err := s.opts.Cache.Get(ctx, key); err != nil {
		s.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	} else if a != nil {
		s.opts.Metrics.RecordCache(true)
		return a, true, nil
	}
	s.opts.Metrics.RecordCache(false)

	// Shared by every caller waiting on key; each caller only stops
	// waiting when its own ctx ends.
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (interface{}, error) {
		start := time.Now()
		a, err := s.opts.Provider.Synthesize(shared, req)
		s.opts.Metrics.RecordSynthesis(s.opts.Provider.Name(), err, time.Since(start))
		if err != nil {
			return nil, err
		}
		if len(a.PCM) == 0 {
			return nil, ErrNoAudio
		}
		if err := s.opts.Cache.Set(shared, key, a); err != nil {
			s.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
		return a, nil
	})
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, false, fmt.Errorf("synthesize: %w", r.Err)
		}
		return r.Val.(*Audio), false, nil
	}
}

func (s *Service) store(key string, a *Audio) error {
	path := filepath.Join(s.opts.AudioDir, key+".wav")
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(s.opts.AudioDir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(s.opts.AudioDir, key+"-*.tmp")
	if err != nil {
		return err
	}
	_, werr := f.Write(EncodeWAV(a))
	cerr := f.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(f.Name())
		return errors.Join(werr, cerr)
	}
	return os.Rename(f.Name(), path)
}
