// Package announce speaks the current time at a fixed interval.
package announce

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cyberowl/owl-tts/internal/core/timewords"
	"github.com/cyberowl/owl-tts/internal/metrics"
)

type Speaker interface {
	SpeakText(ctx context.Context, text string) error
}

type Announcer struct {
	Interval time.Duration
	Style    timewords.Style
	Speaker  Speaker
	Clock    func() time.Time
	Metrics  *metrics.Collector
	Logger   *zap.Logger
}

// Text returns the current time in words.
func (a *Announcer) Text() (string, error) {
	now := time.Now
	if a.Clock != nil {
		now = a.Clock
	}
	return timewords.TimeToText(now(), a.Style)
}

// Announce speaks the current time once.
func (a *Announcer) Announce(ctx context.Context) error {
	text, err := a.Text()
	if err == nil {
		err = a.Speaker.SpeakText(ctx, text)
	}
	a.Metrics.RecordAnnouncement(err)
	return err
}

// Run blocks until ctx is done. Failed announcements are logged and skipped.
func (a *Announcer) Run(ctx context.Context) {
	if a.Interval <= 0 {
		return
	}
	log := a.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "announce"))
	ticker := time.NewTicker(a.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.Announce(ctx); err != nil {
				log.Warn("announcement skipped", zap.Error(err))
			}
		}
	}
}
