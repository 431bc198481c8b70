// Package utterance records spoken utterances: every synthesis that goes
// through a Recorder is saved to the history and broadcast to subscribers.
package utterance

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cyberowl/owl-tts/internal/core/tts"
	"github.com/cyberowl/owl-tts/internal/repo/memory"
	"github.com/cyberowl/owl-tts/pkg/types"
	"github.com/cyberowl/owl-tts/pkg/ws"
)

type Synthesizer interface {
	Speak(ctx context.Context, req tts.Request) (*tts.Result, error)
}

type Recorder struct {
	Svc  Synthesizer
	Repo *memory.UtteranceRepo
	Hub  *ws.Hub
	Now  func() time.Time
	Log  *zap.Logger
}

func NewRecorder(svc Synthesizer, repo *memory.UtteranceRepo, hub *ws.Hub, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{Svc: svc, Repo: repo, Hub: hub, Now: time.Now, Log: log}
}

// Speak synthesizes req and records the result.
func (r *Recorder) Speak(ctx context.Context, req tts.Request) (*memory.Utterance, error) {
	res, err := r.Svc.Speak(ctx, req)
	if err != nil {
		return nil, err
	}
	u := &memory.Utterance{
		ID:         memory.NewID(),
		CreatedAt:  r.Now(),
		Text:       res.Text,
		Speaker:    string(res.Speaker),
		Key:        res.Key,
		AudioURL:   res.AudioURL,
		DurationMs: res.DurationMs,
		Cached:     res.Cached,
		Played:     res.Played,
	}
	r.Repo.Save(u)
	if err := r.Hub.Broadcast(Event(u)); err != nil {
		r.Log.Warn("broadcast failed", zap.String("id", u.ID), zap.Error(err))
	}
	return u, nil
}

// SpeakText speaks text with the default speaker.
func (r *Recorder) SpeakText(ctx context.Context, text string) error {
	_, err := r.Speak(ctx, tts.Request{Text: text})
	return err
}

func Event(u *memory.Utterance) types.Event {
	return types.Event{Type: "utterance", TS: u.CreatedAt.UnixMilli(), Utterance: Resp(u)}
}

func Resp(u *memory.Utterance) *types.UtteranceResp {
	return &types.UtteranceResp{
		ID:         u.ID,
		CreatedAt:  u.CreatedAt.UnixMilli(),
		Text:       u.Text,
		Speaker:    u.Speaker,
		AudioURL:   u.AudioURL,
		DurationMs: u.DurationMs,
		Cached:     u.Cached,
		Played:     u.Played,
	}
}
