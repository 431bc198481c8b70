package tts

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Speaker string

const (
	SpeakerAidar   Speaker = "aidar"
	SpeakerBaya    Speaker = "baya"
	SpeakerKseniya Speaker = "kseniya"
	SpeakerXenia   Speaker = "xenia"
	SpeakerRandom  Speaker = "random"
)

var (
	ErrEmptyText      = errors.New("text is required")
	ErrUnknownSpeaker = errors.New("unknown speaker")
	ErrNoAudio        = errors.New("engine returned no audio")
)

// ParseSpeaker maps a voice name to a Speaker; empty names fall back to def.
func ParseSpeaker(name string, def Speaker) (Speaker, error) {
	switch s := Speaker(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return def, nil
	case SpeakerAidar, SpeakerBaya, SpeakerKseniya, SpeakerXenia, SpeakerRandom:
		return s, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownSpeaker)
}

type Request struct {
	Text    string
	Speaker Speaker
}

// IsSSML reports whether the text should be passed to the engine as SSML.
func (r Request) IsSSML() bool {
	return strings.Contains(r.Text, "<speak>")
}

// Audio is 16-bit little-endian PCM.
type Audio struct {
	PCM        []byte
	SampleRate int
	Channels   int
}

func (a *Audio) Duration() time.Duration {
	if a == nil || a.SampleRate <= 0 {
		return 0
	}
	ch := a.Channels
	if ch <= 0 {
		ch = 1
	}
	frames := len(a.PCM) / (2 * ch)
	return time.Duration(frames) * time.Second / time.Duration(a.SampleRate)
}

type Provider interface {
	Name() string
	Synthesize(ctx context.Context, req Request) (*Audio, error)
}

// Key identifies a synthesized utterance for caching and file naming.
func Key(engine string, sampleRate int, req Request) string {
	h := sha1.New()
	h.Write([]byte(engine + "|" + string(req.Speaker) + "|" + strconv.Itoa(sampleRate) + "|" + req.Text))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
