package tts

import (
	"context"
	"crypto/tls"
	"net/http"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/cyberowl/owl-tts/internal/core/timewords"
)

const (
	geminiSampleRate = 24000
	geminiAttempts   = 3
)

var geminiBackoff = 300 * time.Millisecond

// GeminiEngine synthesizes speech with the Gemini API audio modality.
type GeminiEngine struct {
	c     *genai.Client
	model string
	voice string
}

type GeminiOptions struct {
	APIKey  string
	Model   string
	Voice   string
	BaseURL string
}

func NewGeminiEngine(ctx context.Context, opts GeminiOptions) (*GeminiEngine, error) {
	tr := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		TLSClientConfig:   &tls.Config{MinVersion: tls.VersionTLS12},
		ForceAttemptHTTP2: false,
		MaxIdleConns:      100,
		IdleConnTimeout:   90 * time.Second,
	}
	hc := &http.Client{Transport: tr, Timeout: 60 * time.Second}
	reqTimeout := 45 * time.Second
	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    opts.BaseURL,
			APIVersion: "v1beta",
			Timeout:    &reqTimeout,
		},
	})
	if err != nil {
		return nil, err
	}
	return &GeminiEngine{c: cl, model: opts.Model, voice: opts.Voice}, nil
}

func (g *GeminiEngine) Name() string { return "gemini" }

// Synthesize ignores req.Speaker; the prebuilt voice is fixed per engine.
// Stress marks are removed since the API reads them literally.
func (g *GeminiEngine) Synthesize(ctx context.Context, req Request) (*Audio, error) {
	text := timewords.StripStress(req.Text)
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			LanguageCode: "ru-RU",
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	}
	contents := []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: text}}}}

	var lastErr error
	for i := 0; i < geminiAttempts; i++ {
		resp, err := g.c.Models.GenerateContent(ctx, g.model, contents, cfg)
		if err != nil {
			lastErr = err
			if !retriable(err) {
				return nil, err
			}
		} else if a, ok := audioFromResponse(resp); ok {
			return a, nil
		} else {
			lastErr = ErrNoAudio
		}
		if i == geminiAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(geminiBackoff * time.Duration(i+1)):
		}
	}
	return nil, lastErr
}

func audioFromResponse(resp *genai.GenerateContentResponse) (*Audio, bool) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && len(p.InlineData.Data) > 0 {
				return &Audio{
					PCM:        p.InlineData.Data,
					SampleRate: rateFromMIME(p.InlineData.MIMEType),
					Channels:   1,
				}, true
			}
		}
	}
	return nil, false
}

// rateFromMIME reads the rate parameter of "audio/L16;codec=pcm;rate=24000".
func rateFromMIME(mime string) int {
	for _, param := range strings.Split(mime, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
		if ok && k == "rate" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
	}
	return geminiSampleRate
}

func retriable(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "unexpected EOF") ||
		strings.Contains(s, "timeout") ||
		strings.Contains(s, "RST_STREAM") ||
		strings.Contains(s, "connection reset")
}
