// Package audio plays synthesized speech on the local sound device.
package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/gordonklaus/portaudio"
	"go.uber.org/zap"

	"github.com/cyberowl/owl-tts/internal/core/tts"
)

const framesPerBuffer = 2048

// PortAudioPlayer plays one utterance at a time; concurrent callers queue on
// the mutex in arrival order of the scheduler.
type PortAudioPlayer struct {
	mu     sync.Mutex
	device string
	log    *zap.Logger
}

func NewPortAudioPlayer(device string, log *zap.Logger) *PortAudioPlayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &PortAudioPlayer{device: device, log: log.With(zap.String("component", "audio"))}
}

func (p *PortAudioPlayer) Play(ctx context.Context, a *tts.Audio) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initialize portaudio: %w", err)
	}
	defer portaudio.Terminate()

	dev, err := p.outputDevice()
	if err != nil {
		return err
	}
	channels := a.Channels
	if channels <= 0 {
		channels = 1
	}
	buf := make([]float32, framesPerBuffer*channels)
	params := portaudio.LowLatencyParameters(nil, dev)
	params.Output.Channels = channels
	params.SampleRate = float64(a.SampleRate)
	params.FramesPerBuffer = framesPerBuffer

	stream, err := portaudio.OpenStream(params, buf)
	if err != nil {
		return fmt.Errorf("open output stream: %w", err)
	}
	defer stream.Close()
	if err := stream.Start(); err != nil {
		return fmt.Errorf("start output stream: %w", err)
	}
	defer stream.Stop()

	samples := ToFloat32(a.PCM)
	p.log.Debug("playing", zap.Int("samples", len(samples)), zap.Int("rate", a.SampleRate))
	for pos := 0; pos < len(samples); pos += len(buf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := copy(buf, samples[pos:])
		clear(buf[n:])
		if err := stream.Write(); err != nil {
			return fmt.Errorf("write output stream: %w", err)
		}
	}
	return nil
}

func (p *PortAudioPlayer) outputDevice() (*portaudio.DeviceInfo, error) {
	if p.device == "" {
		return portaudio.DefaultOutputDevice()
	}
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		if d.MaxOutputChannels > 0 && strings.Contains(d.Name, p.device) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("output device %q not found", p.device)
}

// ToFloat32 converts s16le PCM to samples in [-1, 1).
func ToFloat32(pcm []byte) []float32 {
	out := make([]float32, len(pcm)/2)
	for i := range out {
		out[i] = float32(int16(binary.LittleEndian.Uint16(pcm[2*i:]))) / 32768.0
	}
	return out
}

// NopPlayer discards audio; used when sound output is disabled.
type NopPlayer struct{}

func (NopPlayer) Play(ctx context.Context, _ *tts.Audio) error {
	return ctx.Err()
}
