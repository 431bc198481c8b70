package audio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyberowl/owl-tts/internal/core/tts"
)

func TestToFloat32(t *testing.T) {
	got := ToFloat32([]byte{0x00, 0x00, 0x00, 0x40, 0x00, 0x80, 0xff})
	assert.Equal(t, []float32{0, 0.5, -1}, got)
}

func TestNopPlayer(t *testing.T) {
	var p tts.Player = NopPlayer{}
	assert.NoError(t, p.Play(context.Background(), &tts.Audio{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Play(ctx, &tts.Audio{}), context.Canceled)
}

func TestPortAudioPlayer_CanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPortAudioPlayer("", nil)
	assert.ErrorIs(t, p.Play(ctx, &tts.Audio{SampleRate: 48000}), context.Canceled)
}
