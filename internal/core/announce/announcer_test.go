package announce

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberowl/owl-tts/internal/core/timewords"
)

type recorder struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (r *recorder) SpeakText(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	return r.err
}

func (r *recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

func fixedClock(h, m int) func() time.Time {
	return func() time.Time { return time.Date(2025, 6, 1, h, m, 0, 0, time.Local) }
}

func TestAnnouncer_Text(t *testing.T) {
	a := &Announcer{Style: timewords.Spoken, Clock: fixedClock(17, 40)}
	got, err := a.Text()
	require.NoError(t, err)
	assert.Equal(t, "без дв+адцать мин+ут шесть", got)

	a.Style = timewords.Formal
	got, err = a.Text()
	require.NoError(t, err)
	assert.Equal(t, "пять час+ов с+орок мин+ут", got)
}

func TestAnnouncer_Announce(t *testing.T) {
	rec := &recorder{}
	a := &Announcer{Style: timewords.Spoken, Clock: fixedClock(13, 30), Speaker: rec}
	require.NoError(t, a.Announce(context.Background()))
	assert.Equal(t, []string{"полов+ина два"}, rec.Texts())

	rec.err = errors.New("busy")
	assert.Error(t, a.Announce(context.Background()))
}

func TestAnnouncer_Run(t *testing.T) {
	rec := &recorder{}
	a := &Announcer{Interval: 10 * time.Millisecond, Clock: fixedClock(0, 0), Speaker: rec}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(rec.Texts()) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, "п+олночь", rec.Texts()[0])
}

func TestAnnouncer_RunDisabled(t *testing.T) {
	a := &Announcer{Speaker: &recorder{}}
	a.Run(context.Background())
}
