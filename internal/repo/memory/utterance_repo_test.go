package memory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtteranceRepo(t *testing.T) {
	r := NewUtteranceRepo()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"один", "два", "три"} {
		r.Save(&Utterance{ID: NewID(), Text: text, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}

	recent := r.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "три", recent[0].Text)
	assert.Equal(t, "два", recent[1].Text)

	got, ok := r.Get(recent[0].ID)
	require.True(t, ok)
	assert.Equal(t, "три", got.Text)

	_, ok = r.Get("utt_missing")
	assert.False(t, ok)
	assert.Len(t, r.Recent(10), 3)
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.True(t, strings.HasPrefix(id, "utt_"))
	assert.NotEqual(t, id, NewID())
}
