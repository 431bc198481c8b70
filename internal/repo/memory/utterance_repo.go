package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Utterance struct {
	ID         string
	CreatedAt  time.Time
	Text       string
	Speaker    string
	Key        string
	AudioURL   string
	DurationMs int64
	Cached     bool
	Played     bool
}

// UtteranceRepo keeps the history of spoken utterances in memory.
type UtteranceRepo struct {
	m sync.Map
}

func NewUtteranceRepo() *UtteranceRepo {
	return &UtteranceRepo{}
}

// NewID returns a fresh utterance id.
func NewID() string {
	return "utt_" + uuid.NewString()
}

func (r *UtteranceRepo) Save(u *Utterance) {
	r.m.Store(u.ID, u)
}

func (r *UtteranceRepo) Get(id string) (*Utterance, bool) {
	v, ok := r.m.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*Utterance), true
}

// Recent returns up to n utterances, newest first.
func (r *UtteranceRepo) Recent(n int) []*Utterance {
	var all []*Utterance
	r.m.Range(func(_, v any) bool {
		all = append(all, v.(*Utterance))
		return true
	})
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
