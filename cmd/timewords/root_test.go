package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberowl/owl-tts/internal/core/timewords"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(func() time.Time { return time.Date(2025, 3, 8, 17, 40, 0, 0, time.UTC) })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"01:45", "--style", "spoken"}, "без ч+етверти два\n"},
		{[]string{"01:45", "-s", "spoken", "--plain"}, "без четверти два\n"},
		{[]string{"00:00"}, "п+олночь\n"},
		{nil, "пять час+ов с+орок мин+ут\n"},
		{[]string{"--style=spoken"}, "без дв+адцать мин+ут шесть\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, "25:00")
	assert.ErrorIs(t, err, timewords.ErrOutOfRange)

	_, err = execute(t, "07:00", "--style", "poetic")
	assert.ErrorIs(t, err, timewords.ErrUnknownStyle)

	_, err = execute(t, "07:00", "08:00")
	assert.Error(t, err)
}

func TestExamples(t *testing.T) {
	out, err := execute(t, "examples", "--plain")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(exampleTimes)+1)
	assert.True(t, strings.HasPrefix(lines[0], "TIME"))
	assert.Contains(t, out, "половина два")
	assert.NotContains(t, out, "+")
}
