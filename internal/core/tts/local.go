package tts

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// LocalEngine runs the model runner as a subprocess for each request. The
// runner reads text on stdin and writes raw mono s16le PCM to stdout.
type LocalEngine struct {
	runner     string
	modelPath  string
	sampleRate int

	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewLocalEngine(runner, modelPath string, sampleRate int) (*LocalEngine, error) {
	if runner == "" {
		return nil, fmt.Errorf("runner path is required")
	}
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("local model not found: %s: %w", modelPath, err)
	}
	return &LocalEngine{
		runner:     runner,
		modelPath:  modelPath,
		sampleRate: sampleRate,
		command:    exec.CommandContext,
	}, nil
}

func (e *LocalEngine) Name() string { return "local" }

func (e *LocalEngine) Synthesize(ctx context.Context, req Request) (*Audio, error) {
	args := []string{
		"--model", e.modelPath,
		"--speaker", string(req.Speaker),
		"--sample-rate", strconv.Itoa(e.sampleRate),
		"--output-raw",
	}
	if req.IsSSML() {
		args = append(args, "--ssml")
	}

	cmd := e.command(ctx, e.runner, args...)
	cmd.Stdin = strings.NewReader(req.Text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("runner failed: %w, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, ErrNoAudio
	}
	return &Audio{PCM: stdout.Bytes(), SampleRate: e.sampleRate, Channels: 1}, nil
}
