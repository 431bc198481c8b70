package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ModelManager makes sure the local model file exists, downloading it when
// downloads are enabled.
type ModelManager struct {
	URL      string
	Path     string
	Download bool
	Client   *http.Client
	Logger   *zap.Logger
}

func (m *ModelManager) Ensure(ctx context.Context) error {
	if _, err := os.Stat(m.Path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if !m.Download {
		return fmt.Errorf("local model not found: %s", m.Path)
	}
	if m.Logger != nil {
		m.Logger.Info("downloading model", zap.String("url", m.URL), zap.String("path", m.Path))
	}
	return m.download(ctx)
}

func (m *ModelManager) download(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(m.Path), 0o755); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		return err
	}
	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("model download failed: HTTP %d %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	tmp := m.Path + ".download"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	n, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmp)
		return errors.Join(copyErr, closeErr)
	}
	if n == 0 {
		_ = os.Remove(tmp)
		return fmt.Errorf("downloaded empty model payload")
	}
	if err := os.Rename(tmp, m.Path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
