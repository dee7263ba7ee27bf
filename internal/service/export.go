package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vgau/boteditor/internal/menugraph"
)

// Format names an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "json" or "csv" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Exporter writes the stored menu graph as a bot_data file.
type Exporter struct {
	Store menugraph.Store
	Dir   string
	Now   func() time.Time
}

// Export writes <Dir>/bot_data-<timestamp>.<format> and returns its path.
func (s *Exporter) Export(ctx context.Context, format Format) (string, error) {
	write, err := writerFor(format)
	if err != nil {
		return "", err
	}
	g, err := s.Store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load graph: %w", err)
	}
	data := menugraph.Export(g)

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("bot_data-%s.%s", s.now().Format("20060102-150405"), format))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := write(f, data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Exporter) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func writerFor(format Format) (func(io.Writer, menugraph.BotData) error, error) {
	switch format {
	case FormatJSON:
		return menugraph.WriteJSON, nil
	case FormatCSV:
		return menugraph.WriteCSV, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
