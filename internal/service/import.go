package service

import (
	"context"
	"fmt"
	"os"

	"github.com/vgau/boteditor/internal/menugraph"
)

// Importer replaces the stored graph with the contents of a bot_data.json.
type Importer struct {
	Store menugraph.Store
}

// ImportFile returns the number of nodes now stored.
func (s *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	data, err := menugraph.ReadBotData(f)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	g := menugraph.New()
	if err := menugraph.Import(g, data); err != nil {
		return 0, fmt.Errorf("import %s: %w", path, err)
	}
	if err := s.Store.Replace(ctx, g); err != nil {
		return 0, fmt.Errorf("store graph: %w", err)
	}
	return g.Len(), nil
}
