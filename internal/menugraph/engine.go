package menugraph

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vgau/boteditor/internal/graphmod"
)

// Store persists a whole graph.
type Store interface {
	Load(ctx context.Context) (*Graph, error)
	Replace(ctx context.Context, g *Graph) error
}

// Loader instantiates an Engine bound to a host document.
type Loader struct {
	Store Store
	// SeedPath names a bot_data.json imported when the store is empty.
	SeedPath string
	Logger   logrus.FieldLogger
}

func (l Loader) Load(ctx context.Context, doc *graphmod.Document) (graphmod.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.Store == nil {
		return nil, errors.New("menugraph: no store configured")
	}
	if doc == nil {
		return nil, errors.New("menugraph: no host document")
	}
	log := l.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{store: l.Store, seedPath: l.SeedPath, doc: doc, log: log.WithField("module", "menugraph")}, nil
}

// Engine is the menugraph implementation of graphmod.Module.
type Engine struct {
	store    Store
	seedPath string
	doc      *graphmod.Document
	log      logrus.FieldLogger
	graph    *Graph
	view     *treeView
}

func (e *Engine) Init(ctx context.Context) error {
	g, err := e.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	if g.Len() == 0 && e.seedPath != "" {
		seeded, err := seedFromFile(e.seedPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			e.log.WithField("path", e.seedPath).Debug("no seed file, starting with an empty graph")
		case err != nil:
			return err
		default:
			if err := e.store.Replace(ctx, seeded); err != nil {
				return fmt.Errorf("save seeded graph: %w", err)
			}
			e.log.WithField("path", e.seedPath).WithField("nodes", seeded.Len()).Info("graph seeded from bot data")
			g = seeded
		}
	}
	e.graph = g
	return nil
}

func (e *Engine) Start(canvasID string) error {
	if e.graph == nil {
		return graphmod.ErrNotInitialized
	}
	canvas, err := e.doc.Canvas(canvasID)
	if err != nil {
		return fmt.Errorf("canvas %q: %w", canvasID, err)
	}
	e.view = newTreeView(e.graph)
	canvas.Attach(e.view, e.view)
	return nil
}

// Graph returns the loaded graph, nil before Init.
func (e *Engine) Graph() *Graph {
	return e.graph
}

func seedFromFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := ReadBotData(f)
	if err != nil {
		return nil, err
	}
	g := New()
	if err := Import(g, data); err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return g, nil
}
