package graphmod

import (
	"context"
	"errors"
)

// DefaultCanvasID is the element id the graph tab gives its canvas.
const DefaultCanvasID = "editor_canvas"

var (
	ErrCanvasNotFound = errors.New("canvas not found")
	ErrNotInitialized = errors.New("module not initialized")
)

// Module is a loaded graph editor. Init must complete before Start.
type Module interface {
	Init(ctx context.Context) error
	Start(canvasID string) error
}

// Loader fetches and instantiates a Module. The module may look up
// elements of doc, typically its canvas, when started.
type Loader interface {
	Load(ctx context.Context, doc *Document) (Module, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, doc *Document) (Module, error)

func (f LoaderFunc) Load(ctx context.Context, doc *Document) (Module, error) { return f(ctx, doc) }

// NodeActivatedMsg is sent by a module when the user picks a node for
// editing. Text is the node's display text.
type NodeActivatedMsg struct {
	ID   string
	Text string
}
