package graphmod

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// State is the bootstrap phase of one mount.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	IndicatorID      = "loading"
	LoadingText      = "Loading editor..."
	loadErrorPrefix  = "Load error: "
	defaultLoadLimit = 30 * time.Second
)

// LoadedMsg reports the outcome of one bootstrap attempt. Gen ties it to the
// mount that started it.
type LoadedMsg struct {
	Gen    uint64
	Module Module
	Err    error
}

type Options struct {
	CanvasID string
	Timeout  time.Duration
	Logger   logrus.FieldLogger
}

// Bootstrap drives idle → loading → ready|failed for a single mount scope.
// All methods except the returned command run on the UI loop.
type Bootstrap struct {
	loader   Loader
	canvasID string
	timeout  time.Duration
	log      logrus.FieldLogger

	state     State
	gen       uint64
	cancel    context.CancelFunc
	doc       *Document
	indicator *Indicator
	canvas    *Canvas
	module    Module
	attempts  int
}

func NewBootstrap(loader Loader, opts Options) *Bootstrap {
	if opts.CanvasID == "" {
		opts.CanvasID = DefaultCanvasID
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultLoadLimit
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Bootstrap{loader: loader, canvasID: opts.CanvasID, timeout: opts.Timeout, log: opts.Logger}
}

func (b *Bootstrap) State() State          { return b.state }
func (b *Bootstrap) Document() *Document   { return b.doc }
func (b *Bootstrap) Indicator() *Indicator { return b.indicator }
func (b *Bootstrap) Canvas() *Canvas       { return b.canvas }
func (b *Bootstrap) Module() Module        { return b.module }
func (b *Bootstrap) Attempts() int         { return b.attempts }

// Mount builds a fresh document holding the loading indicator and the canvas
// and returns the command that loads, initializes and starts the module.
// Mounting outside the idle state is a no-op.
func (b *Bootstrap) Mount(parent context.Context) tea.Cmd {
	if b.state != StateIdle {
		return nil
	}
	if parent == nil {
		parent = context.Background()
	}
	b.doc = NewDocument()
	b.indicator = NewIndicator(IndicatorID, LoadingText)
	b.canvas = NewCanvas(b.canvasID)
	b.doc.Append(b.indicator)
	b.doc.Append(b.canvas)

	ctx, cancel := context.WithTimeout(parent, b.timeout)
	b.cancel = cancel
	b.gen++
	b.attempts++
	b.state = StateLoading

	gen, doc, loader, canvasID := b.gen, b.doc, b.loader, b.canvasID
	return func() tea.Msg {
		mod, err := run(ctx, loader, doc, canvasID)
		return LoadedMsg{Gen: gen, Module: mod, Err: err}
	}
}

func run(ctx context.Context, loader Loader, doc *Document, canvasID string) (Module, error) {
	if loader == nil {
		return nil, fmt.Errorf("load module: no loader configured")
	}
	mod, err := loader.Load(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("load module: %w", err)
	}
	if err := mod.Init(ctx); err != nil {
		return nil, fmt.Errorf("init module: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := mod.Start(canvasID); err != nil {
		return nil, fmt.Errorf("start module: %w", err)
	}
	return mod, nil
}

// Resolve applies msg if it belongs to the current loading attempt and
// reports whether it did.
func (b *Bootstrap) Resolve(msg LoadedMsg) bool {
	if msg.Gen != b.gen || b.state != StateLoading {
		return false
	}
	b.release()
	if msg.Err != nil {
		b.state = StateFailed
		b.indicator.SetText(loadErrorPrefix + msg.Err.Error())
		b.log.WithError(msg.Err).WithField("canvas", b.canvasID).Error("graph editor failed to start")
		return true
	}
	b.state = StateReady
	b.module = msg.Module
	b.indicator.Hide()
	b.log.WithField("canvas", b.canvasID).WithField("attempt", b.attempts).Info("graph editor started")
	return true
}

// Unmount aborts an in-flight load, drops any result still on its way and
// returns to idle so the next mount starts over.
func (b *Bootstrap) Unmount() {
	if b.state == StateLoading {
		b.log.WithField("canvas", b.canvasID).Debug("graph editor load cancelled by unmount")
	}
	b.release()
	b.gen++
	b.state = StateIdle
	b.module = nil
	b.doc, b.indicator, b.canvas = nil, nil, nil
}

func (b *Bootstrap) release() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}
