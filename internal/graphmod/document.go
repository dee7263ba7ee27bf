package graphmod

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type ElementKind string

const (
	KindIndicator ElementKind = "indicator"
	KindCanvas    ElementKind = "canvas"
)

// Element is a node of a Document.
type Element interface {
	ElementID() string
	Kind() ElementKind
}

// Document is the container the graph tab hands to a module. It is shared
// between the UI loop and the module's loader goroutine.
type Document struct {
	mu       sync.RWMutex
	elements []Element
}

func NewDocument() *Document {
	return &Document{}
}

// Append adds el after existing elements.
func (d *Document) Append(el Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements = append(d.elements, el)
}

// Elements returns a snapshot in insertion order.
func (d *Document) Elements() []Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Element, len(d.elements))
	copy(out, d.elements)
	return out
}

func (d *Document) ByID(id string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, el := range d.elements {
		if el.ElementID() == id {
			return el, true
		}
	}
	return nil, false
}

// Canvas resolves id to a canvas element.
func (d *Document) Canvas(id string) (*Canvas, error) {
	el, ok := d.ByID(id)
	if !ok {
		return nil, ErrCanvasNotFound
	}
	c, ok := el.(*Canvas)
	if !ok {
		return nil, ErrCanvasNotFound
	}
	return c, nil
}

// Indicator is the loading indicator shown while a module boots.
type Indicator struct {
	mu      sync.RWMutex
	id      string
	text    string
	visible bool
}

func NewIndicator(id, text string) *Indicator {
	return &Indicator{id: id, text: text, visible: true}
}

func (i *Indicator) ElementID() string { return i.id }
func (i *Indicator) Kind() ElementKind { return KindIndicator }

func (i *Indicator) Text() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.text
}

func (i *Indicator) SetText(text string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.text = text
}

func (i *Indicator) Visible() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.visible
}

func (i *Indicator) Hide() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.visible = false
}

// Renderer paints a module's view into a canvas-sized cell block.
type Renderer interface {
	Render(width, height int) string
}

// InputHandler receives key input while the canvas is live.
type InputHandler interface {
	HandleKey(msg tea.KeyMsg) tea.Cmd
}

// Canvas is a drawing surface that fills its container. A module binds to
// it in Start by attaching a renderer and, optionally, an input handler.
type Canvas struct {
	mu       sync.RWMutex
	id       string
	renderer Renderer
	input    InputHandler
}

func NewCanvas(id string) *Canvas {
	return &Canvas{id: id}
}

func (c *Canvas) ElementID() string { return c.id }
func (c *Canvas) Kind() ElementKind { return KindCanvas }

func (c *Canvas) Attach(r Renderer, in InputHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderer = r
	c.input = in
}

func (c *Canvas) Bound() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renderer != nil
}

// Render draws the attached renderer, or nothing when the canvas is unbound.
func (c *Canvas) Render(width, height int) string {
	c.mu.RLock()
	r := c.renderer
	c.mu.RUnlock()
	if r == nil || width <= 0 || height <= 0 {
		return ""
	}
	return r.Render(width, height)
}

func (c *Canvas) HandleKey(msg tea.KeyMsg) tea.Cmd {
	c.mu.RLock()
	in := c.input
	c.mu.RUnlock()
	if in == nil {
		return nil
	}
	return in.HandleKey(msg)
}
