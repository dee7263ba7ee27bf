package core

// EditTarget identifies the menu node currently being edited. Only Text is
// guaranteed; ID is empty when the producer has no stable identifier.
type EditTarget struct {
	ID   string
	Text string
}

// EditCell holds at most one EditTarget. The shell owns the only cell and is
// its sole writer; tabs read it through Model.EditingNode.
type EditCell struct {
	target *EditTarget
}

func (c EditCell) Get() (EditTarget, bool) {
	if c.target == nil {
		return EditTarget{}, false
	}
	return *c.target, true
}

func (c *EditCell) set(t *EditTarget) {
	if t == nil {
		c.target = nil
		return
	}
	cp := *t
	c.target = &cp
}

func (m Model) EditingNode() (EditTarget, bool) {
	return m.edit.Get()
}

// SetEditingNode replaces the editing node. Passing nil clears it.
func (m *Model) SetEditingNode(t *EditTarget) {
	m.edit.set(t)
}
