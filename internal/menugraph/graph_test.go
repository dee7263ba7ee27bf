package menugraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectValidatesPorts(t *testing.T) {
	g := New()
	menu, err := g.AddNode(KindMenuItem, "Menu", 0, 0)
	require.NoError(t, err)
	child, err := g.AddNode(KindMenuItem, "Child", 0, 0)
	require.NoError(t, err)
	other, err := g.AddNode(KindMenuItem, "Other", 0, 0)
	require.NoError(t, err)
	faq, err := g.AddNode(KindFAQ, "Q", 0, 0)
	require.NoError(t, err)

	require.ErrorIs(t, g.Connect(menu.ID, "nope", child.ID, PortParent), ErrUnknownPort)
	require.ErrorIs(t, g.Connect(menu.ID, PortSubMenu, faq.ID, PortParent), ErrUnknownPort)
	require.ErrorIs(t, g.Connect(menu.ID, PortSubMenu, menu.ID, PortParent), ErrSelfLoop)
	require.ErrorIs(t, g.Connect("missing", PortSubMenu, child.ID, PortParent), ErrUnknownNode)

	require.NoError(t, g.Connect(menu.ID, PortSubMenu, child.ID, PortParent))
	require.ErrorIs(t, g.Connect(other.ID, PortSubMenu, child.ID, PortParent), ErrInputTaken)

	parent, ok := g.Parent(child.ID)
	require.True(t, ok)
	require.Equal(t, menu.ID, parent.ID)
	require.Equal(t, []*Node{child}, g.Children(menu.ID, PortSubMenu))
	require.ElementsMatch(t, []*Node{menu, other}, g.Roots())
	require.Equal(t, []*Node{faq}, g.FAQ())
}

func TestConnectRejectsCycles(t *testing.T) {
	g := New()
	a, err := g.AddNode(KindMenuItem, "A", 0, 0)
	require.NoError(t, err)
	b, err := g.AddNode(KindMenuItem, "B", 0, 0)
	require.NoError(t, err)
	c, err := g.AddNode(KindMenuItem, "C", 0, 0)
	require.NoError(t, err)

	require.NoError(t, g.Connect(a.ID, PortSubMenu, b.ID, PortParent))
	require.ErrorIs(t, g.Connect(b.ID, PortSubMenu, a.ID, PortParent), ErrCycle)

	require.NoError(t, g.Connect(b.ID, PortSubMenu, c.ID, PortParent))
	require.ErrorIs(t, g.Connect(c.ID, PortSubMenu, a.ID, PortParent), ErrCycle)

	require.Equal(t, []*Node{a}, g.Roots())
	require.Len(t, Export(g).MainMenu, 1)
}

func TestAddNodeInitializesKindParams(t *testing.T) {
	g := New()
	doc, err := g.AddNode(KindDocument, "Doc", 1, 2)
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)
	require.Contains(t, doc.Params, "callback_data")
	require.Contains(t, doc.Params, "url")

	_, err = g.AddNode(NodeKind("widget"), "x", 0, 0)
	require.ErrorIs(t, err, ErrUnknownKind)

	require.ErrorIs(t, g.Insert(&Node{ID: doc.ID, Kind: KindDocument}), ErrDuplicateID)
}
