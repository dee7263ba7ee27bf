package menugraph

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vgau/boteditor/internal/graphmod"
)

var (
	viewTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	viewHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	viewCursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("#313244")).Foreground(lipgloss.Color("#a6e3a1"))
)

type treeRow struct {
	node   *Node
	depth  int
	header string
}

// treeView draws the graph as an indented outline and moves a cursor over
// its nodes.
type treeView struct {
	graph  *Graph
	rows   []treeRow
	cursor int
}

func newTreeView(g *Graph) *treeView {
	v := &treeView{graph: g}
	v.rebuild()
	return v
}

func (v *treeView) rebuild() {
	v.rows = v.rows[:0]
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		v.rows = append(v.rows, treeRow{node: n, depth: depth})
		for _, d := range v.graph.Children(n.ID, PortDocuments) {
			v.rows = append(v.rows, treeRow{node: d, depth: depth + 1})
		}
		for _, c := range v.graph.Children(n.ID, PortSubMenu) {
			walk(c, depth+1)
		}
	}
	if roots := v.graph.Roots(); len(roots) > 0 {
		v.rows = append(v.rows, treeRow{header: "Main menu"})
		for _, r := range roots {
			walk(r, 1)
		}
	}
	if faq := v.graph.FAQ(); len(faq) > 0 {
		v.rows = append(v.rows, treeRow{header: "FAQ"})
		for _, n := range faq {
			v.rows = append(v.rows, treeRow{node: n, depth: 1})
		}
	}
	v.cursor = v.step(-1, 1)
}

// step returns the next node row from start in direction dir, or the
// current cursor when there is none.
func (v *treeView) step(start, dir int) int {
	for i := start + dir; i >= 0 && i < len(v.rows); i += dir {
		if v.rows[i].node != nil {
			return i
		}
	}
	return v.cursor
}

func (v *treeView) Selected() (*Node, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) || v.rows[v.cursor].node == nil {
		return nil, false
	}
	return v.rows[v.cursor].node, true
}

func (v *treeView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		v.cursor = v.step(v.cursor, 1)
	case "k", "up":
		v.cursor = v.step(v.cursor, -1)
	case "enter", "e":
		n, ok := v.Selected()
		if !ok {
			return nil
		}
		id, text := n.ID, n.Title
		return func() tea.Msg { return graphmod.NodeActivatedMsg{ID: id, Text: text} }
	}
	return nil
}

func (v *treeView) Render(width, height int) string {
	lines := []string{viewTitleStyle.Render(ansi.Truncate(v.graph.Title, width, ""))}
	if len(v.rows) == 0 {
		lines = append(lines, "", "No menu nodes yet. Import bot data with `boteditor import FILE`.")
		return strings.Join(lines, "\n")
	}
	avail := max(1, height-1)
	offset := 0
	if v.cursor >= avail {
		offset = v.cursor - avail + 1
	}
	end := min(len(v.rows), offset+avail)
	for i := offset; i < end; i++ {
		row := v.rows[i]
		if row.node == nil {
			lines = append(lines, viewHeaderStyle.Render(row.header))
			continue
		}
		line := ansi.Truncate(strings.Repeat("  ", row.depth)+kindGlyph(row.node.Kind)+" "+row.node.Title, max(1, width-2), "…")
		if i == v.cursor {
			lines = append(lines, viewCursorStyle.Render("▸ "+line))
			continue
		}
		lines = append(lines, "  "+line)
	}
	return strings.Join(lines, "\n")
}

func kindGlyph(k NodeKind) string {
	switch k {
	case KindMenuItem:
		return "[+]"
	case KindDocument:
		return "[d]"
	case KindFAQ:
		return "[?]"
	}
	return "[ ]"
}
