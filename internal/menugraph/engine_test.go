package menugraph

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/vgau/boteditor/internal/graphmod"
)

type memoryStore struct {
	graph    *Graph
	replaced int
}

func (s *memoryStore) Load(context.Context) (*Graph, error) {
	if s.graph == nil {
		return New(), nil
	}
	return s.graph, nil
}

func (s *memoryStore) Replace(_ context.Context, g *Graph) error {
	s.graph = g
	s.replaced++
	return nil
}

func startEngine(t *testing.T, store Store, seed string) (*Engine, *graphmod.Canvas) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	doc := graphmod.NewDocument()
	canvas := graphmod.NewCanvas(graphmod.DefaultCanvasID)
	doc.Append(canvas)

	mod, err := Loader{Store: store, SeedPath: seed, Logger: logger}.Load(context.Background(), doc)
	require.NoError(t, err)
	eng := mod.(*Engine)
	require.NoError(t, eng.Init(context.Background()))
	require.NoError(t, eng.Start(graphmod.DefaultCanvasID))
	return eng, canvas
}

func TestEngineSeedsEmptyStoreFromBotData(t *testing.T) {
	store := &memoryStore{}
	eng, canvas := startEngine(t, store, "testdata/bot_data.json")
	require.Equal(t, 1, store.replaced)
	require.Equal(t, 7, eng.Graph().Len())
	require.True(t, canvas.Bound())

	out := canvas.Render(60, 20)
	require.Contains(t, out, "Admissions bot")
	require.Contains(t, out, "Applicants")
	require.Contains(t, out, "Is there a dormitory?")
}

func TestEngineSkipsSeedWhenStoreHasData(t *testing.T) {
	g := New()
	_, err := g.AddNode(KindMenuItem, "Existing", 0, 0)
	require.NoError(t, err)
	store := &memoryStore{graph: g}
	eng, _ := startEngine(t, store, "testdata/bot_data.json")
	require.Zero(t, store.replaced)
	require.Equal(t, 1, eng.Graph().Len())
}

func TestEngineMissingSeedFileStartsEmpty(t *testing.T) {
	store := &memoryStore{}
	_, canvas := startEngine(t, store, filepath.Join(t.TempDir(), "absent.json"))
	require.Zero(t, store.replaced)
	require.Contains(t, canvas.Render(80, 5), "No menu nodes yet")
}

func TestCanvasKeysActivateSelectedNode(t *testing.T) {
	_, canvas := startEngine(t, &memoryStore{}, "testdata/bot_data.json")

	cmd := canvas.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(graphmod.NodeActivatedMsg)
	require.True(t, ok)
	require.Equal(t, "Applicants", msg.Text)
	require.NotEmpty(t, msg.ID)

	require.Nil(t, canvas.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}))
	msg = canvas.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})().(graphmod.NodeActivatedMsg)
	require.Equal(t, "Programs", msg.Text)

	out := canvas.Render(60, 20)
	var cursorLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "▸") {
			cursorLine = line
		}
	}
	require.Contains(t, cursorLine, "Programs")
}

func TestStartRequiresInitAndKnownCanvas(t *testing.T) {
	doc := graphmod.NewDocument()
	mod, err := Loader{Store: &memoryStore{}}.Load(context.Background(), doc)
	require.NoError(t, err)
	require.ErrorIs(t, mod.Start(graphmod.DefaultCanvasID), graphmod.ErrNotInitialized)
	require.NoError(t, mod.Init(context.Background()))
	require.ErrorIs(t, mod.Start("missing"), graphmod.ErrCanvasNotFound)
}

func TestLoaderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Loader{Store: &memoryStore{}}.Load(ctx, graphmod.NewDocument())
	require.ErrorIs(t, err, context.Canceled)
}
