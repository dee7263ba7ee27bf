package menugraph

import (
	"bytes"
	"encoding/csv"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func importSample(t *testing.T) *Graph {
	t.Helper()
	f, err := os.Open("testdata/bot_data.json")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	data, err := ReadBotData(f)
	require.NoError(t, err)
	g := New()
	require.NoError(t, Import(g, data))
	return g
}

func TestImportBuildsMenuTree(t *testing.T) {
	g := importSample(t)
	require.Equal(t, "Admissions bot", g.Title)
	// 3 roots + 2 submenus + 1 document + 1 faq
	require.Equal(t, 7, g.Len())

	roots := g.Roots()
	require.Len(t, roots, 3)
	require.Equal(t, "Applicants", roots[0].Title)
	require.Equal(t, unnamedMenu, roots[2].Title)
	require.Equal(t, `{"phone": "+7 000 000"}`, roots[1].Param("data"))

	subs := g.Children(roots[0].ID, PortSubMenu)
	require.Len(t, subs, 2)
	require.Equal(t, "Programs", subs[0].Title)
	require.Equal(t, roots[0].X+columnStep, subs[0].X)
	require.Equal(t, roots[0].Y+menuRowStep, subs[1].Y)

	docs := g.Children(subs[0].ID, PortDocuments)
	require.Len(t, docs, 1)
	require.Equal(t, KindDocument, docs[0].Kind)
	require.Equal(t, "https://example.org/programs.pdf", docs[0].Param("url"))

	faq := g.FAQ()
	require.Len(t, faq, 1)
	require.Equal(t, "housing, campus", faq[0].Param("tags"))
	require.Equal(t, faqOriginY, faq[0].Y)
}

func TestExportRoundTripsMenuShape(t *testing.T) {
	g := importSample(t)
	out := Export(g)
	require.Equal(t, "Admissions bot", out.Title)
	require.Len(t, out.MainMenu, 3)
	require.Equal(t, "applicants", out.MainMenu[0].CallbackData)
	require.Len(t, out.MainMenu[0].Submenu, 2)
	require.Len(t, out.MainMenu[0].Submenu[0].Documents, 1)
	require.Equal(t, "Applications close on 20 July.", out.MainMenu[0].Submenu[1].TextContent)
	require.JSONEq(t, `{"phone": "+7 000 000"}`, string(out.MainMenu[1].Data))
	require.Equal(t, []string{"housing", "campus"}, out.FAQ[0].Tags)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, out))
	again, err := ReadBotData(&buf)
	require.NoError(t, err)
	require.Equal(t, out.MainMenu[0].Submenu[0].Documents, again.MainMenu[0].Submenu[0].Documents)
}

func TestWriteCSVFlattensPaths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Export(importSample(t))))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, csvHeader, records[0])
	require.Len(t, records, 1+7)

	paths := make([]string, 0, len(records)-1)
	for _, r := range records[1:] {
		paths = append(paths, r[0])
	}
	require.Contains(t, paths, "Applicants / Programs / Program list")
	require.Contains(t, paths, "Applicants / Deadlines")
	require.Contains(t, paths, "FAQ / Is there a dormitory?")
}

func TestReadBotDataRejectsGarbage(t *testing.T) {
	_, err := ReadBotData(bytes.NewBufferString("{not json"))
	require.Error(t, err)
}
