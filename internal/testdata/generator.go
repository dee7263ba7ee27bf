// Package testdata builds sample menus for demos and tests.
package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vgau/boteditor/internal/menugraph"
)

// Sections is the demo main menu. Entries with " > " are submenus of the
// named parent.
var Sections = []string{
	"Applicants",
	"Applicants > Programs",
	"Applicants > Deadlines",
	"Applicants > Tuition",
	"Students",
	"Students > Schedule",
	"Students > Library",
	"Students > Housing",
	"Contacts",
	"Contacts > Admissions office",
	"Contacts > Dean's office",
}

var faqQuestions = []string{
	"Is there a dormitory?",
	"How do I get a student card?",
	"When does the academic year start?",
	"Can I transfer from another university?",
}

// BotData returns the demo menu. rng picks how many documents each submenu
// carries; pass a seeded source for repeatable output.
func BotData(rng *rand.Rand) menugraph.BotData {
	data := menugraph.BotData{Title: "Demo admissions bot"}
	index := map[string]int{}
	for _, s := range Sections {
		parent, name, nested := strings.Cut(s, " > ")
		if !nested {
			index[parent] = len(data.MainMenu)
			data.MainMenu = append(data.MainMenu, menugraph.MenuItem{
				Text:         parent,
				CallbackData: callback(parent),
				Description:  parent + " information",
			})
			continue
		}
		item := menugraph.MenuItem{
			Text:         name,
			CallbackData: callback(parent + "_" + name),
			TextContent:  fmt.Sprintf("%s: details for %s.", parent, strings.ToLower(name)),
		}
		for d := 0; d < rng.Intn(3); d++ {
			item.Documents = append(item.Documents, menugraph.DocumentItem{
				Text:         fmt.Sprintf("%s document %d", name, d+1),
				CallbackData: callback(fmt.Sprintf("%s_doc_%d", name, d+1)),
				URL:          fmt.Sprintf("https://example.org/docs/%s-%d.pdf", callback(name), d+1),
			})
		}
		root := &data.MainMenu[index[parent]]
		root.Submenu = append(root.Submenu, item)
	}
	for _, q := range faqQuestions {
		data.FAQ = append(data.FAQ, menugraph.FAQItem{
			Question: q,
			Answer:   "See the student office for details.",
			Tags:     []string{"demo"},
		})
	}
	return data
}

// Seed replaces the stored graph with the demo menu and returns its node count.
func Seed(ctx context.Context, store menugraph.Store, seed int64) (int, error) {
	g := menugraph.New()
	if err := menugraph.Import(g, BotData(rand.New(rand.NewSource(seed)))); err != nil {
		return 0, err
	}
	if err := store.Replace(ctx, g); err != nil {
		return 0, err
	}
	return g.Len(), nil
}

func callback(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
