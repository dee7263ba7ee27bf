package menugraph

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const DefaultTitle = "Telegram Bot Menu"

// BotData mirrors bot_data.json as read by the bot.
type BotData struct {
	Title    string     `json:"title"`
	MainMenu []MenuItem `json:"main_menu"`
	FAQ      []FAQItem  `json:"faq,omitempty"`
}

type MenuItem struct {
	Text         string          `json:"text"`
	CallbackData string          `json:"callback_data,omitempty"`
	Description  string          `json:"description,omitempty"`
	URL          string          `json:"url,omitempty"`
	TextContent  string          `json:"text_content,omitempty"`
	Data         json.RawMessage `json:"data,omitempty"`
	Submenu      []MenuItem      `json:"submenu,omitempty"`
	Documents    []DocumentItem  `json:"documents,omitempty"`
}

type DocumentItem struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
}

type FAQItem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags,omitempty"`
}

// Layout offsets used when placing imported nodes.
const (
	columnStep   = 300
	menuRowStep  = 120
	docRowStep   = 80
	faqOriginX   = 100
	faqOriginY   = 500
	faqRowStep   = 100
	menuOriginX  = 100
	menuOriginY  = 100
	unnamedMenu  = "Unnamed Menu Item"
	unnamedDoc   = "Unnamed Document"
	unnamedQuest = "Unnamed Question"
)

// ReadBotData decodes bot_data.json.
func ReadBotData(r io.Reader) (BotData, error) {
	var data BotData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return BotData{}, fmt.Errorf("decode bot data: %w", err)
	}
	return data, nil
}

// Import appends the menu tree and FAQ entries of data to g.
func Import(g *Graph, data BotData) error {
	if strings.TrimSpace(data.Title) != "" {
		g.Title = data.Title
	}
	if g.Title == "" {
		g.Title = DefaultTitle
	}
	for i, item := range data.MainMenu {
		if _, err := importMenuItem(g, item, "", menuOriginX, menuOriginY+i*menuRowStep); err != nil {
			return err
		}
	}
	for i, faq := range data.FAQ {
		title := strings.TrimSpace(faq.Question)
		if title == "" {
			title = unnamedQuest
		}
		n, err := g.AddNode(KindFAQ, title, faqOriginX, faqOriginY+i*faqRowStep)
		if err != nil {
			return err
		}
		n.SetParam("answer", faq.Answer)
		n.SetParam("tags", strings.Join(faq.Tags, ", "))
	}
	return nil
}

func importMenuItem(g *Graph, item MenuItem, parent string, x, y int) (*Node, error) {
	title := item.Text
	if strings.TrimSpace(title) == "" {
		title = unnamedMenu
	}
	n, err := g.AddNode(KindMenuItem, title, x, y)
	if err != nil {
		return nil, err
	}
	n.SetParam("callback_data", item.CallbackData)
	n.SetParam("description", item.Description)
	n.SetParam("url", item.URL)
	n.SetParam("text_content", item.TextContent)
	if len(item.Data) > 0 {
		n.SetParam("data", string(item.Data))
	}
	if parent != "" {
		if err := g.Connect(parent, PortSubMenu, n.ID, PortParent); err != nil {
			return nil, err
		}
	}
	for i, sub := range item.Submenu {
		if _, err := importMenuItem(g, sub, n.ID, x+columnStep, y+i*menuRowStep); err != nil {
			return nil, err
		}
	}
	for i, doc := range item.Documents {
		title := doc.Text
		if strings.TrimSpace(title) == "" {
			title = unnamedDoc
		}
		d, err := g.AddNode(KindDocument, title, x+columnStep, y+i*docRowStep)
		if err != nil {
			return nil, err
		}
		d.SetParam("callback_data", doc.CallbackData)
		d.SetParam("url", doc.URL)
		if err := g.Connect(n.ID, PortDocuments, d.ID, PortParent); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Export rebuilds bot data from g, starting at the parentless menu items.
func Export(g *Graph) BotData {
	title := g.Title
	if title == "" {
		title = DefaultTitle
	}
	out := BotData{Title: title, MainMenu: []MenuItem{}}
	for _, root := range g.Roots() {
		out.MainMenu = append(out.MainMenu, exportMenuItem(g, root))
	}
	for _, n := range g.FAQ() {
		out.FAQ = append(out.FAQ, FAQItem{Question: n.Title, Answer: n.Param("answer"), Tags: splitTags(n.Param("tags"))})
	}
	return out
}

func exportMenuItem(g *Graph, n *Node) MenuItem {
	item := MenuItem{
		Text:         n.Title,
		CallbackData: n.Param("callback_data"),
		Description:  n.Param("description"),
		URL:          n.Param("url"),
		TextContent:  n.Param("text_content"),
	}
	if raw := strings.TrimSpace(n.Param("data")); raw != "" && json.Valid([]byte(raw)) {
		item.Data = json.RawMessage(raw)
	}
	for _, child := range g.Children(n.ID, PortSubMenu) {
		item.Submenu = append(item.Submenu, exportMenuItem(g, child))
	}
	for _, doc := range g.Children(n.ID, PortDocuments) {
		item.Documents = append(item.Documents, DocumentItem{Text: doc.Title, CallbackData: doc.Param("callback_data"), URL: doc.Param("url")})
	}
	return item
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// WriteJSON writes data as indented JSON without escaping non-ASCII or HTML.
func WriteJSON(w io.Writer, data BotData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode bot data: %w", err)
	}
	return nil
}

var csvHeader = []string{"path", "kind", "text", "callback_data", "url"}

// WriteCSV flattens data to one row per menu item, document and FAQ entry.
// Paths join ancestor texts with " / ".
func WriteCSV(w io.Writer, data BotData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	var walk func(items []MenuItem, prefix string) error
	walk = func(items []MenuItem, prefix string) error {
		for _, it := range items {
			path := joinPath(prefix, it.Text)
			if err := cw.Write([]string{path, string(KindMenuItem), it.Text, it.CallbackData, it.URL}); err != nil {
				return err
			}
			for _, d := range it.Documents {
				if err := cw.Write([]string{joinPath(path, d.Text), string(KindDocument), d.Text, d.CallbackData, d.URL}); err != nil {
					return err
				}
			}
			if err := walk(it.Submenu, path); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(data.MainMenu, ""); err != nil {
		return err
	}
	for _, f := range data.FAQ {
		if err := cw.Write([]string{joinPath("FAQ", f.Question), string(KindFAQ), f.Question, "", ""}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + " / " + name
}
