package core

func DefaultKeyBindings() []KeyBinding {
	tabs := []string{"tab:*"}
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: tabs},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: tabs},
		{Keys: []string{"tab"}, Action: "next-tab", Description: "next section", Scopes: tabs},
		{Keys: []string{"shift+tab"}, Action: "prev-tab", Description: "prev section", Scopes: tabs},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "menu", Scopes: tabs, Hidden: true},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "graph", Scopes: tabs, Hidden: true},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "faq", Scopes: tabs, Hidden: true},
		{Keys: []string{"4"}, Action: "switch-tab-4", Description: "export", Scopes: tabs, Hidden: true},
		{Keys: []string{"5"}, Action: "switch-tab-5", Description: "settings", Scopes: tabs, Hidden: true},
		{Keys: []string{"esc", "x"}, Action: "cancel-edit", Description: "cancel editing", Scopes: []string{"tab:menu"}},
		// Help only. The graph module reads canvas keys itself.
		{Keys: []string{"j", "down"}, Action: "canvas-down", Description: "next node", Scopes: []string{"tab:graph:ready"}},
		{Keys: []string{"k", "up"}, Action: "canvas-up", Description: "prev node", Scopes: []string{"tab:graph:ready"}},
		{Keys: []string{"enter", "e"}, Action: "canvas-activate", Description: "edit node", Scopes: []string{"tab:graph:ready"}},
		{Keys: []string{"enter"}, Action: "open-export-menu", Description: "export data", Scopes: []string{"tab:export"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:dropdown", "screen:command"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:dropdown", "screen:command"}},
		{Keys: []string{"j", "down"}, Action: "dropdown-down", Description: "down", Scopes: []string{"screen:dropdown"}},
		{Keys: []string{"k", "up"}, Action: "dropdown-up", Description: "up", Scopes: []string{"screen:dropdown"}},
	}
}
