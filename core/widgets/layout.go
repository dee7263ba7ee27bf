package widgets

import "strings"

// VStack stacks widgets top to bottom. Heights holds a fixed row count per
// widget; zero entries share whatever rows remain.
type VStack struct {
	Widgets []Widget
	Heights []int
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := v.resolve(height)
	parts := make([]string, 0, len(v.Widgets))
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		parts = append(parts, Fit(w.Render(width, heights[i]), width, heights[i]))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				parts = append(parts, strings.Repeat(" ", width))
			}
		}
	}
	return Fit(strings.Join(parts, "\n"), width, height)
}

func (v VStack) resolve(total int) []int {
	n := len(v.Widgets)
	out := make([]int, n)
	remaining := total - max(0, v.Spacing*(n-1))
	flexible := 0
	for i := 0; i < n; i++ {
		if i < len(v.Heights) && v.Heights[i] > 0 {
			out[i] = min(v.Heights[i], max(0, remaining))
			remaining -= out[i]
			continue
		}
		flexible++
	}
	if flexible == 0 || remaining <= 0 {
		return out
	}
	share, extra := remaining/flexible, remaining%flexible
	for i := 0; i < n; i++ {
		if i < len(v.Heights) && v.Heights[i] > 0 {
			continue
		}
		out[i] = share
		if extra > 0 {
			out[i]++
			extra--
		}
	}
	return out
}

// HStack lays widgets out left to right with equal widths.
type HStack struct {
	Widgets []Widget
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	n := len(h.Widgets)
	usable := max(n, width-h.Gap*(n-1))
	cols := make([][]string, n)
	widths := make([]int, n)
	for i, w := range h.Widgets {
		widths[i] = usable / n
		if i < usable%n {
			widths[i]++
		}
		cols[i] = splitToLines(Fit(w.Render(widths[i], height), widths[i], height), height)
	}
	rows := make([]string, height)
	gap := strings.Repeat(" ", h.Gap)
	for r := 0; r < height; r++ {
		cells := make([]string, n)
		for i := range cols {
			cells[i] = cols[i][r]
		}
		rows[r] = strings.Join(cells, gap)
	}
	return strings.Join(rows, "\n")
}
