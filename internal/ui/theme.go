package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/bayes-tree/internal/tree"
)

const defaultTheme = "catppuccin"

// palette colours the chrome around the tree and the tree's neutral elements. Leaf and
// selection colours stay fixed so their meaning does not change between themes.
type palette struct {
	Panel     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Node      lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Panel:     "#45475a",
		Text:      "#cdd6f4",
		Muted:     "#a6adc8",
		Accent:    "#cba6f7",
		AccentAlt: "#f38ba8",
		Border:    "#585b70",
		Success:   "#94e2d5",
		Warning:   "#f9e2af",
		Node:      "#313244",
	},
	"dracula": {
		Panel:     "#3c4053",
		Text:      "#f8f8f2",
		Muted:     "#6272a4",
		Accent:    "#ff79c6",
		AccentAlt: "#bd93f9",
		Border:    "#44475a",
		Success:   "#50fa7b",
		Warning:   "#f1fa8c",
		Node:      "#343746",
	},
	"gruvbox": {
		Panel:     "#504945",
		Text:      "#ebdbb2",
		Muted:     "#a89984",
		Accent:    "#fabd2f",
		AccentAlt: "#d3869b",
		Border:    "#665c54",
		Success:   "#b8bb26",
		Warning:   "#fe8019",
		Node:      "#3c3836",
	},
	"paper": {
		Panel:     "#ffffff",
		Text:      "#333333",
		Muted:     "#666666",
		Accent:    "#2c3e50",
		AccentAlt: "#c0392b",
		Border:    "#bdc3c7",
		Success:   "#27ae60",
		Warning:   "#d35400",
		Node:      "#333333",
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[defaultTheme]
}

// paletteName returns name if it is a known palette, else the default.
func paletteName(name string) string {
	if _, ok := palettes[name]; ok {
		return name
	}
	return defaultTheme
}

// treeTheme maps a palette onto the tree renderer's neutral colours.
func treeTheme(p palette) tree.Theme {
	th := tree.DefaultTheme()
	th.RootFill = tree.Color(p.Node)
	th.NodeStroke = tree.Color(p.Border)
	th.LabelFill = tree.Color(p.Panel)
	th.LabelText = tree.Color(p.Text)
	th.LeafLine = tree.Color(p.Muted)
	th.Hint = tree.Color(p.Muted)
	return th
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
