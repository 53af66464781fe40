package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/routetree/pkg/routetree/labels"
	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#5C6F78")
	colorError  = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Title  lipgloss.Style
	Live   lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Box    lipgloss.Style
	Detail lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Live:   lipgloss.NewStyle().Bold(true),
	Muted:  lipgloss.NewStyle().Foreground(colorMuted),
	Error:  lipgloss.NewStyle().Bold(true).Foreground(colorError),
	Box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1),
	Detail: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
}

// renderState draws the whole state tree, live path included, inside a box.
// Children kept from earlier visits are drawn muted.
func renderState(n *route.StateNode, l *labels.Labeler) string {
	var lines []string
	lines = append(lines, styles.Title.Render("/")+describe(n))
	drawChildren(n, "", true, l, &lines)
	return styles.Box.Render(strings.Join(lines, "\n"))
}

func drawChildren(n *route.StateNode, indent string, live bool, l *labels.Labeler, lines *[]string) {
	keys := make([]route.Key, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for i, key := range keys {
		child := n.Children[key]
		branch, next := "├─ ", "│  "
		if i == len(keys)-1 {
			branch, next = "└─ ", "   "
		}

		childLive := live && n.Selected == key
		name := l.Title(key)
		if childLive {
			name = styles.Live.Render("● " + name)
		} else {
			name = styles.Muted.Render("○ " + name)
		}

		*lines = append(*lines, indent+branch+name+describe(child))
		drawChildren(child, indent+next, childLive, l, lines)
	}
}

func describe(n *route.StateNode) string {
	var parts []string
	if len(n.Props) > 0 {
		parts = append(parts, fmt.Sprintf("props=%v", map[string]any(n.Props)))
	}
	if len(n.State) > 0 {
		parts = append(parts, fmt.Sprintf("state=%v", map[string]any(n.State)))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + styles.Detail.Render(strings.Join(parts, " "))
}
