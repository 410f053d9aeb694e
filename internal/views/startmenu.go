package views

import (
	"fmt"
	"slices"
	"strings"
)

const (
	StartMenuWidth = 40
	// Rows above the first item: border, header, search line, rule.
	startMenuItemTop = 4
)

type StartMenuItemData struct {
	Icon        string
	Label       string
	Description string
	Matched     []int
	Highlighted bool
}

type StartMenuData struct {
	Query string
	Items []StartMenuItemData
}

// StartMenuHeight is the rendered height for n items.
func StartMenuHeight(n int) int {
	return startMenuItemTop + max(n, 1) + 2
}

// StartMenuItemAt maps a row inside the menu block to an item index.
func StartMenuItemAt(n, row int) (int, bool) {
	i := row - startMenuItemTop
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

func RenderStartMenu(m StartMenuData) string {
	inner := StartMenuWidth - 2
	lines := []string{
		menuStyle.Render("╔" + strings.Repeat("═", inner) + "╗"),
		menuStyle.Render("║") + menuHeaderStyle.Render(fit(" 🎮 PIXEL PORTFOLIO        v1.0", inner)) + menuStyle.Render("║"),
		menuStyle.Render("║") + menuStyle.Render(fit(fmt.Sprintf(" search: %s_", m.Query), inner)) + menuStyle.Render("║"),
		menuStyle.Render("╟" + strings.Repeat("─", inner) + "╢"),
	}
	if len(m.Items) == 0 {
		lines = append(lines, menuStyle.Render("║")+menuHintStyle.Render(fit("  (no matches)", inner))+menuStyle.Render("║"))
	}
	for _, item := range m.Items {
		style := menuStyle
		if item.Highlighted {
			style = menuHighlightStyle
		}
		row := " " + item.Icon + " " + highlightMatches(item.Label, item.Matched)
		if item.Description != "" {
			row += "  " + item.Description
		}
		lines = append(lines, menuStyle.Render("║")+style.Render(fit(row, inner))+menuStyle.Render("║"))
	}
	lines = append(lines,
		menuStyle.Render("║")+menuHintStyle.Render(fit(" ↑/↓ select · enter open · esc close", inner))+menuStyle.Render("║"),
		menuStyle.Render("╚"+strings.Repeat("═", inner)+"╝"),
	)
	return strings.Join(lines, "\n")
}

// highlightMatches emphasises the bytes at matched offsets of label.
func highlightMatches(label string, matched []int) string {
	if len(matched) == 0 {
		return label
	}
	var b strings.Builder
	for i, r := range label {
		if slices.Contains(matched, i) {
			b.WriteString(menuMatchStyle.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
