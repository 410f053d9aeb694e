package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	MinWindowWidth  = 12
	MinWindowHeight = 3

	closeButton    = "[x]"
	maximizeButton = "[+]"
	restoreButton  = "[-]"
)

type WindowData struct {
	Title       string
	Icon        string
	Width       int
	Height      int
	Focused     bool
	Maximized   bool
	Maximizable bool
	Body        string
}

// WindowPart names the region of a window frame under a cell.
type WindowPart int

const (
	PartNone WindowPart = iota
	PartTitle
	PartClose
	PartMaximize
	PartBody
)

// HitWindow classifies the cell (dx, dy), relative to the window's
// top-left corner. It must agree with RenderWindow's layout.
func HitWindow(width, height int, maximizable bool, dx, dy int) WindowPart {
	width, height = max(width, MinWindowWidth), max(height, MinWindowHeight)
	if dx < 0 || dy < 0 || dx >= width || dy >= height {
		return PartNone
	}
	if dy > 0 {
		return PartBody
	}
	switch {
	case dx >= width-4 && dx <= width-2:
		return PartClose
	case maximizable && dx >= width-7 && dx <= width-5:
		return PartMaximize
	default:
		return PartTitle
	}
}

// BodySize is the usable content area inside the frame.
func BodySize(width, height int) (int, int) {
	width, height = max(width, MinWindowWidth), max(height, MinWindowHeight)
	return width - 2, height - 2
}

func RenderWindow(w WindowData) string {
	width, height := max(w.Width, MinWindowWidth), max(w.Height, MinWindowHeight)
	inner := width - 2

	frame, title := frameBlurredStyle, titleBlurredStyle
	if w.Focused {
		frame, title = frameFocusedStyle, titleFocusedStyle
	}

	controls := closeButton
	if w.Maximizable {
		if w.Maximized {
			controls = restoreButton + controls
		} else {
			controls = maximizeButton + controls
		}
	}
	label := " " + w.Title
	if w.Icon != "" {
		label = " " + w.Icon + " " + w.Title
	}
	label = fit(label, inner-ansi.StringWidth(controls))

	lines := make([]string, 0, height)
	lines = append(lines, frame.Render("┏")+title.Render(label+controls)+frame.Render("┓"))

	body := strings.Split(w.Body, "\n")
	for i := 0; i < height-2; i++ {
		text := ""
		if i < len(body) {
			text = body[i]
		}
		lines = append(lines, frame.Render("┃")+windowBodyStyle.Render(fit(text, inner))+frame.Render("┃"))
	}
	lines = append(lines, frame.Render("┗"+strings.Repeat("━", inner)+"┛"))
	return strings.Join(lines, "\n")
}
