package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a fixed grid of styled lines that blocks are painted onto,
// later blocks covering earlier ones.
type Canvas struct {
	width  int
	height int
	lines  []string
}

func NewCanvas(width, height int, fill func(row int) string) *Canvas {
	width, height = max(0, width), max(0, height)
	c := &Canvas{width: width, height: height, lines: make([]string, height)}
	for y := range c.lines {
		line := strings.Repeat(" ", width)
		if fill != nil {
			line = fill(y)
		}
		c.lines[y] = fit(line, width)
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Draw paints block with its top-left cell at (x, y). Parts outside the
// canvas are clipped; negative coordinates are allowed.
func (c *Canvas) Draw(x, y int, block string) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		w := ansi.StringWidth(line)
		start, end := max(0, x), min(c.width, x+w)
		if start >= end {
			continue
		}
		fg := ansi.Cut(line, start-x, end-x)
		if n := ansi.StringWidth(fg); n < end-start {
			fg += strings.Repeat(" ", end-start-n)
		}
		bg := c.lines[row]
		c.lines[row] = ansi.Cut(bg, 0, start) + fg + ansi.Cut(bg, end, c.width)
	}
}

func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if n := ansi.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return ansi.Truncate(s, width, "")
}
