package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type PlacedIcon struct {
	IconData
	X, Y int
}

type PlacedWindow struct {
	WindowData
	X, Y int
}

// DesktopData is everything one frame of the desktop needs. Windows are
// ordered bottom to top.
type DesktopData struct {
	Width     int
	Height    int
	Icons     []PlacedIcon
	Windows   []PlacedWindow
	StartMenu *StartMenuData
	Taskbar   TaskbarData
	Toast     string
	Overlay   string
}

// StartMenuOrigin is where the menu block is drawn for n items.
func StartMenuOrigin(height, n int) (int, int) {
	return 0, max(0, height-TaskbarHeight-StartMenuHeight(n))
}

func RenderDesktop(d DesktopData) string {
	if d.Width <= 0 || d.Height <= 0 {
		return ""
	}
	wallpaper := wallpaperStyle.Render(strings.Repeat("·", d.Width))
	c := NewCanvas(d.Width, d.Height, func(int) string { return wallpaper })

	for _, icon := range d.Icons {
		c.Draw(icon.X, icon.Y, RenderIcon(icon.IconData))
	}
	for _, w := range d.Windows {
		c.Draw(w.X, w.Y, RenderWindow(w.WindowData))
	}
	if d.StartMenu != nil {
		x, y := StartMenuOrigin(d.Height, len(d.StartMenu.Items))
		c.Draw(x, y, RenderStartMenu(*d.StartMenu))
	}
	if d.Toast != "" {
		toast := d.Toast
		c.Draw(d.Width-lipgloss.Width(toast)-1, 0, toast)
	}
	if d.Overlay != "" {
		ow, oh := lipgloss.Width(d.Overlay), lipgloss.Height(d.Overlay)
		c.Draw((d.Width-ow)/2, max(0, (d.Height-TaskbarHeight-oh)/2), d.Overlay)
	}

	tb := d.Taskbar
	tb.Width = d.Width
	c.Draw(0, d.Height-TaskbarHeight, RenderTaskbar(tb))
	return c.String()
}
