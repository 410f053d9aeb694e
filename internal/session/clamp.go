package session

import "github.com/sandeepkv93/pixeldesk/internal/registry"

// Clamp keeps a window of the given size inside the viewport minus the
// taskbar margin. A window larger than the available area pins to 0.
// A zero viewport means the size is not known yet and p is returned as is.
func Clamp(p registry.Point, size registry.Size, vp Viewport, taskbarMargin int) registry.Point {
	if vp.Width <= 0 || vp.Height <= 0 {
		return p
	}
	maxX := vp.Width - size.W
	maxY := vp.Height - taskbarMargin - size.H
	return registry.Point{
		X: clampInt(p.X, 0, maxX),
		Y: clampInt(p.Y, 0, maxY),
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
