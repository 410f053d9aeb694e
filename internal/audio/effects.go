// Package audio plays short sound effects and looping background music
// through an external player process. Missing assets and player failures
// never surface to the user; they are logged and skipped.
package audio

type Effect string

const (
	EffectBoot         Effect = "boot"
	EffectClick        Effect = "click"
	EffectOpen         Effect = "open"
	EffectClose        Effect = "close"
	EffectType         Effect = "type"
	EffectError        Effect = "error"
	EffectSuccess      Effect = "success"
	EffectBootMusic    Effect = "bootMusic"
	EffectDesktopMusic Effect = "desktopMusic"
)

// Spec describes one sound asset. Path is relative to the asset dir.
type Spec struct {
	Name   Effect
	Path   string
	Volume float64
	Loop   bool
}

var effects = []Spec{
	{Name: EffectBoot, Path: "sounds/boot.mp3", Volume: 0.7},
	{Name: EffectClick, Path: "sounds/click.mp3", Volume: 0.5},
	{Name: EffectOpen, Path: "sounds/open.mp3", Volume: 0.6},
	{Name: EffectClose, Path: "sounds/close.mp3", Volume: 0.6},
	{Name: EffectType, Path: "sounds/type.mp3", Volume: 0.3},
	{Name: EffectError, Path: "sounds/error.mp3", Volume: 0.8},
	{Name: EffectSuccess, Path: "sounds/success.mp3", Volume: 0.7},
	{Name: EffectBootMusic, Path: "sounds/retro-adventure.mp3", Volume: 0.4, Loop: true},
	{Name: EffectDesktopMusic, Path: "sounds/jazz-piano.mp3", Volume: 0.3, Loop: true},
}

// Effects returns the fixed effect table.
func Effects() []Spec {
	out := make([]Spec, len(effects))
	copy(out, effects)
	return out
}

func lookup(name Effect) (Spec, bool) {
	for _, spec := range effects {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}
