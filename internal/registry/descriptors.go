package registry

// Static asset paths, relative to the configured asset directory.
const (
	AssetResumePDF   = "files/ErenDemir.pdf"
	AssetCorgisImage = "files/Corgis.png"
	AssetPixelMe     = "PixelMe.jpg"
)

func defaultDescriptors() []Descriptor {
	return []Descriptor{
		{
			ID:              AppAbout,
			Title:           "ABOUT_ME.EXE",
			Icon:            "👤",
			Label:           "About Me",
			Description:     "Meet the pixel hero",
			DefaultPosition: Point{X: 22, Y: 2},
			Size:            Size{W: 50, H: 14},
			IconPosition:    Point{X: 1, Y: 1},
			Kind:            ContentMarkdown,
			Markdown: `Welcome to the retro desktop! I craft playful, interactive experiences
that blend art, storytelling and engineered polish.

- Full-stack focus with creative tooling.
- Pixel-perfect attention to detail, from motion to CRT glow.
- Passion for gamified portfolios and narrative interfaces.`,
		},
		{
			ID:              AppProjects,
			Title:           "PROJECTS.EXE",
			Icon:            "💼",
			Label:           "Projects",
			Description:     "Interactive builds & case studies",
			DefaultPosition: Point{X: 40, Y: 4},
			Size:            Size{W: 54, H: 15},
			IconPosition:    Point{X: 1, Y: 4},
			Kind:            ContentMarkdown,
			Markdown: `Featured builds loaded straight from the archives:

- **Retro OS Portfolio**: a draggable window system with a living terminal.
- **Arcade Mini Games**: Pong, Snake and Tetris.
- **Synthwave Dashboard**: reactive soundscapes.
- **Vigor Protocol**: crypto platform with an AI terminal.`,
			Maximizable: true,
		},
		{
			ID:              AppTerminal,
			Title:           "TERMINAL.EXE",
			Icon:            "💻",
			Label:           "Terminal",
			Description:     "Hack the portfolio",
			DefaultPosition: Point{X: 30, Y: 7},
			Size:            Size{W: 66, H: 18},
			IconPosition:    Point{X: 1, Y: 7},
			Kind:            ContentTerminal,
			Maximizable:     true,
		},
		{
			ID:              AppResume,
			Title:           "RESUME.PDF",
			Icon:            "📄",
			Label:           "Resume",
			Description:     "Experience & skills hologram",
			DefaultPosition: Point{X: 14, Y: 10},
			Size:            Size{W: 48, H: 12},
			IconPosition:    Point{X: 1, Y: 10},
			Kind:            ContentMarkdown,
			Markdown: `Key stats at a glance:

- 6+ years in front-end & creative coding.
- Shipped production apps for startups and agencies.
- Led multidisciplinary teams across design & dev.

Full PDF: ` + "`" + AssetResumePDF + "`",
		},
		{
			ID:              AppContact,
			Title:           "CONTACT.ME",
			Icon:            "📧",
			Label:           "Contact",
			Description:     "Transmission channels",
			DefaultPosition: Point{X: 48, Y: 1},
			Size:            Size{W: 46, H: 12},
			IconPosition:    Point{X: 1, Y: 13},
			Kind:            ContentMarkdown,
			Markdown: `Ping me through your favorite retro protocol:

- Email: erendemir10022@gmail.com
- GitHub: github.com/s6endemi
- LinkedIn: linkedin.com/in/eren-demir-4ba56a350`,
		},
		{
			ID:              AppGames,
			Title:           "GAMES.EXE",
			Icon:            "🎮",
			Label:           "Games",
			Description:     "Easter eggs & arcade fun",
			DefaultPosition: Point{X: 36, Y: 3},
			Size:            Size{W: 48, H: 12},
			IconPosition:    Point{X: 13, Y: 1},
			Kind:            ContentMarkdown,
			Markdown: `Mini-games packing that arcade nostalgia:

- **Snake**: keyboard-driven, terminal launchable.
- **Pong**: two-player fun with CRT scanlines.
- **Tetris**: pixel bricks & juicy sound effects.`,
		},
		{
			ID:              AppWebsites,
			Title:           "WEBSITES.URL",
			Icon:            "🌐",
			Label:           "Websites",
			Description:     "Live deployments",
			DefaultPosition: Point{X: 44, Y: 6},
			Size:            Size{W: 46, H: 11},
			IconPosition:    Point{X: 13, Y: 4},
			Kind:            ContentMarkdown,
			Markdown: `Places on the web:

- www.previa.health
- github.com/s6endemi`,
		},
		{
			ID:              AppDocuments,
			Title:           "DOCUMENTS",
			Icon:            "📁",
			Label:           "Documents",
			Description:     "Files safe to download",
			DefaultPosition: Point{X: 20, Y: 5},
			Size:            Size{W: 48, H: 13},
			IconPosition:    Point{X: 13, Y: 7},
			Kind:            ContentMarkdown,
			Markdown: "Available documents:\n\n" +
				"- `" + AssetResumePDF + "`: complete resume & CV\n" +
				"- `" + AssetCorgisImage + "`: personal photo collection\n" +
				"- `" + AssetPixelMe + "`: pixel art portrait",
		},
		{
			ID:              AppMusic,
			Title:           "MUSIC.EXE",
			Icon:            "🎵",
			Label:           "Music",
			Description:     "Lo-fi café beats",
			DefaultPosition: Point{X: 52, Y: 9},
			Size:            Size{W: 46, H: 13},
			IconPosition:    Point{X: 13, Y: 10},
			Kind:            ContentMusic,
		},
	}
}
