package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	IconWidth  = 11
	IconHeight = 2
)

type IconData struct {
	Glyph    string
	Label    string
	Selected bool
}

type HelpPanelData struct {
	Context  string
	Bindings []string
	HelpView string
}

type TerminalPanelData struct {
	ScrollView string
	InputView  string
}

type TerminalLineData struct {
	Kind string
	Text string
}

type MusicPanelData struct {
	Track        string
	Artist       string
	Elapsed      string
	Total        string
	Playing      bool
	ProgressView string
	Volume       int
	VolumeView   string
	Playlist     []string
	Current      int
	AutoStartIn  string
	Error        string
}

type BootData struct {
	Width    int
	Height   int
	Stage    string
	Exiting  bool
	Spinner  string
	Progress string
}

func RenderIcon(d IconData) string {
	style := iconStyle
	if d.Selected {
		style = iconSelectedStyle
	}
	glyph := lipgloss.PlaceHorizontal(IconWidth, lipgloss.Center, d.Glyph)
	label := lipgloss.PlaceHorizontal(IconWidth, lipgloss.Center, ansi.Truncate(d.Label, IconWidth, "…"))
	return style.Render(fit(glyph, IconWidth)) + "\n" + style.Render(fit(label, IconWidth))
}

func RenderHelpPanel(data HelpPanelData) string {
	body := fmt.Sprintf("help: %s\n%s", strings.ToLower(data.Context), strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		body += "\n\n" + data.HelpView
	}
	return panelStyle.Render(body)
}

var terminalLineStyles = map[string]lipgloss.Style{
	"system": lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"input":  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	"output": lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	"error":  errorStyle,
	"help":   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"music":  lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
	"games":  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	"matrix": lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

func RenderTerminalLines(lines []TerminalLineData) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		style, ok := terminalLineStyles[l.Kind]
		if !ok {
			style = terminalLineStyles["output"]
		}
		out = append(out, style.Render(l.Text))
	}
	return strings.Join(out, "\n")
}

func RenderTerminalPanel(data TerminalPanelData) string {
	if data.InputView == "" {
		return data.ScrollView
	}
	return data.ScrollView + "\n" + data.InputView
}

func RenderMusicPanel(data MusicPanelData) string {
	var b strings.Builder
	if data.Track == "" {
		b.WriteString("♪ nothing playing\n")
		if data.AutoStartIn != "" {
			b.WriteString(footerStyle.Render("auto-start in "+data.AutoStartIn) + "\n")
		}
	} else {
		state := "❚❚ paused"
		if data.Playing {
			state = "▶ playing"
		}
		b.WriteString(fmt.Sprintf("♪ %s\n", data.Track))
		b.WriteString(footerStyle.Render(data.Artist) + "\n")
		b.WriteString(fmt.Sprintf("%s  %s / %s\n", state, data.Elapsed, data.Total))
		b.WriteString(data.ProgressView + "\n")
	}
	b.WriteString(fmt.Sprintf("vol %3d%% %s\n", data.Volume, data.VolumeView))
	if data.Error != "" {
		b.WriteString(errorStyle.Render(data.Error) + "\n")
	}
	b.WriteString("\n")
	for i, name := range data.Playlist {
		cursor := " "
		if i == data.Current {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, name))
	}
	b.WriteString(footerStyle.Render("[space]play/pause [n]ext [p]rev [+/-]vol [</>]seek"))
	return b.String()
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	style := statusStyle
	if level == "error" {
		style = errorStyle
	}
	return panelStyle.Render(style.Render(body))
}

func RenderBoot(d BootData) string {
	var block string
	switch d.Stage {
	case "intro":
		block = lipgloss.JoinVertical(lipgloss.Center,
			"🎮",
			"",
			bootCyanStyle.Render("PIXEL STUDIOS"),
			bootDimStyle.Render("PRESENTS"),
		)
	case "title":
		block = lipgloss.JoinVertical(lipgloss.Center,
			bootDimStyle.Render("LOADING PORTFOLIO"),
			"",
			bootMagentaStyle.Render("E R E N"),
			"",
			d.Progress,
		)
	default:
		prompt := bootYellowStyle.Render("🎯 PRESS ENTER TO START 🎯")
		if d.Exiting {
			prompt = bootDimStyle.Render("starting " + d.Spinner)
		}
		block = lipgloss.JoinVertical(lipgloss.Center,
			bootMagentaStyle.Render("E R E N"),
			"",
			bootCyanStyle.Render("ADVENTURE PORTFOLIO"),
			bootDimStyle.Render("FULL STACK DEVELOPER • CREATIVE CODING"),
			"",
			prompt,
		)
	}
	return lipgloss.Place(max(d.Width, 1), max(d.Height, 1), lipgloss.Center, lipgloss.Center, block)
}
