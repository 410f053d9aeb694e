package terminal

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPrompt          = "eren@portfolio:~$ "
	DefaultHistoryLimit    = 100
	DefaultScrollbackLimit = 500
)

type Line struct {
	ID   string
	Kind LineKind
	Text string
}

type Options struct {
	Prompt          string
	HistoryLimit    int
	ScrollbackLimit int
	Handlers        Handlers
	// NewID overrides line id generation; tests pin it.
	NewID func() string
}

// Session is one terminal window's scrollback and input history.
type Session struct {
	prompt          string
	historyLimit    int
	scrollbackLimit int
	handlers        Handlers
	newID           func() string

	lines   []Line
	history []string
	cursor  int
}

func NewSession(opts Options) *Session {
	s := &Session{
		prompt:          opts.Prompt,
		historyLimit:    opts.HistoryLimit,
		scrollbackLimit: opts.ScrollbackLimit,
		handlers:        opts.Handlers,
		newID:           opts.NewID,
		cursor:          -1,
	}
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	if s.historyLimit <= 0 {
		s.historyLimit = DefaultHistoryLimit
	}
	if s.scrollbackLimit <= 0 {
		s.scrollbackLimit = DefaultScrollbackLimit
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	s.appendLines(KindSystem, Banner)
	return s
}

func (s *Session) Prompt() string    { return s.prompt }
func (s *Session) Lines() []Line     { return slices.Clone(s.lines) }
func (s *Session) History() []string { return slices.Clone(s.history) }

func (s *Session) SetHandlers(h Handlers) { s.handlers = h }

// Submit runs one input line. Blank input adds nothing, not even an echo.
func (s *Session) Submit(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Result{}
	}
	s.appendLines(KindInput, []string{s.prompt + trimmed})
	s.history = append(s.history, trimmed)
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = slices.Delete(s.history, 0, over)
	}
	s.cursor = -1

	res := Run(trimmed, s.handlers)
	if res.Clear {
		s.lines = nil
		return res
	}
	s.appendLines(res.Kind, res.Lines)
	return res
}

// Prev walks back through history. It stops at the oldest entry.
func (s *Session) Prev() (string, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	if s.cursor == -1 {
		s.cursor = len(s.history) - 1
	} else {
		s.cursor = max(0, s.cursor-1)
	}
	return s.history[s.cursor], true
}

// Next walks forward. Stepping past the newest entry returns an empty
// input and leaves history mode.
func (s *Session) Next() (string, bool) {
	if s.cursor == -1 {
		return "", false
	}
	s.cursor++
	if s.cursor >= len(s.history) {
		s.cursor = -1
		return "", true
	}
	return s.history[s.cursor], true
}

// Reset restores the freshly opened state, keeping history.
func (s *Session) Reset() {
	s.lines = nil
	s.cursor = -1
	s.appendLines(KindSystem, Banner)
}

func (s *Session) appendLines(kind LineKind, texts []string) {
	for _, text := range texts {
		s.lines = append(s.lines, Line{ID: s.newID(), Kind: kind, Text: text})
	}
	if over := len(s.lines) - s.scrollbackLimit; over > 0 {
		s.lines = slices.Delete(s.lines, 0, over)
	}
}
