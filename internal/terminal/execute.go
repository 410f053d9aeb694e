package terminal

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// LineKind tags a scrollback line so the view can colour it.
type LineKind string

const (
	KindSystem LineKind = "system"
	KindInput  LineKind = "input"
	KindOutput LineKind = "output"
	KindError  LineKind = "error"
	KindHelp   LineKind = "help"
	KindMusic  LineKind = "music"
	KindGames  LineKind = "games"
	KindMatrix LineKind = "matrix"
)

type Result struct {
	Kind  LineKind
	Lines []string
	Clear bool
}

// Handlers are the side effects a command may need. Music receives the
// literal sub-commands; Pick chooses a joke index in [0,n).
type Handlers struct {
	Music func(MusicArgs) (Result, error)
	Pick  func(n int) int
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Name {
	case NameClear:
		return Result{Clear: true}, nil
	case NameJoke:
		pick := handlers.Pick
		if pick == nil {
			pick = rand.IntN
		}
		i := pick(len(jokes))
		if i < 0 || i >= len(jokes) {
			i = 0
		}
		return Result{Kind: KindOutput, Lines: slices.Clone(jokes[i])}, nil
	case NameMusic:
		if cmd.Music != nil && cmd.Music.Action != MusicShow {
			if handlers.Music == nil {
				return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "music handler not configured"}
			}
			return handlers.Music(*cmd.Music)
		}
	}

	lines, ok := responses[cmd.Name]
	if !ok {
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("command not found: %s", cmd.Token), Token: cmd.Token}
	}
	return Result{Kind: kindFor(cmd.Name), Lines: slices.Clone(lines)}, nil
}

// Run parses and executes one line without any session state. Errors
// are folded into error lines; empty input yields nothing.
func Run(input string, handlers Handlers) Result {
	cmd, err := Parse(input)
	if err != nil {
		return errorResult(err)
	}
	res, err := Execute(cmd, handlers)
	if err != nil {
		return errorResult(err)
	}
	return res
}

func errorResult(err error) Result {
	var ce *CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case ErrCodeEmptyInput:
			return Result{}
		case ErrCodeUnknownCommand:
			return Result{Kind: KindError, Lines: []string{"command not found: " + ce.Token}}
		default:
			return Result{Kind: KindError, Lines: []string{ce.Message}}
		}
	}
	return Result{Kind: KindError, Lines: []string{err.Error()}}
}

func kindFor(name Name) LineKind {
	switch name {
	case NameHelp:
		return KindHelp
	case NameMusic:
		return KindMusic
	case NameGames:
		return KindGames
	case NameMatrix:
		return KindMatrix
	default:
		return KindOutput
	}
}
