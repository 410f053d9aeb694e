package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

// Name is a canonical command name. Aliases resolve to one of these.
type Name string

const (
	NameHelp      Name = "help"
	NameAbout     Name = "about"
	NameMusic     Name = "music"
	NameGames     Name = "games"
	NameProjects  Name = "projects"
	NameSkills    Name = "skills"
	NameContact   Name = "contact"
	NameMatrix    Name = "matrix"
	NameJoke      Name = "joke"
	NameClear     Name = "clear"
	NameDocuments Name = "documents"
)

var aliases = map[string]Name{
	"cls":   NameClear,
	"docs":  NameDocuments,
	"files": NameDocuments,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
	Token   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MusicAction is one of the literal music sub-commands.
type MusicAction string

const (
	MusicShow   MusicAction = ""
	MusicStop   MusicAction = "stop"
	MusicPlay   MusicAction = "play"
	MusicVolume MusicAction = "volume"
)

// MusicArgs carries a parsed music sub-command. Level is 1..10 for volume.
type MusicArgs struct {
	Action MusicAction
	Level  int
}

type Command struct {
	Name  Name
	Token string
	Raw   string
	Args  []string
	Music *MusicArgs
}

// Parse matches the first token exactly, after lowercasing, against the
// command table. It never interprets arguments beyond the literal music
// sub-commands.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(strings.ToLower(raw))
	head := parts[0]
	args := parts[1:]

	name, ok := resolve(head)
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("command not found: %s", head), Token: head}
	}

	cmd := Command{Name: name, Token: head, Raw: raw, Args: args}
	if name == NameMusic {
		music, err := parseMusic(args)
		if err != nil {
			return Command{}, err
		}
		cmd.Music = &music
	}
	return cmd, nil
}

func resolve(token string) (Name, bool) {
	if name, ok := aliases[token]; ok {
		return name, true
	}
	if _, ok := responses[Name(token)]; ok {
		return Name(token), true
	}
	switch Name(token) {
	case NameJoke, NameClear:
		return Name(token), true
	}
	return "", false
}

func parseMusic(args []string) (MusicArgs, error) {
	if len(args) == 0 {
		return MusicArgs{Action: MusicShow}, nil
	}
	switch MusicAction(args[0]) {
	case MusicStop, MusicPlay:
		return MusicArgs{Action: MusicAction(args[0])}, nil
	case MusicVolume:
		if len(args) != 2 {
			return MusicArgs{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "usage: music volume [1-10]"}
		}
		level, err := strconv.Atoi(args[1])
		if err != nil || level < 1 || level > 10 {
			return MusicArgs{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "usage: music volume [1-10]"}
		}
		return MusicArgs{Action: MusicVolume, Level: level}, nil
	default:
		return MusicArgs{Action: MusicShow}, nil
	}
}
