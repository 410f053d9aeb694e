// Package boot models the start-up animation as a small state machine:
// Intro and Title advance on their own after a delay, Prompt waits for the
// user, and completing the prompt leads to Done after a short exit delay.
package boot

import "time"

type Stage string

const (
	StageIntro  Stage = "intro"
	StageTitle  Stage = "title"
	StagePrompt Stage = "prompt"
	StageDone   Stage = "done"
)

type Timings struct {
	Intro time.Duration
	Title time.Duration
	Exit  time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		Intro: 2600 * time.Millisecond,
		Title: 4200 * time.Millisecond,
		Exit:  450 * time.Millisecond,
	}
}

// Machine is not safe for concurrent use; it lives on the UI loop.
type Machine struct {
	timings Timings
	stage   Stage
	exiting bool
}

func NewMachine(timings Timings) *Machine {
	return &Machine{timings: timings, stage: StageIntro}
}

// NewFinished returns a machine that skips the animation entirely.
func NewFinished() *Machine {
	return &Machine{stage: StageDone}
}

func (m *Machine) Stage() Stage     { return m.stage }
func (m *Machine) Done() bool       { return m.stage == StageDone }
func (m *Machine) Exiting() bool    { return m.exiting }
func (m *Machine) Timings() Timings { return m.timings }

// Pending reports the delay of the timer the current state wants armed.
func (m *Machine) Pending() (time.Duration, bool) {
	switch {
	case m.stage == StageIntro:
		return m.timings.Intro, true
	case m.stage == StageTitle:
		return m.timings.Title, true
	case m.stage == StagePrompt && m.exiting:
		return m.timings.Exit, true
	default:
		return 0, false
	}
}

// Elapse applies the expiry of the timer armed for from. A timer armed for
// an earlier state is ignored and false is returned.
func (m *Machine) Elapse(from Stage) bool {
	if from != m.stage {
		return false
	}
	switch m.stage {
	case StageIntro:
		m.stage = StageTitle
	case StageTitle:
		m.stage = StagePrompt
	case StagePrompt:
		if !m.exiting {
			return false
		}
		m.stage = StageDone
		m.exiting = false
	default:
		return false
	}
	return true
}

// Input handles a key press or click. During Intro and Title it skips to
// the next stage; on the prompt only confirm keys start the exit.
func (m *Machine) Input(confirm bool) bool {
	switch m.stage {
	case StageIntro:
		m.stage = StageTitle
	case StageTitle:
		m.stage = StagePrompt
	case StagePrompt:
		if !confirm || m.exiting {
			return false
		}
		m.exiting = true
	default:
		return false
	}
	return true
}
