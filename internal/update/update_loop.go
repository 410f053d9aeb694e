package update

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/pixeldesk/internal/audio"
	"github.com/sandeepkv93/pixeldesk/internal/scheduler"
	"github.com/sandeepkv93/pixeldesk/internal/session"
	"go.uber.org/zap"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTickCmd()}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForTimerCmd(m.Scheduler.C()))
	}
	if !m.Boot.Machine().Done() {
		m.Boot.Arm()
		m.Sound.Play(audio.EffectBoot)
		cmds = append(cmds, m.bootSpinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.Session.Resize(session.Viewport{Width: typed.Width, Height: typed.Height})
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if !m.Boot.Machine().Done() {
			return m.handleBootKey(typed)
		}
		return m.handleDesktopKey(typed)
	case tea.MouseMsg:
		if !m.Boot.Machine().Done() {
			return m.handleBootMouse(typed)
		}
		return m.handleMouse(typed)
	case TimerFiredMsg:
		return m.handleTimer(typed.Event)
	case ClockTickMsg:
		return m.handleClock(typed.At)
	case spinner.TickMsg:
		if m.Boot.Machine().Done() {
			return m, nil
		}
		var cmd tea.Cmd
		m.bootSpinner, cmd = m.bootSpinner.Update(typed)
		return m, cmd
	case OpenAppMsg:
		if !m.Boot.Machine().Done() {
			return m, nil
		}
		return m, m.launch(typed.ID)
	case SetStatusMsg:
		m.notify("status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.notify("error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleTimer(ev scheduler.Event) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.Scheduler != nil {
		cmd = waitForTimerCmd(m.Scheduler.C())
	}
	switch ev.Kind {
	case scheduler.KindBootAdvance, scheduler.KindBootExit:
		wasDone := m.Boot.Machine().Done()
		if m.Boot.Fire(ev) {
			m.bootStageAt = m.clock()
			if !wasDone && m.Boot.Machine().Done() {
				m.finishBoot()
			}
		}
	case scheduler.KindToastExpire:
		if m.toast.Seq != 0 && ev.Seq == m.toast.Seq {
			m.Status = StatusBar{}
			m.toast = scheduler.Event{}
		}
	}
	return m, cmd
}

func (m Model) handleClock(at time.Time) (Model, tea.Cmd) {
	m.now = at
	if m.Boot.Machine().Done() {
		if err := m.Music.Tick(time.Second); err != nil {
			m.notify("music", err.Error(), "error")
		}
	}
	return m, clockTickCmd()
}

func (m *Model) finishBoot() {
	m.Sound.Play(audio.EffectSuccess)
	m.Logger.Info("boot finished", zap.String("session", m.SessionID))
}

// notify records a notification and shows it as the toast until it expires.
func (m *Model) notify(title, body, level string) {
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.clock(),
	})
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
	m.Status = StatusBar{Text: body, IsError: level == "error"}
	if level == "error" {
		m.Sound.Play(audio.EffectError)
	}
	m.armToast()
}

func (m *Model) armToast() {
	if m.Scheduler == nil {
		return
	}
	m.Scheduler.Cancel(toastTimerID)
	ev, err := m.Scheduler.After(toastTimerID, scheduler.KindToastExpire, m.toastFor)
	if err != nil {
		m.Logger.Debug("toast timer not armed", zap.Error(err))
		return
	}
	m.toast = ev
}

func waitForTimerCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return TimerFiredMsg{Event: ev}
	}
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(at time.Time) tea.Msg { return ClockTickMsg{At: at} })
}
