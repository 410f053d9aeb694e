package boot

import (
	"github.com/sandeepkv93/pixeldesk/internal/scheduler"
	"go.uber.org/zap"
)

const timerID = "boot"

// Driver owns the single boot timer. Every transition re-arms it, so at
// most one boot event is ever pending.
type Driver struct {
	machine *Machine
	engine  *scheduler.Engine
	logger  *zap.Logger
	armed   scheduler.Event
	armedAt Stage
}

func NewDriver(machine *Machine, engine *scheduler.Engine, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{machine: machine, engine: engine, logger: logger}
}

func (d *Driver) Machine() *Machine { return d.machine }

// Arm cancels the previous timer and schedules the one the current state
// needs, if any.
func (d *Driver) Arm() {
	if d.engine == nil {
		return
	}
	d.engine.Cancel(timerID)
	d.armed = scheduler.Event{}
	delay, ok := d.machine.Pending()
	if !ok {
		return
	}
	kind := scheduler.KindBootAdvance
	if d.machine.Exiting() {
		kind = scheduler.KindBootExit
	}
	ev, err := d.engine.After(timerID, kind, delay)
	if err != nil {
		d.logger.Warn("boot timer not armed", zap.String("stage", string(d.machine.Stage())), zap.Error(err))
		return
	}
	d.armed = ev
	d.armedAt = d.machine.Stage()
	d.logger.Debug("boot timer armed", zap.String("stage", string(d.armedAt)), zap.Duration("delay", delay))
}

// Fire consumes a delivered timer event. Events from an older arm are
// ignored. It reports whether the stage changed.
func (d *Driver) Fire(ev scheduler.Event) bool {
	if ev.ID != timerID || ev.Seq != d.armed.Seq || d.armed.Seq == 0 {
		return false
	}
	d.armed = scheduler.Event{}
	if !d.machine.Elapse(d.armedAt) {
		return false
	}
	d.logger.Debug("boot stage advanced", zap.String("stage", string(d.machine.Stage())))
	d.Arm()
	return true
}

// Input forwards user input to the machine and re-arms on change.
func (d *Driver) Input(confirm bool) bool {
	if !d.machine.Input(confirm) {
		return false
	}
	d.logger.Debug("boot input", zap.String("stage", string(d.machine.Stage())), zap.Bool("exiting", d.machine.Exiting()))
	d.Arm()
	return true
}

// Stop cancels the pending timer, used on teardown.
func (d *Driver) Stop() {
	if d.engine != nil {
		d.engine.Cancel(timerID)
	}
	d.armed = scheduler.Event{}
}
