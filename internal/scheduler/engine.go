// Package scheduler delivers timed events on a channel. It drives every
// fire-and-forget timer of the desktop: boot stage auto-advance, the boot
// exit delay and toast expiry. Pending events can be cancelled by
// id, and Stop tears the loop down without firing anything still queued.
package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidTriggerTime = errors.New("scheduler: invalid trigger time")
	ErrStopped            = errors.New("scheduler: engine stopped")
)

type Kind string

const (
	KindBootAdvance Kind = "boot_advance"
	KindBootExit    Kind = "boot_exit"
	KindToastExpire Kind = "toast_expire"
)

type Event struct {
	ID        string
	Kind      Kind
	TriggerAt time.Time
	// Seq increases with every Schedule call and lets consumers recognise
	// an event that was armed before a later re-arm of the same id.
	Seq uint64
}

type queueItem struct {
	event Event
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].event.TriggerAt.Equal(pq[j].event.TriggerAt) {
		return pq[i].event.Seq < pq[j].event.Seq
	}
	return pq[i].event.TriggerAt.Before(pq[j].event.TriggerAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	out     chan Event
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	seq     uint64
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(priorityQueue, 0),
		out:    make(chan Event, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Event {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started || e.stopped {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

// Stop ends the loop and discards everything still pending. The event
// channel is closed once the loop has exited.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	e.queue = e.queue[:0]
	close(e.stopCh)
	started := e.started
	e.mu.Unlock()
	if started {
		<-e.doneCh
		return
	}
	close(e.out)
}

// Schedule queues ev and returns it with its sequence number filled in.
func (e *Engine) Schedule(ev Event) (Event, error) {
	if ev.TriggerAt.IsZero() {
		return Event{}, ErrInvalidTriggerTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return Event{}, ErrStopped
	}

	e.seq++
	ev.Seq = e.seq
	heap.Push(&e.queue, queueItem{event: ev})
	e.signalWakeup()
	return ev, nil
}

// After is Schedule relative to now.
func (e *Engine) After(id string, kind Kind, d time.Duration) (Event, error) {
	if d < 0 {
		d = 0
	}
	return e.Schedule(Event{ID: id, Kind: kind, TriggerAt: time.Now().UTC().Add(d)})
}

// Rearm cancels every pending event with the same id and schedules ev.
func (e *Engine) Rearm(ev Event) (Event, error) {
	e.Cancel(ev.ID)
	return e.Schedule(ev)
}

// Cancel drops pending events with the given id and reports how many were
// removed. Events already delivered to the channel are not recalled.
func (e *Engine) Cancel(id string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.queue[:0]
	removed := 0
	for _, item := range e.queue {
		if item.event.ID == id {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	e.queue = kept
	if removed > 0 {
		heap.Init(&e.queue)
		e.signalWakeup()
	}
	return removed
}

func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.TriggerAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now().UTC())
			for _, ev := range due {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (Event, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return Event{}, false
	}
	return e.queue[0].event, true
}

func (e *Engine) popDue(now time.Time) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Event, 0)
	for len(e.queue) > 0 {
		next := e.queue[0].event
		if next.TriggerAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queueItem)
		out = append(out, item.event)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
