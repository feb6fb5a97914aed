package audit

import "go.uber.org/zap"

type Event struct {
	RequestID string
	Action    string
	Entity    string
	EventID   string
	Metadata  any
}

// Dispatcher records booking lifecycle events without blocking the request
// path. The queue is bounded; when it fills, events are dropped rather than
// slowing down the API.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev.RequestID, ev.Action, ev.Entity, ev.EventID, ev.Metadata); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops the worker after draining the queue. Call on shutdown only.
func (d *Dispatcher) Close() {
	close(d.queue)
}
