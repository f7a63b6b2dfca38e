package audit

import "log"

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink persists audit events.
type Sink interface {
	Write(ev Event) error
}

// Dispatcher records events off the request path through a buffered queue.
// A full queue drops the event rather than blocking the API.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Write(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
