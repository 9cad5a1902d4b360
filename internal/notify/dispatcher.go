package notify

import (
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingCreated     = "booking_created"
	EventBookingRescheduled = "booking_rescheduled"
	EventBookingCancelled   = "booking_cancelled"
)

type Event struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	AppointmentID uint      `json:"appointment_id"`
	OwnerID       uint      `json:"owner_id"`
	GroomerID     uint      `json:"groomer_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Sink delivers an event to whatever cares (mailer, webhook, log).
type Sink interface {
	Deliver(ev Event) error
}

// LogSink stands in for the mail collaborator; delivery mechanics are not
// this service's concern.
type LogSink struct{}

func (LogSink) Deliver(ev Event) error {
	log.Printf("notify: %s appointment=%d owner=%d groomer=%d", ev.Type, ev.AppointmentID, ev.OwnerID, ev.GroomerID)
	return nil
}

// Dispatcher fans domain events out to the sink off the request path. A
// scheduling write that already committed stands even if delivery fails.
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
		if err := d.sink.Deliver(ev); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(eventType string, appointmentID, ownerID, groomerID uint) {
	if d == nil {
		return
	}

	ev := Event{
		ID:            uuid.NewString(),
		Type:          eventType,
		AppointmentID: appointmentID,
		OwnerID:       ownerID,
		GroomerID:     groomerID,
		OccurredAt:    time.Now().UTC(),
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}
