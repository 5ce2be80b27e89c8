package notification

import (
	"context"

	"go-hrm/internal/events"
)

// Dispatcher renders a requested notification and hands it to a Mailer.
type Dispatcher struct {
	renderer *Renderer
	mailer   Mailer
}

func NewDispatcher(renderer *Renderer, mailer Mailer) *Dispatcher {
	return &Dispatcher{renderer: renderer, mailer: mailer}
}

func (d *Dispatcher) Deliver(ctx context.Context, event events.NotificationRequestedEvent) error {
	mail, err := d.renderer.Render(event)
	if err != nil {
		return &RenderError{Err: err}
	}
	return d.mailer.Send(ctx, mail)
}

// RenderError marks an event that can never be delivered, so retrying it is pointless.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }
