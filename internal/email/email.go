package email

import (
	"context"
	"fmt"

	"github.com/dworin/KidAirlines/internal/kafka"
)

// Sender writes reservation notifications. Stdout stands in for a mail
// gateway in this single-operator setup.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("notify %s: %s for reservation %s (status %s)\n",
		event.PassengerName, event.Type, event.ConfirmationNumber, event.Status)
	return nil
}
