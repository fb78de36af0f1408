package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// ReservationEvent is published on every reservation mutation. Types:
// reservation_created, flight_added, flight_removed, reservation_cancelled,
// reservation_reactivated, reservation_deleted.
type ReservationEvent struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	ReservationID      int64     `json:"reservation_id"`
	ConfirmationNumber string    `json:"confirmation_number"`
	PassengerID        int64     `json:"passenger_id"`
	PassengerName      string    `json:"passenger_name"`
	FlightID           int64     `json:"flight_id,omitempty"`
	SeatNumber         string    `json:"seat_number,omitempty"`
	Status             string    `json:"status"`
	OccurredAt         time.Time `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
