package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"railBooker/internal/models"

	"github.com/segmentio/kafka-go"
)

// BookingEvent is published after a booking commits. EventID makes
// duplicate deliveries detectable downstream.
type BookingEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	PNR           string    `json:"pnr"`
	TrainNumber   string    `json:"train_number"`
	PassengerName string    `json:"passenger_name"`
	Fare          float64   `json:"fare"`
	Status        string    `json:"status"`
	JourneyDate   time.Time `json:"journey_date"`
}

const TypeBookingConfirmed = "booking_confirmed"

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{writer: writer, topic: topic}
}

func (p *Producer) Publish(ctx context.Context, key string, event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// NewBookingConfirmed builds the event for a freshly booked ticket.
func NewBookingConfirmed(eventID string, tk models.Ticket) BookingEvent {
	return BookingEvent{
		EventID:       eventID,
		Type:          TypeBookingConfirmed,
		PNR:           tk.PNR,
		TrainNumber:   tk.TrainNumber,
		PassengerName: tk.PassengerName,
		Fare:          tk.Fare,
		Status:        tk.Status,
		JourneyDate:   tk.JourneyDate,
	}
}
