package booking

import (
	"context"
	"log/slog"

	"railBooker/internal/events"
	"railBooker/internal/lib/logger/sl"
	"railBooker/internal/models"
	"railBooker/internal/storage"

	"github.com/google/uuid"
)

// defaultGender preserves the behavior of callers that never send a
// gender field.
const defaultGender = "Male"

type BookingStorage interface {
	BookTicket(ctx context.Context, params storage.BookTicketParams) (models.Ticket, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetTicket(ctx context.Context, pnr string) (models.Ticket, error)
}

type Producer interface {
	Publish(ctx context.Context, key string, event events.BookingEvent) error
}

// Service books tickets through the storage transaction and announces
// confirmed bookings on the event stream. A nil producer disables
// publishing.
type Service struct {
	storage  BookingStorage
	producer Producer
	log      *slog.Logger
}

func New(log *slog.Logger, storage BookingStorage, producer Producer) *Service {
	return &Service{
		storage:  storage,
		producer: producer,
		log:      log,
	}
}

// Book runs the atomic booking operation. A publish failure is logged
// but never fails a booking that already committed.
func (s *Service) Book(ctx context.Context, params storage.BookTicketParams) (models.Ticket, error) {
	if params.Gender == "" {
		params.Gender = defaultGender
	}

	tk, err := s.storage.BookTicket(ctx, params)
	if err != nil {
		return models.Ticket{}, err
	}

	if s.producer != nil {
		event := events.NewBookingConfirmed(uuid.NewString(), tk)
		if err := s.producer.Publish(ctx, tk.PNR, event); err != nil {
			s.log.Warn("failed to publish booking event",
				slog.String("pnr", tk.PNR), sl.Err(err))
		}
	}

	return tk, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.storage.ListBookings(ctx)
}

func (s *Service) GetTicket(ctx context.Context, pnr string) (models.Ticket, error) {
	return s.storage.GetTicket(ctx, pnr)
}
