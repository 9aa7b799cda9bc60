package storage

import (
	"context"
	"errors"

	"railBooker/internal/models"
)

var (
	ErrTrainNotFound    = errors.New("train not found")
	ErrTrainNotActive   = errors.New("train is not active")
	ErrNoSeatsAvailable = errors.New("no available seats")
	ErrDuplicatePNR     = errors.New("pnr already exists")
	ErrDuplicateTrain   = errors.New("train number already exists")
	ErrBookingNotFound  = errors.New("booking not found")
)

// BookTicketParams carries everything needed to book one seat. PNR is
// caller-supplied; uniqueness is enforced by the store.
type BookTicketParams struct {
	PNR           string
	PassengerName string
	Age           int
	Gender        string
	TrainNumber   string
}

// Storage is the persistence boundary. Both the Postgres and the
// in-memory implementations satisfy it; the driver is picked by
// configuration, never by user role.
type Storage interface {
	AddTrain(ctx context.Context, train models.Train) (int64, error)
	ListActiveTrains(ctx context.Context) ([]models.Train, error)
	SearchTrains(ctx context.Context, from, to string) ([]models.Train, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetTicket(ctx context.Context, pnr string) (models.Ticket, error)
	BookTicket(ctx context.Context, params BookTicketParams) (models.Ticket, error)
	Close() error
}
