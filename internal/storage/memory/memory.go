package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"railBooker/internal/models"
	"railBooker/internal/storage"
)

// Storage is the in-memory implementation of storage.Storage. It keeps
// the same contract as the Postgres store so callers behave identically
// regardless of the configured driver.
type Storage struct {
	mu sync.RWMutex

	trains     map[string]*models.Train // keyed by train number
	passengers map[int64]models.Passenger
	tickets    []models.Ticket // oldest first
	byPNR      map[string]int  // pnr -> index into tickets

	nextTrainID     int64
	nextPassengerID int64
}

// New returns an empty store preloaded with the given trains.
func New(seed []models.Train) *Storage {
	s := &Storage{
		trains:     make(map[string]*models.Train),
		passengers: make(map[int64]models.Passenger),
		byPNR:      make(map[string]int),
	}

	for _, t := range seed {
		s.nextTrainID++
		t.ID = s.nextTrainID
		train := t
		s.trains[t.Number] = &train
	}

	return s
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) AddTrain(_ context.Context, train models.Train) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trains[train.Number]; ok {
		return 0, storage.ErrDuplicateTrain
	}

	s.nextTrainID++
	train.ID = s.nextTrainID
	s.trains[train.Number] = &train

	return train.ID, nil
}

func (s *Storage) ListActiveTrains(_ context.Context) ([]models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trains := make([]models.Train, 0)
	for _, t := range s.trains {
		if t.Status == models.TrainStatusActive {
			trains = append(trains, *t)
		}
	}

	sort.Slice(trains, func(i, j int) bool {
		return trains[i].Number < trains[j].Number
	})

	return trains, nil
}

func (s *Storage) SearchTrains(_ context.Context, from, to string) ([]models.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trains := make([]models.Train, 0)
	for _, t := range s.trains {
		if t.Status == models.TrainStatusActive && t.Source == from && t.Destination == to {
			trains = append(trains, *t)
		}
	}

	sort.Slice(trains, func(i, j int) bool {
		return trains[i].Number < trains[j].Number
	})

	return trains, nil
}

func (s *Storage) ListBookings(_ context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.Booking, 0, len(s.tickets))
	for i := len(s.tickets) - 1; i >= 0; i-- {
		tk := s.tickets[i]
		bookings = append(bookings, models.Booking{
			PNR:           tk.PNR,
			PassengerName: tk.PassengerName,
			TrainName:     tk.TrainName,
			JourneyDate:   tk.JourneyDate,
			Status:        tk.Status,
		})
	}

	return bookings, nil
}

func (s *Storage) GetTicket(_ context.Context, pnr string) (models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byPNR[pnr]
	if !ok {
		return models.Ticket{}, storage.ErrBookingNotFound
	}

	return s.tickets[idx], nil
}

// BookTicket applies the same all-or-nothing contract as the Postgres
// store: every check runs before the first write, so a failed booking
// leaves no passenger behind.
func (s *Storage) BookTicket(_ context.Context, params storage.BookTicketParams) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	train, ok := s.trains[params.TrainNumber]
	if !ok {
		return models.Ticket{}, storage.ErrTrainNotFound
	}
	if train.Status != models.TrainStatusActive {
		return models.Ticket{}, storage.ErrTrainNotActive
	}
	if train.AvailableSeats <= 0 {
		return models.Ticket{}, storage.ErrNoSeatsAvailable
	}
	if _, exists := s.byPNR[params.PNR]; exists {
		return models.Ticket{}, storage.ErrDuplicatePNR
	}

	firstName, lastName := splitName(params.PassengerName)

	s.nextPassengerID++
	s.passengers[s.nextPassengerID] = models.Passenger{
		ID:        s.nextPassengerID,
		FirstName: firstName,
		LastName:  lastName,
		Age:       params.Age,
		Gender:    params.Gender,
	}

	today := dateOnly(time.Now())
	tk := models.Ticket{
		PNR:           params.PNR,
		PassengerName: params.PassengerName,
		Age:           params.Age,
		TrainNumber:   train.Number,
		TrainName:     train.Name,
		Source:        train.Source,
		Destination:   train.Destination,
		Departure:     train.Departure,
		BookingDate:   today,
		JourneyDate:   today,
		Fare:          train.Price,
		Status:        models.BookingStatusConfirmed,
	}

	train.AvailableSeats--
	s.tickets = append(s.tickets, tk)
	s.byPNR[params.PNR] = len(s.tickets) - 1

	return tk, nil
}

// PassengerCount reports how many passenger rows exist; used by tests
// to prove failed bookings are rolled back completely.
func (s *Storage) PassengerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.passengers)
}

func splitName(full string) (string, string) {
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
