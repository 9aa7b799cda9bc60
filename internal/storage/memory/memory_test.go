package memory

import (
	"context"
	"testing"

	"railBooker/internal/models"
	"railBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTrains() []models.Train {
	return []models.Train{
		{
			Number:         "12345",
			Name:           "Rajdhani Express",
			Source:         "Delhi",
			Destination:    "Mumbai",
			Departure:      "16:55",
			Arrival:        "08:15",
			Price:          2500,
			AvailableSeats: 10,
			Status:         models.TrainStatusActive,
		},
		{
			Number:         "12002",
			Name:           "Shatabdi Express",
			Source:         "Delhi",
			Destination:    "Bhopal",
			Departure:      "06:00",
			Arrival:        "13:40",
			Price:          1200,
			AvailableSeats: 1,
			Status:         models.TrainStatusActive,
		},
		{
			Number:         "11111",
			Name:           "Retired Express",
			Source:         "Delhi",
			Destination:    "Mumbai",
			Departure:      "10:00",
			Arrival:        "22:00",
			Price:          900,
			AvailableSeats: 5,
			Status:         models.TrainStatusInactive,
		},
	}
}

func TestListActiveTrains(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())
	ctx := context.Background()

	trains, err := s.ListActiveTrains(ctx)
	require.NoError(t, err)
	require.Len(t, trains, 2)

	// ordered by train number, inactive trains excluded
	assert.Equal(t, "12002", trains[0].Number)
	assert.Equal(t, "12345", trains[1].Number)

	// idempotent with no intervening writes
	again, err := s.ListActiveTrains(ctx)
	require.NoError(t, err)
	assert.Equal(t, trains, again)
}

func TestSearchTrains(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())
	ctx := context.Background()

	trains, err := s.SearchTrains(ctx, "Delhi", "Mumbai")
	require.NoError(t, err)
	require.Len(t, trains, 1)
	assert.Equal(t, "12345", trains[0].Number)

	empty, err := s.SearchTrains(ctx, "Delhi", "Chennai")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBookTicketSuccess(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())
	ctx := context.Background()

	tk, err := s.BookTicket(ctx, storage.BookTicketParams{
		PNR:           "PNR900",
		PassengerName: "John Doe",
		Age:           30,
		Gender:        "Male",
		TrainNumber:   "12345",
	})
	require.NoError(t, err)

	assert.Equal(t, "PNR900", tk.PNR)
	assert.Equal(t, float64(2500), tk.Fare)
	assert.Equal(t, models.BookingStatusConfirmed, tk.Status)
	assert.Equal(t, "Rajdhani Express", tk.TrainName)

	trains, err := s.ListActiveTrains(ctx)
	require.NoError(t, err)
	for _, train := range trains {
		if train.Number == "12345" {
			assert.Equal(t, 9, train.AvailableSeats)
		}
	}

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "PNR900", bookings[0].PNR)
	assert.Equal(t, "John Doe", bookings[0].PassengerName)
	assert.Equal(t, 1, s.PassengerCount())
}

func TestBookTicketTrainNotFound(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())
	ctx := context.Background()

	_, err := s.BookTicket(ctx, storage.BookTicketParams{
		PNR:           "PNR901",
		PassengerName: "Solo",
		Age:           40,
		Gender:        "Male",
		TrainNumber:   "99999",
	})
	require.ErrorIs(t, err, storage.ErrTrainNotFound)

	// nothing persisted, no seat touched
	assert.Equal(t, 0, s.PassengerCount())

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	trains, err := s.ListActiveTrains(ctx)
	require.NoError(t, err)
	for _, train := range trains {
		switch train.Number {
		case "12345":
			assert.Equal(t, 10, train.AvailableSeats)
		case "12002":
			assert.Equal(t, 1, train.AvailableSeats)
		}
	}
}

func TestBookTicketInactiveTrain(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())

	_, err := s.BookTicket(context.Background(), storage.BookTicketParams{
		PNR:           "PNR902",
		PassengerName: "Jane Smith",
		Age:           25,
		Gender:        "Female",
		TrainNumber:   "11111",
	})
	require.ErrorIs(t, err, storage.ErrTrainNotActive)
	assert.Equal(t, 0, s.PassengerCount())
}

func TestBookTicketLastSeat(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())
	ctx := context.Background()

	_, err := s.BookTicket(ctx, storage.BookTicketParams{
		PNR:           "PNR903",
		PassengerName: "First Rider",
		Age:           31,
		Gender:        "Male",
		TrainNumber:   "12002",
	})
	require.NoError(t, err)

	_, err = s.BookTicket(ctx, storage.BookTicketParams{
		PNR:           "PNR904",
		PassengerName: "Second Rider",
		Age:           32,
		Gender:        "Male",
		TrainNumber:   "12002",
	})
	require.ErrorIs(t, err, storage.ErrNoSeatsAvailable)

	// the failed attempt left nothing behind
	assert.Equal(t, 1, s.PassengerCount())

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "PNR903", bookings[0].PNR)
}

func TestBookTicketDuplicatePNR(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())
	ctx := context.Background()

	params := storage.BookTicketParams{
		PNR:           "PNR905",
		PassengerName: "John Doe",
		Age:           30,
		Gender:        "Male",
		TrainNumber:   "12345",
	}

	_, err := s.BookTicket(ctx, params)
	require.NoError(t, err)

	_, err = s.BookTicket(ctx, params)
	require.ErrorIs(t, err, storage.ErrDuplicatePNR)

	assert.Equal(t, 1, s.PassengerCount())

	trains, err := s.ListActiveTrains(ctx)
	require.NoError(t, err)
	for _, train := range trains {
		if train.Number == "12345" {
			assert.Equal(t, 9, train.AvailableSeats)
		}
	}
}

func TestListBookingsNewestFirst(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())
	ctx := context.Background()

	for _, pnr := range []string{"PNR910", "PNR911", "PNR912"} {
		_, err := s.BookTicket(ctx, storage.BookTicketParams{
			PNR:           pnr,
			PassengerName: "John Doe",
			Age:           30,
			Gender:        "Male",
			TrainNumber:   "12345",
		})
		require.NoError(t, err)
	}

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "PNR912", bookings[0].PNR)
	assert.Equal(t, "PNR911", bookings[1].PNR)
	assert.Equal(t, "PNR910", bookings[2].PNR)
}

func TestGetTicket(t *testing.T) {
	t.Parallel()

	s := New(seedTrains())
	ctx := context.Background()

	booked, err := s.BookTicket(ctx, storage.BookTicketParams{
		PNR:           "PNR920",
		PassengerName: "Solo",
		Age:           40,
		Gender:        "Male",
		TrainNumber:   "12345",
	})
	require.NoError(t, err)

	tk, err := s.GetTicket(ctx, "PNR920")
	require.NoError(t, err)
	assert.Equal(t, booked, tk)
	// name with no whitespace yields an empty last name
	assert.Equal(t, "Solo", tk.PassengerName)

	_, err = s.GetTicket(ctx, "NOPE")
	require.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestAddTrain(t *testing.T) {
	t.Parallel()

	s := New(nil)
	ctx := context.Background()

	id, err := s.AddTrain(ctx, seedTrains()[0])
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = s.AddTrain(ctx, seedTrains()[0])
	require.ErrorIs(t, err, storage.ErrDuplicateTrain)

	trains, err := s.ListActiveTrains(ctx)
	require.NoError(t, err)
	require.Len(t, trains, 1)
	assert.Equal(t, "12345", trains[0].Number)
}
