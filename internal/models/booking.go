package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Passenger struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

// Booking is the listing row: one confirmed booking joined with its
// passenger and train.
type Booking struct {
	PNR           string    `json:"pnr"`
	PassengerName string    `json:"passenger_name"`
	TrainName     string    `json:"train_name"`
	JourneyDate   time.Time `json:"journey_date"`
	Status        string    `json:"status"`
}

// Ticket is the full booking detail returned by BookTicket and used to
// render the printable e-ticket.
type Ticket struct {
	PNR           string    `json:"pnr"`
	PassengerName string    `json:"passenger_name"`
	Age           int       `json:"age"`
	TrainNumber   string    `json:"train_number"`
	TrainName     string    `json:"train_name"`
	Source        string    `json:"source_station"`
	Destination   string    `json:"destination_station"`
	Departure     string    `json:"departure_time"`
	BookingDate   time.Time `json:"booking_date"`
	JourneyDate   time.Time `json:"journey_date"`
	Fare          float64   `json:"fare"`
	Status        string    `json:"status"`
}
