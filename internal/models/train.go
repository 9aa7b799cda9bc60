package models

const (
	TrainStatusActive   = "active"
	TrainStatusInactive = "inactive"
)

type Train struct {
	ID             int64   `json:"-" yaml:"-"`
	Number         string  `json:"train_number" yaml:"train_number"`
	Name           string  `json:"train_name" yaml:"train_name"`
	Source         string  `json:"source_station" yaml:"source_station"`
	Destination    string  `json:"destination_station" yaml:"destination_station"`
	Departure      string  `json:"departure_time" yaml:"departure_time"` // HH:MM
	Arrival        string  `json:"arrival_time" yaml:"arrival_time"`     // HH:MM
	Price          float64 `json:"price" yaml:"price"`
	AvailableSeats int     `json:"available_seats" yaml:"available_seats"`
	Status         string  `json:"status" yaml:"status"`
}
