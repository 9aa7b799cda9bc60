package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"railBooker/internal/config"
	"railBooker/internal/models"
	"railBooker/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) AddTrain(ctx context.Context, train models.Train) (int64, error) {
	query := `
		INSERT INTO trains (train_number, train_name, source_station, destination_station,
			departure_time, arrival_time, price, available_seats, status)
		VALUES ($1, $2, $3, $4, $5::time, $6::time, $7, $8, $9)
		RETURNING train_id`

	var id int64
	err := s.DB.QueryRowContext(ctx, query,
		train.Number,
		train.Name,
		train.Source,
		train.Destination,
		train.Departure,
		train.Arrival,
		train.Price,
		train.AvailableSeats,
		train.Status,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrDuplicateTrain
		}
		return 0, fmt.Errorf("failed to add train: %w", err)
	}

	return id, nil
}

func (s *Storage) ListActiveTrains(ctx context.Context) ([]models.Train, error) {
	query := `
		SELECT train_id, train_number, train_name, source_station, destination_station,
			to_char(departure_time, 'HH24:MI'), to_char(arrival_time, 'HH24:MI'),
			price, available_seats, status
		FROM trains
		WHERE status = $1
		ORDER BY train_number`

	rows, err := s.DB.QueryContext(ctx, query, models.TrainStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get trains: %w", err)
	}
	defer rows.Close()

	return scanTrains(rows)
}

func (s *Storage) SearchTrains(ctx context.Context, from, to string) ([]models.Train, error) {
	query := `
		SELECT train_id, train_number, train_name, source_station, destination_station,
			to_char(departure_time, 'HH24:MI'), to_char(arrival_time, 'HH24:MI'),
			price, available_seats, status
		FROM trains
		WHERE source_station = $1 AND destination_station = $2 AND status = $3
		ORDER BY train_number`

	rows, err := s.DB.QueryContext(ctx, query, from, to, models.TrainStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to search trains: %w", err)
	}
	defer rows.Close()

	return scanTrains(rows)
}

func (s *Storage) ListBookings(ctx context.Context) ([]models.Booking, error) {
	query := `
		SELECT b.pnr, trim(p.first_name || ' ' || p.last_name), t.train_name,
			b.journey_date, b.status
		FROM bookings b
		JOIN passengers p ON b.passenger_id = p.passenger_id
		JOIN trains t ON b.train_id = t.train_id
		ORDER BY b.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err = rows.Scan(&b.PNR, &b.PassengerName, &b.TrainName, &b.JourneyDate, &b.Status); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) GetTicket(ctx context.Context, pnr string) (models.Ticket, error) {
	query := `
		SELECT b.pnr, trim(p.first_name || ' ' || p.last_name), p.age,
			t.train_number, t.train_name, t.source_station, t.destination_station,
			to_char(t.departure_time, 'HH24:MI'),
			b.booking_date, b.journey_date, b.fare, b.status
		FROM bookings b
		JOIN passengers p ON b.passenger_id = p.passenger_id
		JOIN trains t ON b.train_id = t.train_id
		WHERE b.pnr = $1`

	var tk models.Ticket
	err := s.DB.QueryRowContext(ctx, query, pnr).Scan(
		&tk.PNR,
		&tk.PassengerName,
		&tk.Age,
		&tk.TrainNumber,
		&tk.TrainName,
		&tk.Source,
		&tk.Destination,
		&tk.Departure,
		&tk.BookingDate,
		&tk.JourneyDate,
		&tk.Fare,
		&tk.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ticket{}, storage.ErrBookingNotFound
		}
		return models.Ticket{}, fmt.Errorf("failed to get ticket: %w", err)
	}

	return tk, nil
}

// BookTicket creates the passenger and the booking and takes one seat,
// all inside a single transaction. The train row stays locked until
// commit so two bookings cannot both take the last seat.
func (s *Storage) BookTicket(ctx context.Context, params storage.BookTicketParams) (models.Ticket, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	firstName, lastName := splitName(params.PassengerName)

	var passengerID int64
	insertPassenger := `
		INSERT INTO passengers (first_name, last_name, age, gender)
		VALUES ($1, $2, $3, $4)
		RETURNING passenger_id`

	err = tx.QueryRowContext(ctx, insertPassenger, firstName, lastName, params.Age, params.Gender).
		Scan(&passengerID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to create passenger: %w", err)
	}

	var (
		trainID     int64
		trainStatus string
		tk          models.Ticket
	)
	selectTrain := `
		SELECT train_id, train_name, source_station, destination_station,
			to_char(departure_time, 'HH24:MI'), price, status
		FROM trains
		WHERE train_number = $1
		FOR UPDATE`

	err = tx.QueryRowContext(ctx, selectTrain, params.TrainNumber).Scan(
		&trainID,
		&tk.TrainName,
		&tk.Source,
		&tk.Destination,
		&tk.Departure,
		&tk.Fare,
		&trainStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ticket{}, storage.ErrTrainNotFound
		}
		return models.Ticket{}, fmt.Errorf("failed to get train: %w", err)
	}

	if trainStatus != models.TrainStatusActive {
		return models.Ticket{}, storage.ErrTrainNotActive
	}

	insertBooking := `
		INSERT INTO bookings (pnr, train_id, passenger_id, booking_date, journey_date, fare, status)
		VALUES ($1, $2, $3, CURRENT_DATE, CURRENT_DATE, $4, $5)
		RETURNING booking_date, journey_date`

	err = tx.QueryRowContext(ctx, insertBooking, params.PNR, trainID, passengerID, tk.Fare, models.BookingStatusConfirmed).
		Scan(&tk.BookingDate, &tk.JourneyDate)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Ticket{}, storage.ErrDuplicatePNR
		}
		return models.Ticket{}, fmt.Errorf("failed to create booking: %w", err)
	}

	takeSeat := `
		UPDATE trains
		SET available_seats = available_seats - 1
		WHERE train_id = $1 AND available_seats > 0`

	res, err := tx.ExecContext(ctx, takeSeat, trainID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to take seat: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to take seat: %w", err)
	}
	if affected == 0 {
		return models.Ticket{}, storage.ErrNoSeatsAvailable
	}

	if err = tx.Commit(); err != nil {
		return models.Ticket{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	tk.PNR = params.PNR
	tk.PassengerName = params.PassengerName
	tk.Age = params.Age
	tk.TrainNumber = params.TrainNumber
	tk.Status = models.BookingStatusConfirmed

	return tk, nil
}

func scanTrains(rows *sql.Rows) ([]models.Train, error) {
	trains := make([]models.Train, 0)
	for rows.Next() {
		var t models.Train
		err := rows.Scan(
			&t.ID,
			&t.Number,
			&t.Name,
			&t.Source,
			&t.Destination,
			&t.Departure,
			&t.Arrival,
			&t.Price,
			&t.AvailableSeats,
			&t.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		trains = append(trains, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trains: %w", err)
	}

	return trains, nil
}

// splitName splits a full name on the first space; "Solo" becomes
// ("Solo", "").
func splitName(full string) (string, string) {
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
