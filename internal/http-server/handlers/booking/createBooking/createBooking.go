package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"railBooker/internal/lib/api/response"
	"railBooker/internal/lib/logger/sl"
	"railBooker/internal/models"
	"railBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	PNR           string `json:"pnr" validate:"required"`
	PassengerName string `json:"passenger_name" validate:"required"`
	Age           int    `json:"age" validate:"required,gt=0"`
	Gender        string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	TrainNumber   string `json:"train_number" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketBooker
type TicketBooker interface {
	Book(ctx context.Context, params storage.BookTicketParams) (models.Ticket, error)
}

// New books one seat. Failures come back typed so the client can tell
// "train not found" from "sold out" from "database down".
func New(log *slog.Logger, booker TicketBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		tk, err := booker.Book(r.Context(), storage.BookTicketParams{
			PNR:           req.PNR,
			PassengerName: req.PassengerName,
			Age:           req.Age,
			Gender:        req.Gender,
			TrainNumber:   req.TrainNumber,
		})
		if err != nil {
			log.Error("failed to book ticket", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrTrainNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("train not found"))
			case errors.Is(err, storage.ErrTrainNotActive):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("train is not active"))
			case errors.Is(err, storage.ErrNoSeatsAvailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available seats"))
			case errors.Is(err, storage.ErrDuplicatePNR):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("pnr already exists"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book ticket"))
			}
			return
		}

		log.Info("ticket booked successfully",
			slog.String("pnr", tk.PNR), slog.String("train_number", tk.TrainNumber))

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Ticket:   &tk,
		})
	}
}
