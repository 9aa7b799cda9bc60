package addTrain

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

type TrainRequest struct {
	Number         string  `json:"train_number" validate:"required"`
	Name           string  `json:"train_name" validate:"required"`
	Source         string  `json:"source_station" validate:"required"`
	Destination    string  `json:"destination_station" validate:"required"`
	Departure      string  `json:"departure_time" validate:"required"`
	Arrival        string  `json:"arrival_time" validate:"required"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
	Status         string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type TrainResponse struct {
	response.Response
	TrainId int64 `json:"train_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TrainAdder
type TrainAdder interface {
	AddTrain(ctx context.Context, train models.Train) (int64, error)
}

// New provisions a train. The route is admin-gated at the router.
func New(log *slog.Logger, adder TrainAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.train.addTrain.New"

		log = log.With(slog.String("op", op))

		var req TrainRequest

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

		if req.Status == "" {
			req.Status = models.TrainStatusActive
		}

		id, err := adder.AddTrain(r.Context(), models.Train{
			Number:         req.Number,
			Name:           req.Name,
			Source:         req.Source,
			Destination:    req.Destination,
			Departure:      req.Departure,
			Arrival:        req.Arrival,
			Price:          req.Price,
			AvailableSeats: req.AvailableSeats,
			Status:         req.Status,
		})
		if err != nil {
			log.Error("failed to add train", sl.Err(err))

			if errors.Is(err, storage.ErrDuplicateTrain) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("train number already exists"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add train"))
			return
		}

		log.Info("train added", slog.Int64("id", id), slog.String("train_number", req.Number))

		render.JSON(w, r, TrainResponse{
			Response: response.OK(),
			TrainId:  id,
		})
	}
}
