package listTrains

import (
	"context"
	"log/slog"
	"net/http"

	"railBooker/internal/lib/api/response"
	"railBooker/internal/lib/logger/sl"
	"railBooker/internal/models"

	"github.com/go-chi/render"
)

type TrainsResponse struct {
	response.Response
	Trains []models.Train `json:"trains"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TrainLister
type TrainLister interface {
	ListActiveTrains(ctx context.Context) ([]models.Train, error)
}

func New(log *slog.Logger, lister TrainLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.train.listTrains.New"

		log = log.With(slog.String("op", op))

		trains, err := lister.ListActiveTrains(r.Context())
		if err != nil {
			log.Error("failed to get trains", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get trains"))
			return
		}

		log.Info("trains retrieved successfully", slog.Int("count", len(trains)))

		render.JSON(w, r, TrainsResponse{
			Response: response.OK(),
			Trains:   trains,
		})
	}
}
