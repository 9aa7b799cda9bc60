package searchTrains

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TrainSearcher
type TrainSearcher interface {
	SearchTrains(ctx context.Context, from, to string) ([]models.Train, error)
}

// New searches the catalog by exact origin and destination. An unknown
// route is an empty list, not an error.
func New(log *slog.Logger, searcher TrainSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.train.searchTrains.New"

		log = log.With(slog.String("op", op))

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			log.Error("from and to query params are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("from and to query params are required"))
			return
		}

		trains, err := searcher.SearchTrains(r.Context(), from, to)
		if err != nil {
			log.Error("failed to search trains", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search trains"))
			return
		}

		log.Info("trains searched successfully",
			slog.String("from", from), slog.String("to", to), slog.Int("count", len(trains)))

		render.JSON(w, r, TrainsResponse{
			Response: response.OK(),
			Trains:   trains,
		})
	}
}
