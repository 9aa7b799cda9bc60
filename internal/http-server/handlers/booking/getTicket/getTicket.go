package getTicket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"railBooker/internal/lib/api/response"
	"railBooker/internal/lib/logger/sl"
	"railBooker/internal/lib/ticket"
	"railBooker/internal/models"
	"railBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketGetter
type TicketGetter interface {
	GetTicket(ctx context.Context, pnr string) (models.Ticket, error)
}

// New serves the printable e-ticket as a PDF attachment.
func New(log *slog.Logger, getter TicketGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getTicket.New"

		log = log.With(slog.String("op", op))

		pnr := chi.URLParam(r, "pnr")
		if pnr == "" {
			log.Error("pnr is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("pnr is required"))
			return
		}

		log = log.With(slog.String("pnr", pnr))

		tk, err := getter.GetTicket(r.Context(), pnr)
		if err != nil {
			log.Error("failed to get ticket", sl.Err(err))

			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get ticket"))
			return
		}

		pdf, err := ticket.BuildPDF(tk)
		if err != nil {
			log.Error("failed to render ticket", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render ticket"))
			return
		}

		log.Info("ticket rendered", slog.Int("bytes", len(pdf)))

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="TICKET_%s.pdf"`, pnr))
		w.WriteHeader(http.StatusOK)
		w.Write(pdf)
	}
}
