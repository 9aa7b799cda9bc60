package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"railBooker/internal/auth"
	"railBooker/internal/cache"
	"railBooker/internal/config"
	"railBooker/internal/events"
	"railBooker/internal/http-server/handlers/auth/login"
	"railBooker/internal/http-server/handlers/booking/createBooking"
	"railBooker/internal/http-server/handlers/booking/getTicket"
	"railBooker/internal/http-server/handlers/booking/listBookings"
	"railBooker/internal/http-server/handlers/train/addTrain"
	"railBooker/internal/http-server/handlers/train/listTrains"
	"railBooker/internal/http-server/handlers/train/searchTrains"
	"railBooker/internal/http-server/middleware/mwauth"
	"railBooker/internal/http-server/middleware/mwlogger"
	"railBooker/internal/lib/logger/handlers/slogpretty"
	"railBooker/internal/lib/logger/sl"
	"railBooker/internal/service/booking"
	"railBooker/internal/service/trains"
	"railBooker/internal/storage"
	"railBooker/internal/storage/memory"
	"railBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting rail booker",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)
	log.Debug("Debug messages are enabled")

	var store storage.Storage
	switch cfg.Storage.Driver {
	case "memory":
		store = memory.New(cfg.Storage.Seed)
		log.Info("using in-memory storage", slog.Int("seed_trains", len(cfg.Storage.Seed)))
	case "postgres":
		pg, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		store = pg
	default:
		log.Error("unknown storage driver", slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	var trainCache trains.Cache
	if cfg.Cache.Enabled {
		if rc := cache.New(cfg.Cache); rc != nil {
			trainCache = rc
		} else {
			log.Warn("redis unavailable, train cache disabled", slog.String("addr", cfg.Cache.Addr))
		}
	}

	var producer *events.Producer
	var bookingProducer booking.Producer
	if cfg.Events.Enabled {
		producer = events.NewProducer(cfg.Events.Brokers, cfg.Events.Topic)
		bookingProducer = producer
	}

	authenticator := auth.New(cfg.Auth)
	trainService := trains.New(log, store, trainCache)
	bookingService := booking.New(log, store, bookingProducer)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/login", login.New(log, authenticator))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(authenticator))

		r.Get("/trains", listTrains.New(log, trainService))
		r.Get("/trains/search", searchTrains.New(log, trainService))
		r.Get("/bookings", listBookings.New(log, bookingService))
		r.Post("/bookings", createBooking.New(log, bookingService))
		r.Get("/bookings/{pnr}/ticket", getTicket.New(log, bookingService))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireRole(auth.RoleAdmin))
			r.Post("/trains", addTrain.New(log, trainService))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("failed to close event producer", sl.Err(err))
		}
	}

	if err := store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
