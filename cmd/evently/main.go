package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"evently/internal/config"
	"evently/internal/http-server/handlers/booking/createBooking"
	"evently/internal/http-server/handlers/booking/getEventBookings"
	"evently/internal/http-server/handlers/event/createEvent"
	"evently/internal/http-server/handlers/event/deleteEvent"
	"evently/internal/http-server/handlers/event/getAllEvents"
	"evently/internal/http-server/handlers/event/getEvent"
	"evently/internal/http-server/handlers/event/updateEvent"
	"evently/internal/http-server/middleware/mwlogger"
	"evently/internal/lib/logger/handlers/slogpretty"
	"evently/internal/lib/logger/sl"
	"evently/internal/storage/mongodb"

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

	log.Info("starting evently", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	storage, err := mongodb.New(connectCtx, &cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/events", createEvent.New(log, storage))
	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{slug}", getEvent.New(log, storage))
	router.Put("/events/{slug}", updateEvent.New(log, storage))
	router.Delete("/events/{slug}", deleteEvent.New(log, storage))
	router.Post("/events/{slug}/bookings", createBooking.New(log, storage))
	router.Get("/events/{slug}/bookings", getEventBookings.New(log, storage))

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
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if err = storage.Close(shutdownCtx); err != nil {
		log.Error("failed to close mongodb connection", sl.Err(err))
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
