package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/configs"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/logging"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/ratelimiter"
	chatHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/chat"
	expensesHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/expenses"
	healthHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/health"
	roomsHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/rooms"
	usersHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/users"
	votesHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/votes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Application struct {
	config          *configs.Config
	healthHandler   *healthHandler.Handler
	usersHandler    *usersHandler.Handler
	roomsHandler    *roomsHandler.Handler
	votesHandler    *votesHandler.Handler
	expensesHandler *expensesHandler.Handler
	chatHandler     *chatHandler.Handler
	logger          logging.Logger
	ratelimiter     ratelimiter.Limiter
}

func NewApplication(
	config *configs.Config,
	healthHandler *healthHandler.Handler,
	usersHandler *usersHandler.Handler,
	roomsHandler *roomsHandler.Handler,
	votesHandler *votesHandler.Handler,
	expensesHandler *expensesHandler.Handler,
	chatHandler *chatHandler.Handler,
	logger logging.Logger,
	ratelimiter ratelimiter.Limiter,
) *Application {
	return &Application{
		config:          config,
		healthHandler:   healthHandler,
		usersHandler:    usersHandler,
		roomsHandler:    roomsHandler,
		votesHandler:    votesHandler,
		expensesHandler: expensesHandler,
		chatHandler:     chatHandler,
		logger:          logger,
		ratelimiter:     ratelimiter,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(app.enableCors)
	r.Use(app.loggerMiddleware)

	// Websocket connections are long-lived and must dodge both the request
	// timeout and the HTTP bucket limiter.
	r.Get("/ws/{roomId}/{userId}", app.roomsHandler.JoinRoomHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Use(app.rateLimiterMiddleware)

		r.Route("/api", func(r chi.Router) {
			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", app.roomsHandler.ListRoomsHandler)
				r.Post("/", app.roomsHandler.CreateRoomHandler)
				r.Get("/{roomId}/summary", app.roomsHandler.GetRoomSummaryHandler)
				r.Get("/{roomId}/status", app.roomsHandler.GetRoomStatusHandler)
				r.Post("/{roomId}/remind", app.roomsHandler.RemindRoomHandler)

				r.Get("/{roomId}/expenses", app.expensesHandler.ListExpensesHandler)
				r.Post("/{roomId}/expenses", app.expensesHandler.AddExpenseHandler)
				r.Get("/{roomId}/balances", app.expensesHandler.GetBalancesHandler)
			})

			r.Route("/votes", func(r chi.Router) {
				r.Post("/", app.votesHandler.CastVoteHandler)
				r.Get("/{roomId}/candidates", app.votesHandler.ListCandidatesHandler)
				r.Post("/{roomId}/candidates", app.votesHandler.AddCandidatesHandler)
				r.Get("/{roomId}/tally", app.votesHandler.GetTallyHandler)
				r.Get("/{roomId}/winner", app.votesHandler.GetWinnerHandler)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/{roomId}/messages", app.chatHandler.GetHistoryHandler)
				r.Post("/message", app.chatHandler.PostMessageHandler)
				r.Post("/emoji", app.chatHandler.PostEmojiHandler)
			})

			r.Route("/users", func(r chi.Router) {
				r.Post("/register", app.usersHandler.RegisterHandler)
				r.Post("/login", app.usersHandler.LoginHandler)
				r.Get("/", app.usersHandler.ListUsersHandler)
			})

			r.Get("/health", app.healthHandler.GetHealth)
		})
	})

	// Probes and scrapes stay outside the limiter and timeout.
	r.Get("/health", app.healthHandler.GetHealth)
	r.Get("/healthz", app.healthHandler.GetHealth)
	r.Get("/ready", app.healthHandler.GetHealth)
	r.Get("/live", app.healthHandler.GetHealth)

	r.Handle("/metrics", promhttp.Handler())

	return otelhttp.NewHandler(r, "watchparty-http")
}

func (app *Application) Run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", app.config.HTTP.Host, app.config.HTTP.Port),
		Handler:      mux,
		WriteTimeout: app.config.HTTP.WriteTimeout,
		ReadTimeout:  app.config.HTTP.ReadTimeout,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Info(logging.General, logging.Shutdown, "signal caught", map[logging.ExtraKey]any{
			"signal": s.String(),
		})

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Info(logging.General, logging.Startup, "server has started", map[logging.ExtraKey]any{
		"addr": srv.Addr,
	})

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Info(logging.General, logging.Shutdown, "server has stopped", map[logging.ExtraKey]any{
		"addr": srv.Addr,
	})

	return nil
}
