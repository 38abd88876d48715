package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/configs"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/events"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/logging"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/messaging"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/metrics"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/ratelimiter"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/tracing"
	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/ws"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/db"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/migration"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/repository"
	"github.com/Kagankakao/tv-plus-social-watch/internal/presentation/api"
	chatHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/chat"
	expensesHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/expenses"
	healthHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/health"
	roomsHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/rooms"
	usersHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/users"
	votesHandler "github.com/Kagankakao/tv-plus-social-watch/internal/presentation/handler/votes"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	// Missing .env is fine; every setting has a default or env override.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "watchparty",
		Short: "Watch party coordination service",
		Long: `Watchparty runs the social watch service: realtime rooms over
websockets, content voting with quorum, chat with cooldowns and
expense settlement, backed by PostgreSQL.`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the yaml config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP/websocket server",
		RunE:  runServe,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE:  runMigrate,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load demo users, catalog, a room and its candidates",
		RunE:  runSeed,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*configs.Config, error) {
	return configs.Load(configs.DetermineConfigPath(configPath))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.NewDefaultConfig())

	shutdownTracing, err := tracing.InitTracer(tracing.NewDefaultConfig("watchparty"))
	if err != nil {
		logger.Warn(logging.General, logging.Startup, "tracing disabled", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	} else {
		defer shutdownTracing(ctx)
	}

	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := migration.Migrate(conn); err != nil {
		return err
	}
	logger.Info(logging.Postgres, logging.Migration, "migrations applied", nil)

	var rabbit *messaging.RabbitMQ
	if cfg.AMQP.URI != "" {
		rabbit, err = messaging.NewRabbitMQ(cfg.AMQP.URI)
		if err != nil {
			return err
		}
		defer rabbit.Close()
	}
	roomPublisher := events.NewRoomPublisher(rabbit)

	cache := ratelimiter.NewInMemory()
	defer cache.Close()

	gate := ratelimiter.NewCooldownGate(cfg.Hub.ChatCooldown, cache)
	hub := ws.NewHub(gate, logger, metrics.NewDefaultHub())

	limiter := ratelimiter.New(ratelimiter.Options{
		MaxRatePerSecond: cfg.RateLimiter.MaxRatePerSecond,
		MaxBurst:         cfg.RateLimiter.MaxBurst,
		Cache:            cache,
		CacheTTL:         cfg.RateLimiter.CacheTTL,
		SourceHeaderKey:  cfg.RateLimiter.SourceHeaderKey,
	})

	roomRepo := repository.NewRoomRepository(conn)
	userRepo := repository.NewUserRepository(conn)
	voteRepo := repository.NewVoteRepository(conn)
	expenseRepo := repository.NewExpenseRepository(conn)
	messageRepo := repository.NewMessageRepository(conn)

	app := api.NewApplication(
		cfg,
		healthHandler.NewHandler(),
		usersHandler.NewHandler(userRepo),
		roomsHandler.NewHandler(roomRepo, voteRepo, hub, roomPublisher, logger),
		votesHandler.NewHandler(voteRepo, hub, roomPublisher, logger),
		expensesHandler.NewHandler(expenseRepo),
		chatHandler.NewHandler(messageRepo),
		logger,
		limiter,
	)

	return app.Run(app.Mount())
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := migration.Migrate(conn); err != nil {
		return err
	}

	fmt.Println("migrations applied")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := migration.Migrate(conn); err != nil {
		return err
	}

	if err := repository.Seed(ctx, conn); err != nil {
		return err
	}

	fmt.Println("demo data seeded")
	return nil
}
