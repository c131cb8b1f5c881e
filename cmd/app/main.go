package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catering/cmd"
	httpin "catering/internal/adapters/in/http"
	"catering/internal/adapters/in/http/servers"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := openPostgres(configs)
	mongoClient, mongoDB := openMongo(ctx, configs)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	app, err := cmd.NewCompositionRoot(configs, gormDB, mongoDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	if err = app.StatsStore().EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create stats indexes: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateProjectOrderStatsCommandHandler(),
		configs.StatsProjectionSchedule,
		commands.DefaultProjectionBatchSize,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	startWebServer(ctx, &app, configs, logger)

	jobManager.StopAll()
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                os.Getenv("HTTP_PORT"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  os.Getenv("DB_PORT"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               os.Getenv("DB_SSLMODE"),
		MongoURI:                os.Getenv("MONGO_URI"),
		MongoDatabase:           os.Getenv("MONGO_DATABASE"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		HomeCity:                os.Getenv("HOME_CITY"),
		DeliveryFee:             os.Getenv("DELIVERY_FEE"),
		BusinessTimezone:        os.Getenv("BUSINESS_TIMEZONE"),
		StatsProjectionSchedule: os.Getenv("STATS_PROJECTION_SCHEDULE"),
	}
	return config
}

func openPostgres(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate PostgreSQL schema: %v", err)
	}
	return db
}

func openMongo(ctx context.Context, configs cmd.Config) (*mongo.Client, *mongo.Database) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(configs.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx, nil); err != nil {
		log.Fatalf("Failed to reach MongoDB: %v", err)
	}
	return client, client.Database(configs.MongoDatabase)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListUserOrdersQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateListMenuStatsQueryHandler(),
		logger,
	)

	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI contract: %v", err)
	}

	e, err := httpin.NewRouter(server, swagger, configs.JWTSecret, logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()
	logger.InfoContext(ctx, "HTTP server started", "port", configs.HTTPPort)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
