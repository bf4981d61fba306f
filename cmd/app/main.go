package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"marketplace/cmd"
	httpserver "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/materialrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var gormDB *gorm.DB
	if !configs.UseMemoryBackend() {
		gormDB = mustOpenDatabase(configs)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer root.Close()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine in containerized runs where the environment is
	// set directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:              envOr("HTTP_PORT", "8080"),
		DataBackend:           envOr("DATA_BACKEND", "postgres"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                envOr("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOr("DB_SSLMODE", "disable"),
		KafkaHost:             envOr("KAFKA_HOST", "localhost:9092"),
		KafkaOrderEventsTopic: envOr("KAFKA_ORDER_EVENTS_TOPIC", "order.events"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisCacheTTL:         durationEnvOr("REDIS_CACHE_TTL", 30*time.Second),
		JWTSecret:             mustEnv("JWT_SECRET"),
		PendingMaxAge:         durationEnvOr("PENDING_MAX_AGE", 24*time.Hour),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func durationEnvOr(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	// TranslateError turns driver-specific failures into gorm sentinels;
	// the order repository relies on gorm.ErrDuplicatedKey for number
	// collisions.
	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.TrackingStepDTO{},
		&materialrepo.MaterialDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(
		root.CreatePlaceOrderCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateUpdateOrderItemsCommandHandler(),
		root.CreateSetDeliveryChargesCommandHandler(),
		root.CreateMarkPaymentCommandHandler(),
		root.CreateRateOrderCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetVendorOrdersQueryHandler(),
		root.CreateGetSupplierOrdersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e, root.IdentityProvider())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
