package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dworin/KidAirlines/api"
	"github.com/dworin/KidAirlines/config"
	"github.com/dworin/KidAirlines/internal/bootstrap"
	"github.com/dworin/KidAirlines/internal/cache"
	"github.com/dworin/KidAirlines/internal/kafka"
	"github.com/dworin/KidAirlines/internal/repository"
	"github.com/dworin/KidAirlines/internal/service/catalog"
	"github.com/dworin/KidAirlines/internal/service/directory"
	"github.com/dworin/KidAirlines/internal/service/manifest"
	"github.com/dworin/KidAirlines/internal/service/passengers"
	"github.com/dworin/KidAirlines/internal/service/reservation"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	directoryService := directory.NewDirectoryService(airportRepo, routeRepo)
	catalogService := catalog.NewCatalogService(flightRepo, redisCache)
	manifestService := manifest.NewManifestService(flightRepo, reservationRepo)
	passengerService := passengers.NewPassengerService(passengerRepo)
	reservationService := reservation.NewReservationService(
		reservationRepo,
		redisCache,
		producer,
		cfg.Kafka.ReservationsTopic,
		time.Duration(cfg.Booking.SeatHoldTTLSeconds)*time.Second,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	handlers := bootstrap.Handlers{
		Airports:     api.NewAirportHandler(directoryService),
		Routes:       api.NewRouteHandler(directoryService),
		Flights:      api.NewFlightHandler(catalogService, manifestService),
		Passengers:   api.NewPassengerHandler(passengerService, reservationService),
		Reservations: api.NewReservationHandler(reservationService, manifestService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
