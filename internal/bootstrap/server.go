package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dworin/KidAirlines/api"
	"github.com/dworin/KidAirlines/config"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups the HTTP handlers the server mounts.
type Handlers struct {
	Airports     *api.AirportHandler
	Routes       *api.RouteHandler
	Flights      *api.FlightHandler
	Passengers   *api.PassengerHandler
	Reservations *api.ReservationHandler
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, handlers Handlers) error {
	router := gin.Default()

	v1 := router.Group("/api/v1")
	handlers.Airports.Register(v1.Group("/airports"))
	handlers.Routes.Register(v1.Group("/routes"))
	handlers.Flights.Register(v1.Group("/flights"))
	handlers.Passengers.Register(v1.Group("/passengers"))
	handlers.Reservations.Register(v1.Group("/reservations"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/kidairlines.swagger.json"),
		)))
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
