package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dworin/KidAirlines/config"
	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSeatHold takes a short-lived hold while the reservation insert is
// in flight. The database unique index stays the authority on seat
// ownership; the hold only narrows the race window between operators.
func (c *RedisCache) AcquireSeatHold(ctx context.Context, flightID int64, seat string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatHoldKey(flightID, seat), "held", ttl).Result()
}

func (c *RedisCache) ReleaseSeatHold(ctx context.Context, flightID int64, seat string) error {
	return c.client.Del(ctx, seatHoldKey(flightID, seat)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatHoldKey(flightID int64, seat string) string {
	return fmt.Sprintf("hold:flight:%d:seat:%s", flightID, seat)
}
