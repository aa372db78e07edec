package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"dining-concierge/internal/domain/restaurant"
	"dining-concierge/internal/infra"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "restaurant:"

// RestaurantStore reads restaurant documents from the key-value store. One
// JSON document per restaurant, keyed by id.
type RestaurantStore struct {
	rdb *redis.Client
}

func NewRestaurantStore(rdb *redis.Client) *RestaurantStore {
	return &RestaurantStore{rdb: rdb}
}

func (s *RestaurantStore) GetByID(ctx context.Context, id string) (*restaurant.Record, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapErr("failed to get restaurant record", err)
	}

	var record restaurant.Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, infra.WrapErr("failed to decode restaurant record", err)
	}
	return &record, nil
}
