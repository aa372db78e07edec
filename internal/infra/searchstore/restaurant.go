package searchstore

import (
	"context"

	"dining-concierge/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RestaurantSearchStore answers category queries against the restaurant search
// index. The index itself is populated out-of-band; this service only reads
// candidate ids from it.
type RestaurantSearchStore struct {
	pool *pgxpool.Pool
}

func NewRestaurantSearchStore(pool *pgxpool.Pool) *RestaurantSearchStore {
	return &RestaurantSearchStore{pool: pool}
}

func (s *RestaurantSearchStore) SearchByCategory(ctx context.Context, cuisine string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id FROM restaurants WHERE lower(category) = lower($1)`,
		cuisine,
	)
	if err != nil {
		return nil, infra.WrapErr("failed to search restaurants by category", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapErr("failed to scan restaurant id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapErr("failed to read restaurant ids", err)
	}
	return ids, nil
}
