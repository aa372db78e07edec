//go:build unit || e2e

package builder

import (
	"fmt"

	"dining-concierge/internal/domain/restaurant"
)

type RestaurantBuilder struct {
	ID          string
	Name        string
	Category    string
	Rating      float64
	ReviewCount int
	Address     string
	Phone       string
	ZipCode     string
}

func NewRestaurantBuilder(id string) *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:          id,
		Name:        "Restaurant " + id,
		Category:    "japanese",
		Rating:      4.5,
		ReviewCount: 120,
		Address:     fmt.Sprintf("%s Main St", id),
		Phone:       "+12125550100",
		ZipCode:     "10001",
	}
}

func (b *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	b.Name = name
	return b
}

func (b *RestaurantBuilder) WithCategory(category string) *RestaurantBuilder {
	b.Category = category
	return b
}

func (b *RestaurantBuilder) WithAddress(address string) *RestaurantBuilder {
	b.Address = address
	return b
}

func (b *RestaurantBuilder) WithoutAddress() *RestaurantBuilder {
	b.Address = "None"
	return b
}

func (b *RestaurantBuilder) Build() *restaurant.Record {
	return &restaurant.Record{
		ID:          b.ID,
		Name:        b.Name,
		Category:    b.Category,
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
		Coordinates: restaurant.Coordinates{Latitude: 40.7128, Longitude: -74.0060},
		Address:     b.Address,
		Phone:       b.Phone,
		ZipCode:     b.ZipCode,
	}
}
