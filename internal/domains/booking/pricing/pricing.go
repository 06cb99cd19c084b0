package pricing

import (
	"errors"
	"math"
	"time"

	"luxehotel/internal/domains/catalog/repository"
)

// ErrUnpriceable means the stay cannot be priced yet: dates are missing
// or inverted, or the room is not in the catalog. Callers must treat
// this as "no price", never as a price of zero.
var ErrUnpriceable = errors.New("stay cannot be priced")

// Quote is the derived cost of a stay. TotalPrice is whole US dollars.
type Quote struct {
	Nights     int   `json:"nights"`
	TotalPrice int64 `json:"total_price"`
}

// Calculator derives nights and total price from the canonical draft
// fields. It is pure: no side effects, deterministic, and safe to call
// on every edit.
type Calculator interface {
	ComputeStay(checkIn, checkOut time.Time, roomID string) (Quote, error)
}

type calculatorImpl struct {
	catalog repository.Catalog
}

func New(catalog repository.Catalog) Calculator {
	return &calculatorImpl{
		catalog: catalog,
	}
}

func (c *calculatorImpl) ComputeStay(checkIn, checkOut time.Time, roomID string) (Quote, error) {
	if checkIn.IsZero() || checkOut.IsZero() || roomID == "" {
		return Quote{}, ErrUnpriceable
	}

	nights := nightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return Quote{}, ErrUnpriceable
	}

	room, ok := c.catalog.Lookup(roomID)
	if !ok {
		return Quote{}, ErrUnpriceable
	}

	return Quote{
		Nights:     nights,
		TotalPrice: int64(nights) * room.NightlyRate,
	}, nil
}

// nightsBetween rounds partial days up, matching the ceil semantics of
// the public site's price preview.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
