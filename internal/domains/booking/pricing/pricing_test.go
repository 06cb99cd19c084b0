package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"luxehotel/internal/domains/booking/pricing"
	catalogRepository "luxehotel/internal/domains/catalog/repository"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestComputeStay(t *testing.T) {
	calculator := pricing.New(catalogRepository.New())

	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		roomID     string
		wantNights int
		wantTotal  int64
		wantErr    bool
	}{
		{
			name:       "four nights in the executive suite",
			checkIn:    "2025-06-01",
			checkOut:   "2025-06-05",
			roomID:     "suite",
			wantNights: 4,
			wantTotal:  1996,
		},
		{
			name:       "single night in a standard room",
			checkIn:    "2025-06-01",
			checkOut:   "2025-06-02",
			roomID:     "standard",
			wantNights: 1,
			wantTotal:  199,
		},
		{
			name:       "week in the presidential suite",
			checkIn:    "2025-06-01",
			checkOut:   "2025-06-08",
			roomID:     "presidential",
			wantNights: 7,
			wantTotal:  6993,
		},
		{
			name:     "missing check-in",
			checkOut: "2025-06-05",
			roomID:   "deluxe",
			wantErr:  true,
		},
		{
			name:    "missing check-out",
			checkIn: "2025-06-01",
			roomID:  "deluxe",
			wantErr: true,
		},
		{
			name:     "missing room",
			checkIn:  "2025-06-01",
			checkOut: "2025-06-05",
			wantErr:  true,
		},
		{
			name:     "check-out equals check-in",
			checkIn:  "2025-06-01",
			checkOut: "2025-06-01",
			roomID:   "deluxe",
			wantErr:  true,
		},
		{
			name:     "check-out before check-in",
			checkIn:  "2025-06-05",
			checkOut: "2025-06-01",
			roomID:   "deluxe",
			wantErr:  true,
		},
		{
			name:     "unknown room",
			checkIn:  "2025-06-01",
			checkOut: "2025-06-05",
			roomID:   "penthouse",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var checkIn, checkOut time.Time
			if tt.checkIn != "" {
				checkIn = date(tt.checkIn)
			}
			if tt.checkOut != "" {
				checkOut = date(tt.checkOut)
			}

			quote, err := calculator.ComputeStay(checkIn, checkOut, tt.roomID)

			if tt.wantErr {
				assert.ErrorIs(t, err, pricing.ErrUnpriceable)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNights, quote.Nights)
			assert.Equal(t, tt.wantTotal, quote.TotalPrice)
		})
	}
}

func TestComputeStayPartialDayRoundsUp(t *testing.T) {
	calculator := pricing.New(catalogRepository.New())

	checkIn := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)

	quote, err := calculator.ComputeStay(checkIn, checkOut, "standard")

	assert.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, int64(398), quote.TotalPrice)
}
