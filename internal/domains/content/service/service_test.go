package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxehotel/config"
	otelMocks "luxehotel/infras/otel/mocks"
	"luxehotel/internal/domains/content/repository"
	"luxehotel/internal/domains/content/service"
	"luxehotel/shared/cache"
)

type stubCache struct{}

func (stubCache) Save(context.Context, string, any, int) error { return nil }
func (stubCache) Get(context.Context, string, any) error       { return cache.Nil }
func (stubCache) Delete(context.Context, string) error         { return nil }
func (stubCache) Clear(context.Context, string) error          { return nil }

func newService() service.Content {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.Name = "Luxe Hotel"

	return service.New(repository.New(), cfg, stubCache{}, otelMocks.NewOtel())
}

func TestContentService_GetAmenities(t *testing.T) {
	svc := newService()

	res, err := svc.GetAmenities(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Amenities, 8)
	assert.Len(t, res.Highlights, 3)
	assert.Equal(t, "High-Speed WiFi", res.Amenities[0].Title)
	assert.Equal(t, "Concierge Service", res.Amenities[7].Title)
}

func TestContentService_GetTestimonials(t *testing.T) {
	svc := newService()

	res, err := svc.GetTestimonials(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Testimonials, 6)
	assert.Equal(t, "Sarah Johnson", res.Testimonials[0].Name)
	assert.Equal(t, 5, res.Testimonials[0].Rating)
	assert.Equal(t, 98, res.Stats.SatisfactionPercent)
	assert.Equal(t, 4.9, res.Stats.AverageRating)
}

func TestContentService_GetContact(t *testing.T) {
	svc := newService()

	res, err := svc.GetContact(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Luxe Hotel", res.HotelName)
	require.Len(t, res.Channels, 4)
	assert.Equal(t, "Address", res.Channels[0].Title)
	assert.Contains(t, res.Channels[2].Details, "reservations@luxehotel.com")
	assert.Len(t, res.Transport, 2)
}
