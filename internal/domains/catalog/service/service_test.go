package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxehotel/config"
	otelMocks "luxehotel/infras/otel/mocks"
	"luxehotel/internal/domains/catalog/repository"
	"luxehotel/internal/domains/catalog/service"
	"luxehotel/shared/cache"
)

type stubCache struct{}

func (stubCache) Save(context.Context, string, any, int) error { return nil }
func (stubCache) Get(context.Context, string, any) error       { return cache.Nil }
func (stubCache) Delete(context.Context, string) error         { return nil }
func (stubCache) Clear(context.Context, string) error          { return nil }

type stubMedia struct{}

func (stubMedia) UploadFileBytes(context.Context, string, string, string, string, []byte) (string, error) {
	return "", nil
}

func (stubMedia) PublicURL(bucket, object string) string {
	return "https://media.luxehotel.com/" + bucket + "/" + object
}

func newService() service.Catalog {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.MediaBucket = "luxehotel-media"

	return service.New(repository.New(), cfg, stubCache{}, stubMedia{}, otelMocks.NewOtel())
}

func TestCatalogService_GetAll(t *testing.T) {
	svc := newService()

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rooms, 4)

	assert.Equal(t, "standard", res.Rooms[0].ID)
	assert.Equal(t, int64(199), res.Rooms[0].NightlyRate)
	assert.Equal(t, 2, res.Rooms[0].MaxGuests)
	assert.Equal(t, "https://media.luxehotel.com/luxehotel-media/rooms/standard.jpg", res.Rooms[0].ImageURL)

	assert.Equal(t, "presidential", res.Rooms[3].ID)
	assert.Equal(t, "Presidential Suite", res.Rooms[3].Name)
	assert.Equal(t, int64(999), res.Rooms[3].NightlyRate)
	assert.Equal(t, 6, res.Rooms[3].MaxGuests)
}

func TestCatalogService_Get(t *testing.T) {
	svc := newService()

	tests := []struct {
		name     string
		id       string
		wantName string
		wantRate int64
		wantErr  bool
	}{
		{name: "executive suite", id: "suite", wantName: "Executive Suite", wantRate: 499},
		{name: "deluxe room", id: "deluxe", wantName: "Deluxe Room", wantRate: 299},
		{name: "unknown room", id: "penthouse", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.EqualError(t, err, "room not found")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)
			assert.Equal(t, tt.wantRate, res.NightlyRate)
		})
	}
}
