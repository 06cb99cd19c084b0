package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"luxehotel/infras/otel"
	"luxehotel/infras/postgres"
	"luxehotel/internal/domains/booking/model"
	"luxehotel/shared"
	gDto "luxehotel/shared/dto"
	gRepo "luxehotel/shared/repository"
)

// Booking is the append-only persistence gateway for confirmed booking
// records. Records are never updated or deleted.
type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	NumberExists(ctx context.Context, bookingNumber string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NumberExists backs the booking-number collision check at submit time.
func (r *repositoryImpl) NumberExists(ctx context.Context, bookingNumber string) (bool, error) {
	return r.Exist(ctx, shared.FilterByID(bookingNumber, model.FieldBookingNumber, model.TableName)) //nolint:wrapcheck
}
