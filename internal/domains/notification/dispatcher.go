package notification

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"fmt"
	"luxehotel/config"
	"luxehotel/infras/kafka"
	"luxehotel/infras/otel"
	"luxehotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// Confirmation is the human-readable booking summary handed to the
// delivery pipeline. The mailer consuming the topic turns it into the
// guest's confirmation email.
type Confirmation struct {
	BookingNumber   string `json:"booking_number"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	RoomName        string `json:"room_name"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Nights          int    `json:"nights"`
	Guests          int    `json:"guests"`
	TotalPrice      int64  `json:"total_price"`
	SpecialRequests string `json:"special_requests"`
	HotelName       string `json:"hotel_name"`
	HotelPhone      string `json:"hotel_phone"`
	HotelEmail      string `json:"hotel_email"`
	HotelAddress    string `json:"hotel_address"`
}

// Dispatcher delivers a confirmation best-effort. A Send failure never
// invalidates the booking; persistence success is the sole success
// criterion for a submission.
type Dispatcher interface {
	Send(ctx context.Context, confirmation Confirmation) error
}

type kafkaDispatcher struct {
	cfg    *config.Config
	client kafka.Client
	otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Dispatcher {
	return &kafkaDispatcher{
		cfg:    cfg,
		client: client,
		otel:   otel,
	}
}

func (d *kafkaDispatcher) Send(ctx context.Context, confirmation Confirmation) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelDispatcherScopeName, constant.OtelDispatcherScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if confirmation.HotelName == "" {
		confirmation.HotelName = d.cfg.Hotel.Name
		confirmation.HotelPhone = d.cfg.Hotel.Phone
		confirmation.HotelEmail = d.cfg.Hotel.Email
		confirmation.HotelAddress = d.cfg.Hotel.Address
	}

	if confirmation.SpecialRequests == "" {
		confirmation.SpecialRequests = "None"
	}

	topic := d.cfg.Kafka.ConfirmationTopic

	err = d.client.SendMessages(ctx, topic, kafka.Message{
		Key:   confirmation.BookingNumber,
		Value: confirmation,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingNumber", confirmation.BookingNumber).Msg("failed to publish confirmation")

		return fmt.Errorf("failed to publish confirmation: %w", err)
	}

	log.Info().
		Str("bookingNumber", confirmation.BookingNumber).
		Str("guestEmail", confirmation.GuestEmail).
		Msg("Confirmation dispatched")

	return nil
}
