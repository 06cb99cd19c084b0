package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldBookingNumber   = "booking_number"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuestCount      = "guest_count"
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldMailingAddress  = "mailing_address"
	FieldSpecialRequests = "special_requests"
	FieldPaymentMethod   = "payment_method"
	FieldNights          = "nights"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldCreatedAt       = "created_at"
)

const (
	StatusConfirmed = "confirmed"
)

const (
	PaymentMethodCreditCard = "credit-card"
	PaymentMethodDebitCard  = "debit-card"
	PaymentMethodPayPal     = "paypal"

	DefaultPaymentMethod = PaymentMethodCreditCard
)

// Booking is the immutable record of a confirmed stay. Nights and
// TotalPrice are frozen at creation and never recomputed, even if
// catalog rates change later.
type Booking struct {
	ID              string    `db:"id"`
	BookingNumber   string    `db:"booking_number"`
	RoomID          string    `db:"room_id"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	GuestCount      int       `db:"guest_count"`
	FullName        string    `db:"full_name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	MailingAddress  string    `db:"mailing_address"`
	SpecialRequests string    `db:"special_requests"`
	PaymentMethod   string    `db:"payment_method"`
	Nights          int       `db:"nights"`
	TotalPrice      int64     `db:"total_price"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

// Draft is the mutable state of one in-progress booking attempt, owned
// exclusively by its wizard. Derived values (nights, total) are never
// stored here; they are recomputed from the canonical fields on demand.
type Draft struct {
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int
	RoomID          string
	FullName        string
	Email           string
	Phone           string
	MailingAddress  string
	SpecialRequests string
	PaymentMethod   string
}

// NewDraft returns an empty draft, optionally pre-seeded with a room
// selection from the catalog showcase.
func NewDraft(initialRoomID string) Draft {
	return Draft{
		GuestCount:    1,
		RoomID:        initialRoomID,
		PaymentMethod: DefaultPaymentMethod,
	}
}
