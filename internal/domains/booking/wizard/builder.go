package wizard

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"luxehotel/internal/domains/booking/model"
	"luxehotel/internal/domains/booking/pricing"
)

const (
	bookingNumberPrefix = "LH"
	timestampDigits     = 8
	randomChars         = 4
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateBookingNumber builds a guest-facing reference such as
// LH12345678ABCD: the prefix, the last eight digits of the epoch
// millisecond timestamp, and four random base36 characters.
func generateBookingNumber(now time.Time) string {
	millis := now.UnixMilli() % 1e8

	var sb strings.Builder
	sb.Grow(len(bookingNumberPrefix) + timestampDigits + randomChars)
	sb.WriteString(bookingNumberPrefix)

	digits := [timestampDigits]byte{}
	for i := timestampDigits - 1; i >= 0; i-- {
		digits[i] = byte('0' + millis%10)
		millis /= 10
	}
	sb.Write(digits[:])

	entropy := uuid.New()
	for i := range randomChars {
		sb.WriteByte(base36Alphabet[int(entropy[i])%len(base36Alphabet)])
	}

	return sb.String()
}

// newRecord freezes a validated draft into an immutable booking record.
// The quote's derived figures are stamped in alongside the confirmation
// status and timestamp.
func newRecord(draft model.Draft, quote pricing.Quote, bookingNumber string, now time.Time) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		BookingNumber:   bookingNumber,
		RoomID:          draft.RoomID,
		CheckIn:         draft.CheckIn,
		CheckOut:        draft.CheckOut,
		GuestCount:      draft.GuestCount,
		FullName:        strings.TrimSpace(draft.FullName),
		Email:           strings.TrimSpace(draft.Email),
		Phone:           strings.TrimSpace(draft.Phone),
		MailingAddress:  strings.TrimSpace(draft.MailingAddress),
		SpecialRequests: strings.TrimSpace(draft.SpecialRequests),
		PaymentMethod:   draft.PaymentMethod,
		Nights:          quote.Nights,
		TotalPrice:      quote.TotalPrice,
		Status:          model.StatusConfirmed,
		CreatedAt:       now,
	}
}
