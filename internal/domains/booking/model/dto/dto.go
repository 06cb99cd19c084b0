package dto

import (
	"time"

	"luxehotel/internal/domains/booking/model"
	"luxehotel/internal/domains/booking/pricing"
	"luxehotel/internal/domains/booking/wizard"
	"luxehotel/shared"
	"luxehotel/shared/constant"
	"luxehotel/shared/failure"
)

type OpenWizardRequest struct {
	RoomID string `json:"room_id" validate:"omitempty,max=50"`
}

// UpdateDraftRequest is a partial form update. Absent fields keep their
// current draft values; dates arrive as plain calendar days.
type UpdateDraftRequest struct {
	RoomID          *string `json:"room_id"          validate:"omitempty,max=50"`
	CheckIn         *string `json:"check_in"         validate:"omitempty"`
	CheckOut        *string `json:"check_out"        validate:"omitempty"`
	GuestCount      *int    `json:"guest_count"      validate:"omitempty,min=1,max=20"`
	FullName        *string `json:"full_name"        validate:"omitempty,max=100"`
	Email           *string `json:"email"            validate:"omitempty,max=100"`
	Phone           *string `json:"phone"            validate:"omitempty,max=30"`
	MailingAddress  *string `json:"mailing_address"  validate:"omitempty,max=300"`
	SpecialRequests *string `json:"special_requests" validate:"omitempty,max=1000"`
	PaymentMethod   *string `json:"payment_method"   validate:"omitempty,oneof=credit-card debit-card paypal"`
}

func (u *UpdateDraftRequest) ToPatch() (wizard.DraftPatch, error) {
	patch := wizard.DraftPatch{
		RoomID:          u.RoomID,
		GuestCount:      u.GuestCount,
		FullName:        u.FullName,
		Email:           u.Email,
		Phone:           u.Phone,
		MailingAddress:  u.MailingAddress,
		SpecialRequests: u.SpecialRequests,
		PaymentMethod:   u.PaymentMethod,
	}

	if u.CheckIn != nil {
		checkIn, err := time.Parse(constant.StayDateFormat, *u.CheckIn)
		if err != nil {
			return wizard.DraftPatch{}, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format") // nolint:wrapcheck
		}

		patch.CheckIn = &checkIn
	}

	if u.CheckOut != nil {
		checkOut, err := time.Parse(constant.StayDateFormat, *u.CheckOut)
		if err != nil {
			return wizard.DraftPatch{}, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format") // nolint:wrapcheck
		}

		patch.CheckOut = &checkOut
	}

	return patch, nil
}

type DraftResponse struct {
	RoomID          string `json:"room_id"`
	CheckIn         string `json:"check_in,omitempty"`
	CheckOut        string `json:"check_out,omitempty"`
	GuestCount      int    `json:"guest_count"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	MailingAddress  string `json:"mailing_address"`
	SpecialRequests string `json:"special_requests"`
	PaymentMethod   string `json:"payment_method"`
}

func (r *DraftResponse) FromModel(draft model.Draft) {
	r.RoomID = draft.RoomID
	r.GuestCount = draft.GuestCount
	r.FullName = draft.FullName
	r.Email = draft.Email
	r.Phone = draft.Phone
	r.MailingAddress = draft.MailingAddress
	r.SpecialRequests = draft.SpecialRequests
	r.PaymentMethod = draft.PaymentMethod

	if !draft.CheckIn.IsZero() {
		r.CheckIn = draft.CheckIn.Format(constant.StayDateFormat)
	}

	if !draft.CheckOut.IsZero() {
		r.CheckOut = draft.CheckOut.Format(constant.StayDateFormat)
	}
}

type QuoteResponse struct {
	Nights     int   `json:"nights"`
	TotalPrice int64 `json:"total_price"`
}

// WizardStateResponse is the full view of one booking session. The
// quote block is present only while the draft prices cleanly.
type WizardStateResponse struct {
	SessionID string         `json:"session_id"`
	Step      string         `json:"step"`
	Draft     DraftResponse  `json:"draft"`
	Quote     *QuoteResponse `json:"quote,omitempty"`
}

func (r *WizardStateResponse) FromWizard(sessionID string, step wizard.Step, draft model.Draft, quote pricing.Quote, priced bool) {
	r.SessionID = sessionID
	r.Step = step.String()
	r.Draft.FromModel(draft)

	if priced {
		r.Quote = &QuoteResponse{
			Nights:     quote.Nights,
			TotalPrice: quote.TotalPrice,
		}
	}
}

type BookingResponse struct {
	ID              string `json:"id"`
	BookingNumber   string `json:"booking_number"`
	RoomID          string `json:"room_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	GuestCount      int    `json:"guest_count"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	MailingAddress  string `json:"mailing_address"`
	SpecialRequests string `json:"special_requests"`
	PaymentMethod   string `json:"payment_method"`
	Nights          int    `json:"nights"`
	TotalPrice      int64  `json:"total_price"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.BookingNumber = mod.BookingNumber
	r.RoomID = mod.RoomID
	r.CheckIn = mod.CheckIn.Format(constant.StayDateFormat)
	r.CheckOut = mod.CheckOut.Format(constant.StayDateFormat)
	r.GuestCount = mod.GuestCount
	r.FullName = mod.FullName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.MailingAddress = mod.MailingAddress
	r.SpecialRequests = mod.SpecialRequests
	r.PaymentMethod = mod.PaymentMethod
	r.Nights = mod.Nights
	r.TotalPrice = mod.TotalPrice
	r.Status = mod.Status
	r.CreatedAt = mod.CreatedAt.Format(constant.DateFormat)
}

// SubmitResponse confirms a booking. Warning is set when the record was
// saved but the confirmation message could not be dispatched.
type SubmitResponse struct {
	Booking BookingResponse `json:"booking"`
	Warning string          `json:"warning,omitempty"`
}

func (r *SubmitResponse) FromResult(result wizard.SubmitResult) {
	r.Booking.FromModel(result.Record)

	if !result.NotificationSent {
		r.Warning = "booking confirmed, but the confirmation message could not be sent"
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
