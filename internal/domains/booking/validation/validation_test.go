package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"luxehotel/internal/domains/booking/model"
	"luxehotel/internal/domains/booking/validation"
	catalogRepository "luxehotel/internal/domains/catalog/repository"
)

var today = time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func validDraft() model.Draft {
	draft := model.NewDraft("suite")
	draft.CheckIn = date("2025-06-01")
	draft.CheckOut = date("2025-06-05")
	draft.GuestCount = 2
	draft.FullName = "Jane Smith"
	draft.Email = "jane@example.com"
	draft.Phone = "+1 (555) 987-6543"

	return draft
}

func TestCheckDatesRoom(t *testing.T) {
	engine := validation.New(catalogRepository.New())

	tests := []struct {
		name    string
		mutate  func(draft *model.Draft)
		wantMsg string
	}{
		{
			name:   "valid dates and room",
			mutate: func(draft *model.Draft) {},
		},
		{
			name: "missing check-in",
			mutate: func(draft *model.Draft) {
				draft.CheckIn = time.Time{}
			},
			wantMsg: "missing booking details: check-in, check-out and room type are required",
		},
		{
			name: "missing check-out",
			mutate: func(draft *model.Draft) {
				draft.CheckOut = time.Time{}
			},
			wantMsg: "missing booking details: check-in, check-out and room type are required",
		},
		{
			name: "missing room",
			mutate: func(draft *model.Draft) {
				draft.RoomID = ""
			},
			wantMsg: "missing booking details: check-in, check-out and room type are required",
		},
		{
			name: "check-in in the past",
			mutate: func(draft *model.Draft) {
				draft.CheckIn = date("2025-05-19")
			},
			wantMsg: "check-in date cannot be in the past",
		},
		{
			name: "check-in today is allowed",
			mutate: func(draft *model.Draft) {
				draft.CheckIn = date("2025-05-20")
			},
		},
		{
			name: "check-out equals check-in",
			mutate: func(draft *model.Draft) {
				draft.CheckOut = draft.CheckIn
			},
			wantMsg: "check-out date must be after check-in date",
		},
		{
			name: "check-out before check-in",
			mutate: func(draft *model.Draft) {
				draft.CheckOut = date("2025-05-30")
			},
			wantMsg: "check-out date must be after check-in date",
		},
		{
			name: "too many guests for the room",
			mutate: func(draft *model.Draft) {
				draft.RoomID = "standard"
				draft.GuestCount = 3
			},
			wantMsg: "guest count exceeds the capacity of the selected room",
		},
		{
			name: "missing fields reported before date order",
			mutate: func(draft *model.Draft) {
				draft.RoomID = ""
				draft.CheckOut = date("2025-05-30")
			},
			wantMsg: "missing booking details: check-in, check-out and room type are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := engine.CheckDatesRoom(draft, today)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

// The check-in rule compares calendar dates, so a clock carried in a
// different location must not shift the comparison.
func TestCheckDatesRoomDateOnlyAcrossLocations(t *testing.T) {
	engine := validation.New(catalogRepository.New())

	newYork, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		checkIn string
		wantMsg string
	}{
		{
			name:    "same-day check-in with an early west-of-UTC clock",
			now:     time.Date(2025, 5, 20, 2, 0, 0, 0, newYork),
			checkIn: "2025-05-20",
		},
		{
			name:    "check-in tomorrow with a late west-of-UTC clock",
			now:     time.Date(2025, 5, 19, 21, 0, 0, 0, newYork),
			checkIn: "2025-05-20",
		},
		{
			name:    "yesterday stays rejected regardless of clock location",
			now:     time.Date(2025, 5, 20, 2, 0, 0, 0, newYork),
			checkIn: "2025-05-19",
			wantMsg: "check-in date cannot be in the past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			draft.CheckIn = date(tt.checkIn)
			draft.CheckOut = date("2025-06-05")

			err := engine.CheckDatesRoom(draft, tt.now)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestCheckGuestInfo(t *testing.T) {
	engine := validation.New(catalogRepository.New())

	tests := []struct {
		name    string
		mutate  func(draft *model.Draft)
		wantMsg string
	}{
		{
			name:   "valid guest details",
			mutate: func(draft *model.Draft) {},
		},
		{
			name: "missing name",
			mutate: func(draft *model.Draft) {
				draft.FullName = ""
			},
			wantMsg: "missing guest details: full name, email and phone are required",
		},
		{
			name: "missing email",
			mutate: func(draft *model.Draft) {
				draft.Email = ""
			},
			wantMsg: "missing guest details: full name, email and phone are required",
		},
		{
			name: "missing phone",
			mutate: func(draft *model.Draft) {
				draft.Phone = ""
			},
			wantMsg: "missing guest details: full name, email and phone are required",
		},
		{
			name: "malformed email",
			mutate: func(draft *model.Draft) {
				draft.Email = "jane-at-example"
			},
			wantMsg: "email must be a valid email address",
		},
		{
			name: "missing fields reported before email format",
			mutate: func(draft *model.Draft) {
				draft.Phone = ""
				draft.Email = "not-an-email"
			},
			wantMsg: "missing guest details: full name, email and phone are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := engine.CheckGuestInfo(draft)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}
