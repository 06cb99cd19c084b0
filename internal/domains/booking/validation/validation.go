package validation

import (
	"time"

	"luxehotel/internal/domains/booking/model"
	"luxehotel/internal/domains/catalog/repository"
	"luxehotel/shared/failure"
	"luxehotel/shared/timezone"
	"luxehotel/shared/validator"
)

// Engine runs the per-step predicate checks over a booking draft.
// Checks short-circuit: only the first violated rule of a step is
// reported, in a fixed order, so the guest can fix one thing at a time.
type Engine interface {
	CheckDatesRoom(draft model.Draft, now time.Time) error
	CheckGuestInfo(draft model.Draft) error
}

type engineImpl struct {
	catalog repository.Catalog
}

func New(catalog repository.Catalog) Engine {
	return &engineImpl{
		catalog: catalog,
	}
}

// CheckDatesRoom validates the first wizard step. The check-in rule
// compares dates only; time-of-day is ignored.
func (e *engineImpl) CheckDatesRoom(draft model.Draft, now time.Time) error {
	if draft.CheckIn.IsZero() || draft.CheckOut.IsZero() || draft.RoomID == "" {
		return failure.BadRequestFromString("missing booking details: check-in, check-out and room type are required") // nolint:wrapcheck
	}

	if dateOnly(draft.CheckIn).Before(dateOnly(timezone.ToAppTime(now))) {
		return failure.BadRequestFromString("check-in date cannot be in the past") // nolint:wrapcheck
	}

	if !draft.CheckOut.After(draft.CheckIn) {
		return failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	if room, ok := e.catalog.Lookup(draft.RoomID); ok && draft.GuestCount > room.MaxGuests {
		return failure.BadRequestFromString("guest count exceeds the capacity of the selected room") // nolint:wrapcheck
	}

	return nil
}

// CheckGuestInfo validates the second wizard step.
func (e *engineImpl) CheckGuestInfo(draft model.Draft) error {
	if draft.FullName == "" || draft.Email == "" || draft.Phone == "" {
		return failure.BadRequestFromString("missing guest details: full name, email and phone are required") // nolint:wrapcheck
	}

	if err := validator.ValidateVar(draft.Email, "email"); err != nil {
		return failure.BadRequestFromString("email must be a valid email address") // nolint:wrapcheck
	}

	return nil
}

// dateOnly collapses a timestamp to its calendar date. The result is
// anchored in UTC so dates carried in different locations compare by
// their calendar tuple, not by instant.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
