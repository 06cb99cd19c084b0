package wizard

import (
	"time"

	"luxehotel/internal/domains/booking/model"
	"luxehotel/shared/failure"
)

// DraftPatch carries partial edits to the draft. Nil fields are left
// untouched, so the same patch type serves every step of the form.
type DraftPatch struct {
	RoomID          *string
	CheckIn         *time.Time
	CheckOut        *time.Time
	GuestCount      *int
	FullName        *string
	Email           *string
	Phone           *string
	MailingAddress  *string
	SpecialRequests *string
	PaymentMethod   *string
}

// Apply merges the patch into the draft. Edits are accepted from any
// open step, including fields that belong to an earlier one; nothing is
// validated here because Advance and Submit re-check everything that
// matters before the draft can progress.
func (w *Wizard) Apply(patch DraftPatch) (model.Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepClosed {
		return model.Draft{}, failure.Conflict("booking wizard is closed") // nolint:wrapcheck
	}

	if patch.RoomID != nil {
		w.draft.RoomID = *patch.RoomID
	}
	if patch.CheckIn != nil {
		w.draft.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		w.draft.CheckOut = *patch.CheckOut
	}
	if patch.GuestCount != nil {
		w.draft.GuestCount = *patch.GuestCount
	}
	if patch.FullName != nil {
		w.draft.FullName = *patch.FullName
	}
	if patch.Email != nil {
		w.draft.Email = *patch.Email
	}
	if patch.Phone != nil {
		w.draft.Phone = *patch.Phone
	}
	if patch.MailingAddress != nil {
		w.draft.MailingAddress = *patch.MailingAddress
	}
	if patch.SpecialRequests != nil {
		w.draft.SpecialRequests = *patch.SpecialRequests
	}
	if patch.PaymentMethod != nil {
		w.draft.PaymentMethod = *patch.PaymentMethod
	}

	return w.draft, nil
}
