package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"luxehotel/internal/domains/booking/model"
	"luxehotel/internal/domains/booking/pricing"
	"luxehotel/internal/domains/booking/validation"
	catalogRepo "luxehotel/internal/domains/catalog/repository"
	"luxehotel/internal/domains/notification"
	"luxehotel/shared/constant"
	"luxehotel/shared/failure"
	"luxehotel/shared/timezone"
)

// Step identifies one stage of the three-step booking flow, plus the
// terminal closed state.
type Step int

const (
	StepDatesRoom Step = iota + 1
	StepGuestInfo
	StepPaymentConfirm
	StepClosed
)

func (s Step) String() string {
	switch s {
	case StepDatesRoom:
		return "dates_room"
	case StepGuestInfo:
		return "guest_info"
	case StepPaymentConfirm:
		return "payment_confirm"
	case StepClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Gateway is the durable append-only store for confirmed records.
type Gateway interface {
	Insert(ctx context.Context, record model.Booking) error
	NumberExists(ctx context.Context, bookingNumber string) (bool, error)
}

// SubmitResult reports a successful submission. NotificationSent is
// informational only; the booking is confirmed either way.
type SubmitResult struct {
	Record           model.Booking
	NotificationSent bool
}

// Wizard owns one booking draft and walks it through the three steps.
// A single guest drives one wizard at a time; the mutex only guards
// against overlapping HTTP requests on the same session, and makes
// Submit non-reentrant.
type Wizard struct {
	mu sync.Mutex

	step  Step
	draft model.Draft

	catalog    catalogRepo.Catalog
	pricing    pricing.Calculator
	validation validation.Engine
	gateway    Gateway
	dispatcher notification.Dispatcher
	now        func() time.Time
}

// Factory builds wizards with shared collaborators.
type Factory struct {
	Catalog    catalogRepo.Catalog
	Pricing    pricing.Calculator
	Validation validation.Engine
	Gateway    Gateway
	Dispatcher notification.Dispatcher

	// Now defaults to the application-timezone clock; tests pin it.
	Now func() time.Time
}

// Open starts a fresh wizard in the dates/room step. Only the room
// selection is pre-seeded; dates and guest fields start empty.
func (f *Factory) Open(initialRoomID string) *Wizard {
	now := f.Now
	if now == nil {
		now = timezone.Now
	}

	return &Wizard{
		step:       StepDatesRoom,
		draft:      model.NewDraft(initialRoomID),
		catalog:    f.Catalog,
		pricing:    f.Pricing,
		validation: f.Validation,
		gateway:    f.Gateway,
		dispatcher: f.Dispatcher,
		now:        now,
	}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.step
}

// Draft returns a copy; the wizard keeps exclusive ownership of the
// canonical draft.
func (w *Wizard) Draft() model.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.draft
}

// Quote reprices the stay from the canonical draft fields. It is
// recomputed on every call so edited dates or rooms can never leave a
// stale total behind.
func (w *Wizard) Quote() (pricing.Quote, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.quoteLocked()
}

func (w *Wizard) quoteLocked() (pricing.Quote, error) {
	return w.pricing.ComputeStay(w.draft.CheckIn, w.draft.CheckOut, w.draft.RoomID) //nolint:wrapcheck
}

// Advance validates the current step and moves forward on success. On
// failure the step does not change and the first violated rule is
// returned.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepDatesRoom:
		if err := w.validation.CheckDatesRoom(w.draft, w.now()); err != nil {
			return err //nolint:wrapcheck
		}

		w.step = StepGuestInfo
	case StepGuestInfo:
		if err := w.validation.CheckGuestInfo(w.draft); err != nil {
			return err //nolint:wrapcheck
		}

		w.step = StepPaymentConfirm
	case StepPaymentConfirm:
		return failure.BadRequestFromString("already at the final step, submit to confirm the booking") // nolint:wrapcheck
	default:
		return failure.Conflict("booking wizard is closed") // nolint:wrapcheck
	}

	return nil
}

// Retreat moves back one step without re-validation. It is a no-op on
// the first step.
func (w *Wizard) Retreat() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepGuestInfo:
		w.step = StepDatesRoom
	case StepPaymentConfirm:
		w.step = StepGuestInfo
	case StepDatesRoom:
		// no-op
	default:
		return failure.Conflict("booking wizard is closed") // nolint:wrapcheck
	}

	return nil
}

// Cancel discards the draft and closes the wizard. No record is ever
// produced by cancellation.
func (w *Wizard) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.draft = model.Draft{}
	w.step = StepClosed
}

// Submit confirms the booking from the final step. Steps 1 and 2 are
// re-validated first: the draft stays editable while navigating back,
// so earlier advance results cannot be trusted. The price is then
// recomputed authoritatively, the record frozen and appended through
// the gateway, and the confirmation dispatched best-effort. Persistence
// failure leaves the wizard in the final step with no partial record;
// the guest may retry.
func (w *Wizard) Submit(ctx context.Context) (SubmitResult, error) {
	if !w.mu.TryLock() {
		return SubmitResult{}, failure.Conflict("a submission is already in progress") // nolint:wrapcheck
	}
	defer w.mu.Unlock()

	if w.step == StepClosed {
		return SubmitResult{}, failure.Conflict("booking wizard is closed") // nolint:wrapcheck
	}

	if w.step != StepPaymentConfirm {
		return SubmitResult{}, failure.BadRequestFromString("complete all steps before submitting") // nolint:wrapcheck
	}

	now := w.now()

	if err := w.validation.CheckDatesRoom(w.draft, now); err != nil {
		return SubmitResult{}, err //nolint:wrapcheck
	}

	if err := w.validation.CheckGuestInfo(w.draft); err != nil {
		return SubmitResult{}, err //nolint:wrapcheck
	}

	quote, err := w.quoteLocked()
	if err != nil {
		return SubmitResult{}, failure.BadRequestFromString("unable to price the stay, check dates and room selection") // nolint:wrapcheck
	}

	number, err := w.freshBookingNumber(ctx, now)
	if err != nil {
		return SubmitResult{}, err
	}

	record := newRecord(w.draft, quote, number, now)

	if err := w.gateway.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("bookingNumber", number).Msg("failed to persist booking record")

		return SubmitResult{}, failure.InternalError(fmt.Errorf("failed to save booking: %w", err)) // nolint:wrapcheck
	}

	notified := w.dispatch(ctx, record)

	w.draft = model.Draft{}
	w.step = StepClosed

	return SubmitResult{
		Record:           record,
		NotificationSent: notified,
	}, nil
}

// dispatch sends the confirmation. Failure is logged as a soft warning
// only; the record is already durable.
func (w *Wizard) dispatch(ctx context.Context, record model.Booking) bool {
	roomName := record.RoomID
	if room, ok := w.catalog.Lookup(record.RoomID); ok {
		roomName = room.Name
	}

	confirmation := notification.Confirmation{
		BookingNumber:   record.BookingNumber,
		GuestName:       record.FullName,
		GuestEmail:      record.Email,
		GuestPhone:      record.Phone,
		RoomName:        roomName,
		CheckIn:         record.CheckIn.Format(constant.StayDateFormat),
		CheckOut:        record.CheckOut.Format(constant.StayDateFormat),
		Nights:          record.Nights,
		Guests:          record.GuestCount,
		TotalPrice:      record.TotalPrice,
		SpecialRequests: record.SpecialRequests,
	}

	if err := w.dispatcher.Send(ctx, confirmation); err != nil {
		log.Warn().Err(err).Str("bookingNumber", record.BookingNumber).Msg("confirmation not sent, booking remains confirmed")

		return false
	}

	return true
}

const maxNumberAttempts = 5

// freshBookingNumber generates a reference code and double-checks it
// against the store. Collisions are vanishingly rare; the loop is a
// guard against reusing a number across process restarts.
func (w *Wizard) freshBookingNumber(ctx context.Context, now time.Time) (string, error) {
	for range maxNumberAttempts {
		number := generateBookingNumber(now)

		exists, err := w.gateway.NumberExists(ctx, number)
		if err != nil {
			return "", failure.InternalError(fmt.Errorf("failed to verify booking number: %w", err)) // nolint:wrapcheck
		}

		if !exists {
			return number, nil
		}
	}

	return "", failure.InternalError(fmt.Errorf("could not allocate a unique booking number")) // nolint:wrapcheck
}
