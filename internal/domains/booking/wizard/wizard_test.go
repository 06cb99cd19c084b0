package wizard_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"luxehotel/internal/domains/booking/mocks"
	"luxehotel/internal/domains/booking/model"
	"luxehotel/internal/domains/booking/pricing"
	"luxehotel/internal/domains/booking/validation"
	"luxehotel/internal/domains/booking/wizard"
	catalogRepository "luxehotel/internal/domains/catalog/repository"
	notificationMocks "luxehotel/internal/domains/notification/mocks"
)

var now = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func intPtr(i int) *int { return &i }

func newFactory(t *testing.T) (*wizard.Factory, *mocks.MockBooking, *notificationMocks.MockDispatcher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockBooking(ctrl)
	dispatcher := notificationMocks.NewMockDispatcher(ctrl)
	catalog := catalogRepository.New()

	factory := &wizard.Factory{
		Catalog:    catalog,
		Pricing:    pricing.New(catalog),
		Validation: validation.New(catalog),
		Gateway:    gateway,
		Dispatcher: dispatcher,
		Now:        func() time.Time { return now },
	}

	return factory, gateway, dispatcher
}

func fillDates(t *testing.T, wiz *wizard.Wizard) {
	t.Helper()

	_, err := wiz.Apply(wizard.DraftPatch{
		CheckIn:    timePtr(date("2025-06-01")),
		CheckOut:   timePtr(date("2025-06-05")),
		GuestCount: intPtr(2),
	})
	require.NoError(t, err)
}

func fillGuestInfo(t *testing.T, wiz *wizard.Wizard) {
	t.Helper()

	_, err := wiz.Apply(wizard.DraftPatch{
		FullName:       strPtr("Jane Smith"),
		Email:          strPtr("jane@example.com"),
		Phone:          strPtr("+1 (555) 987-6543"),
		MailingAddress: strPtr("42 Harbor Lane, Coastal City"),
	})
	require.NoError(t, err)
}

func TestWizard_HappyPath(t *testing.T) {
	factory, gateway, dispatcher := newFactory(t)
	wiz := factory.Open("suite")

	assert.Equal(t, wizard.StepDatesRoom, wiz.Step())
	assert.Equal(t, "suite", wiz.Draft().RoomID)
	assert.Equal(t, model.DefaultPaymentMethod, wiz.Draft().PaymentMethod)

	fillDates(t, wiz)
	require.NoError(t, wiz.Advance())
	assert.Equal(t, wizard.StepGuestInfo, wiz.Step())

	fillGuestInfo(t, wiz)
	require.NoError(t, wiz.Advance())
	assert.Equal(t, wizard.StepPaymentConfirm, wiz.Step())

	quote, err := wiz.Quote()
	require.NoError(t, err)
	assert.Equal(t, 4, quote.Nights)
	assert.Equal(t, int64(1996), quote.TotalPrice)

	var saved model.Booking
	gateway.EXPECT().
		NumberExists(gomock.Any(), gomock.Any()).
		Return(false, nil)
	gateway.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.Booking) error {
			saved = record

			return nil
		})
	dispatcher.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := wiz.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, result.NotificationSent)

	assert.Equal(t, saved, result.Record)
	assert.Regexp(t, regexp.MustCompile(`^LH\d{8}[0-9A-Z]{4}$`), saved.BookingNumber)
	assert.Equal(t, "suite", saved.RoomID)
	assert.Equal(t, 4, saved.Nights)
	assert.Equal(t, int64(1996), saved.TotalPrice)
	assert.Equal(t, model.StatusConfirmed, saved.Status)
	assert.Equal(t, "Jane Smith", saved.FullName)
	assert.Equal(t, now, saved.CreatedAt)

	assert.Equal(t, wizard.StepClosed, wiz.Step())
	assert.Equal(t, model.Draft{}, wiz.Draft())
}

func TestWizard_AdvanceBlockedByValidation(t *testing.T) {
	factory, _, _ := newFactory(t)
	wiz := factory.Open("")

	err := wiz.Advance()
	assert.EqualError(t, err, "missing booking details: check-in, check-out and room type are required")
	assert.Equal(t, wizard.StepDatesRoom, wiz.Step())

	_, err = wiz.Apply(wizard.DraftPatch{
		RoomID:   strPtr("standard"),
		CheckIn:  timePtr(date("2025-05-10")),
		CheckOut: timePtr(date("2025-05-12")),
	})
	require.NoError(t, err)

	err = wiz.Advance()
	assert.EqualError(t, err, "check-in date cannot be in the past")
	assert.Equal(t, wizard.StepDatesRoom, wiz.Step())
}

func TestWizard_RetreatPreservesDraft(t *testing.T) {
	factory, _, _ := newFactory(t)
	wiz := factory.Open("deluxe")

	fillDates(t, wiz)
	require.NoError(t, wiz.Advance())

	fillGuestInfo(t, wiz)
	require.NoError(t, wiz.Retreat())
	assert.Equal(t, wizard.StepDatesRoom, wiz.Step())

	draft := wiz.Draft()
	assert.Equal(t, "Jane Smith", draft.FullName)
	assert.Equal(t, date("2025-06-01"), draft.CheckIn)

	// no-op on the first step
	require.NoError(t, wiz.Retreat())
	assert.Equal(t, wizard.StepDatesRoom, wiz.Step())
}

func TestWizard_QuoteTracksEdits(t *testing.T) {
	factory, _, _ := newFactory(t)
	wiz := factory.Open("standard")

	fillDates(t, wiz)

	quote, err := wiz.Quote()
	require.NoError(t, err)
	assert.Equal(t, int64(796), quote.TotalPrice)

	_, err = wiz.Apply(wizard.DraftPatch{RoomID: strPtr("presidential")})
	require.NoError(t, err)

	quote, err = wiz.Quote()
	require.NoError(t, err)
	assert.Equal(t, int64(3996), quote.TotalPrice)

	_, err = wiz.Apply(wizard.DraftPatch{CheckOut: timePtr(date("2025-06-03"))})
	require.NoError(t, err)

	quote, err = wiz.Quote()
	require.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, int64(1998), quote.TotalPrice)
}

func TestWizard_SubmitRevalidatesEarlierSteps(t *testing.T) {
	factory, _, _ := newFactory(t)
	wiz := factory.Open("suite")

	fillDates(t, wiz)
	require.NoError(t, wiz.Advance())
	fillGuestInfo(t, wiz)
	require.NoError(t, wiz.Advance())

	// invalidate a first-step field from the final step
	_, err := wiz.Apply(wizard.DraftPatch{CheckOut: timePtr(date("2025-05-30"))})
	require.NoError(t, err)

	_, err = wiz.Submit(context.Background())
	assert.EqualError(t, err, "check-out date must be after check-in date")
	assert.Equal(t, wizard.StepPaymentConfirm, wiz.Step())
}

func TestWizard_SubmitBeforeFinalStep(t *testing.T) {
	factory, _, _ := newFactory(t)
	wiz := factory.Open("suite")

	_, err := wiz.Submit(context.Background())
	assert.EqualError(t, err, "complete all steps before submitting")
	assert.Equal(t, wizard.StepDatesRoom, wiz.Step())
}

func TestWizard_PersistenceFailureAllowsRetry(t *testing.T) {
	factory, gateway, dispatcher := newFactory(t)
	wiz := factory.Open("deluxe")

	fillDates(t, wiz)
	require.NoError(t, wiz.Advance())
	fillGuestInfo(t, wiz)
	require.NoError(t, wiz.Advance())

	gateway.EXPECT().
		NumberExists(gomock.Any(), gomock.Any()).
		Return(false, nil)
	gateway.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := wiz.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, wizard.StepPaymentConfirm, wiz.Step())

	// the draft survives, so the guest can simply try again
	gateway.EXPECT().
		NumberExists(gomock.Any(), gomock.Any()).
		Return(false, nil)
	gateway.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	dispatcher.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := wiz.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, result.NotificationSent)
	assert.Equal(t, wizard.StepClosed, wiz.Step())
}

func TestWizard_NotificationFailureKeepsBooking(t *testing.T) {
	factory, gateway, dispatcher := newFactory(t)
	wiz := factory.Open("standard")

	fillDates(t, wiz)
	require.NoError(t, wiz.Advance())
	fillGuestInfo(t, wiz)
	require.NoError(t, wiz.Advance())

	gateway.EXPECT().
		NumberExists(gomock.Any(), gomock.Any()).
		Return(false, nil)
	gateway.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	dispatcher.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	result, err := wiz.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, result.NotificationSent)
	assert.Equal(t, model.StatusConfirmed, result.Record.Status)
	assert.Equal(t, wizard.StepClosed, wiz.Step())
}

func TestWizard_BookingNumberCollisionRetries(t *testing.T) {
	factory, gateway, dispatcher := newFactory(t)
	wiz := factory.Open("suite")

	fillDates(t, wiz)
	require.NoError(t, wiz.Advance())
	fillGuestInfo(t, wiz)
	require.NoError(t, wiz.Advance())

	gomock.InOrder(
		gateway.EXPECT().NumberExists(gomock.Any(), gomock.Any()).Return(true, nil),
		gateway.EXPECT().NumberExists(gomock.Any(), gomock.Any()).Return(false, nil),
	)
	gateway.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)
	dispatcher.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := wiz.Submit(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Record.BookingNumber)
}

func TestWizard_ConcurrentSubmitRejected(t *testing.T) {
	factory, gateway, dispatcher := newFactory(t)
	wiz := factory.Open("suite")

	fillDates(t, wiz)
	require.NoError(t, wiz.Advance())
	fillGuestInfo(t, wiz)
	require.NoError(t, wiz.Advance())

	inserting := make(chan struct{})
	release := make(chan struct{})

	gateway.EXPECT().
		NumberExists(gomock.Any(), gomock.Any()).
		Return(false, nil)
	gateway.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Booking) error {
			close(inserting)
			<-release

			return nil
		})
	dispatcher.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil)

	done := make(chan error, 1)

	go func() {
		_, err := wiz.Submit(context.Background())
		done <- err
	}()

	// wait until the first submission is parked inside the gateway write
	<-inserting

	_, err := wiz.Submit(context.Background())
	assert.EqualError(t, err, "a submission is already in progress")

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, wizard.StepClosed, wiz.Step())
}

func TestWizard_ClosedRejectsFurtherUse(t *testing.T) {
	factory, _, _ := newFactory(t)
	wiz := factory.Open("suite")

	wiz.Cancel()

	assert.Equal(t, wizard.StepClosed, wiz.Step())

	_, err := wiz.Apply(wizard.DraftPatch{RoomID: strPtr("deluxe")})
	assert.EqualError(t, err, "booking wizard is closed")

	assert.EqualError(t, wiz.Advance(), "booking wizard is closed")
	assert.EqualError(t, wiz.Retreat(), "booking wizard is closed")

	_, err = wiz.Submit(context.Background())
	assert.EqualError(t, err, "booking wizard is closed")
}
