package di

import (
	"luxehotel/internal/domains/booking/pricing"
	bookingRepository "luxehotel/internal/domains/booking/repository"
	"luxehotel/internal/domains/booking/validation"
	"luxehotel/internal/domains/booking/wizard"
	catalogRepository "luxehotel/internal/domains/catalog/repository"
	"luxehotel/internal/domains/notification"
)

// ProvideWizardFactory assembles the booking wizard collaborators. The
// repository doubles as the wizard's persistence gateway.
func ProvideWizardFactory(
	catalog catalogRepository.Catalog,
	calculator pricing.Calculator,
	engine validation.Engine,
	repo bookingRepository.Booking,
	dispatcher notification.Dispatcher,
) *wizard.Factory {
	return &wizard.Factory{
		Catalog:    catalog,
		Pricing:    calculator,
		Validation: engine,
		Gateway:    repo,
		Dispatcher: dispatcher,
	}
}
