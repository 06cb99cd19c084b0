package booking

import (
	"net/http"

	"luxehotel/infras/otel"
	"luxehotel/internal/domains/booking/model"
	"luxehotel/internal/domains/booking/model/dto"
	"luxehotel/internal/domains/booking/service"
	"luxehotel/shared/constant"
	gDto "luxehotel/shared/dto"
	"luxehotel/shared/validator"
	"luxehotel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking-sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenWizard)
		routerGroup.Get("/{sessionID}", handler.GetWizardState)
		routerGroup.Patch("/{sessionID}/draft", handler.UpdateDraft)
		routerGroup.Post("/{sessionID}/advance", handler.Advance)
		routerGroup.Post("/{sessionID}/retreat", handler.Retreat)
		routerGroup.Post("/{sessionID}/submit", handler.Submit)
		routerGroup.Delete("/{sessionID}", handler.CancelWizard)
	})

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})
}

// OpenWizard starts a new booking session.
// @Summary Open a booking session
// @Description Start a new three-step booking session, optionally pre-selecting a room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.OpenWizardRequest true "Open Wizard Request"
// @Success 201 {object} response.Data[dto.WizardStateResponse] "Booking session opened"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-sessions [post]
func (handler *Handler) OpenWizard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenWizard")
	defer scope.End()

	req := dto.OpenWizardRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	state, err := handler.service.Open(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open booking session")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking session opened: " + state.SessionID)

	response.WithJSON(writer, http.StatusCreated, state)
}

// GetWizardState returns the current state of a booking session.
// @Summary Get booking session state
// @Description Retrieve the current step, draft fields, and live quote of a booking session.
// @Tags Booking
// @Produce json
// @Param sessionID path string true "Booking session ID"
// @Success 200 {object} response.Data[dto.WizardStateResponse] "Booking session state"
// @Failure 404 {object} response.Error
// @Router /v1/booking-sessions/{sessionID} [get]
func (handler *Handler) GetWizardState(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWizardState")
	defer scope.End()

	sessionID := chi.URLParam(request, "sessionID")

	state, err := handler.service.GetState(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking session state")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, state)
}

// UpdateDraft applies partial edits to the booking draft.
// @Summary Update booking draft
// @Description Merge the provided fields into the session draft. Fields from any step may be edited at any time before submission.
// @Tags Booking
// @Accept json
// @Produce json
// @Param sessionID path string true "Booking session ID"
// @Param request body dto.UpdateDraftRequest true "Draft fields to update"
// @Success 200 {object} response.Data[dto.WizardStateResponse] "Updated session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking-sessions/{sessionID}/draft [patch]
func (handler *Handler) UpdateDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDraft")
	defer scope.End()

	sessionID := chi.URLParam(request, "sessionID")
	req := dto.UpdateDraftRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	state, err := handler.service.UpdateDraft(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking draft")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, state)
}

// Advance validates the current step and moves the session forward.
// @Summary Advance to the next step
// @Description Validate the current step of the session and move forward on success. On validation failure the session stays on its current step.
// @Tags Booking
// @Produce json
// @Param sessionID path string true "Booking session ID"
// @Success 200 {object} response.Data[dto.WizardStateResponse] "Updated session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking-sessions/{sessionID}/advance [post]
func (handler *Handler) Advance(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Advance")
	defer scope.End()

	sessionID := chi.URLParam(request, "sessionID")

	state, err := handler.service.Advance(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance booking session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, state)
}

// Retreat moves the session back one step.
// @Summary Go back one step
// @Description Move the session back to the previous step without validation. Entered values are preserved.
// @Tags Booking
// @Produce json
// @Param sessionID path string true "Booking session ID"
// @Success 200 {object} response.Data[dto.WizardStateResponse] "Updated session state"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/booking-sessions/{sessionID}/retreat [post]
func (handler *Handler) Retreat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Retreat")
	defer scope.End()

	sessionID := chi.URLParam(request, "sessionID")

	state, err := handler.service.Retreat(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to retreat booking session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, state)
}

// Submit confirms the booking from the final step.
// @Summary Submit the booking
// @Description Re-validate all steps, price the stay, persist the confirmed record, and dispatch the confirmation message.
// @Tags Booking
// @Produce json
// @Param sessionID path string true "Booking session ID"
// @Success 201 {object} response.Data[dto.SubmitResponse] "Booking confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-sessions/{sessionID}/submit [post]
func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	sessionID := chi.URLParam(request, "sessionID")

	res, err := handler.service.Submit(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking confirmed: " + res.Booking.BookingNumber)

	response.WithJSON(writer, http.StatusCreated, res)
}

// CancelWizard discards the session and its draft.
// @Summary Cancel a booking session
// @Description Discard the draft and close the session. No booking record is created.
// @Tags Booking
// @Produce json
// @Param sessionID path string true "Booking session ID"
// @Success 200 {object} response.Message "Booking session cancelled"
// @Failure 404 {object} response.Error
// @Router /v1/booking-sessions/{sessionID} [delete]
func (handler *Handler) CancelWizard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelWizard")
	defer scope.End()

	sessionID := chi.URLParam(request, "sessionID")

	if err := handler.service.Cancel(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking session")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking session cancelled")
}

// GetBookings retrieves confirmed booking records.
// @Summary Get all bookings
// @Description Retrieve confirmed booking records with optional filtering and pagination.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Param email query string false "Filter by guest email"
// @Param booking_number query string false "Filter by booking number"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	roomID := r.URL.Query().Get(model.FieldRoomID)
	email := r.URL.Query().Get(model.FieldEmail)
	bookingNumber := r.URL.Query().Get(model.FieldBookingNumber)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if bookingNumber != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingNumber,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a single booking record.
// @Summary Get booking by ID
// @Description Retrieve one confirmed booking record by its ID.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
