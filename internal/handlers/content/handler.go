package content

import (
	"net/http"

	"luxehotel/infras/otel"
	"luxehotel/internal/domains/content/service"
	"luxehotel/shared/constant"
	"luxehotel/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/content", func(routerGroup chi.Router) {
		routerGroup.Get("/amenities", handler.GetAmenities)
		routerGroup.Get("/testimonials", handler.GetTestimonials)
		routerGroup.Get("/contact", handler.GetContact)
	})
}

// GetAmenities retrieves the amenity showcase.
// @Summary Get amenities
// @Description Retrieve the property amenities and highlights.
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.GetAmenitiesResponse] "Amenities"
// @Failure 500 {object} response.Error
// @Router /v1/content/amenities [get]
func (handler *Handler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAmenities")
	defer scope.End()

	res, err := handler.service.GetAmenities(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get amenities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTestimonials retrieves guest testimonials.
// @Summary Get testimonials
// @Description Retrieve published guest testimonials and aggregate guest statistics.
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.GetTestimonialsResponse] "Testimonials"
// @Failure 500 {object} response.Error
// @Router /v1/content/testimonials [get]
func (handler *Handler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonials")
	defer scope.End()

	res, err := handler.service.GetTestimonials(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetContact retrieves the hotel contact details.
// @Summary Get contact info
// @Description Retrieve hotel contact channels and transportation options.
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.GetContactResponse] "Contact info"
// @Failure 500 {object} response.Error
// @Router /v1/content/contact [get]
func (handler *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContact")
	defer scope.End()

	res, err := handler.service.GetContact(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact info")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
