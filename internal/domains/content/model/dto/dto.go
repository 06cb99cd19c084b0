package dto

import (
	"luxehotel/internal/domains/content/model"
)

type AmenityResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HighlightResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GetAmenitiesResponse struct {
	Amenities  []AmenityResponse   `json:"amenities"`
	Highlights []HighlightResponse `json:"highlights"`
}

func (r *GetAmenitiesResponse) FromModels(amenities []model.Amenity, highlights []model.Highlight) {
	r.Amenities = make([]AmenityResponse, len(amenities))
	for i, a := range amenities {
		r.Amenities[i] = AmenityResponse{Title: a.Title, Description: a.Description}
	}

	r.Highlights = make([]HighlightResponse, len(highlights))
	for i, h := range highlights {
		r.Highlights[i] = HighlightResponse{Title: h.Title, Description: h.Description}
	}
}

type TestimonialResponse struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type GuestStatsResponse struct {
	SatisfactionPercent int     `json:"satisfaction_percent"`
	HappyGuests         int     `json:"happy_guests"`
	AverageRating       float64 `json:"average_rating"`
	ReturnRatePercent   int     `json:"return_rate_percent"`
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	Stats        GuestStatsResponse    `json:"stats"`
}

func (r *GetTestimonialsResponse) FromModels(testimonials []model.Testimonial, stats model.GuestStats) {
	r.Testimonials = make([]TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		r.Testimonials[i] = TestimonialResponse{
			Name:     t.Name,
			Location: t.Location,
			Rating:   t.Rating,
			Comment:  t.Comment,
		}
	}

	r.Stats = GuestStatsResponse{
		SatisfactionPercent: stats.SatisfactionPercent,
		HappyGuests:         stats.HappyGuests,
		AverageRating:       stats.AverageRating,
		ReturnRatePercent:   stats.ReturnRatePercent,
	}
}

type ContactChannelResponse struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

type TransportOptionResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GetContactResponse struct {
	HotelName string                    `json:"hotel_name"`
	Channels  []ContactChannelResponse  `json:"channels"`
	Transport []TransportOptionResponse `json:"transport"`
}

func (r *GetContactResponse) FromModels(hotelName string, channels []model.ContactChannel, transport []model.TransportOption) {
	r.HotelName = hotelName

	r.Channels = make([]ContactChannelResponse, len(channels))
	for i, c := range channels {
		r.Channels[i] = ContactChannelResponse{Title: c.Title, Details: c.Details}
	}

	r.Transport = make([]TransportOptionResponse, len(transport))
	for i, t := range transport {
		r.Transport[i] = TransportOptionResponse{Title: t.Title, Description: t.Description}
	}
}
