package repository

import (
	"luxehotel/internal/domains/content/model"
)

// Content exposes the static marketing copy: amenities, guest
// testimonials, and contact details. The data is editorial and baked in
// at startup, the same as the room catalog.
type Content interface {
	Amenities() []model.Amenity
	Highlights() []model.Highlight
	Testimonials() []model.Testimonial
	GuestStats() model.GuestStats
	ContactChannels() []model.ContactChannel
	TransportOptions() []model.TransportOption
}

type contentImpl struct{}

var amenities = []model.Amenity{
	{Title: "High-Speed WiFi", Description: "Complimentary high-speed internet throughout the property"},
	{Title: "Valet Parking", Description: "Secure valet parking service available 24/7"},
	{Title: "Fitness Center", Description: "State-of-the-art gym with personal training available"},
	{Title: "Infinity Pool", Description: "Rooftop infinity pool with stunning city views"},
	{Title: "Fine Dining", Description: "Award-winning restaurants with world-class cuisine"},
	{Title: "Luxury Spa", Description: "Full-service spa with rejuvenating treatments"},
	{Title: "24/7 Security", Description: "Round-the-clock security for your peace of mind"},
	{Title: "Concierge Service", Description: "Personal concierge to assist with all your needs"},
}

var highlights = []model.Highlight{
	{Title: "Event Spaces", Description: "Elegant venues for weddings, conferences, and special occasions"},
	{Title: "Prime Location", Description: "Located in the heart of the city with easy access to attractions"},
	{Title: "24/7 Support", Description: "Round-the-clock guest services for all your needs"},
}

var testimonials = []model.Testimonial{
	{
		Name:     "Sarah Johnson",
		Location: "New York, USA",
		Rating:   5,
		Comment:  "Absolutely incredible experience! The service was impeccable, and the room was beyond luxurious. The infinity pool with city views was breathtaking.",
	},
	{
		Name:     "Michael Chen",
		Location: "Tokyo, Japan",
		Rating:   5,
		Comment:  "The attention to detail at Luxe Hotel is remarkable. From the moment I arrived, every staff member went above and beyond to ensure my comfort.",
	},
	{
		Name:     "Emma Rodriguez",
		Location: "Barcelona, Spain",
		Rating:   5,
		Comment:  "Perfect for our anniversary celebration! The presidential suite was stunning, and the spa treatments were divine. We will definitely return.",
	},
	{
		Name:     "David Thompson",
		Location: "London, UK",
		Rating:   5,
		Comment:  "Business travel has never been this comfortable. The concierge service helped arrange all my meetings, and the fitness center was world-class.",
	},
	{
		Name:     "Lisa Park",
		Location: "Seoul, South Korea",
		Rating:   5,
		Comment:  "The fine dining restaurant exceeded all expectations. The chef personally came to our table, and every dish was a masterpiece.",
	},
	{
		Name:     "James Wilson",
		Location: "Sydney, Australia",
		Rating:   5,
		Comment:  "Family vacation perfection! The kids loved the pool, and we adults enjoyed the spa. The staff made sure everyone had an amazing time.",
	},
}

var guestStats = model.GuestStats{
	SatisfactionPercent: 98,
	HappyGuests:         5000,
	AverageRating:       4.9,
	ReturnRatePercent:   95,
}

var contactChannels = []model.ContactChannel{
	{Title: "Address", Details: []string{"123 Luxury Boulevard", "Downtown District", "Metropolitan City, MC 12345"}},
	{Title: "Phone", Details: []string{"+1 (555) 123-4567", "+1 (555) 123-4568", "Toll-free: 1-800-LUXE-HTL"}},
	{Title: "Email", Details: []string{"reservations@luxehotel.com", "concierge@luxehotel.com", "events@luxehotel.com"}},
	{Title: "Hours", Details: []string{"Front Desk: 24/7", "Concierge: 6:00 AM - 12:00 AM", "Restaurant: 6:00 AM - 11:00 PM"}},
}

var transportOptions = []model.TransportOption{
	{Title: "By Car", Description: "15 minutes from city center via Highway 101. Valet parking available."},
	{Title: "From Airport", Description: "25 minutes from International Airport. Complimentary shuttle service available."},
}

func New() Content {
	return &contentImpl{}
}

func (c *contentImpl) Amenities() []model.Amenity {
	out := make([]model.Amenity, len(amenities))
	copy(out, amenities)

	return out
}

func (c *contentImpl) Highlights() []model.Highlight {
	out := make([]model.Highlight, len(highlights))
	copy(out, highlights)

	return out
}

func (c *contentImpl) Testimonials() []model.Testimonial {
	out := make([]model.Testimonial, len(testimonials))
	copy(out, testimonials)

	return out
}

func (c *contentImpl) GuestStats() model.GuestStats {
	return guestStats
}

func (c *contentImpl) ContactChannels() []model.ContactChannel {
	out := make([]model.ContactChannel, len(contactChannels))
	copy(out, contactChannels)

	return out
}

func (c *contentImpl) TransportOptions() []model.TransportOption {
	out := make([]model.TransportOption, len(transportOptions))
	copy(out, transportOptions)

	return out
}
