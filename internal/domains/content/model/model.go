package model

// Amenity is one entry of the property facilities showcase.
type Amenity struct {
	Title       string
	Description string
}

// Highlight is a secondary selling point shown beneath the amenity grid.
type Highlight struct {
	Title       string
	Description string
}

// Testimonial is a published guest review.
type Testimonial struct {
	Name     string
	Location string
	Rating   int
	Comment  string
}

// GuestStats are the aggregate figures shown with the testimonials.
type GuestStats struct {
	SatisfactionPercent int
	HappyGuests         int
	AverageRating       float64
	ReturnRatePercent   int
}

// ContactChannel groups related contact details under one heading.
type ContactChannel struct {
	Title   string
	Details []string
}

// TransportOption describes one way of reaching the property.
type TransportOption struct {
	Title       string
	Description string
}
