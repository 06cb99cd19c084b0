package repository

import (
	"luxehotel/internal/domains/catalog/model"
)

// Catalog exposes the fixed room offerings. There is no mutation
// operation; the table is baked in at startup.
type Catalog interface {
	Lookup(roomID string) (model.Room, bool)
	All() []model.Room
}

type catalogImpl struct {
	rooms []model.Room
	index map[string]model.Room
}

var offerings = []model.Room{
	{
		ID:          "standard",
		Name:        "Standard Room",
		Description: "Comfortable and elegant room with modern amenities",
		NightlyRate: 199,
		MaxGuests:   2,
		Size:        "25 sqm",
		Features:    []string{"Queen Bed", "City View", "Free WiFi", "Mini Bar"},
		ImageKey:    "rooms/standard.jpg",
	},
	{
		ID:          "deluxe",
		Name:        "Deluxe Room",
		Description: "Spacious room with premium furnishings and enhanced amenities",
		NightlyRate: 299,
		MaxGuests:   3,
		Size:        "35 sqm",
		Features:    []string{"King Bed", "Ocean View", "Premium WiFi", "Luxury Bath"},
		ImageKey:    "rooms/deluxe.jpg",
	},
	{
		ID:          "suite",
		Name:        "Executive Suite",
		Description: "Luxurious suite with separate living area and exclusive services",
		NightlyRate: 499,
		MaxGuests:   4,
		Size:        "55 sqm",
		Features:    []string{"King Bed", "Living Area", "Panoramic View", "Butler Service"},
		ImageKey:    "rooms/suite.jpg",
	},
	{
		ID:          "presidential",
		Name:        "Presidential Suite",
		Description: "Ultimate luxury with private terrace and personalized service",
		NightlyRate: 999,
		MaxGuests:   6,
		Size:        "120 sqm",
		Features:    []string{"Master Bedroom", "Private Terrace", "Personal Chef", "Spa Access"},
		ImageKey:    "rooms/presidential.jpg",
	},
}

func New() Catalog {
	index := make(map[string]model.Room, len(offerings))
	for _, room := range offerings {
		index[room.ID] = room
	}

	return &catalogImpl{
		rooms: offerings,
		index: index,
	}
}

func (c *catalogImpl) Lookup(roomID string) (model.Room, bool) {
	room, ok := c.index[roomID]

	return room, ok
}

// All returns the offerings in display order.
func (c *catalogImpl) All() []model.Room {
	rooms := make([]model.Room, len(c.rooms))
	copy(rooms, c.rooms)

	return rooms
}
