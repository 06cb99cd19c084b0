package dto

import (
	"luxehotel/internal/domains/catalog/model"
)

type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	NightlyRate int64    `json:"nightly_rate"`
	MaxGuests   int      `json:"max_guests"`
	Size        string   `json:"size"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"image_url"`
}

func (r *RoomResponse) FromModel(room model.Room, imageURL string) {
	r.ID = room.ID
	r.Name = room.Name
	r.Description = room.Description
	r.NightlyRate = room.NightlyRate
	r.MaxGuests = room.MaxGuests
	r.Size = room.Size
	r.Features = room.Features
	r.ImageURL = imageURL
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(rooms []model.Room, imageURL func(model.Room) string) {
	r.Rooms = make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room, imageURL(room))
	}
}
