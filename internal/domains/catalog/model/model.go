package model

const (
	EntityName = "room"
)

// Room is a bookable room offering. The catalog is fixed reference data
// loaded at process start; rates are whole US dollars per night.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	NightlyRate int64    `json:"nightly_rate"`
	MaxGuests   int      `json:"max_guests"`
	Size        string   `json:"size"`
	Features    []string `json:"features"`
	ImageKey    string   `json:"-"`
}
