package model

import "time"

type RoomStatus string

const (
	RoomStatusActive    RoomStatus = "active"
	RoomStatusCompleted RoomStatus = "completed"
	RoomStatusCancelled RoomStatus = "cancelled"
)

// UntitledRoom is shown when the backend omits a room name.
const UntitledRoom = "Untitled Room"

type Room struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	HostID       string     `json:"host_id"`
	Status       RoomStatus `json:"status"`
	IsPublic     bool       `json:"is_public"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	Participants []string   `json:"participants,omitempty"`
}

func (r Room) DisplayName() string {
	if r.Name == "" {
		return UntitledRoom
	}
	return r.Name
}

type CreateRoomRequest struct {
	Name         string   `json:"name"`
	IsPublic     bool     `json:"is_public"`
	Participants []string `json:"participants"`
}

type CreateRoomResponse struct {
	Room Room `json:"room"`
}
