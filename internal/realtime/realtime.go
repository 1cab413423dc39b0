// Package realtime is the per-room publish/subscribe façade. Every
// event carries its room id so subscribers can filter to their own
// room; Subscribe is idempotent per room.
package realtime

type EventType string

const (
	EventParticipantJoined EventType = "participant_joined"
	EventParticipantLeft   EventType = "participant_left"
	EventParticipantReady  EventType = "participant_ready"
	EventMatchFound        EventType = "match_found"
)

type Event struct {
	Type    EventType `json:"type"`
	RoomID  string    `json:"room_id"`
	UserID  string    `json:"user_id,omitempty"`
	MovieID int       `json:"movie_id,omitempty"`
}

type Service interface {
	Subscribe(roomID string) error
	Unsubscribe(roomID string)
	Events() <-chan Event
	Close()
}
