// Package push decodes inbound notification payloads. Unrecognized
// types and malformed fields cause the notification to be silently
// ignored, never an error surfaced to the user.
package push

type Type string

const (
	TypeRoomInvite        Type = "room_invite"
	TypeMatchFound        Type = "match_found"
	TypeParticipantJoined Type = "participant_joined"
)

type Notification struct {
	Type    Type
	RoomID  string
	MovieID int
	Title   string
	Body    string
}

// Parse reads a notification payload dictionary. The second return is
// false when the payload should be ignored.
func Parse(payload map[string]any) (Notification, bool) {
	raw, ok := payload["type"].(string)
	if !ok {
		return Notification{}, false
	}

	t := Type(raw)
	switch t {
	case TypeRoomInvite, TypeMatchFound, TypeParticipantJoined:
	default:
		return Notification{}, false
	}

	n := Notification{Type: t}
	n.RoomID, _ = payload["room_id"].(string)
	n.Title, _ = payload["title"].(string)
	n.Body, _ = payload["body"].(string)
	n.MovieID = intField(payload["movie_id"])
	return n, true
}

// intField tolerates the number representations JSON decoding produces.
func intField(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}
