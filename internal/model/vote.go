package model

type VoteType string

const (
	VoteYes   VoteType = "yes"
	VoteNo    VoteType = "no"
	VoteMaybe VoteType = "maybe"
)

type VoteRequest struct {
	MediaID int      `json:"media_id"`
	Vote    VoteType `json:"vote"`
}

// VoteResponse carries the server's verdict. IsMatch == true is the sole
// trigger for match-found state; the client never tallies votes itself.
type VoteResponse struct {
	Success bool  `json:"success"`
	IsMatch *bool `json:"is_match,omitempty"`
}

func (v VoteResponse) MatchFound() bool {
	return v.IsMatch != nil && *v.IsMatch
}

type RoomMatch struct {
	ID     int      `json:"id"`
	Movie  Movie    `json:"movie"`
	Voters []string `json:"voters"`
}
