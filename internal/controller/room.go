package controller

import (
	"context"
	"sync"

	"github.com/tahaburak/would-watch/internal/model"
)

type RoomService interface {
	Rooms(ctx context.Context) ([]model.Room, error)
	Create(ctx context.Context, name string, isPublic bool, participants []string) (model.Room, error)
	Join(ctx context.Context, roomID string) (model.Room, error)
	SubmitVote(ctx context.Context, roomID string, mediaID int, vote model.VoteType) (model.VoteResponse, error)
	Matches(ctx context.Context, roomID string) ([]model.RoomMatch, error)
}

// Rooms drives the room list and voting screens. A successful create
// prepends locally; a join forces a full reload. Loads carry a
// generation counter so a response arriving after the user moved on
// never overwrites newer state.
type Rooms struct {
	svc RoomService

	mu         sync.Mutex
	rooms      []model.Room
	matches    []model.RoomMatch
	matchFound bool
	loading    bool
	errMsg     string
	loadGen    uint64
}

func NewRooms(svc RoomService) *Rooms {
	return &Rooms{svc: svc}
}

func (r *Rooms) Load(ctx context.Context) {
	r.mu.Lock()
	r.loadGen++
	gen := r.loadGen
	r.loading = true
	r.errMsg = ""
	r.mu.Unlock()

	rooms, err := r.svc.Rooms(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.loadGen {
		return
	}
	r.loading = false
	if err != nil {
		r.errMsg = userMessage(err)
		return
	}
	r.rooms = rooms
}

func (r *Rooms) Create(ctx context.Context, name string, isPublic bool, participants []string) bool {
	r.mu.Lock()
	if name == "" {
		r.errMsg = "Room name cannot be empty"
		r.mu.Unlock()
		return false
	}
	r.loading = true
	r.errMsg = ""
	r.mu.Unlock()

	room, err := r.svc.Create(ctx, name, isPublic, participants)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.errMsg = userMessage(err)
		return false
	}
	r.rooms = append([]model.Room{room}, r.rooms...)
	return true
}

func (r *Rooms) Join(ctx context.Context, roomID string) {
	r.mu.Lock()
	r.loading = true
	r.errMsg = ""
	r.mu.Unlock()

	_, err := r.svc.Join(ctx, roomID)
	if err != nil {
		r.mu.Lock()
		r.loading = false
		r.errMsg = userMessage(err)
		r.mu.Unlock()
		return
	}

	r.Load(ctx)
}

// SubmitVote forwards the vote and latches match-found state when the
// backend says so. No extra call is made to compute the match.
func (r *Rooms) SubmitVote(ctx context.Context, roomID string, mediaID int, vote model.VoteType) (model.VoteResponse, error) {
	resp, err := r.svc.SubmitVote(ctx, roomID, mediaID, vote)
	if err != nil {
		r.mu.Lock()
		r.errMsg = userMessage(err)
		r.mu.Unlock()
		return model.VoteResponse{}, err
	}

	if resp.MatchFound() {
		r.mu.Lock()
		r.matchFound = true
		r.mu.Unlock()
	}
	return resp, nil
}

func (r *Rooms) LoadMatches(ctx context.Context, roomID string) {
	r.mu.Lock()
	r.loading = true
	r.errMsg = ""
	r.mu.Unlock()

	matches, err := r.svc.Matches(ctx, roomID)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.errMsg = userMessage(err)
		return
	}
	r.matches = matches
}

// MatchFound reports and clears the latched flag, so match UI fires
// exactly once per match.
func (r *Rooms) MatchFound() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := r.matchFound
	r.matchFound = false
	return found
}

func (r *Rooms) RoomsList() []model.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

func (r *Rooms) MatchesList() []model.RoomMatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.RoomMatch, len(r.matches))
	copy(out, r.matches)
	return out
}

func (r *Rooms) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

func (r *Rooms) ErrorMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMsg
}
