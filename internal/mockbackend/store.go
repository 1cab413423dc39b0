package mockbackend

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tahaburak/would-watch/internal/model"
)

var (
	errNotFound      = errors.New("not found")
	errEmailTaken    = errors.New("email already registered")
	errBadCredential = errors.New("invalid credentials")
)

type account struct {
	ID           string
	Email        string
	Username     string
	PasswordHash []byte
	Privacy      model.PrivacySetting
	CreatedAt    time.Time
	Following    map[string]struct{}
}

type roomState struct {
	Room model.Room
	// yes-voters per media id; a match forms when two distinct
	// participants have voted yes on the same title.
	YesVotes map[int]map[string]struct{}
	Matches  []model.RoomMatch
}

// store is the whole backend state, in memory on purpose: the mock
// exists for the dev loop and e2e tests, not for durability.
type store struct {
	mu          sync.Mutex
	accounts    map[string]*account // by id
	byEmail     map[string]string   // email -> id
	rooms       map[string]*roomState
	movies      []model.Movie
	nextMatchID int
}

func newStore() *store {
	return &store{
		accounts:    make(map[string]*account),
		byEmail:     make(map[string]string),
		rooms:       make(map[string]*roomState),
		movies:      seedMovies(),
		nextMatchID: 1,
	}
}

func (s *store) createAccount(email string, passwordHash []byte) (*account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return nil, errEmailTaken
	}

	now := time.Now().UTC()
	acc := &account{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     strings.SplitN(email, "@", 2)[0],
		PasswordHash: passwordHash,
		Privacy:      model.PrivacyEveryone,
		CreatedAt:    now,
		Following:    make(map[string]struct{}),
	}
	s.accounts[acc.ID] = acc
	s.byEmail[email] = acc.ID
	return acc, nil
}

func (s *store) accountByEmail(email string) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, false
	}
	return s.accounts[id], true
}

func (s *store) accountByID(id string) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	return acc, ok
}

func (s *store) createRoom(hostID, name string, isPublic bool, participants []string) model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	members := []string{hostID}
	seen := map[string]struct{}{hostID: {}}
	for _, p := range participants {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			members = append(members, p)
		}
	}

	room := model.Room{
		ID:           uuid.NewString(),
		Name:         name,
		HostID:       hostID,
		Status:       model.RoomStatusActive,
		IsPublic:     isPublic,
		CreatedAt:    &now,
		Participants: members,
	}
	s.rooms[room.ID] = &roomState{
		Room:     room,
		YesVotes: make(map[int]map[string]struct{}),
	}
	return room
}

func (s *store) roomsFor(userID string) []model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Room
	for _, rs := range s.rooms {
		if rs.Room.IsPublic || contains(rs.Room.Participants, userID) {
			out = append(out, rs.Room)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(*out[j].CreatedAt)
	})
	return out
}

func (s *store) room(roomID string) (model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, ok := s.rooms[roomID]
	if !ok {
		return model.Room{}, errNotFound
	}
	return rs.Room, nil
}

func (s *store) joinRoom(roomID, userID string) (model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, ok := s.rooms[roomID]
	if !ok {
		return model.Room{}, errNotFound
	}
	if !contains(rs.Room.Participants, userID) {
		rs.Room.Participants = append(rs.Room.Participants, userID)
	}
	return rs.Room, nil
}

// recordVote applies a vote and reports whether it completed a match.
func (s *store) recordVote(roomID, userID string, mediaID int, vote model.VoteType) (bool, model.RoomMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, ok := s.rooms[roomID]
	if !ok {
		return false, model.RoomMatch{}, errNotFound
	}

	voters := rs.YesVotes[mediaID]
	if vote != model.VoteYes {
		delete(voters, userID)
		return false, model.RoomMatch{}, nil
	}

	if voters == nil {
		voters = make(map[string]struct{})
		rs.YesVotes[mediaID] = voters
	}
	voters[userID] = struct{}{}

	if len(voters) < 2 || s.matched(rs, mediaID) {
		return false, model.RoomMatch{}, nil
	}

	match := model.RoomMatch{
		ID:     s.nextMatchID,
		Movie:  s.movieByID(mediaID),
		Voters: keys(voters),
	}
	s.nextMatchID++
	rs.Matches = append(rs.Matches, match)
	return true, match, nil
}

func (s *store) matches(roomID string) ([]model.RoomMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, ok := s.rooms[roomID]
	if !ok {
		return nil, errNotFound
	}
	out := make([]model.RoomMatch, len(rs.Matches))
	copy(out, rs.Matches)
	return out, nil
}

func (s *store) matched(rs *roomState, mediaID int) bool {
	for _, m := range rs.Matches {
		if m.Movie.ID == mediaID {
			return true
		}
	}
	return false
}

func (s *store) movieByID(id int) model.Movie {
	for _, m := range s.movies {
		if m.ID == id {
			return m
		}
	}
	// Unknown to the seed catalogue: keep the id so the client can
	// still render the match.
	return model.Movie{ID: id, Title: "Unknown Title"}
}

func (s *store) searchMovies(query string) []model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []model.Movie
	for _, m := range s.movies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
		}
	}
	return out
}

func (s *store) popularMovies() []model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Movie, len(s.movies))
	copy(out, s.movies)
	sort.Slice(out, func(i, j int) bool {
		return out[i].VoteCount > out[j].VoteCount
	})
	return out
}

func (s *store) movieDetails(id int) (model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, errNotFound
}

func (s *store) follow(userID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return errNotFound
	}
	if _, ok := s.accounts[targetID]; !ok {
		return errNotFound
	}
	acc.Following[targetID] = struct{}{}
	return nil
}

func (s *store) unfollow(userID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return errNotFound
	}
	delete(acc.Following, targetID)
	return nil
}

func (s *store) following(userID string) []model.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return nil
	}
	var out []model.Friend
	for targetID := range acc.Following {
		if target, ok := s.accounts[targetID]; ok {
			out = append(out, friendOf(target, true))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

func (s *store) searchUsers(callerID, query string) []model.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, ok := s.accounts[callerID]
	if !ok {
		return nil
	}

	q := strings.ToLower(query)
	var out []model.Friend
	for _, acc := range s.accounts {
		if acc.ID == callerID {
			continue
		}
		if !strings.Contains(strings.ToLower(acc.Username), q) &&
			!strings.Contains(strings.ToLower(acc.Email), q) {
			continue
		}
		_, follows := caller.Following[acc.ID]
		out = append(out, friendOf(acc, follows))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

func (s *store) profile(userID string) (model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return model.UserProfile{}, errNotFound
	}
	return profileOf(acc), nil
}

func (s *store) updateProfile(userID string, username *string, privacy *model.PrivacySetting) (model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return model.UserProfile{}, errNotFound
	}
	if username != nil && *username != "" {
		acc.Username = *username
	}
	if privacy != nil {
		acc.Privacy = *privacy
	}
	return profileOf(acc), nil
}

func friendOf(acc *account, following bool) model.Friend {
	created := acc.CreatedAt
	return model.Friend{
		ID:          acc.ID,
		Username:    acc.Username,
		Email:       acc.Email,
		IsFollowing: following,
		CreatedAt:   &created,
	}
}

func profileOf(acc *account) model.UserProfile {
	created := acc.CreatedAt
	return model.UserProfile{
		ID:        acc.ID,
		Username:  acc.Username,
		Email:     acc.Email,
		Privacy:   acc.Privacy,
		CreatedAt: &created,
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
