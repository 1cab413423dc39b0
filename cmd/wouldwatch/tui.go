package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tahaburak/would-watch/internal/model"
	"github.com/tahaburak/would-watch/internal/realtime"
)

// run drives the interactive menu loop. Room channel events arrive on
// a background goroutine and print between prompts.
func (a *app) run() error {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	go a.printChannelEvents()

	for {
		a.printMenu()

		if !scanner.Scan() {
			return nil
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			a.doLogin(ctx, scanner, false)
		case "2":
			a.doLogin(ctx, scanner, true)
		case "3":
			a.doListRooms(ctx)
		case "4":
			a.doCreateRoom(ctx, scanner)
		case "5":
			a.doJoinRoom(ctx, scanner)
		case "6":
			a.doVote(ctx, scanner)
		case "7":
			a.doMatches(ctx, scanner)
		case "8":
			a.doSearchMovies(ctx, scanner)
		case "9":
			a.doFriends(ctx)
		case "10":
			a.doSearchUsers(ctx, scanner)
		case "11":
			a.doProfile(ctx)
		case "12":
			a.doOpenLink(scanner)
		case "13":
			a.auth.Logout(ctx)
			fmt.Println("Logged out")
		case "0":
			fmt.Println("Bye!")
			return nil
		default:
			fmt.Println("Unknown choice")
		}
	}
}

func (a *app) printMenu() {
	fmt.Println("\n=== Would Watch ===")
	fmt.Printf("API: %s\n", a.cfg.BaseURL())
	if user := a.auth.CurrentUser(); user != nil {
		fmt.Printf("Signed in as %s\n", user.Email)
	}
	fmt.Println("1. Log in")
	fmt.Println("2. Sign up")
	fmt.Println("3. List rooms")
	fmt.Println("4. Create room")
	fmt.Println("5. Join room")
	fmt.Println("6. Vote on a movie")
	fmt.Println("7. Show matches")
	fmt.Println("8. Search movies")
	fmt.Println("9. List friends")
	fmt.Println("10. Search users")
	fmt.Println("11. Show profile")
	fmt.Println("12. Open link")
	fmt.Println("13. Log out")
	fmt.Println("0. Quit")
	fmt.Print("Choose an action: ")
}

func (a *app) printChannelEvents() {
	for event := range a.channel.Events() {
		switch event.Type {
		case realtime.EventParticipantJoined:
			fmt.Printf("\n[room %s] %s joined\n", event.RoomID, event.UserID)
		case realtime.EventParticipantLeft:
			fmt.Printf("\n[room %s] %s left\n", event.RoomID, event.UserID)
		case realtime.EventParticipantReady:
			fmt.Printf("\n[room %s] %s is ready\n", event.RoomID, event.UserID)
		case realtime.EventMatchFound:
			fmt.Printf("\n[room %s] It's a match! movie %d\n", event.RoomID, event.MovieID)
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func (a *app) doLogin(ctx context.Context, scanner *bufio.Scanner, signUp bool) {
	email := prompt(scanner, "Email: ")
	password := prompt(scanner, "Password: ")
	a.auth.SetCredentials(email, password)

	var ok bool
	if signUp {
		ok = a.auth.SignUp(ctx)
	} else {
		ok = a.auth.Login(ctx)
	}
	if !ok {
		fmt.Printf("Error: %s\n", a.auth.ErrorMessage())
		return
	}
	fmt.Println("Welcome!")
}

func (a *app) doListRooms(ctx context.Context) {
	a.rooms.Load(ctx)
	if msg := a.rooms.ErrorMessage(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}

	rooms := a.rooms.RoomsList()
	if len(rooms) == 0 {
		fmt.Println("No rooms yet")
		return
	}
	for i, room := range rooms {
		fmt.Printf("%d. %s (%s) id=%s participants=%d\n",
			i+1, room.DisplayName(), room.Status, room.ID, len(room.Participants))
	}
}

func (a *app) doCreateRoom(ctx context.Context, scanner *bufio.Scanner) {
	name := prompt(scanner, "Room name: ")
	public := prompt(scanner, "Public? (y/n): ") == "y"

	if !a.rooms.Create(ctx, name, public, nil) {
		fmt.Printf("Error: %s\n", a.rooms.ErrorMessage())
		return
	}

	room := a.rooms.RoomsList()[0]
	fmt.Printf("Room created: %s\n", room.ID)
	a.OpenRoom(room.ID)
}

func (a *app) doJoinRoom(ctx context.Context, scanner *bufio.Scanner) {
	roomID := prompt(scanner, "Room id: ")
	a.rooms.Join(ctx, roomID)
	if msg := a.rooms.ErrorMessage(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}
	fmt.Println("Joined!")
	a.OpenRoom(roomID)
}

func (a *app) doVote(ctx context.Context, scanner *bufio.Scanner) {
	roomID := prompt(scanner, "Room id: ")
	mediaID, err := strconv.Atoi(prompt(scanner, "Movie id: "))
	if err != nil {
		fmt.Println("Movie id must be a number")
		return
	}

	var vote model.VoteType
	switch prompt(scanner, "Vote (y/n/m): ") {
	case "y":
		vote = model.VoteYes
	case "n":
		vote = model.VoteNo
	case "m":
		vote = model.VoteMaybe
	default:
		fmt.Println("Unknown vote")
		return
	}

	if _, err := a.rooms.SubmitVote(ctx, roomID, mediaID, vote); err != nil {
		fmt.Printf("Error: %s\n", a.rooms.ErrorMessage())
		return
	}
	if a.rooms.MatchFound() {
		fmt.Println("It's a match!")
	} else {
		fmt.Println("Vote recorded")
	}
}

func (a *app) doMatches(ctx context.Context, scanner *bufio.Scanner) {
	roomID := prompt(scanner, "Room id: ")
	a.rooms.LoadMatches(ctx, roomID)
	if msg := a.rooms.ErrorMessage(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}

	matches := a.rooms.MatchesList()
	if len(matches) == 0 {
		fmt.Println("No matches yet")
		return
	}
	for _, match := range matches {
		fmt.Printf("- %s (%s), voters: %s\n",
			match.Movie.Title, match.Movie.ReleaseYear(), strings.Join(match.Voters, ", "))
	}
}

func (a *app) doSearchMovies(ctx context.Context, scanner *bufio.Scanner) {
	query := prompt(scanner, "Search: ")
	a.movies.Search(ctx, query)
	if msg := a.movies.ErrorMessage(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}

	results := a.movies.SearchResults()
	if len(results) == 0 {
		fmt.Println("Nothing found")
		return
	}
	for _, movie := range results {
		fmt.Printf("- [%d] %s (%s) %.1f\n", movie.ID, movie.Title, movie.ReleaseYear(), movie.VoteAverage)
	}
}

func (a *app) doFriends(ctx context.Context) {
	a.social.LoadFriends(ctx)
	if msg := a.social.ErrorMessage(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}

	friends := a.social.FriendsList()
	if len(friends) == 0 {
		fmt.Println("You are not following anyone")
		return
	}
	for _, friend := range friends {
		fmt.Printf("- %s (%s)\n", friend.Username, friend.ID)
	}
}

func (a *app) doSearchUsers(ctx context.Context, scanner *bufio.Scanner) {
	query := prompt(scanner, "Search users: ")
	a.social.SearchUsers(ctx, query)
	if msg := a.social.ErrorMessage(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}

	users := a.social.SearchResults()
	if len(users) == 0 {
		fmt.Println("Nobody found")
		return
	}
	for i, user := range users {
		state := "not following"
		if user.IsFollowing {
			state = "following"
		}
		fmt.Printf("%d. %s (%s, %s)\n", i+1, user.Username, user.ID, state)
	}

	choice := prompt(scanner, "Follow which one? (number or empty): ")
	if choice == "" {
		return
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(users) {
		fmt.Println("Unknown choice")
		return
	}
	a.social.Follow(ctx, users[idx-1])
	if msg := a.social.ErrorMessage(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}
	fmt.Println("Followed!")
}

func (a *app) doProfile(ctx context.Context) {
	a.profile.Load(ctx)
	if msg := a.profile.ErrorMessage(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}

	profile := a.profile.Current()
	if profile == nil {
		fmt.Println("No profile loaded")
		return
	}
	fmt.Printf("Username: %s\nEmail: %s\nPrivacy: %s\n",
		profile.Username, profile.Email, profile.Privacy.DisplayName())
}

func (a *app) doOpenLink(scanner *bufio.Scanner) {
	raw := prompt(scanner, "Link: ")
	a.router.Handle(raw, a.auth.IsAuthenticated())
	if !a.auth.IsAuthenticated() {
		fmt.Println("Log in to continue; the link will open afterwards")
	}
}
