package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/tahaburak/would-watch/internal/model"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (model.AuthResponse, error)
	SignUp(ctx context.Context, email, password string) (model.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Auth drives the login screen. It validates input locally before any
// network call and refuses to start a second attempt while one is in
// flight, which closes the double-tap race.
type Auth struct {
	svc AuthService

	mu              sync.Mutex
	email           string
	password        string
	loading         bool
	errMsg          string
	authenticated   bool
	currentUser     *model.User
	onAuthenticated func()
}

func NewAuth(svc AuthService) *Auth {
	return &Auth{svc: svc}
}

// SetOnAuthenticated registers a hook run after a successful login or
// signup, outside the lock. The deep link router replays its pending
// intent from here.
func (a *Auth) SetOnAuthenticated(fn func()) {
	a.mu.Lock()
	a.onAuthenticated = fn
	a.mu.Unlock()
}

func (a *Auth) SetCredentials(email, password string) {
	a.mu.Lock()
	a.email = email
	a.password = password
	a.mu.Unlock()
}

func (a *Auth) Login(ctx context.Context) bool {
	return a.authenticate(ctx, false)
}

func (a *Auth) SignUp(ctx context.Context) bool {
	return a.authenticate(ctx, true)
}

func (a *Auth) authenticate(ctx context.Context, signUp bool) bool {
	a.mu.Lock()
	if a.loading {
		a.mu.Unlock()
		return false
	}
	if msg := validateCredentials(a.email, a.password); msg != "" {
		a.errMsg = msg
		a.mu.Unlock()
		return false
	}
	a.loading = true
	a.errMsg = ""
	email, password := a.email, a.password
	a.mu.Unlock()

	var (
		resp model.AuthResponse
		err  error
	)
	if signUp {
		resp, err = a.svc.SignUp(ctx, email, password)
	} else {
		resp, err = a.svc.Login(ctx, email, password)
	}

	a.mu.Lock()
	a.loading = false
	if err != nil {
		a.errMsg = userMessage(err)
		a.mu.Unlock()
		return false
	}
	user := resp.User
	a.currentUser = &user
	a.authenticated = true
	hook := a.onAuthenticated
	a.mu.Unlock()

	if hook != nil {
		hook()
	}
	return true
}

// Logout clears the session unconditionally: current user, auth flag
// and the credential fields all reset regardless of prior state.
func (a *Auth) Logout(ctx context.Context) {
	a.mu.Lock()
	if a.loading {
		a.mu.Unlock()
		return
	}
	a.loading = true
	a.mu.Unlock()

	err := a.svc.Logout(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false
	a.currentUser = nil
	a.authenticated = false
	a.email = ""
	a.password = ""
	if err != nil {
		a.errMsg = userMessage(err)
	}
}

func validateCredentials(email, password string) string {
	if email == "" {
		return "Email is required"
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return "Invalid email format"
	}
	if password == "" {
		return "Password is required"
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

func (a *Auth) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *Auth) ErrorMessage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}

func (a *Auth) CurrentUser() *model.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentUser == nil {
		return nil
	}
	user := *a.currentUser
	return &user
}

// Email exposes the credential field for the UI; password is never read
// back out.
func (a *Auth) Email() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.email
}

func (a *Auth) hasPassword() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.password != ""
}
