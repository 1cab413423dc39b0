package deeplink

import (
	"log/slog"
	"sync"
)

// Navigator is the navigation surface the router drives.
type Navigator interface {
	OpenRoom(roomID string)
	OpenProfile(userID string)
}

// Router acts on intents immediately when authenticated, otherwise
// stashes exactly one pending intent and replays it once authentication
// succeeds. A newer link overwrites a pending one.
type Router struct {
	nav    Navigator
	logger *slog.Logger

	mu      sync.Mutex
	pending Intent
}

func NewRouter(nav Navigator, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		nav:     nav,
		logger:  logger,
		pending: None,
	}
}

func (r *Router) Handle(raw string, authenticated bool) {
	intent := Parse(raw)
	if intent.Kind == KindNone {
		return
	}

	if authenticated {
		r.navigate(intent)
		return
	}

	r.mu.Lock()
	r.pending = intent
	r.mu.Unlock()
	r.logger.Info("deep link deferred until login", "id", intent.ID)
}

// ReplayPending fires the stashed intent once, then clears it.
func (r *Router) ReplayPending(authenticated bool) {
	if !authenticated {
		return
	}

	r.mu.Lock()
	intent := r.pending
	r.pending = None
	r.mu.Unlock()

	if intent.Kind != KindNone {
		r.navigate(intent)
	}
}

func (r *Router) Reset() {
	r.mu.Lock()
	r.pending = None
	r.mu.Unlock()
}

func (r *Router) navigate(intent Intent) {
	switch intent.Kind {
	case KindRoom:
		r.nav.OpenRoom(intent.ID)
	case KindProfile:
		r.nav.OpenProfile(intent.ID)
	}
}
