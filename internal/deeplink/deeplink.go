// Package deeplink parses inbound URLs into a closed set of navigation
// intents and defers them until the user is authenticated.
package deeplink

import (
	"net/url"
	"strings"
)

const (
	// Scheme is the custom URL scheme: wouldwatch://room/{id}.
	Scheme = "wouldwatch"
	// UniversalHost serves the HTTPS universal links:
	// https://wouldwatch.app/join/{id} and friends.
	UniversalHost = "wouldwatch.app"
)

type Kind int

const (
	KindNone Kind = iota
	KindRoom
	KindProfile
)

type Intent struct {
	Kind Kind
	ID   string
}

var None = Intent{Kind: KindNone}

// Parse maps a URL onto an intent. Anything unrecognized (wrong
// scheme, wrong host, unknown action, missing id) is None.
func Parse(raw string) Intent {
	u, err := url.Parse(raw)
	if err != nil {
		return None
	}

	if u.Scheme == Scheme {
		// The action rides in the host position: wouldwatch://room/{id}.
		return intentFor(u.Host, firstSegment(u.Path))
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return None
	}

	host := strings.TrimPrefix(u.Host, "www.")
	if host == UniversalHost {
		segments := pathSegments(u.Path)
		if len(segments) >= 2 {
			return intentFor(segments[0], segments[1])
		}
	}

	return None
}

func intentFor(action, id string) Intent {
	if id == "" {
		return None
	}
	switch action {
	case "room", "join":
		return Intent{Kind: KindRoom, ID: id}
	case "profile", "user":
		return Intent{Kind: KindProfile, ID: id}
	}
	return None
}

func pathSegments(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstSegment(path string) string {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}
