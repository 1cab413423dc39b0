package controller

import (
	"context"
	"sync"

	"github.com/tahaburak/would-watch/internal/model"
)

type MovieService interface {
	Search(ctx context.Context, query string) ([]model.Movie, error)
	Popular(ctx context.Context) ([]model.Movie, error)
	Details(ctx context.Context, id int) (model.Movie, error)
}

// Movies drives the browse and search screens. Searches carry a
// monotonically increasing sequence number; only the response for the
// latest issued sequence may publish results, so a slow response for an
// earlier, shorter query can never overwrite a later one.
type Movies struct {
	svc MovieService

	mu            sync.Mutex
	movies        []model.Movie
	searchResults []model.Movie
	searchQuery   string
	loading       bool
	errMsg        string
	searchSeq     uint64
	loadGen       uint64
}

func NewMovies(svc MovieService) *Movies {
	return &Movies{svc: svc}
}

func (m *Movies) LoadPopular(ctx context.Context) {
	m.mu.Lock()
	m.loadGen++
	gen := m.loadGen
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	movies, err := m.svc.Popular(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.loadGen {
		return
	}
	m.loading = false
	if err != nil {
		m.errMsg = userMessage(err)
		return
	}
	m.movies = movies
}

func (m *Movies) Search(ctx context.Context, query string) {
	m.mu.Lock()
	m.searchQuery = query
	if query == "" {
		m.searchResults = nil
		m.mu.Unlock()
		return
	}
	m.searchSeq++
	seq := m.searchSeq
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	results, err := m.svc.Search(ctx, query)

	m.mu.Lock()
	defer m.mu.Unlock()
	if seq != m.searchSeq {
		// A newer search was issued while this one was in flight.
		return
	}
	m.loading = false
	if err != nil {
		m.errMsg = userMessage(err)
		return
	}
	m.searchResults = results
}

func (m *Movies) Details(ctx context.Context, id int) *model.Movie {
	movie, err := m.svc.Details(ctx, id)
	if err != nil {
		m.mu.Lock()
		m.errMsg = userMessage(err)
		m.mu.Unlock()
		return nil
	}
	return &movie
}

func (m *Movies) MoviesList() []model.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Movie, len(m.movies))
	copy(out, m.movies)
	return out
}

func (m *Movies) SearchResults() []model.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Movie, len(m.searchResults))
	copy(out, m.searchResults)
	return out
}

func (m *Movies) SearchQuery() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searchQuery
}

func (m *Movies) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Movies) ErrorMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}
