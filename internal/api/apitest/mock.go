// Package apitest provides a canned-response transport for tests. A
// response is selected by an explicit method+endpoint key configured per
// test, never by the requested decode type.
package apitest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type Call struct {
	Method   string
	Endpoint string
	Body     any
}

type Expectation struct {
	data []byte
	err  error
	gate <-chan struct{}
}

// Return sets the JSON-encoded success body.
func (e *Expectation) Return(v any) *Expectation {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("apitest: cannot marshal stub: %v", err))
	}
	e.data = data
	return e
}

func (e *Expectation) ReturnRaw(data []byte) *Expectation {
	e.data = data
	return e
}

func (e *Expectation) ReturnError(err error) *Expectation {
	e.err = err
	return e
}

// WaitFor blocks the call until ch closes, for in-flight ordering tests.
func (e *Expectation) WaitFor(ch <-chan struct{}) *Expectation {
	e.gate = ch
	return e
}

type MockCaller struct {
	mu    sync.Mutex
	stubs map[string]*Expectation
	calls []Call
}

func NewCaller() *MockCaller {
	return &MockCaller{stubs: make(map[string]*Expectation)}
}

func (m *MockCaller) On(method, endpoint string) *Expectation {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &Expectation{}
	m.stubs[method+" "+endpoint] = e
	return e
}

func (m *MockCaller) Call(ctx context.Context, method, endpoint string, body any, _ map[string]string) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: method, Endpoint: endpoint, Body: body})
	e, ok := m.stubs[method+" "+endpoint]
	m.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("apitest: no stub for %s %s", method, endpoint)
	}
	if e.gate != nil {
		select {
		case <-e.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return e.data, e.err
}

func (m *MockCaller) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *MockCaller) CallsTo(method, endpoint string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.calls {
		if c.Method == method && c.Endpoint == endpoint {
			n++
		}
	}
	return n
}

func (m *MockCaller) LastCall() (Call, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.calls) == 0 {
		return Call{}, false
	}
	return m.calls[len(m.calls)-1], true
}
