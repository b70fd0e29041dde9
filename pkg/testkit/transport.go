// Package testkit provides HTTP mocking for client tests.
//
// MockTransport implements http.RoundTripper: it matches outgoing requests
// against declared steps and returns synthetic JSON responses instead of
// touching the network. Install it on the shared client for the duration of
// a test:
//
//	step := testkit.Respond("POST", "/orders", 201, fakeOrder)
//	mt := testkit.NewTransport(step)
//	mt.Install(t)
//	// ... exercise the client ...
//	testkit.AssertCalled(t, step, 1)
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	gohttp "net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/shashiranjanraj/barman/pkg/http"
)

// Recorded is one intercepted request.
type Recorded struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Header gohttp.Header
}

// Step is one expected outgoing call and its canned reply.
type Step struct {
	Method string
	// Path is matched segment-by-segment against the request path;
	// "*" matches any single segment ("/orders/*/items/*").
	Path   string
	Status int
	Body   interface{} // marshalled to JSON; nil → empty body
	Err    error       // when set, the call fails at transport level

	mu    sync.Mutex
	calls []Recorded
}

// Respond declares a step answering method+path with a JSON body.
func Respond(method, path string, status int, body interface{}) *Step {
	return &Step{Method: method, Path: path, Status: status, Body: body}
}

// Fail declares a step whose call fails like a network error.
func Fail(method, path string, err error) *Step {
	return &Step{Method: method, Path: path, Err: err}
}

// Calls returns how many times the step matched.
func (s *Step) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Last returns the most recent intercepted request, or nil.
func (s *Step) Last() *Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	r := s.calls[len(s.calls)-1]
	return &r
}

func (s *Step) matches(method, path string) bool {
	if !strings.EqualFold(s.Method, method) {
		return false
	}
	want := strings.Split(strings.Trim(s.Path, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != "*" && want[i] != got[i] {
			return false
		}
	}
	return true
}

// MockTransport routes outgoing requests to the first matching Step.
// Unmatched calls fail the request, so a test can assert that client-side
// validation or debouncing kept a call off the wire.
type MockTransport struct {
	mu    sync.Mutex
	steps []*Step
	total int
}

// NewTransport builds a transport from steps. Order matters: the first
// matching step wins, so put specific paths before wildcard ones.
func NewTransport(steps ...*Step) *MockTransport {
	return &MockTransport{steps: steps}
}

// Install swaps the shared client's transport for mt and restores it when
// the test finishes.
func (mt *MockTransport) Install(t *testing.T) {
	t.Helper()
	http.DefaultClient.Transport = mt
	t.Cleanup(http.ResetTransport)
}

// Total returns the number of intercepted requests, matched or not.
func (mt *MockTransport) Total() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.total
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
func (mt *MockTransport) RoundTrip(req *gohttp.Request) (*gohttp.Response, error) {
	mt.mu.Lock()
	mt.total++
	mt.mu.Unlock()

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	for _, step := range mt.steps {
		if !step.matches(req.Method, req.URL.Path) {
			continue
		}

		step.mu.Lock()
		step.calls = append(step.calls, Recorded{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.Query(),
			Body:   body,
			Header: req.Header.Clone(),
		})
		step.mu.Unlock()

		if step.Err != nil {
			return nil, step.Err
		}
		return buildResponse(req, step.Status, step.Body)
	}

	return nil, fmt.Errorf("testkit: unexpected outgoing call %s %s — no matching step", req.Method, req.URL.Path)
}

func buildResponse(req *gohttp.Request, status int, body interface{}) (*gohttp.Response, error) {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("testkit: marshal canned body: %w", err)
		}
	}

	header := make(gohttp.Header)
	header.Set("Content-Type", "application/json")

	return &gohttp.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(raw)),
		Header:     header,
		Request:    req,
	}, nil
}
