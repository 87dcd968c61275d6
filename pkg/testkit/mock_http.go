// Package testkit provides test doubles for the storefront's outbound HTTP
// traffic. MockTransport is an http.RoundTripper that matches requests
// against scripted stubs and returns synthetic responses, so client tests
// never touch the network.
//
//	mt := testkit.NewMockTransport(
//	    testkit.Stub{Method: "POST", URL: "/auth/login", Status: 200, Body: `{"data":{}}`},
//	)
//	http.DefaultClient.Transport = mt
//	defer http.ResetTransport()
package testkit

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Stub describes one expected outgoing request and the response to serve.
// Method and URL are matched as prefixes ("" matches anything). A stub with
// Times > 0 is consumed after that many matches; Times == 0 matches forever.
type Stub struct {
	Method string
	URL    string // matched against the URL path+query by substring
	Status int
	Body   string
	Times  int
}

// MockTransport implements http.RoundTripper over a list of stubs.
type MockTransport struct {
	mu    sync.Mutex
	stubs []*stubEntry
}

type stubEntry struct {
	stub  Stub
	calls int
}

// NewMockTransport builds a transport serving the given stubs in order of
// declaration: the first live matching stub wins.
func NewMockTransport(stubs ...Stub) *MockTransport {
	mt := &MockTransport{}
	for _, s := range stubs {
		mt.stubs = append(mt.stubs, &stubEntry{stub: s})
	}
	return mt
}

// RoundTrip matches req against the stubs and returns a synthetic response.
// An unmatched request is an error — tests should declare all traffic.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for _, e := range mt.stubs {
		if e.stub.Times > 0 && e.calls >= e.stub.Times {
			continue
		}
		if e.stub.Method != "" && e.stub.Method != req.Method {
			continue
		}
		if e.stub.URL != "" && !strings.Contains(req.URL.String(), e.stub.URL) {
			continue
		}

		e.calls++
		return synthesize(req, e.stub), nil
	}

	return nil, fmt.Errorf("testkit: unexpected %s %s — no matching stub", req.Method, req.URL)
}

// Calls returns how many times the stub matching method/url was served.
func (mt *MockTransport) Calls(method, url string) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	n := 0
	for _, e := range mt.stubs {
		if e.stub.Method == method && e.stub.URL == url {
			n += e.calls
		}
	}
	return n
}

// TotalCalls returns how many requests the transport served in total.
func (mt *MockTransport) TotalCalls() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	n := 0
	for _, e := range mt.stubs {
		n += e.calls
	}
	return n
}

func synthesize(req *http.Request, s Stub) *http.Response {
	status := s.Status
	if status == 0 {
		status = http.StatusOK
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(s.Body)),
		Request:    req,
	}
}
