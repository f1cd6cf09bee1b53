package gateway

import (
	"context"
	"errors"
	"sync"
)

// MockResult is a canned outcome for the MockGateway. Exactly one of
// Question/Feedback/Err should be set per queued result.
type MockResult struct {
	Question *Question
	Feedback *Feedback
	Err      error
}

// MockCall records one Gateway invocation.
type MockCall struct {
	Op     string // "fetch" or "submit"
	Role   string
	Answer Answer
}

// MockGateway is a deterministic Gateway for testing. It returns canned
// results in FIFO order and records all calls.
type MockGateway struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []MockCall
}

var _ Gateway = (*MockGateway)(nil)

// NewMockGateway creates a MockGateway with the given canned results.
func NewMockGateway(results ...MockResult) *MockGateway {
	return &MockGateway{results: results}
}

// FetchQuestion returns the next canned result.
func (m *MockGateway) FetchQuestion(_ context.Context, role string) (*Question, error) {
	res := m.next(MockCall{Op: "fetch", Role: role})
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Question, nil
}

// SubmitAnswer returns the next canned result.
func (m *MockGateway) SubmitAnswer(_ context.Context, answer Answer) (*Feedback, error) {
	res := m.next(MockCall{Op: "submit", Answer: answer})
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Feedback, nil
}

func (m *MockGateway) next(call MockCall) MockResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, call)

	if len(m.results) == 0 {
		return MockResult{Err: &NetworkError{Op: call.Op, Err: errNoCannedResult}}
	}
	res := m.results[0]
	m.results = m.results[1:]
	return res
}

// AddResult appends a canned result to the queue.
func (m *MockGateway) AddResult(res MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// CallCount returns the number of Gateway calls made.
func (m *MockGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

var errNoCannedResult = errors.New("mock gateway: no canned result queued")
