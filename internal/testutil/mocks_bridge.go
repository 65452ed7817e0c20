package testutil

import (
	"context"

	"github.com/Norgate-AV/dvrc/internal/scripting"
)

// MockBridge implements interfaces.Bridge for testing. It records every call
// and replays scripted results in order.
type MockBridge struct {
	Calls   []scripting.Call
	results []mockReply
	// Err, when set, is returned for every call not covered by a scripted
	// reply.
	Err error
}

type mockReply struct {
	result scripting.Result
	err    error
}

func NewMockBridge() *MockBridge {
	return &MockBridge{}
}

// WithResult queues a reply built from raw JSON text.
func (m *MockBridge) WithResult(rawJSON string) *MockBridge {
	m.results = append(m.results, mockReply{result: scripting.ResultFromJSON(rawJSON)})
	return m
}

// WithError queues an error reply.
func (m *MockBridge) WithError(err error) *MockBridge {
	m.results = append(m.results, mockReply{err: err})
	return m
}

func (m *MockBridge) Invoke(_ context.Context, call scripting.Call) (scripting.Result, error) {
	m.Calls = append(m.Calls, call)

	if len(m.results) > 0 {
		reply := m.results[0]
		m.results = m.results[1:]
		return reply.result, reply.err
	}

	if m.Err != nil {
		return scripting.Result{}, m.Err
	}

	return scripting.ResultFromJSON("null"), nil
}

// LastCall returns the most recent call, or a zero Call when none were made.
func (m *MockBridge) LastCall() scripting.Call {
	if len(m.Calls) == 0 {
		return scripting.Call{}
	}

	return m.Calls[len(m.Calls)-1]
}
