package llm

import "context"

// Mock is a Client for tests. It records the last request and returns a
// fixed reply or error.
type Mock struct {
	Reply       string
	Err         error
	LastRequest *Request
	Calls       int
}

func (m *Mock) Generate(_ context.Context, req *Request) (string, error) {
	m.LastRequest = req
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
