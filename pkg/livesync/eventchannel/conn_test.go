package eventchannel

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeConn records every frame it is handed, so tests can assert on the
// exact wire traffic a handler produced.
type fakeConn struct {
	id     string
	reject bool

	mu     sync.Mutex
	frames [][]byte
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(data []byte) bool {
	if c.reject {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, append([]byte(nil), data...))
	return true
}

func (c *fakeConn) sent() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([][]byte, len(c.frames))
	copy(out, c.frames)
	return out
}

// eventsNamed decodes the recorded frames and returns the payloads of every
// frame carrying the given event name.
func (c *fakeConn) eventsNamed(t *testing.T, name string) []json.RawMessage {
	t.Helper()

	var payloads []json.RawMessage
	for _, frame := range c.sent() {
		gotName, payload := decodeFrame(t, frame)
		if gotName == name {
			payloads = append(payloads, payload)
		}
	}
	return payloads
}

func decodeFrame(t *testing.T, frame []byte) (string, json.RawMessage) {
	t.Helper()

	var envelope []json.RawMessage
	require.NoError(t, json.Unmarshal(frame, &envelope))
	require.GreaterOrEqual(t, len(envelope), 2)

	var name string
	require.NoError(t, json.Unmarshal(envelope[0], &name))
	return name, envelope[1]
}
