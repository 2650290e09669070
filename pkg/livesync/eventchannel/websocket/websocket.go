package websocket

import (
	"io"
	"net"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	log "github.com/sirupsen/logrus"
)

// Driver pumps frames between a websocket connection and the event channel
// layer. Inbound text frames land on Inbox; outbound payloads are queued
// with Push and written by a dedicated goroutine, so no caller ever blocks
// on a slow client.
type Driver struct {
	conn   net.Conn
	Inbox  chan []byte
	outbox chan []byte

	terminateCh    chan<- struct{}
	terminatedOnce sync.Once

	stopCh   chan struct{}
	stopOnce sync.Once

	wg sync.WaitGroup
}

// NewDriver wraps an upgraded websocket connection. terminateCh is closed
// once either pump exits, signalling the HTTP handler to return.
func NewDriver(conn net.Conn, terminateCh chan<- struct{}) *Driver {
	return &Driver{
		conn:        conn,
		Inbox:       make(chan []byte, 100),
		outbox:      make(chan []byte, 100),
		terminateCh: terminateCh,
		stopCh:      make(chan struct{}),
	}
}

// Start launches the inbox and outbox pumps.
func (driver *Driver) Start() {
	driver.wg.Add(1)
	go driver.inboxHandler()
	driver.wg.Add(1)
	go driver.outboxHandler()
}

// Push queues data for delivery to the client. It reports false when the
// outbox is full; the frame is dropped, not retried.
func (driver *Driver) Push(data []byte) bool {
	out := make([]byte, len(data))
	copy(out, data)

	select {
	case driver.outbox <- out:
		return true
	default:
		return false
	}
}

// Stop shuts the pumps down and signals termination.
func (driver *Driver) Stop() {
	log.Debug("websocket driver stop called")
	driver.safeCloseTerminateChannel()
	driver.safeCloseStopChannel()
}

// Close waits until both pumps have exited.
func (driver *Driver) Close() {
	driver.wg.Wait()
	log.Debug("websocket driver closed")
}

func (driver *Driver) closeHandler() {
	defer driver.wg.Done()
	driver.safeCloseTerminateChannel()
	driver.safeCloseStopChannel()
}

func (driver *Driver) safeCloseTerminateChannel() {
	driver.terminatedOnce.Do(func() {
		close(driver.terminateCh)
	})
}

func (driver *Driver) safeCloseStopChannel() {
	driver.stopOnce.Do(func() {
		close(driver.stopCh)
	})
}

func (driver *Driver) inboxHandler() {
	defer driver.closeHandler()

	state := ws.StateServerSide
	ch := wsutil.ControlFrameHandler(driver.conn, state)

	r := &wsutil.Reader{
		Source:         driver.conn,
		State:          state,
		CheckUTF8:      true,
		OnIntermediate: ch,
	}

	for {
		h, err := r.NextFrame()
		if err != nil {
			if err != io.EOF {
				log.Errorf("websocket read frame error: %v", err)
			}
			return
		}

		if h.OpCode.IsControl() {
			// On OpClose the client went away; exit the pump and let the
			// close handler signal termination.
			if h.OpCode == ws.OpClose {
				log.Debug("websocket connection closed by client")
				return
			}

			if err = ch(h, r); err != nil {
				log.Errorf("websocket control frame error: %v", err)
				return
			}
			continue
		}

		data, err := io.ReadAll(r)
		if err != nil {
			log.Errorf("websocket read payload error: %v", err)
			return
		}

		select {
		case driver.Inbox <- data:
		case <-driver.stopCh:
			return
		}
	}
}

func (driver *Driver) outboxHandler() {
	defer driver.closeHandler()

	state := ws.StateServerSide
	w := wsutil.NewWriter(driver.conn, state, 0)

	for {
		select {
		case data := <-driver.outbox:
			if err := writeText(driver.conn, w, state, data); err != nil {
				log.Errorf("websocket terminates because of a write error: %v", err)
				return
			}
		case <-driver.stopCh:
			closeGraceful(driver.conn, w, state)
			return
		}
	}
}

func writeText(conn net.Conn, w *wsutil.Writer, state ws.State, data []byte) error {
	w.Reset(conn, state, ws.OpText)
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.Flush()
}

func closeGraceful(conn net.Conn, w *wsutil.Writer, state ws.State) {
	w.Reset(conn, state, ws.OpClose)
	if _, err := w.Write(nil); err == nil {
		_ = w.Flush()
	}
}
