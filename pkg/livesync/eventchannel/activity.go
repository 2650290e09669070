package eventchannel

import (
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/TommyZ-7/list-checker-tauri/pkg/livesync/proto"
)

// Level is the severity of an activity log line.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelServer  Level = "server"
)

type activityEntry struct {
	room   string
	record proto.LogRecord
}

// ActivityBroadcaster turns state transitions into human-readable log lines
// and delivers them to the room. Emission goes through a buffered queue
// consumed by a dedicated dispatch goroutine, so the caller's primary reply
// is never blocked by log delivery.
type ActivityBroadcaster struct {
	mgr      *Manager
	nc       *nats.Conn
	entries  chan activityEntry
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewActivityBroadcaster(mgr *Manager, nc *nats.Conn) *ActivityBroadcaster {
	b := &ActivityBroadcaster{
		mgr:     mgr,
		nc:      nc,
		entries: make(chan activityEntry, 100),
		stopCh:  make(chan struct{}),
	}

	go b.dispatch()

	return b
}

// Emit queues one log line for the room. It never blocks; when the queue is
// full the entry is dropped with a local warning.
func (b *ActivityBroadcaster) Emit(room string, level Level, message string) {
	entry := activityEntry{
		room: room,
		record: proto.LogRecord{
			Time:    time.Now().Format("15:04:05"),
			Level:   string(level),
			Message: message,
		},
	}

	select {
	case b.entries <- entry:
	default:
		log.Warnf("activity queue is full, dropped log line for room '%s'", room)
	}
}

// Close stops the dispatch goroutine. Entries still queued are discarded.
func (b *ActivityBroadcaster) Close() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
	})
}

func (b *ActivityBroadcaster) dispatch() {
	for {
		select {
		case entry := <-b.entries:
			b.deliver(entry)
		case <-b.stopCh:
			return
		}
	}
}

func (b *ActivityBroadcaster) deliver(entry activityEntry) {
	data, err := proto.MarshalNewLogMessage(entry.record)
	if err != nil {
		log.Errorf("activity broadcaster could not marshal log line: %v", err)
		return
	}

	// An empty room is not an error; the line simply reaches nobody.
	b.mgr.Broadcast(entry.room, data)

	if b.nc != nil {
		if err := b.nc.Publish("listchecker.v1.rooms."+entry.room+".log", data); err != nil {
			log.Errorf("activity broadcaster could not publish log line: %v", err)
		}
	}
}
