package eventchannel

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/TommyZ-7/list-checker-tauri/pkg/livesync/eventchannel/websocket"
	"github.com/TommyZ-7/list-checker-tauri/pkg/livesync/proto"
)

// EventChannel is one connected realtime client. It pumps inbound frames
// from the websocket driver through the controller's handlers and pushes
// outbound frames to the driver without blocking.
type EventChannel struct {
	sync.RWMutex
	ctrl          *Controller
	driver        *websocket.Driver
	id            string
	lastMessageAt time.Time
	stopCh        chan struct{}
	stopOnce      sync.Once
}

// NewEventChannel attaches a fresh channel to the driver and starts its
// inbox worker.
func (ctrl *Controller) NewEventChannel(driver *websocket.Driver) *EventChannel {
	ch := &EventChannel{
		ctrl:   ctrl,
		driver: driver,
		id:     uuid.NewString(),
		stopCh: make(chan struct{}),
	}

	go ch.inboxWorker()

	log.Infof("eventchannel '%s' established", shortConnID(ch.id))
	return ch
}

// ID returns the connection identifier.
func (ch *EventChannel) ID() string {
	return ch.id
}

// Send queues data for the client. It reports false when the frame had to
// be dropped because the client cannot keep up.
func (ch *EventChannel) Send(data []byte) bool {
	return ch.driver.Push(data)
}

// Close is called when the websocket handler exits. Room membership is
// cleaned up here; there is nothing else to tear down.
func (ch *EventChannel) Close() {
	ch.stopOnce.Do(func() {
		close(ch.stopCh)
	})
	ch.ctrl.Disconnect(ch)
	log.Infof("eventchannel '%s' closed", shortConnID(ch.id))
}

func (ch *EventChannel) inboxWorker() {
	for {
		select {
		case data := <-ch.driver.Inbox:
			ch.HandleMessage(data)
		case <-ch.stopCh:
			return
		}
	}
}

// HandleMessage dispatches one inbound frame to the matching handler. A
// malformed frame is logged and dropped; it never takes the connection
// down.
func (ch *EventChannel) HandleMessage(data []byte) {
	evType, msg, err := proto.UnmarshalMessage(data)
	if err != nil {
		log.Warnf("eventchannel '%s' dropped an invalid message: %v", shortConnID(ch.id), err)
		return
	}

	ch.Lock()
	ch.lastMessageAt = time.Now().Round(time.Second).UTC()
	ch.Unlock()

	switch evType {
	case proto.EventTypeConnect:
		ch.ctrl.Connect(ch, msg.(proto.ConnectMessage).SessionID)
	case proto.EventTypeJoin:
		ch.ctrl.Join(ch, msg.(proto.JoinMessage).SessionID)
	case proto.EventTypeSyncAll:
		ch.ctrl.SyncAll(ch, msg.(proto.SyncAllMessage).SessionID)
	case proto.EventTypeRegisterAttendees:
		ch.ctrl.RegisterAttendees(ch, msg.(proto.AttendeesMessage))
	case proto.EventTypeRegisterOnTheDay:
		ch.ctrl.RegisterOnTheDay(ch, msg.(proto.OnTheDayMessage))
	case proto.EventTypeSettingsChange:
		ch.ctrl.ChangeSettings(ch, msg.(proto.SettingsMessage))
	default:
		log.Warnf("eventchannel '%s' ignored unhandled event '%s'", shortConnID(ch.id), evType)
	}
}
