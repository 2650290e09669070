package eventchannel

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Conn is one connected realtime client. Send must not block; it reports
// false when the message had to be dropped.
type Conn interface {
	ID() string
	Send(data []byte) bool
}

// Manager keeps track of which connection is enrolled in which room. A
// connection belongs to at most one room; joining another room leaves the
// previous one first.
type Manager struct {
	rooms   map[string]map[string]Conn
	members map[string]string
	sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		rooms:   make(map[string]map[string]Conn),
		members: make(map[string]string),
	}
}

// Join enrolls the connection in the given room.
func (mgr *Manager) Join(room string, c Conn) {
	mgr.Lock()
	if prev, ok := mgr.members[c.ID()]; ok {
		mgr.removeLocked(prev, c.ID())
	}

	conns, ok := mgr.rooms[room]
	if !ok {
		conns = make(map[string]Conn)
		mgr.rooms[room] = conns
	}
	conns[c.ID()] = c
	mgr.members[c.ID()] = room
	mgr.Unlock()

	log.Infof("manager enrolled connection '%s' in room '%s'", c.ID(), room)
}

// Leave removes the connection from its room, if any.
func (mgr *Manager) Leave(c Conn) {
	mgr.Lock()
	defer mgr.Unlock()

	room, ok := mgr.members[c.ID()]
	if !ok {
		return
	}
	mgr.removeLocked(room, c.ID())
}

func (mgr *Manager) removeLocked(room, connID string) {
	delete(mgr.members, connID)
	conns, ok := mgr.rooms[room]
	if !ok {
		return
	}
	delete(conns, connID)
	if len(conns) == 0 {
		delete(mgr.rooms, room)
	}
}

// Room returns the room the connection is currently enrolled in.
func (mgr *Manager) Room(c Conn) (string, bool) {
	mgr.RLock()
	defer mgr.RUnlock()

	room, ok := mgr.members[c.ID()]
	return room, ok
}

// MemberCount returns the number of connections enrolled in the room.
func (mgr *Manager) MemberCount(room string) int {
	mgr.RLock()
	defer mgr.RUnlock()

	return len(mgr.rooms[room])
}

// Broadcast delivers data to every current member of the room and returns
// the number of successful sends. The member list is snapshotted under the
// read lock; the sends happen outside of it. A member that cannot accept
// the message is skipped, never retried.
func (mgr *Manager) Broadcast(room string, data []byte) int {
	mgr.RLock()
	conns := make([]Conn, 0, len(mgr.rooms[room]))
	for _, c := range mgr.rooms[room] {
		conns = append(conns, c)
	}
	mgr.RUnlock()

	sent := 0
	for _, c := range conns {
		if !c.Send(data) {
			log.Warnf("manager dropped a broadcast to connection '%s' in room '%s'", c.ID(), room)
			continue
		}
		sent++
	}

	return sent
}
