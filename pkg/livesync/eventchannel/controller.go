package eventchannel

import (
	"fmt"
	"sort"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/TommyZ-7/list-checker-tauri/pkg/livesync/proto"
	"github.com/TommyZ-7/list-checker-tauri/pkg/model"
	"github.com/TommyZ-7/list-checker-tauri/pkg/storage"
)

// Controller owns the handler logic bound to the realtime channel events.
// Handlers are stateless; all session state lives in the store, room
// membership lives in the manager.
type Controller struct {
	nc       *nats.Conn
	store    storage.Interface
	mgr      *Manager
	activity *ActivityBroadcaster
}

// NewController creates the sync core. The NATS connection is optional;
// when nil, room traffic is not mirrored onto the bus.
func NewController(nc *nats.Conn, store storage.Interface) *Controller {
	mgr := NewManager()

	return &Controller{
		nc:       nc,
		store:    store,
		mgr:      mgr,
		activity: NewActivityBroadcaster(mgr, nc),
	}
}

// Close stops the background activity dispatch.
func (ctrl *Controller) Close() {
	ctrl.activity.Close()
}

// Connect handles the initial handshake: the requester gets a snapshot of
// the stored session, or null when the id is unknown.
func (ctrl *Controller) Connect(c Conn, sessionID string) {
	sess, err := ctrl.store.Sessions().FindByID(sessionID)
	if err != nil && err != storage.ErrNotFound {
		log.Errorf("controller failed to load session '%s': %v", sessionID, err)
		return
	}

	out, err := proto.MarshalNewInitDataMessage(sess)
	if err != nil {
		log.Errorf("controller could not marshal init data: %v", err)
		return
	}
	c.Send(out)
}

// Join validates the session id, enrolls the connection in the session's
// room and replies with the session view. A settings override, when
// present, replaces the four flags on a copy of the session; the stored
// record is never touched. The join announcement is emitted to the room in
// the background, after the reply.
func (ctrl *Controller) Join(c Conn, sessionID string) {
	if !validSessionID(sessionID) {
		log.Warnf("controller rejected join with invalid session id '%s'", sessionID)
		ctrl.sendJoinError(c, "invalid session id")
		return
	}

	sess, err := ctrl.store.Sessions().FindByID(sessionID)
	if err == storage.ErrNotFound {
		log.Warnf("controller rejected join for unknown session '%s'", sessionID)
		ctrl.sendJoinError(c, "session not found")
		return
	}
	if err != nil {
		log.Errorf("controller failed to load session '%s': %v", sessionID, err)
		ctrl.sendJoinError(c, "session not found")
		return
	}

	ctrl.mgr.Join(sessionID, c)

	view := *sess
	if override, err := ctrl.store.Settings().FindByID(sessionID); err == nil {
		view.ArrowToday = override.ArrowToday
		view.AutoTodayRegister = override.AutoTodayRegister
		view.Soukai = override.Soukai
		view.NoList = override.NoList
	}

	out, err := proto.MarshalNewJoinReturnMessage(view)
	if err != nil {
		log.Errorf("controller could not marshal join return: %v", err)
		return
	}
	c.Send(out)

	ctrl.activity.Emit(sessionID, LevelServer,
		fmt.Sprintf("client %s joined the room", shortConnID(c.ID())))
}

// SyncAll replies to the requester with the current attendance and
// on-the-day sets. Absent sets are rendered as null, not as errors.
func (ctrl *Controller) SyncAll(c Conn, sessionID string) {
	if !validSessionID(sessionID) {
		log.Warnf("controller rejected resync with invalid session id '%s'", sessionID)
		ctrl.sendJoinError(c, "invalid session id")
		return
	}

	indices, err := ctrl.store.Attendance().FindByID(sessionID)
	if err != nil && err != storage.ErrNotFound {
		log.Errorf("controller failed to load attendance for '%s': %v", sessionID, err)
		return
	}
	if out, err := proto.MarshalNewAttendeesReturnMessage(indices); err == nil {
		c.Send(out)
	}

	names, err := ctrl.store.OnTheDay().FindByID(sessionID)
	if err != nil && err != storage.ErrNotFound {
		log.Errorf("controller failed to load on-the-day set for '%s': %v", sessionID, err)
		return
	}
	if out, err := proto.MarshalNewOnTheDayReturnMessage(names); err == nil {
		c.Send(out)
	}
}

// RegisterAttendees merges the submitted roster indices into the stored
// attendance set, broadcasts the canonical sorted set to the room and logs
// one line per newly present participant.
func (ctrl *Controller) RegisterAttendees(c Conn, msg proto.AttendeesMessage) {
	if !validSessionID(msg.UUID) {
		log.Warnf("controller ignored attendee update with invalid session id '%s'", msg.UUID)
		return
	}

	current, err := ctrl.store.Attendance().FindByID(msg.UUID)
	if err != nil && err != storage.ErrNotFound {
		log.Errorf("controller failed to load attendance for '%s': %v", msg.UUID, err)
		return
	}

	merged, added := mergeUnique(current, msg.AttendeeIndex)
	sort.Ints(merged)

	if err := ctrl.store.Attendance().Save(msg.UUID, merged); err != nil {
		log.Errorf("controller failed to store attendance for '%s': %v", msg.UUID, err)
		return
	}

	out, err := proto.MarshalNewAttendeesReturnMessage(merged)
	if err != nil {
		log.Errorf("controller could not marshal attendance set: %v", err)
		return
	}
	ctrl.broadcast(msg.UUID, out)

	if len(added) == 0 {
		return
	}

	roster := ctrl.roster(msg.UUID)
	for _, idx := range added {
		if idx < 0 || idx >= len(roster) {
			ctrl.activity.Emit(msg.UUID, LevelWarning,
				fmt.Sprintf("participant %d not found", idx))
			continue
		}
		ctrl.activity.Emit(msg.UUID, LevelInfo,
			fmt.Sprintf("%s attended", roster[idx]))
	}
}

// RegisterOnTheDay merges the submitted identifiers into the stored
// on-the-day set, keeping insertion order, broadcasts the merged set and
// logs one line per new identifier.
func (ctrl *Controller) RegisterOnTheDay(c Conn, msg proto.OnTheDayMessage) {
	if !validSessionID(msg.UUID) {
		log.Warnf("controller ignored on-the-day update with invalid session id '%s'", msg.UUID)
		return
	}

	current, err := ctrl.store.OnTheDay().FindByID(msg.UUID)
	if err != nil && err != storage.ErrNotFound {
		log.Errorf("controller failed to load on-the-day set for '%s': %v", msg.UUID, err)
		return
	}

	merged, added := mergeUnique(current, msg.OnTheDay)

	if err := ctrl.store.OnTheDay().Save(msg.UUID, merged); err != nil {
		log.Errorf("controller failed to store on-the-day set for '%s': %v", msg.UUID, err)
		return
	}

	out, err := proto.MarshalNewOnTheDayReturnMessage(merged)
	if err != nil {
		log.Errorf("controller could not marshal on-the-day set: %v", err)
		return
	}
	ctrl.broadcast(msg.UUID, out)

	for _, name := range added {
		ctrl.activity.Emit(msg.UUID, LevelInfo,
			fmt.Sprintf("%s attended (on the day)", name))
	}
}

// ChangeSettings replaces all four flags for the session and broadcasts the
// new settings to the room.
func (ctrl *Controller) ChangeSettings(c Conn, msg proto.SettingsMessage) {
	if !validSessionID(msg.UUID) {
		log.Warnf("controller ignored settings change with invalid session id '%s'", msg.UUID)
		return
	}

	settings := model.Settings{
		ArrowToday:        msg.ArrowToday,
		AutoTodayRegister: msg.AutoTodayRegister,
		Soukai:            msg.Soukai,
		NoList:            msg.NoList,
	}

	if err := ctrl.store.Settings().Save(msg.UUID, &settings); err != nil {
		log.Errorf("controller failed to store settings for '%s': %v", msg.UUID, err)
		return
	}

	out, err := proto.MarshalNewSettingsReturnMessage(settings)
	if err != nil {
		log.Errorf("controller could not marshal settings: %v", err)
		return
	}
	ctrl.broadcast(msg.UUID, out)
}

// Disconnect removes the connection from its room.
func (ctrl *Controller) Disconnect(c Conn) {
	ctrl.mgr.Leave(c)
}

// broadcast delivers data to the room and mirrors it onto the bus when one
// is configured.
func (ctrl *Controller) broadcast(room string, data []byte) {
	ctrl.mgr.Broadcast(room, data)

	if ctrl.nc != nil {
		if err := ctrl.nc.Publish("listchecker.v1.rooms."+room+".events", data); err != nil {
			log.Errorf("controller could not publish room event: %v", err)
		}
	}
}

func (ctrl *Controller) roster(sessionID string) []string {
	sess, err := ctrl.store.Sessions().FindByID(sessionID)
	if err != nil {
		return nil
	}
	return sess.Participants
}

func (ctrl *Controller) sendJoinError(c Conn, message string) {
	out, err := proto.MarshalNewJoinErrorMessage(message)
	if err != nil {
		log.Errorf("controller could not marshal join error: %v", err)
		return
	}
	c.Send(out)
}

// validSessionID rejects the empty id and the stringified null sentinels
// that unset frontends are known to submit.
func validSessionID(id string) bool {
	return id != "" && id != "null" && id != "undefined"
}

func shortConnID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
