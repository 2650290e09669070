package proto

// EventType identifies one named event on the realtime channel.
type EventType int

const (
	EventTypeInvalid EventType = iota
	EventTypeConnect
	EventTypeJoin
	EventTypeJoinReturn
	EventTypeJoinError
	EventTypeSyncAll
	EventTypeRegisterAttendees
	EventTypeAttendeesReturn
	EventTypeRegisterOnTheDay
	EventTypeOnTheDayReturn
	EventTypeSettingsChange
	EventTypeSettingsReturn
	EventTypeInitData
	EventTypeLog
)

var eventNames = map[EventType]string{
	EventTypeConnect:           "connect",
	EventTypeJoin:              "join",
	EventTypeJoinReturn:        "join_return",
	EventTypeJoinError:         "join_error",
	EventTypeSyncAll:           "sync_all_data",
	EventTypeRegisterAttendees: "register_attendees",
	EventTypeAttendeesReturn:   "register_attendees_return",
	EventTypeRegisterOnTheDay:  "register_ontheday",
	EventTypeOnTheDayReturn:    "register_ontheday_return",
	EventTypeSettingsChange:    "settings_change",
	EventTypeSettingsReturn:    "settings_change_return",
	EventTypeInitData:          "init_data",
	EventTypeLog:               "log",
}

func (evType EventType) String() string {
	name, ok := eventNames[evType]
	if !ok {
		return ""
	}

	return name
}

// ConnectMessage is the initial handshake carrying a session id.
type ConnectMessage struct {
	SessionID string
}

// JoinMessage asks to enroll the connection in the session's room.
type JoinMessage struct {
	SessionID string
}

// SyncAllMessage asks for a full resync of the session's list state.
type SyncAllMessage struct {
	SessionID string
}

// AttendeesMessage submits roster indices marked present.
type AttendeesMessage struct {
	AttendeeIndex []int  `json:"attendeeindex"`
	UUID          string `json:"uuid"`
}

// OnTheDayMessage submits free-text identifiers marked present on the day.
type OnTheDayMessage struct {
	OnTheDay []string `json:"ontheday"`
	UUID     string   `json:"uuid"`
}

// SettingsMessage replaces all four display/behavior flags of a session.
type SettingsMessage struct {
	ArrowToday        bool   `json:"arrowtoday"`
	AutoTodayRegister bool   `json:"autotodayregister"`
	Soukai            bool   `json:"soukai"`
	NoList            bool   `json:"nolist"`
	UUID              string `json:"uuid"`
}

// JoinErrorMessage is the requester-only error reply for join and resync.
type JoinErrorMessage struct {
	Message string `json:"message"`
}

// LogRecord is one activity log line broadcast to a room.
type LogRecord struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
}
