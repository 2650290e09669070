package proto

import (
	"encoding/json"
	"fmt"
)

var eventTypesByName = map[string]EventType{
	"connect":                   EventTypeConnect,
	"join":                      EventTypeJoin,
	"join_return":               EventTypeJoinReturn,
	"join_error":                EventTypeJoinError,
	"sync_all_data":             EventTypeSyncAll,
	"register_attendees":        EventTypeRegisterAttendees,
	"register_attendees_return": EventTypeAttendeesReturn,
	"register_ontheday":         EventTypeRegisterOnTheDay,
	"register_ontheday_return":  EventTypeOnTheDayReturn,
	"settings_change":           EventTypeSettingsChange,
	"settings_change_return":    EventTypeSettingsReturn,
	"init_data":                 EventTypeInitData,
	"log":                       EventTypeLog,
}

// UnmarshalMessage decodes a wire frame into its event type and typed
// payload. Outbound-only events decode to their raw payload so client-side
// consumers can pick their own target type.
func UnmarshalMessage(data []byte) (EventType, interface{}, error) {
	var envelope []json.RawMessage

	if err := json.Unmarshal(data, &envelope); err != nil {
		return EventTypeInvalid, nil, fmt.Errorf("livesync: invalid message data: %s", err.Error())
	}

	if len(envelope) < 1 {
		return EventTypeInvalid, nil, fmt.Errorf("livesync: message does not contain an event name")
	}

	var name string
	if err := json.Unmarshal(envelope[0], &name); err != nil {
		return EventTypeInvalid, nil, fmt.Errorf("livesync: invalid event name type")
	}

	evType, ok := eventTypesByName[name]
	if !ok {
		return EventTypeInvalid, nil, fmt.Errorf("livesync: unknown event name '%s'", name)
	}

	switch evType {
	case EventTypeConnect:
		sessionID, err := unmarshalSessionID(envelope, "connect")
		if err != nil {
			return EventTypeInvalid, nil, err
		}
		return EventTypeConnect, ConnectMessage{SessionID: sessionID}, nil
	case EventTypeJoin:
		sessionID, err := unmarshalSessionID(envelope, "join")
		if err != nil {
			return EventTypeInvalid, nil, err
		}
		return EventTypeJoin, JoinMessage{SessionID: sessionID}, nil
	case EventTypeSyncAll:
		sessionID, err := unmarshalSessionID(envelope, "sync_all_data")
		if err != nil {
			return EventTypeInvalid, nil, err
		}
		return EventTypeSyncAll, SyncAllMessage{SessionID: sessionID}, nil
	case EventTypeRegisterAttendees:
		var msg AttendeesMessage
		if err := unmarshalPayload(envelope, "register_attendees", &msg); err != nil {
			return EventTypeInvalid, nil, err
		}
		return EventTypeRegisterAttendees, msg, nil
	case EventTypeRegisterOnTheDay:
		var msg OnTheDayMessage
		if err := unmarshalPayload(envelope, "register_ontheday", &msg); err != nil {
			return EventTypeInvalid, nil, err
		}
		return EventTypeRegisterOnTheDay, msg, nil
	case EventTypeSettingsChange:
		var msg SettingsMessage
		if err := unmarshalPayload(envelope, "settings_change", &msg); err != nil {
			return EventTypeInvalid, nil, err
		}
		return EventTypeSettingsChange, msg, nil
	}

	// Server-to-client events carry arbitrary payloads; hand back the raw
	// bytes and let the caller decode.
	var payload json.RawMessage
	if len(envelope) >= 2 {
		payload = envelope[1]
	}
	return evType, payload, nil
}

// unmarshalSessionID reads the string payload of the handshake-style
// events. A missing payload decodes to the empty sentinel id; the handlers
// turn that into a validation error reply.
func unmarshalSessionID(envelope []json.RawMessage, name string) (string, error) {
	if len(envelope) < 2 {
		return "", nil
	}

	var sessionID string
	if err := json.Unmarshal(envelope[1], &sessionID); err != nil {
		return "", fmt.Errorf("livesync: %s message contains an invalid session id type", name)
	}

	return sessionID, nil
}

func unmarshalPayload(envelope []json.RawMessage, name string, v interface{}) error {
	if len(envelope) < 2 {
		return fmt.Errorf("livesync: incomplete %s message", name)
	}

	if err := json.Unmarshal(envelope[1], v); err != nil {
		return fmt.Errorf("livesync: %s message contains an invalid payload: %s", name, err.Error())
	}

	return nil
}
