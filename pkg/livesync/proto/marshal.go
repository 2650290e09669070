package proto

import "encoding/json"

func marshalEnvelope(evType EventType, payload interface{}) ([]byte, error) {
	envelope := make([]interface{}, 2)
	envelope[0] = evType.String()
	envelope[1] = payload

	return json.Marshal(envelope)
}

func (m ConnectMessage) Marshal() ([]byte, error) {
	return marshalEnvelope(EventTypeConnect, m.SessionID)
}

func (m JoinMessage) Marshal() ([]byte, error) {
	return marshalEnvelope(EventTypeJoin, m.SessionID)
}

func (m SyncAllMessage) Marshal() ([]byte, error) {
	return marshalEnvelope(EventTypeSyncAll, m.SessionID)
}

func (m AttendeesMessage) Marshal() ([]byte, error) {
	return marshalEnvelope(EventTypeRegisterAttendees, m)
}

func (m OnTheDayMessage) Marshal() ([]byte, error) {
	return marshalEnvelope(EventTypeRegisterOnTheDay, m)
}

func (m SettingsMessage) Marshal() ([]byte, error) {
	return marshalEnvelope(EventTypeSettingsChange, m)
}

func MarshalNewInitDataMessage(session interface{}) ([]byte, error) {
	return marshalEnvelope(EventTypeInitData, session)
}

func MarshalNewJoinReturnMessage(session interface{}) ([]byte, error) {
	return marshalEnvelope(EventTypeJoinReturn, session)
}

func MarshalNewJoinErrorMessage(message string) ([]byte, error) {
	return marshalEnvelope(EventTypeJoinError, JoinErrorMessage{Message: message})
}

// MarshalNewAttendeesReturnMessage renders the canonical attendance set. A
// nil slice marshals to null, the explicit no-data marker.
func MarshalNewAttendeesReturnMessage(indices []int) ([]byte, error) {
	return marshalEnvelope(EventTypeAttendeesReturn, indices)
}

// MarshalNewOnTheDayReturnMessage renders the canonical on-the-day set. A
// nil slice marshals to null, the explicit no-data marker.
func MarshalNewOnTheDayReturnMessage(names []string) ([]byte, error) {
	return marshalEnvelope(EventTypeOnTheDayReturn, names)
}

func MarshalNewSettingsReturnMessage(settings interface{}) ([]byte, error) {
	return marshalEnvelope(EventTypeSettingsReturn, settings)
}

func MarshalNewLogMessage(record LogRecord) ([]byte, error) {
	return marshalEnvelope(EventTypeLog, record)
}
