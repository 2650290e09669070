package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJoinMessage(t *testing.T) {
	evType, msg, err := UnmarshalMessage([]byte(`["join","abc12"]`))

	require.NoError(t, err)
	assert.Equal(t, EventTypeJoin, evType)
	assert.Equal(t, JoinMessage{SessionID: "abc12"}, msg)
}

func TestUnmarshalJoinMessageWithoutPayload(t *testing.T) {
	evType, msg, err := UnmarshalMessage([]byte(`["join"]`))

	require.NoError(t, err)
	assert.Equal(t, EventTypeJoin, evType)
	assert.Equal(t, JoinMessage{SessionID: ""}, msg, "missing payload decodes to the empty sentinel")
}

func TestUnmarshalConnectMessage(t *testing.T) {
	evType, msg, err := UnmarshalMessage([]byte(`["connect","abc12"]`))

	require.NoError(t, err)
	assert.Equal(t, EventTypeConnect, evType)
	assert.Equal(t, ConnectMessage{SessionID: "abc12"}, msg)
}

func TestUnmarshalSyncAllMessage(t *testing.T) {
	evType, msg, err := UnmarshalMessage([]byte(`["sync_all_data","abc12"]`))

	require.NoError(t, err)
	assert.Equal(t, EventTypeSyncAll, evType)
	assert.Equal(t, SyncAllMessage{SessionID: "abc12"}, msg)
}

func TestUnmarshalAttendeesMessage(t *testing.T) {
	evType, msg, err := UnmarshalMessage([]byte(`["register_attendees",{"attendeeindex":[2,0],"uuid":"abc12"}]`))

	require.NoError(t, err)
	assert.Equal(t, EventTypeRegisterAttendees, evType)
	assert.Equal(t, AttendeesMessage{AttendeeIndex: []int{2, 0}, UUID: "abc12"}, msg)
}

func TestUnmarshalOnTheDayMessage(t *testing.T) {
	evType, msg, err := UnmarshalMessage([]byte(`["register_ontheday",{"ontheday":["guest1"],"uuid":"abc12"}]`))

	require.NoError(t, err)
	assert.Equal(t, EventTypeRegisterOnTheDay, evType)
	assert.Equal(t, OnTheDayMessage{OnTheDay: []string{"guest1"}, UUID: "abc12"}, msg)
}

func TestUnmarshalSettingsMessage(t *testing.T) {
	evType, msg, err := UnmarshalMessage([]byte(`["settings_change",{"arrowtoday":true,"autotodayregister":false,"soukai":true,"nolist":false,"uuid":"abc12"}]`))

	require.NoError(t, err)
	assert.Equal(t, EventTypeSettingsChange, evType)
	assert.Equal(t, SettingsMessage{ArrowToday: true, Soukai: true, UUID: "abc12"}, msg)
}

func TestUnmarshalMessageErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `["join",`},
		{"not an array", `{"event":"join"}`},
		{"empty envelope", `[]`},
		{"numeric event name", `[42,"abc12"]`},
		{"unknown event name", `["detach","abc12"]`},
		{"wrong session id type", `["join",42]`},
		{"attendees without payload", `["register_attendees"]`},
		{"attendees wrong payload type", `["register_attendees","abc12"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evType, _, err := UnmarshalMessage([]byte(tt.data))
			assert.Error(t, err)
			assert.Equal(t, EventTypeInvalid, evType)
		})
	}
}

func TestMarshalJoinErrorMessage(t *testing.T) {
	data, err := MarshalNewJoinErrorMessage("session not found")

	require.NoError(t, err)
	assert.JSONEq(t, `["join_error",{"message":"session not found"}]`, string(data))
}

func TestMarshalAttendeesReturnMessage(t *testing.T) {
	data, err := MarshalNewAttendeesReturnMessage([]int{0, 2})

	require.NoError(t, err)
	assert.JSONEq(t, `["register_attendees_return",[0,2]]`, string(data))
}

func TestMarshalAttendeesReturnMessageNilIsNull(t *testing.T) {
	data, err := MarshalNewAttendeesReturnMessage(nil)

	require.NoError(t, err)
	assert.JSONEq(t, `["register_attendees_return",null]`, string(data))
}

func TestMarshalOnTheDayReturnMessageNilIsNull(t *testing.T) {
	data, err := MarshalNewOnTheDayReturnMessage(nil)

	require.NoError(t, err)
	assert.JSONEq(t, `["register_ontheday_return",null]`, string(data))
}

func TestMarshalLogMessage(t *testing.T) {
	data, err := MarshalNewLogMessage(LogRecord{Time: "10:15:00", Level: "info", Message: "s1 attended"})

	require.NoError(t, err)
	assert.JSONEq(t, `["log",{"time":"10:15:00","level":"info","message":"s1 attended"}]`, string(data))
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	data, err := AttendeesMessage{AttendeeIndex: []int{1, 3}, UUID: "abc12"}.Marshal()
	require.NoError(t, err)

	evType, msg, err := UnmarshalMessage(data)
	require.NoError(t, err)
	assert.Equal(t, EventTypeRegisterAttendees, evType)
	assert.Equal(t, AttendeesMessage{AttendeeIndex: []int{1, 3}, UUID: "abc12"}, msg)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "join_return", EventTypeJoinReturn.String())
	assert.Equal(t, "", EventTypeInvalid.String())
}
