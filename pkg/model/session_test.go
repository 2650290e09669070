package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantListFromStrings(t *testing.T) {
	var p ParticipantList
	err := json.Unmarshal([]byte(`["s1","s2","s3"]`), &p)

	require.NoError(t, err)
	assert.Equal(t, ParticipantList{"s1", "s2", "s3"}, p)
}

func TestParticipantListFromObjects(t *testing.T) {
	var p ParticipantList
	err := json.Unmarshal([]byte(`[{"id":"s1","attended":true},{"id":"s2"}]`), &p)

	require.NoError(t, err)
	assert.Equal(t, ParticipantList{"s1", "s2"}, p)
}

func TestParticipantListMixedForms(t *testing.T) {
	var p ParticipantList
	err := json.Unmarshal([]byte(`["s1",{"id":"s2","attended":false},42,{"name":"no id"}]`), &p)

	require.NoError(t, err)
	assert.Equal(t, ParticipantList{"s1", "s2"}, p, "entries without an id are skipped")
}

func TestParticipantListRejectsNonArray(t *testing.T) {
	var p ParticipantList
	err := json.Unmarshal([]byte(`"s1"`), &p)

	assert.Error(t, err)
}

func TestSessionUnmarshalKeepsFlagsAndTodayList(t *testing.T) {
	data := []byte(`{
		"eventname": "Algebra",
		"eventinfo": "first period",
		"participants": ["s1", "s2", "s3"],
		"todaylist": ["guest1"],
		"arrowtoday": true,
		"autotodayregister": false,
		"nolist": false,
		"soukai": true
	}`)

	var sess Session
	require.NoError(t, json.Unmarshal(data, &sess))

	assert.Equal(t, "Algebra", sess.EventName)
	assert.Equal(t, ParticipantList{"s1", "s2", "s3"}, sess.Participants)
	assert.Equal(t, []string{"guest1"}, sess.TodayList)
	assert.True(t, sess.ArrowToday)
	assert.True(t, sess.Soukai)
	assert.False(t, sess.AutoTodayRegister)
	assert.False(t, sess.NoList)
}
