package model

import "encoding/json"

// Session is the static definition of one attendance event. The room id is
// not part of the stored record; the storage layer attaches it from the map
// key when the session is read back.
type Session struct {
	EventName         string          `json:"eventname"`
	EventInfo         string          `json:"eventinfo"`
	Participants      ParticipantList `json:"participants"`
	TodayList         []string        `json:"todaylist,omitempty"`
	ArrowToday        bool            `json:"arrowtoday"`
	AutoTodayRegister bool            `json:"autotodayregister"`
	NoList            bool            `json:"nolist"`
	Soukai            bool            `json:"soukai"`
	RoomID            string          `json:"roomid,omitempty"`
	Password          string          `json:"password,omitempty"`
}

// ParticipantList is the ordered roster of participant identifiers. Clients
// submit it either as a list of plain strings or as a list of objects with
// an "id" field (the optional "attended" flag on the object form is accepted
// and discarded). Both forms decode to plain identifier strings.
type ParticipantList []string

type participantObject struct {
	ID       string `json:"id"`
	Attended *bool  `json:"attended,omitempty"`
}

func (p *ParticipantList) UnmarshalJSON(data []byte) error {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			result = append(result, s)
			continue
		}

		var obj participantObject
		if err := json.Unmarshal(entry, &obj); err == nil && obj.ID != "" {
			result = append(result, obj.ID)
		}
		// Entries that are neither strings nor id-carrying objects are
		// skipped, not rejected.
	}

	*p = result
	return nil
}
