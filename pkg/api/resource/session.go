package resource

import (
	"sort"

	"github.com/TommyZ-7/list-checker-tauri/pkg/model"
)

type SessionListResource struct {
	Members []model.Session `json:"members"`
}

type RegistrationResource struct {
	RoomID string `json:"roomid"`
}

func NewSessionList(sessions []model.Session) (out *SessionListResource) {
	out = &SessionListResource{
		Members: make([]model.Session, 0, len(sessions)),
	}

	out.Members = append(out.Members, sessions...)

	// Default sort by room id
	sort.Slice(out.Members, func(i, j int) bool {
		return out.Members[i].RoomID < out.Members[j].RoomID
	})

	return // out
}

func NewRegistration(id string) *RegistrationResource {
	return &RegistrationResource{
		RoomID: id,
	}
}
