package resource

type RealtimeEventResource struct {
	Room  string      `json:"room"`
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

func NewRealtimeEvent(room, topic string, data interface{}) *RealtimeEventResource {
	return &RealtimeEventResource{
		Room:  room,
		Topic: topic,
		Data:  data,
	}
}
