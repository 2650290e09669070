package model

// Settings is the latest-wins override of a session's display and behavior
// flags. An update always replaces all four flags together.
type Settings struct {
	ArrowToday        bool `json:"arrowtoday"`
	AutoTodayRegister bool `json:"autotodayregister"`
	Soukai            bool `json:"soukai"`
	NoList            bool `json:"nolist"`
}
