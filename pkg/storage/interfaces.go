package storage

import "github.com/TommyZ-7/list-checker-tauri/pkg/model"

// Interface is implemented by the storage
type Interface interface {
	Sessions() SessionStore
	Attendance() AttendanceStore
	OnTheDay() OnTheDayStore
	Settings() SettingsStore
}

// SessionStore is responsible for managing the Session model. FindByID and
// FetchAll attach the room id from the storage key; Save strips it so the
// id is never duplicated inside the stored record.
type SessionStore interface {
	FetchAll() (map[string]model.Session, error)
	FindByID(id string) (*model.Session, error)
	Save(id string, m *model.Session) error
}

// AttendanceStore holds, per session, the roster indices marked present.
// Save overwrites unconditionally; merging is the caller's responsibility.
type AttendanceStore interface {
	FindByID(id string) ([]int, error)
	Save(id string, indices []int) error
}

// OnTheDayStore holds, per session, the free-text identifiers marked
// present on the day. Save overwrites unconditionally.
type OnTheDayStore interface {
	FindByID(id string) ([]string, error)
	Save(id string, names []string) error
}

// SettingsStore holds, per session, the latest settings override. Save
// replaces all flags together.
type SettingsStore interface {
	FindByID(id string) (*model.Settings, error)
	Save(id string, m *model.Settings) error
}
