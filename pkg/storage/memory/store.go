package memory

import "github.com/TommyZ-7/list-checker-tauri/pkg/storage"

// Store contains all memory-based sub-stores. All state is process
// resident; a restart loses every session, attendance set, on-the-day set
// and settings override.
type store struct {
	sessions   *sessionStore
	attendance *attendanceStore
	ontheday   *onTheDayStore
	settings   *settingsStore
}

// NewStore creates a new memory-based Storage interface
func NewStore() storage.Interface {
	return &store{
		sessions:   newSessionStore(),
		attendance: newAttendanceStore(),
		ontheday:   newOnTheDayStore(),
		settings:   newSettingsStore(),
	}
}

// Sessions returns a sub-store for managing the Session model
func (s *store) Sessions() storage.SessionStore {
	return s.sessions
}

// Attendance returns a sub-store for the per-session roster index sets
func (s *store) Attendance() storage.AttendanceStore {
	return s.attendance
}

// OnTheDay returns a sub-store for the per-session on-the-day sets
func (s *store) OnTheDay() storage.OnTheDayStore {
	return s.ontheday
}

// Settings returns a sub-store for the per-session settings overrides
func (s *store) Settings() storage.SettingsStore {
	return s.settings
}
