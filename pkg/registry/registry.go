package registry

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/TommyZ-7/list-checker-tauri/pkg/model"
	"github.com/TommyZ-7/list-checker-tauri/pkg/storage"
)

// Registry mints session ids and coordinates the session, on-the-day and
// settings stores as one logical session.
type Registry struct {
	store storage.Interface
}

// NewRegistry creates a registry on top of the given storage
func NewRegistry(store storage.Interface) *Registry {
	return &Registry{
		store: store,
	}
}

// Register parses a raw session definition, mints a new room id and stores
// the normalized session. A pre-seeded today list is written to the
// on-the-day store before the session write is acknowledged. On malformed
// input the error is logged and the empty sentinel id is returned.
func (r *Registry) Register(data []byte) string {
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Error(errors.Wrap(err, "registry failed to parse session definition"))
		return ""
	}

	id := newRoomID()
	sess.Password = ""

	if len(sess.TodayList) > 0 {
		if err := r.store.OnTheDay().Save(id, sess.TodayList); err != nil {
			log.Errorf("registry failed to seed on-the-day list for '%s': %v", id, err)
			return ""
		}
		log.Infof("registry seeded on-the-day list for '%s' with %d entries", id, len(sess.TodayList))
	}

	if err := r.store.Sessions().Save(id, &sess); err != nil {
		log.Errorf("registry failed to store session '%s': %v", id, err)
		return ""
	}

	log.Infof("registry registered session '%s' with id '%s'", sess.EventName, id)
	return id
}

// Get returns a stored session with its room id attached, or
// storage.ErrNotFound.
func (r *Registry) Get(id string) (*model.Session, error) {
	return r.store.Sessions().FindByID(id)
}

// FetchAll returns every stored session with room ids attached.
func (r *Registry) FetchAll() ([]model.Session, error) {
	m, err := r.store.Sessions().FetchAll()
	if err != nil {
		return nil, err
	}

	sessions := make([]model.Session, 0, len(m))
	for _, sess := range m {
		sessions = append(sessions, sess)
	}

	return sessions, nil
}

// newRoomID keeps only the first segment of a fresh UUID so room ids stay
// short enough to read out to a class.
func newRoomID() string {
	id := uuid.NewString()
	if i := strings.Index(id, "-"); i > 0 {
		return id[:i]
	}
	return id
}
