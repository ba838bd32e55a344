package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/crewcal/crewcal/internal/logbook"
	"github.com/crewcal/crewcal/internal/schedule"
)

// ErrCorruptStore reports that the persisted project blob failed to parse.
// The store has already reset itself by the time callers see this; the error
// exists so the render surface can tell the user their data was lost.
var ErrCorruptStore = errors.New("store: persisted projects are corrupt")

// ErrProjectNotFound reports a reference to a project id absent from the
// store. The operation that raised it changed no state.
var ErrProjectNotFound = errors.New("store: project not found")

// Session is the in-memory working set: every stored project plus the one
// being edited. The current id, when set, always names an existing entry,
// and the mapping is never empty.
type Session struct {
	Projects  map[string]schedule.Project
	CurrentID string
}

// Current returns the project being edited.
func (s *Session) Current() (schedule.Project, bool) {
	project, ok := s.Projects[s.CurrentID]
	return project, ok
}

// IDs returns every project id in a stable (sorted) order.
func (s *Session) IDs() []string {
	ids := make([]string, 0, len(s.Projects))
	for id := range s.Projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Store persists sessions under the data directory as two files: a JSON
// mapping of all projects, and a one-line file naming the current project.
type Store struct {
	projectsPath string
	currentPath  string
	log          *logbook.Logbook
	newID        func() string
}

// Option customizes a Store during construction.
type Option func(*Store)

// WithIDGenerator overrides project id generation, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New builds a store writing projectsPath and currentPath. The logbook may
// be nil.
func New(projectsPath, currentPath string, log *logbook.Logbook, opts ...Option) *Store {
	store := &Store{
		projectsPath: projectsPath,
		currentPath:  currentPath,
		log:          log,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Load reads the persisted session. A missing store yields a fresh session
// with one blank project. A corrupt store is reset the same way and the
// returned error wraps ErrCorruptStore; the session is usable either way.
func (st *Store) Load() (*Session, error) {
	session := &Session{Projects: map[string]schedule.Project{}}

	data, err := os.ReadFile(st.projectsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		st.Create(session, "")
		return session, nil
	case err != nil:
		st.log.Error("load projects: %v", err)
		st.Create(session, "")
		return session, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	if err := json.Unmarshal(data, &session.Projects); err != nil {
		st.log.Error("parse projects: %v", err)
		session.Projects = map[string]schedule.Project{}
		st.Create(session, "")
		return session, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if session.Projects == nil {
		session.Projects = map[string]schedule.Project{}
	}

	if len(session.Projects) == 0 {
		st.Create(session, "")
		return session, nil
	}

	session.CurrentID = st.loadCurrentID(session)
	return session, nil
}

// loadCurrentID reads the current pointer, falling back to the first stored
// project when the pointer is missing or dangling.
func (st *Store) loadCurrentID(session *Session) string {
	data, err := os.ReadFile(st.currentPath)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if _, ok := session.Projects[id]; ok {
			return id
		}
		if id != "" {
			st.log.Warn("current project %s missing from store", id)
		}
	}
	return session.IDs()[0]
}

// Save persists the whole session. A failed write leaves the in-memory
// session intact and is reported to the caller; the session keeps working
// for the rest of the run.
func (st *Store) Save(session *Session) error {
	encoded, err := json.MarshalIndent(session.Projects, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode projects: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(st.projectsPath), 0o755); err != nil {
		return fmt.Errorf("store: ensure data dir: %w", err)
	}
	if err := os.WriteFile(st.projectsPath, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("store: write projects: %w", err)
	}
	return st.saveCurrentID(session.CurrentID)
}

func (st *Store) saveCurrentID(id string) error {
	if err := os.WriteFile(st.currentPath, []byte(id+"\n"), 0o644); err != nil {
		return fmt.Errorf("store: write current id: %w", err)
	}
	return nil
}

// Create inserts a fresh blank project, makes it current, and persists.
// Returns the generated id.
func (st *Store) Create(session *Session, name string) string {
	id := st.newID()
	session.Projects[id] = schedule.NewProject(name)
	session.CurrentID = id
	if err := st.Save(session); err != nil {
		st.log.Error("autosave after create: %v", err)
	}
	st.log.Info("created project %s (%s)", session.Projects[id].Name, id)
	return id
}

// Select makes the given project current and persists the pointer. An
// absent id is logged and leaves the session unchanged.
func (st *Store) Select(session *Session, id string) error {
	if _, ok := session.Projects[id]; !ok {
		st.log.Warn("select: project %s not found", id)
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	session.CurrentID = id
	if err := st.saveCurrentID(id); err != nil {
		st.log.Error("persist current id: %v", err)
	}
	return nil
}

// Delete removes a project. When it was the last one, a new blank project
// takes its place so the store is never empty; otherwise the first remaining
// project becomes current. Confirmation is the render surface's job.
func (st *Store) Delete(session *Session, id string) error {
	if _, ok := session.Projects[id]; !ok {
		st.log.Warn("delete: project %s not found", id)
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	name := session.Projects[id].Name
	delete(session.Projects, id)
	st.log.Info("deleted project %s (%s)", name, id)

	if len(session.Projects) == 0 {
		st.Create(session, "")
		return nil
	}
	if session.CurrentID == id {
		session.CurrentID = session.IDs()[0]
	}
	if err := st.Save(session); err != nil {
		st.log.Error("autosave after delete: %v", err)
	}
	return nil
}

// UpdateCurrent replaces the current project's contents and persists.
func (st *Store) UpdateCurrent(session *Session, project schedule.Project) error {
	if _, ok := session.Projects[session.CurrentID]; !ok {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, session.CurrentID)
	}
	session.Projects[session.CurrentID] = project
	return st.Save(session)
}
