package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/crewcal/crewcal/internal/schedule"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	ids := 0
	gen := func() string {
		ids++
		return fmt.Sprintf("id-%d", ids)
	}
	st := New(filepath.Join(dir, "projects.json"), filepath.Join(dir, "current"), nil, WithIDGenerator(gen))
	return st, dir
}

func mustTask(t *testing.T, area, team, start, end string) schedule.Task {
	t.Helper()
	s, err := schedule.ParseDay(start)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	e, err := schedule.ParseDay(end)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}
	return schedule.Task{Area: area, Team: team, Start: s, End: e}
}

func TestLoadFreshStoreSynthesizesProject(t *testing.T) {
	st, _ := newTestStore(t)
	session, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(session.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(session.Projects))
	}
	current, ok := session.Current()
	if !ok {
		t.Fatalf("current id %s dangling", session.CurrentID)
	}
	if current.Name != schedule.DefaultProjectName {
		t.Fatalf("fresh project name: %q", current.Name)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)
	session, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	project, _ := session.Current()
	project.Name = "Tower A"
	project.Deadlines = []schedule.Task{
		mustTask(t, "Lobby", "Paint Team", "2024-03-10", "2024-03-12"),
		mustTask(t, "Roof", "Gypsum Alpha", "2024-03-11", "2024-03-15"),
	}
	if err := st.UpdateCurrent(session, project); err != nil {
		t.Fatalf("update: %v", err)
	}

	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CurrentID != session.CurrentID {
		t.Fatalf("current id changed: %s vs %s", reloaded.CurrentID, session.CurrentID)
	}
	got, ok := reloaded.Current()
	if !ok {
		t.Fatalf("reloaded current missing")
	}
	if got.Name != "Tower A" {
		t.Fatalf("name: %q", got.Name)
	}
	if len(got.Deadlines) != 2 {
		t.Fatalf("deadlines: got %d want 2", len(got.Deadlines))
	}
	for i, want := range project.Deadlines {
		d := got.Deadlines[i]
		if d.Area != want.Area || d.Team != want.Team || !d.Start.Equal(want.Start) || !d.End.Equal(want.End) {
			t.Fatalf("deadline %d: got %+v want %+v", i, d, want)
		}
	}
}

func TestLoadCorruptStoreResets(t *testing.T) {
	st, dir := newTestStore(t)
	if err := os.WriteFile(filepath.Join(dir, "projects.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt blob: %v", err)
	}
	session, err := st.Load()
	if !errors.Is(err, ErrCorruptStore) {
		t.Fatalf("expected ErrCorruptStore, got %v", err)
	}
	if len(session.Projects) != 1 {
		t.Fatalf("reset session should hold 1 project, got %d", len(session.Projects))
	}
	if _, ok := session.Current(); !ok {
		t.Fatalf("reset session has dangling current id")
	}
	// The reset must be durable too.
	again, err := st.Load()
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if len(again.Projects) != 1 {
		t.Fatalf("reset was not persisted")
	}
}

func TestSelectProject(t *testing.T) {
	st, _ := newTestStore(t)
	session, _ := st.Load()
	first := session.CurrentID
	second := st.Create(session, "Second")
	if session.CurrentID != second {
		t.Fatalf("create should select new project")
	}
	if err := st.Select(session, first); err != nil {
		t.Fatalf("select: %v", err)
	}
	if session.CurrentID != first {
		t.Fatalf("select did not switch current")
	}
}

func TestSelectMissingProjectKeepsState(t *testing.T) {
	st, _ := newTestStore(t)
	session, _ := st.Load()
	before := session.CurrentID
	err := st.Select(session, "no-such-id")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if session.CurrentID != before {
		t.Fatalf("failed select changed current id")
	}
}

func TestDeleteLastProjectSynthesizesReplacement(t *testing.T) {
	st, _ := newTestStore(t)
	session, _ := st.Load()
	only := session.CurrentID
	if err := st.Delete(session, only); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(session.Projects) != 1 {
		t.Fatalf("expected exactly 1 project after deleting the last, got %d", len(session.Projects))
	}
	if session.CurrentID == only {
		t.Fatalf("replacement kept the deleted id")
	}
	if _, ok := session.Current(); !ok {
		t.Fatalf("replacement not selected")
	}
}

func TestDeleteSelectsRemainingProject(t *testing.T) {
	st, _ := newTestStore(t)
	session, _ := st.Load()
	first := session.CurrentID
	second := st.Create(session, "Second")
	if err := st.Delete(session, second); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if session.CurrentID != first {
		t.Fatalf("expected %s current after delete, got %s", first, session.CurrentID)
	}
	if err := st.Delete(session, "missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestDanglingCurrentPointerFallsBack(t *testing.T) {
	st, dir := newTestStore(t)
	session, _ := st.Load()
	st.Create(session, "Second")
	if err := os.WriteFile(filepath.Join(dir, "current"), []byte("gone\n"), 0o644); err != nil {
		t.Fatalf("write pointer: %v", err)
	}
	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := reloaded.Current(); !ok {
		t.Fatalf("dangling pointer not repaired: %s", reloaded.CurrentID)
	}
}
