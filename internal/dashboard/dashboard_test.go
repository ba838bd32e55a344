package dashboard

import (
	"testing"
	"time"

	"github.com/crewcal/crewcal/internal/colors"
	"github.com/crewcal/crewcal/internal/config"
	"github.com/crewcal/crewcal/internal/schedule"
)

var testRules = config.DashboardRules{
	Prefixes: []string{"Gypsum "},
	Teams:    []string{"Paint Team"},
}

func mustDay(t *testing.T, value string) schedule.Day {
	t.Helper()
	day, err := schedule.ParseDay(value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func task(t *testing.T, area, team, start, end string) schedule.Task {
	t.Helper()
	return schedule.Task{Area: area, Team: team, Start: mustDay(t, start), End: mustDay(t, end)}
}

func twoGypsumProjects(t *testing.T) map[string]schedule.Project {
	t.Helper()
	return map[string]schedule.Project{
		"p1": {Name: "Tower A", Deadlines: []schedule.Task{
			task(t, "Lobby", "Gypsum Alpha", "2024-05-01", "2024-05-01"),
			task(t, "Lobby", "Wiring Team", "2024-05-01", "2024-05-02"),
		}},
		"p2": {Name: "Tower B", Deadlines: []schedule.Task{
			task(t, "Roof", "Gypsum Beta", "2024-05-01", "2024-05-01"),
		}},
	}
}

func TestRelevant(t *testing.T) {
	cases := []struct {
		team string
		want bool
	}{
		{"Gypsum Alpha", true},
		{"Gypsum - Framing", true},
		{"Paint Team", true},
		{"Wiring Team", false},
		{"Gypsum", false},
	}
	for _, tc := range cases {
		if got := Relevant(tc.team, testRules); got != tc.want {
			t.Fatalf("relevant %q: got %v want %v", tc.team, got, tc.want)
		}
	}
}

func TestCollectTasksFiltersAndAnnotates(t *testing.T) {
	tasks := CollectTasks(twoGypsumProjects(t), testRules)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tracked tasks, got %d", len(tasks))
	}
	// Sorted by project id: p1 then p2.
	if tasks[0].ProjectName != "Tower A" || tasks[1].ProjectName != "Tower B" {
		t.Fatalf("project annotation wrong: %s, %s", tasks[0].ProjectName, tasks[1].ProjectName)
	}
	for _, task := range tasks {
		if task.Team == "Wiring Team" {
			t.Fatalf("untracked team leaked into dashboard")
		}
	}
}

func TestTeamsDiscoveredDynamically(t *testing.T) {
	tasks := CollectTasks(twoGypsumProjects(t), testRules)
	teams := Teams(tasks)
	if len(teams) != 2 || teams[0] != "Gypsum Alpha" || teams[1] != "Gypsum Beta" {
		t.Fatalf("unexpected teams: %v", teams)
	}
}

func TestBuildCalendarsOnePerTeam(t *testing.T) {
	classifier := colors.NewClassifier(config.DefaultTeams)
	calendars := BuildCalendars(twoGypsumProjects(t), testRules, 2024, time.May, classifier)
	if len(calendars) != 2 {
		t.Fatalf("expected 2 calendars, got %d", len(calendars))
	}
	for _, cal := range calendars {
		var found bool
		for _, cell := range cal.Grid.Cells {
			if cell.Day.String() != "2024-05-01" {
				if len(cell.Swatches) != 0 {
					t.Fatalf("%s: unexpected swatches on %s", cal.Team, cell.Day)
				}
				continue
			}
			found = true
			if len(cell.Swatches) != 1 {
				t.Fatalf("%s: got %d swatches want 1", cal.Team, len(cell.Swatches))
			}
			swatch := cell.Swatches[0]
			if swatch.Category != colors.CategoryGypsum {
				t.Fatalf("%s: category %s", cal.Team, swatch.Category)
			}
			if swatch.Title != "Tower A" && swatch.Title != "Tower B" {
				t.Fatalf("%s: swatch title %q", cal.Team, swatch.Title)
			}
		}
		if !found {
			t.Fatalf("%s: 2024-05-01 missing from grid", cal.Team)
		}
	}
}

func TestBuildCalendarsOneSwatchPerProject(t *testing.T) {
	projects := map[string]schedule.Project{
		"p1": {Name: "Tower A", Deadlines: []schedule.Task{
			task(t, "Lobby", "Paint Team", "2024-05-01", "2024-05-03"),
			task(t, "Roof", "Paint Team", "2024-05-02", "2024-05-04"),
		}},
	}
	classifier := colors.NewClassifier(config.DefaultTeams)
	calendars := BuildCalendars(projects, testRules, 2024, time.May, classifier)
	if len(calendars) != 1 {
		t.Fatalf("expected 1 calendar, got %d", len(calendars))
	}
	for _, cell := range calendars[0].Grid.Cells {
		if cell.Day.String() == "2024-05-02" {
			// Two overlapping tasks, one project: one swatch.
			if len(cell.Swatches) != 1 {
				t.Fatalf("expected 1 swatch for overlapping same-project tasks, got %d", len(cell.Swatches))
			}
		}
	}
}

func TestTasksOnSortsByProjectName(t *testing.T) {
	projects := map[string]schedule.Project{
		"pz": {Name: "Annex", Deadlines: []schedule.Task{task(t, "Hall", "Paint Team", "2024-05-01", "2024-05-01")}},
		"pa": {Name: "Workshop", Deadlines: []schedule.Task{task(t, "Bay", "Paint Team", "2024-05-01", "2024-05-01")}},
	}
	tasks := CollectTasks(projects, testRules)
	active := TasksOn(tasks, "Paint Team", mustDay(t, "2024-05-01"))
	if len(active) != 2 {
		t.Fatalf("expected 2 active tasks, got %d", len(active))
	}
	if active[0].ProjectName != "Annex" || active[1].ProjectName != "Workshop" {
		t.Fatalf("not sorted by project name: %s, %s", active[0].ProjectName, active[1].ProjectName)
	}
	if off := TasksOn(tasks, "Paint Team", mustDay(t, "2024-05-02")); len(off) != 0 {
		t.Fatalf("unexpected tasks off-date: %d", len(off))
	}
}
