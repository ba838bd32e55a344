package schedule

import (
	"fmt"
	"strings"
)

// Task is one crew assignment: a team working an area between two dates,
// inclusive on both ends. This mirrors the persisted deadline schema.
type Task struct {
	Area  string `json:"area"`
	Team  string `json:"team"`
	Start Day    `json:"startDate"`
	End   Day    `json:"endDate"`
}

// Validate checks the task invariants before it is accepted into a project.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Area) == "" {
		return fmt.Errorf("schedule: task area is required")
	}
	if strings.TrimSpace(t.Team) == "" {
		return fmt.Errorf("schedule: task team is required")
	}
	if t.Start.IsZero() || t.End.IsZero() {
		return fmt.Errorf("schedule: task %s/%s needs both start and end dates", t.Area, t.Team)
	}
	if t.End.Before(t.Start) {
		return fmt.Errorf("schedule: task %s/%s ends (%s) before it starts (%s)", t.Area, t.Team, t.End, t.Start)
	}
	return nil
}

// ActiveOn reports whether the task covers the given calendar day. A task
// whose start equals its end is active on exactly that one day.
func (t Task) ActiveOn(d Day) bool {
	return !d.Before(t.Start) && !d.After(t.End)
}

// Project is a named collection of tasks in the order the user entered them.
type Project struct {
	Name      string `json:"name"`
	Deadlines []Task `json:"deadlines"`
}

// DefaultProjectName labels freshly synthesized projects.
const DefaultProjectName = "New Gypsum Project"

// NewProject builds a blank project. It carries no tasks yet; the render
// surface synthesizes one empty area for it.
func NewProject(name string) Project {
	if strings.TrimSpace(name) == "" {
		name = DefaultProjectName
	}
	return Project{Name: name}
}

// TeamKind distinguishes roster teams from free-text custom teams.
type TeamKind int

const (
	// TeamKnown names a team on the configured roster.
	TeamKnown TeamKind = iota
	// TeamCustom names a user-typed team.
	TeamCustom
)

// TeamField is the tagged form of a task's team: the render surface picks a
// roster selector for known teams and a text input for custom ones. The
// persisted value is always just the name.
type TeamField struct {
	Kind TeamKind
	Name string
}

// TeamFieldFor tags a team name against the roster.
func TeamFieldFor(name string, roster []string) TeamField {
	for _, known := range roster {
		if known == name {
			return TeamField{Kind: TeamKnown, Name: name}
		}
	}
	return TeamField{Kind: TeamCustom, Name: name}
}
