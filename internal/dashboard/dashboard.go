// Package dashboard aggregates designated teams' tasks across every stored
// project. Where the planner shows one project at a time, the dashboard
// answers "where is this crew working, on anything, this month?".
package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/crewcal/crewcal/internal/calendar"
	"github.com/crewcal/crewcal/internal/colors"
	"github.com/crewcal/crewcal/internal/config"
	"github.com/crewcal/crewcal/internal/schedule"
)

// TeamTask is a task annotated with the project it belongs to, so a swatch
// can name its project.
type TeamTask struct {
	schedule.Task
	ProjectID   string
	ProjectName string
}

// Relevant reports whether a team is tracked by the dashboard rules: any
// configured prefix match or exact team name.
func Relevant(team string, rules config.DashboardRules) bool {
	for _, prefix := range rules.Prefixes {
		if strings.HasPrefix(team, prefix) {
			return true
		}
	}
	for _, exact := range rules.Teams {
		if team == exact {
			return true
		}
	}
	return false
}

// CollectTasks gathers every tracked task across all projects. Project order
// is stabilized by sorted id so repeated renders agree.
func CollectTasks(projects map[string]schedule.Project, rules config.DashboardRules) []TeamTask {
	ids := make([]string, 0, len(projects))
	for id := range projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var tasks []TeamTask
	for _, id := range ids {
		project := projects[id]
		for _, task := range project.Deadlines {
			if !Relevant(task.Team, rules) {
				continue
			}
			tasks = append(tasks, TeamTask{Task: task, ProjectID: id, ProjectName: project.Name})
		}
	}
	return tasks
}

// Teams discovers the distinct tracked team names, alphabetically. Each gets
// its own calendar: the Gypsum family shares a color, not a grid.
func Teams(tasks []TeamTask) []string {
	seen := make(map[string]struct{}, len(tasks))
	var teams []string
	for _, task := range tasks {
		if _, ok := seen[task.Team]; ok {
			continue
		}
		seen[task.Team] = struct{}{}
		teams = append(teams, task.Team)
	}
	sort.Strings(teams)
	return teams
}

// TeamCalendar is one team's month grid.
type TeamCalendar struct {
	Team string
	Grid calendar.Grid
}

// BuildCalendars renders one grid per discovered team for the given month.
// Within a grid, a day shows one swatch per distinct project with a task
// active that day, titled with the project name.
func BuildCalendars(projects map[string]schedule.Project, rules config.DashboardRules, year int, month time.Month, classifier *colors.Classifier) []TeamCalendar {
	all := CollectTasks(projects, rules)
	var calendars []TeamCalendar
	for _, team := range Teams(all) {
		teamTasks := tasksForTeam(all, team)
		grid := calendar.MonthGrid(year, month, plainTasks(teamTasks), projectSwatches(teamTasks, classifier))
		calendars = append(calendars, TeamCalendar{Team: team, Grid: grid})
	}
	return calendars
}

// TasksOn returns the team's tasks active on a day, sorted by project name,
// for the day-detail view.
func TasksOn(tasks []TeamTask, team string, day schedule.Day) []TeamTask {
	var active []TeamTask
	for _, task := range tasks {
		if task.Team == team && task.ActiveOn(day) {
			active = append(active, task)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].ProjectName < active[j].ProjectName })
	return active
}

func tasksForTeam(tasks []TeamTask, team string) []TeamTask {
	var out []TeamTask
	for _, task := range tasks {
		if task.Team == team {
			out = append(out, task)
		}
	}
	return out
}

func plainTasks(tasks []TeamTask) []schedule.Task {
	out := make([]schedule.Task, len(tasks))
	for i, task := range tasks {
		out[i] = task.Task
	}
	return out
}

// projectSwatches emits one swatch per distinct project active on the day,
// in first-occurrence order, colored by the team's category.
func projectSwatches(teamTasks []TeamTask, classifier *colors.Classifier) calendar.SwatchFunc {
	return func(day schedule.Day, _ []schedule.Task) []calendar.Swatch {
		seen := make(map[string]struct{})
		var swatches []calendar.Swatch
		for _, task := range teamTasks {
			if !task.ActiveOn(day) {
				continue
			}
			if _, ok := seen[task.ProjectID]; ok {
				continue
			}
			seen[task.ProjectID] = struct{}{}
			swatches = append(swatches, calendar.Swatch{
				Category: classifier.Classify(task.Team),
				Title:    task.ProjectName,
			})
		}
		return swatches
	}
}
