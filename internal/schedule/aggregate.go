package schedule

import "sort"

// AreaGroup collects the tasks sharing one area name, in stored order.
type AreaGroup struct {
	Area  string
	Tasks []Task
}

// TeamGroup collects the tasks sharing one team name, in stored order.
type TeamGroup struct {
	Team  string
	Tasks []Task
}

// GroupByArea buckets tasks by area. Groups appear in order of each area's
// first occurrence; a fresh group is always initialized on the first
// encounter of a key.
func GroupByArea(tasks []Task) []AreaGroup {
	index := make(map[string]int, len(tasks))
	var groups []AreaGroup
	for _, task := range tasks {
		i, ok := index[task.Area]
		if !ok {
			i = len(groups)
			index[task.Area] = i
			groups = append(groups, AreaGroup{Area: task.Area})
		}
		groups[i].Tasks = append(groups[i].Tasks, task)
	}
	return groups
}

// GroupByTeam buckets tasks by team, first occurrence first.
func GroupByTeam(tasks []Task) []TeamGroup {
	index := make(map[string]int, len(tasks))
	var groups []TeamGroup
	for _, task := range tasks {
		i, ok := index[task.Team]
		if !ok {
			i = len(groups)
			index[task.Team] = i
			groups = append(groups, TeamGroup{Team: task.Team})
		}
		groups[i].Tasks = append(groups[i].Tasks, task)
	}
	return groups
}

// Teams lists the distinct team names in order of first occurrence.
func Teams(tasks []Task) []string {
	seen := make(map[string]struct{}, len(tasks))
	var teams []string
	for _, task := range tasks {
		if _, ok := seen[task.Team]; ok {
			continue
		}
		seen[task.Team] = struct{}{}
		teams = append(teams, task.Team)
	}
	return teams
}

// TasksOn returns the subset of tasks active on the given day, in stored order.
func TasksOn(tasks []Task, day Day) []Task {
	var active []Task
	for _, task := range tasks {
		if task.ActiveOn(day) {
			active = append(active, task)
		}
	}
	return active
}

// Range returns the earliest start and latest end across the tasks. ok is
// false when the slice is empty.
func Range(tasks []Task) (min Day, max Day, ok bool) {
	for _, task := range tasks {
		if !ok {
			min, max, ok = task.Start, task.End, true
			continue
		}
		if task.Start.Before(min) {
			min = task.Start
		}
		if task.End.After(max) {
			max = task.End
		}
	}
	return min, max, ok
}

// ReportRow is one date of the tabular report: every task active that day,
// grouped by area with areas sorted alphabetically.
type ReportRow struct {
	Day   Day
	Areas []AreaGroup
}

// Report derives the date-by-date table for a task list. Rows cover exactly
// the dates touched by at least one task, ascending.
func Report(tasks []Task) []ReportRow {
	byDay := make(map[string][]Task)
	days := make(map[string]Day)
	for _, task := range tasks {
		for d := task.Start; !d.After(task.End); d = d.Next() {
			key := d.String()
			byDay[key] = append(byDay[key], task)
			days[key] = d
		}
	}

	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]ReportRow, 0, len(keys))
	for _, key := range keys {
		areas := GroupByArea(byDay[key])
		sort.Slice(areas, func(i, j int) bool { return areas[i].Area < areas[j].Area })
		rows = append(rows, ReportRow{Day: days[key], Areas: areas})
	}
	return rows
}
