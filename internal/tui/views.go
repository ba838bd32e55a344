package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crewcal/crewcal/internal/calendar"
	"github.com/crewcal/crewcal/internal/colors"
	"github.com/crewcal/crewcal/internal/dashboard"
	"github.com/crewcal/crewcal/internal/schedule"
)

const gridsPerRow = 3

var (
	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	dimStyle          = lipgloss.NewStyle().Faint(true)
	selectedStyle     = lipgloss.NewStyle().Bold(true)
	noticeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

// renderGrid draws one month as a 7x6 block. Out-of-month days are dimmed;
// a day carrying swatches shows the first swatch's marker, with a + when
// more tasks share the day. highlight, when set, reverses that cell.
func renderGrid(grid calendar.Grid, highlight schedule.Day) string {
	var b strings.Builder
	width := calendar.DaysPerWeek * 4
	b.WriteString(lipgloss.NewStyle().Bold(true).Width(width).Align(lipgloss.Center).Render(grid.Label))
	b.WriteString("\n")
	for _, name := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(fmt.Sprintf("%-4s", name))
	}
	for i, cell := range grid.Cells {
		if i%calendar.DaysPerWeek == 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderCell(cell, !highlight.IsZero() && cell.Day.Equal(highlight)))
	}
	return b.String()
}

func renderCell(cell calendar.Cell, highlighted bool) string {
	marker := " "
	extra := " "
	if len(cell.Swatches) > 0 {
		marker = cell.Swatches[0].Category.Swatch()
	}
	if len(cell.Swatches) > 1 {
		extra = "+"
	}
	number := fmt.Sprintf("%2d", cell.Day.DayOfMonth())
	switch {
	case highlighted:
		number = lipgloss.NewStyle().Reverse(true).Render(number)
	case !cell.InMonth:
		number = dimStyle.Render(number)
	}
	return number + marker + extra
}

// renderGridRow lays calendars out side by side, wrapping after gridsPerRow.
func renderGridRow(rendered []string) string {
	var rows []string
	for start := 0; start < len(rendered); start += gridsPerRow {
		end := start + gridsPerRow
		if end > len(rendered) {
			end = len(rendered)
		}
		padded := make([]string, 0, end-start)
		for _, grid := range rendered[start:end] {
			padded = append(padded, lipgloss.NewStyle().MarginRight(2).Render(grid))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, padded...))
	}
	return strings.Join(rows, "\n\n")
}

// renderPlannerBody draws the current project: its areas with task rows and
// month calendars, then the legend and the date report.
func (a *App) renderPlannerBody() string {
	project, ok := a.session.Current()
	if !ok {
		return "No project selected."
	}
	var sections []string
	title := sectionTitleStyle.Render(project.Name)
	stats := noticeStyle.Render(fmt.Sprintf("%d task(s) · %d project(s) stored", len(project.Deadlines), len(a.session.Projects)))
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, title, stats))

	areas := a.areaNames(project)
	groups := schedule.GroupByArea(project.Deadlines)
	grouped := make(map[string][]schedule.Task, len(groups))
	for _, group := range groups {
		grouped[group.Area] = group.Tasks
	}
	for i, area := range areas {
		sections = append(sections, a.renderArea(area, grouped[area], i == a.areaSelection && !a.exporting))
	}

	if legend := a.renderLegend(project.Deadlines); legend != "" {
		sections = append(sections, legend)
	}
	if report := renderReport(project.Deadlines); report != "" {
		sections = append(sections, report)
	}
	return strings.Join(sections, "\n\n")
}

func (a *App) renderArea(area string, tasks []schedule.Task, selected bool) string {
	marker := "  "
	if selected {
		marker = "▸ "
	}
	header := fmt.Sprintf("%sArea: %s (%d task(s))", marker, area, len(tasks))
	if selected {
		header = selectedStyle.Render(header)
	}
	lines := []string{header}
	if len(tasks) == 0 {
		lines = append(lines, noticeStyle.Render("    no tasks yet — press n to add one"))
		return strings.Join(lines, "\n")
	}
	for i, task := range tasks {
		cursor := "    "
		if selected && i == a.taskSelection {
			cursor = "  ▸ "
		}
		row := fmt.Sprintf("%s%s %s  %s – %s", cursor,
			a.classifier.Classify(task.Team).Swatch(),
			task.Team, task.Start.Display(), task.End.Display())
		if selected && i == a.taskSelection {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", renderAreaCalendars(tasks, a.classifier))
	return strings.Join(lines, "\n")
}

// renderAreaCalendars draws one grid per month from the area's earliest start
// through its latest end.
func renderAreaCalendars(tasks []schedule.Task, classifier *colors.Classifier) string {
	min, max, ok := schedule.Range(tasks)
	if !ok {
		return ""
	}
	swatches := calendar.TaskSwatches(classifier)
	var rendered []string
	for _, ym := range calendar.MonthsSpanning(min, max) {
		grid := calendar.MonthGrid(ym.Year, ym.Month, tasks, swatches)
		rendered = append(rendered, renderGrid(grid, schedule.Day{}))
	}
	return renderGridRow(rendered)
}

func (a *App) renderLegend(tasks []schedule.Task) string {
	entries := a.classifier.Legend(schedule.Teams(tasks))
	if len(entries) == 0 {
		return ""
	}
	lines := []string{sectionTitleStyle.Render("Legend")}
	for _, entry := range entries {
		label := string(entry.Category)
		if entry.Category == colors.CategoryOther {
			label = entry.Team
		}
		lines = append(lines, fmt.Sprintf("  %s %s", entry.Category.Swatch(), label))
	}
	return strings.Join(lines, "\n")
}

// renderReport draws the date-by-date table: one row per covered date, areas
// alphabetical within the row, tasks in stored order.
func renderReport(tasks []schedule.Task) string {
	rows := schedule.Report(tasks)
	if len(rows) == 0 {
		return ""
	}
	lines := []string{sectionTitleStyle.Render("Report")}
	for _, row := range rows {
		var parts []string
		for _, area := range row.Areas {
			var entries []string
			for _, task := range area.Tasks {
				entries = append(entries, fmt.Sprintf("%s (%s – %s)", task.Team, task.Start.Display(), task.End.Display()))
			}
			parts = append(parts, fmt.Sprintf("%s: %s", area.Area, strings.Join(entries, ", ")))
		}
		lines = append(lines, fmt.Sprintf("  %s  %s", row.Day.Display(), strings.Join(parts, " · ")))
	}
	return strings.Join(lines, "\n")
}

// renderDashboardBody draws the cross-project view: one current-month grid
// per discovered team, plus the selected day's detail.
func (a *App) renderDashboardBody() string {
	today := schedule.DayOf(a.now())
	calendars := dashboard.BuildCalendars(a.session.Projects, a.config.DashboardRules(), today.Year(), today.Month(), a.classifier)
	title := sectionTitleStyle.Render(fmt.Sprintf("Team Dashboard · %s %d", today.Month(), today.Year()))
	if len(calendars) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			noticeStyle.Render("No tracked team has tasks. The dashboard follows the teams configured in config.yaml."))
	}
	if a.dashTeam >= len(calendars) {
		a.dashTeam = len(calendars) - 1
	}
	var sections []string
	sections = append(sections, title)
	for i, cal := range calendars {
		name := cal.Team
		highlight := schedule.Day{}
		if i == a.dashTeam && !a.exporting {
			name = selectedStyle.Render("▸ " + name)
			highlight = a.dashDay
		} else {
			name = "  " + name
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, name, renderGrid(cal.Grid, highlight)))
	}
	sections = append(sections, a.renderDashboardDetail(calendars[a.dashTeam].Team))
	return strings.Join(sections, "\n\n")
}

func (a *App) renderDashboardDetail(team string) string {
	tasks := dashboard.CollectTasks(a.session.Projects, a.config.DashboardRules())
	active := dashboard.TasksOn(tasks, team, a.dashDay)
	header := sectionTitleStyle.Render(fmt.Sprintf("%s · %s", team, a.dashDay.Display()))
	if len(active) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, noticeStyle.Render("  no work scheduled"))
	}
	lines := []string{header}
	for _, task := range active {
		lines = append(lines, fmt.Sprintf("  %s %s — %s (%s – %s)",
			a.classifier.Classify(task.Team).Swatch(),
			task.ProjectName, task.Area, task.Start.Display(), task.End.Display()))
	}
	return strings.Join(lines, "\n")
}

// renderDayDetail is the planner's day popup: every task of the current
// project active on the selected day, grouped by area.
func (a *App) renderDayDetail() string {
	project, ok := a.session.Current()
	if !ok {
		return "No project selected."
	}
	header := sectionTitleStyle.Render(fmt.Sprintf("Tasks on %s", a.detailDay.Display()))
	active := schedule.TasksOn(project.Deadlines, a.detailDay)
	if len(active) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, noticeStyle.Render("  no work scheduled"),
			dayDetailHint())
	}
	lines := []string{header}
	for _, group := range schedule.GroupByArea(active) {
		lines = append(lines, selectedStyle.Render("  "+group.Area))
		for _, task := range group.Tasks {
			lines = append(lines, fmt.Sprintf("    %s %s  %s – %s",
				a.classifier.Classify(task.Team).Swatch(),
				task.Team, task.Start.Display(), task.End.Display()))
		}
	}
	lines = append(lines, dayDetailHint())
	return strings.Join(lines, "\n")
}

func dayDetailHint() string {
	return noticeStyle.Render("\n←/→ → previous/next day    Esc → close")
}
