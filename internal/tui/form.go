package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crewcal/crewcal/internal/schedule"
)

// Form field order: area, team, start date, end date.
const (
	fieldArea = iota
	fieldTeam
	fieldStart
	fieldEnd
	fieldCount
)

// taskForm collects one task. The team field is tagged: roster mode cycles
// through the configured crews, custom mode takes free text. The persisted
// value is just the team name either way.
type taskForm struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	roster    []string
	rosterIdx int
	useRoster bool

	// editIndex is the deadline slot being replaced, or -1 for a new task.
	editIndex int
}

func newTaskForm(area string, roster []string) *taskForm {
	form := &taskForm{
		roster:    roster,
		useRoster: len(roster) > 0,
		editIndex: -1,
	}
	labels := [fieldCount]string{"Area", "Team", "Start (dd/mm/yyyy)", "End (dd/mm/yyyy)"}
	for i := range form.inputs {
		input := textinput.New()
		input.Placeholder = labels[i]
		input.CharLimit = 64
		input.Width = 28
		form.inputs[i] = input
	}
	form.inputs[fieldArea].SetValue(area)
	form.setFocus(fieldArea)
	return form
}

// newEditForm prefills the form from an existing task.
func newEditForm(task schedule.Task, index int, roster []string) *taskForm {
	form := newTaskForm(task.Area, roster)
	form.editIndex = index
	field := schedule.TeamFieldFor(task.Team, roster)
	if field.Kind == schedule.TeamKnown {
		for i, known := range roster {
			if known == task.Team {
				form.rosterIdx = i
				break
			}
		}
	} else {
		form.useRoster = false
		form.inputs[fieldTeam].SetValue(task.Team)
	}
	form.inputs[fieldStart].SetValue(task.Start.Display())
	form.inputs[fieldEnd].SetValue(task.End.Display())
	return form
}

func (f *taskForm) setFocus(field int) {
	f.focus = field
	for i := range f.inputs {
		if i == field && !(i == fieldTeam && f.useRoster) {
			f.inputs[i].Focus()
			continue
		}
		f.inputs[i].Blur()
	}
}

func (f *taskForm) nextField()     { f.setFocus((f.focus + 1) % fieldCount) }
func (f *taskForm) previousField() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

// toggleTeamMode flips between the roster selector and free-text entry.
func (f *taskForm) toggleTeamMode() {
	if len(f.roster) == 0 {
		return
	}
	f.useRoster = !f.useRoster
	f.setFocus(f.focus)
}

func (f *taskForm) cycleRoster(delta int) {
	if !f.useRoster || len(f.roster) == 0 {
		return
	}
	f.rosterIdx = (f.rosterIdx + delta + len(f.roster)) % len(f.roster)
}

// Update feeds a message to the focused text input.
func (f *taskForm) Update(msg tea.Msg) tea.Cmd {
	if f.focus == fieldTeam && f.useRoster {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *taskForm) teamName() string {
	if f.useRoster && len(f.roster) > 0 {
		return f.roster[f.rosterIdx]
	}
	return strings.TrimSpace(f.inputs[fieldTeam].Value())
}

// Task assembles and validates the entered task.
func (f *taskForm) Task() (schedule.Task, error) {
	start, err := parseFormDay(f.inputs[fieldStart].Value())
	if err != nil {
		return schedule.Task{}, err
	}
	end, err := parseFormDay(f.inputs[fieldEnd].Value())
	if err != nil {
		return schedule.Task{}, err
	}
	task := schedule.Task{
		Area:  strings.TrimSpace(f.inputs[fieldArea].Value()),
		Team:  f.teamName(),
		Start: start,
		End:   end,
	}
	if err := task.Validate(); err != nil {
		return schedule.Task{}, err
	}
	return task, nil
}

// parseFormDay accepts the display format (dd/mm/yyyy) and the stored format
// (yyyy-mm-dd).
func parseFormDay(value string) (schedule.Day, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return schedule.Day{}, fmt.Errorf("a date is required")
	}
	if parsed, err := time.Parse("02/01/2006", trimmed); err == nil {
		return schedule.DayOf(parsed), nil
	}
	return schedule.ParseDay(trimmed)
}

func (f *taskForm) View() string {
	title := "New Task"
	if f.editIndex >= 0 {
		title = "Edit Task"
	}
	head := lipgloss.NewStyle().Bold(true).Render(title)

	var rows []string
	rows = append(rows, renderFormRow("Area", f.inputs[fieldArea].View(), f.focus == fieldArea))
	rows = append(rows, renderFormRow("Team", f.renderTeamField(), f.focus == fieldTeam))
	rows = append(rows, renderFormRow("Start", f.inputs[fieldStart].View(), f.focus == fieldStart))
	rows = append(rows, renderFormRow("End", f.inputs[fieldEnd].View(), f.focus == fieldEnd))

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		MarginTop(1).
		Render("Tab → next field    Ctrl+T → roster/custom team    Enter → save    Esc → cancel")
	return lipgloss.JoinVertical(lipgloss.Left, head, strings.Join(rows, "\n"), hint)
}

func (f *taskForm) renderTeamField() string {
	if !f.useRoster || len(f.roster) == 0 {
		return f.inputs[fieldTeam].View()
	}
	label := fmt.Sprintf("◂ %s ▸ (%d/%d)", f.roster[f.rosterIdx], f.rosterIdx+1, len(f.roster))
	if f.focus == fieldTeam {
		return lipgloss.NewStyle().Bold(true).Render(label)
	}
	return label
}

func renderFormRow(label, value string, focused bool) string {
	marker := "  "
	if focused {
		marker = "▸ "
	}
	return fmt.Sprintf("%s%-6s %s", marker, label, value)
}
