// internal/tui/app.go
//
// This is the main TUI for crewcal. It uses bubbletea, which follows The Elm
// Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crewcal/crewcal/internal/colors"
	"github.com/crewcal/crewcal/internal/config"
	"github.com/crewcal/crewcal/internal/export"
	"github.com/crewcal/crewcal/internal/logbook"
	"github.com/crewcal/crewcal/internal/schedule"
	"github.com/crewcal/crewcal/internal/store"
	"github.com/crewcal/crewcal/plugins"
)

// appState represents which "screen" we're on
type appState int

const (
	statePlanner       appState = iota // Current project: areas, calendars, report
	stateDashboard                     // Cross-project team calendars
	stateProjectPicker                 // Switch / create / delete projects
	stateTaskForm                      // New or edited task entry
	stateAreaForm                      // New area name entry
	stateRenameForm                    // Project rename entry
	stateDayDetail                     // One day's tasks for the current project
	stateConfirmDelete                 // Project deletion confirmation
)

const defaultAreaName = "Area 1"

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock overrides the wall clock used for the dashboard month, the day
// detail starting point, and export file names.
func WithClock(clock func() time.Time) AppOption {
	return func(a *App) {
		if clock != nil {
			a.now = clock
		}
	}
}

// WithStoreOptions forwards options to the underlying project store.
func WithStoreOptions(opts ...store.Option) AppOption {
	return func(a *App) {
		a.storeOpts = append(a.storeOpts, opts...)
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state      appState
	config     *config.Config
	logbook    *logbook.Logbook
	store      *store.Store
	session    *store.Session
	autosave   *store.Autosave
	classifier *colors.Classifier
	exporter   *export.Exporter
	now        func() time.Time
	storeOpts  []store.Option

	// mu guards session mutations against the autosave timer goroutine.
	mu sync.Mutex

	// UI components
	projectMenu list.Model
	form        *taskForm
	areaInput   textinput.Model
	renameInput textinput.Model
	statusMsg   string

	// Planner selection
	areaSelection int
	taskSelection int
	draftAreas    []string

	// Dashboard / day detail cursors
	dashTeam  int
	dashDay   schedule.Day
	detailDay schedule.Day

	// deleteTarget is the project id awaiting deletion confirmation.
	deleteTarget string

	// exporting suppresses selection chrome while a snapshot renders.
	exporting bool

	width  int
	height int
}

// projectItem implements list.Item for the project picker.
type projectItem struct {
	id    string
	name  string
	tasks int
}

func (i projectItem) Title() string { return i.name }
func (i projectItem) Description() string {
	return fmt.Sprintf("%d task(s) · %s", i.tasks, i.id)
}
func (i projectItem) FilterValue() string { return i.name }

// NewApp creates a new App instance rooted at baseDir.
func NewApp(baseDir string, opts ...AppOption) (*App, error) {
	app := &App{
		state: statePlanner,
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	cfg, err := config.NewConfig(baseDir)
	if err != nil {
		return nil, err
	}
	app.config = cfg

	if lb, err := logbook.New(cfg.LogsDir()); err == nil {
		app.logbook = lb
		lb.Info("Session opened")
	}

	app.store = store.New(cfg.ProjectsPath(), cfg.CurrentIDPath(), app.logbook, app.storeOpts...)
	session, loadErr := app.store.Load()
	app.session = session
	if errors.Is(loadErr, store.ErrCorruptStore) {
		app.statusMsg = "Stored projects could not be read — starting over with a blank project"
	}

	app.classifier = colors.NewClassifier(cfg.Teams())
	if palettes, err := plugins.ApplyPalettes(app.classifier, cfg.PalettesDir()); err != nil {
		app.logWarn("palette plugins: %v", err)
		app.statusMsg = fmt.Sprintf("Palette plugins skipped: %v", err)
	} else if len(palettes) > 0 {
		app.logInfo("loaded %d palette plugin(s)", len(palettes))
	}

	app.exporter = export.New(cfg.ExportsDir(), export.WithClock(app.now))
	app.autosave = store.NewAutosave(cfg.AutosaveDelay(), app.saveNow)

	menu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Projects"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	app.projectMenu = menu

	app.areaInput = newLineInput("Area name")
	app.renameInput = newLineInput("Project name")

	app.ensureArea()
	return app, nil
}

func newLineInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 64
	input.Width = 32
	return input
}

func (a *App) logInfo(format string, args ...any)  { a.logbook.Info(format, args...) }
func (a *App) logWarn(format string, args ...any)  { a.logbook.Warn(format, args...) }
func (a *App) logError(format string, args ...any) { a.logbook.Error(format, args...) }

// saveNow is the autosave sink: persist the whole session, log failures, keep
// running either way.
func (a *App) saveNow() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.Save(a.session); err != nil {
		a.logError("autosave: %v", err)
	}
}

// mutateCurrent applies an edit to the current project and schedules a save.
func (a *App) mutateCurrent(mutate func(*schedule.Project)) {
	a.mu.Lock()
	project, ok := a.session.Current()
	if !ok {
		a.mu.Unlock()
		return
	}
	mutate(&project)
	a.session.Projects[a.session.CurrentID] = project
	a.mu.Unlock()
	a.autosave.Touch()
}

// areaNames lists the current project's areas: every area holding tasks in
// first-occurrence order, then draft areas that have no tasks yet.
func (a *App) areaNames(project schedule.Project) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, group := range schedule.GroupByArea(project.Deadlines) {
		names = append(names, group.Area)
		seen[group.Area] = struct{}{}
	}
	for _, draft := range a.draftAreas {
		if _, ok := seen[draft]; ok {
			continue
		}
		names = append(names, draft)
	}
	return names
}

// ensureArea keeps the at-least-one-area invariant: a project with no tasks
// and no drafts gets a synthesized empty area.
func (a *App) ensureArea() {
	project, ok := a.session.Current()
	if !ok {
		return
	}
	if len(a.areaNames(project)) == 0 {
		a.draftAreas = []string{defaultAreaName}
	}
	a.clampSelections(project)
}

func (a *App) clampSelections(project schedule.Project) {
	areas := a.areaNames(project)
	if a.areaSelection >= len(areas) {
		a.areaSelection = len(areas) - 1
	}
	if a.areaSelection < 0 {
		a.areaSelection = 0
	}
	tasks := a.selectedAreaTasks(project)
	if a.taskSelection >= len(tasks) {
		a.taskSelection = len(tasks) - 1
	}
	if a.taskSelection < 0 {
		a.taskSelection = 0
	}
}

func (a *App) selectedAreaName(project schedule.Project) string {
	areas := a.areaNames(project)
	if len(areas) == 0 {
		return ""
	}
	if a.areaSelection >= len(areas) {
		return areas[len(areas)-1]
	}
	return areas[a.areaSelection]
}

func (a *App) selectedAreaTasks(project schedule.Project) []schedule.Task {
	area := a.selectedAreaName(project)
	var tasks []schedule.Task
	for _, task := range project.Deadlines {
		if task.Area == area {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// deadlineIndex maps the n-th task of an area back to its slot in the stored
// deadline list.
func deadlineIndex(project schedule.Project, area string, n int) int {
	count := 0
	for i, task := range project.Deadlines {
		if task.Area != area {
			continue
		}
		if count == n {
			return i
		}
		count++
	}
	return -1
}

// switchProject resets per-project cursors after the current id changes.
func (a *App) switchProject() {
	a.areaSelection = 0
	a.taskSelection = 0
	a.draftAreas = nil
	a.ensureArea()
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.projectMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-10))
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a.quit()
		}
		switch a.state {
		case statePlanner:
			return a.updatePlanner(msg)
		case stateDashboard:
			return a.updateDashboard(msg)
		case stateProjectPicker:
			return a.updatePicker(msg)
		case stateTaskForm:
			return a.updateTaskForm(msg)
		case stateAreaForm:
			return a.updateLineInput(msg, &a.areaInput, a.commitArea)
		case stateRenameForm:
			return a.updateLineInput(msg, &a.renameInput, a.commitRename)
		case stateDayDetail:
			return a.updateDayDetail(msg)
		case stateConfirmDelete:
			return a.updateConfirmDelete(msg)
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateProjectPicker:
		a.projectMenu, cmd = a.projectMenu.Update(msg)
	case stateTaskForm:
		if a.form != nil {
			cmd = a.form.Update(msg)
		}
	case stateAreaForm:
		a.areaInput, cmd = a.areaInput.Update(msg)
	case stateRenameForm:
		a.renameInput, cmd = a.renameInput.Update(msg)
	}
	return a, cmd
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.autosave.Flush()
	a.autosave.Stop()
	a.logInfo("Session closed")
	return a, tea.Quit
}

func (a *App) updatePlanner(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	project, ok := a.session.Current()
	if !ok {
		return a, nil
	}
	switch msg.String() {
	case "q":
		return a.quit()
	case "up", "k":
		if a.taskSelection > 0 {
			a.taskSelection--
		}
	case "down", "j":
		if a.taskSelection < len(a.selectedAreaTasks(project))-1 {
			a.taskSelection++
		}
	case "left", "h":
		if a.areaSelection > 0 {
			a.areaSelection--
			a.taskSelection = 0
		}
	case "right", "l":
		if a.areaSelection < len(a.areaNames(project))-1 {
			a.areaSelection++
			a.taskSelection = 0
		}
	case "n":
		a.form = newTaskForm(a.selectedAreaName(project), a.config.Teams())
		a.state = stateTaskForm
		a.statusMsg = ""
	case "enter":
		tasks := a.selectedAreaTasks(project)
		if len(tasks) == 0 {
			break
		}
		idx := deadlineIndex(project, a.selectedAreaName(project), a.taskSelection)
		if idx < 0 {
			break
		}
		a.form = newEditForm(project.Deadlines[idx], idx, a.config.Teams())
		a.state = stateTaskForm
		a.statusMsg = ""
	case "x":
		a.deleteSelectedTask(project)
	case "A":
		a.areaInput.SetValue("")
		a.areaInput.Focus()
		a.state = stateAreaForm
	case "X":
		a.removeSelectedArea(project)
	case "r":
		a.renameInput.SetValue(project.Name)
		a.renameInput.Focus()
		a.state = stateRenameForm
	case "p":
		a.refreshProjectMenu()
		a.state = stateProjectPicker
	case "d", "tab":
		a.enterDashboard()
	case "o":
		a.detailDay = schedule.DayOf(a.now())
		a.state = stateDayDetail
	case "e":
		a.exportSnapshot(project.Name, a.renderPlannerBody)
	case "D":
		a.beginDeleteConfirmation(a.session.CurrentID)
	}
	return a, nil
}

func (a *App) deleteSelectedTask(project schedule.Project) {
	area := a.selectedAreaName(project)
	idx := deadlineIndex(project, area, a.taskSelection)
	if idx < 0 {
		a.statusMsg = "No task selected"
		return
	}
	a.mutateCurrent(func(p *schedule.Project) {
		p.Deadlines = append(p.Deadlines[:idx], p.Deadlines[idx+1:]...)
	})
	// An area emptied by the removal stays visible as a draft.
	refreshed, _ := a.session.Current()
	if deadlineIndex(refreshed, area, 0) < 0 {
		a.draftAreas = append(a.draftAreas, area)
	}
	a.clampSelections(refreshed)
	a.statusMsg = "Task removed"
}

func (a *App) removeSelectedArea(project schedule.Project) {
	areas := a.areaNames(project)
	if len(areas) <= 1 {
		a.statusMsg = "At least one area is required"
		return
	}
	area := a.selectedAreaName(project)
	a.mutateCurrent(func(p *schedule.Project) {
		kept := p.Deadlines[:0]
		for _, task := range p.Deadlines {
			if task.Area != area {
				kept = append(kept, task)
			}
		}
		p.Deadlines = kept
	})
	drafts := a.draftAreas[:0]
	for _, draft := range a.draftAreas {
		if draft != area {
			drafts = append(drafts, draft)
		}
	}
	a.draftAreas = drafts
	refreshed, _ := a.session.Current()
	a.clampSelections(refreshed)
	a.statusMsg = fmt.Sprintf("Area %s removed", area)
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a.quit()
	case "esc", "tab", "d":
		a.state = statePlanner
	case "up", "k":
		if a.dashTeam > 0 {
			a.dashTeam--
		}
	case "down", "j":
		a.dashTeam++ // clamped against discovered teams at render time
	case "left", "h":
		a.dashDay = a.dashDay.AddDays(-1)
	case "right", "l":
		a.dashDay = a.dashDay.Next()
	case "e":
		a.exportSnapshot("team_dashboard", a.renderDashboardBody)
	}
	return a, nil
}

func (a *App) enterDashboard() {
	a.dashDay = schedule.DayOf(a.now())
	a.state = stateDashboard
	a.statusMsg = ""
}

func (a *App) updateDayDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "o", "q":
		a.state = statePlanner
	case "left", "h":
		a.detailDay = a.detailDay.AddDays(-1)
	case "right", "l":
		a.detailDay = a.detailDay.Next()
	}
	return a, nil
}

func (a *App) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.state = statePlanner
		return a, nil
	case "q":
		return a.quit()
	case "n":
		a.mu.Lock()
		id := a.store.Create(a.session, "")
		a.mu.Unlock()
		a.switchProject()
		a.refreshProjectMenu()
		a.statusMsg = fmt.Sprintf("Created %s", a.session.Projects[id].Name)
		return a, nil
	case "x":
		if item, ok := a.projectMenu.SelectedItem().(projectItem); ok {
			a.beginDeleteConfirmation(item.id)
		}
		return a, nil
	case "enter":
		item, ok := a.projectMenu.SelectedItem().(projectItem)
		if !ok {
			return a, nil
		}
		a.mu.Lock()
		err := a.store.Select(a.session, item.id)
		a.mu.Unlock()
		if err != nil {
			a.statusMsg = fmt.Sprintf("Select failed: %v", err)
			a.logError("select project: %v", err)
			return a, nil
		}
		a.switchProject()
		a.state = statePlanner
		a.statusMsg = fmt.Sprintf("Switched to %s", item.name)
		return a, nil
	}
	var cmd tea.Cmd
	a.projectMenu, cmd = a.projectMenu.Update(msg)
	return a, cmd
}

func (a *App) refreshProjectMenu() {
	ids := a.session.IDs()
	items := make([]list.Item, 0, len(ids))
	selected := 0
	for i, id := range ids {
		project := a.session.Projects[id]
		items = append(items, projectItem{id: id, name: project.Name, tasks: len(project.Deadlines)})
		if id == a.session.CurrentID {
			selected = i
		}
	}
	a.projectMenu.SetItems(items)
	a.projectMenu.Select(selected)
	if a.width > 0 && a.height > 0 {
		a.projectMenu.SetSize(max(0, a.width-6), max(0, a.height-10))
	}
}

func (a *App) beginDeleteConfirmation(id string) {
	if _, ok := a.session.Projects[id]; !ok {
		return
	}
	a.deleteTarget = id
	a.state = stateConfirmDelete
}

func (a *App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		a.mu.Lock()
		err := a.store.Delete(a.session, a.deleteTarget)
		a.mu.Unlock()
		if err != nil {
			a.statusMsg = fmt.Sprintf("Delete failed: %v", err)
			a.logError("delete project: %v", err)
		} else {
			a.statusMsg = "Project deleted"
		}
		a.deleteTarget = ""
		a.switchProject()
		a.refreshProjectMenu()
		a.state = statePlanner
	case "n", "N", "esc":
		a.deleteTarget = ""
		a.state = statePlanner
	}
	return a, nil
}

func (a *App) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.form == nil {
		a.state = statePlanner
		return a, nil
	}
	switch msg.String() {
	case "esc":
		a.form = nil
		a.state = statePlanner
		a.statusMsg = "Task entry cancelled"
		return a, nil
	case "tab", "down":
		a.form.nextField()
		return a, nil
	case "shift+tab", "up":
		a.form.previousField()
		return a, nil
	case "ctrl+t":
		a.form.toggleTeamMode()
		return a, nil
	case "left":
		if a.form.focus == fieldTeam && a.form.useRoster {
			a.form.cycleRoster(-1)
			return a, nil
		}
	case "right":
		if a.form.focus == fieldTeam && a.form.useRoster {
			a.form.cycleRoster(1)
			return a, nil
		}
	case "enter":
		return a.commitTaskForm()
	}
	return a, a.form.Update(msg)
}

func (a *App) commitTaskForm() (tea.Model, tea.Cmd) {
	task, err := a.form.Task()
	if err != nil {
		a.statusMsg = fmt.Sprintf("Invalid task: %v", err)
		return a, nil
	}
	editIndex := a.form.editIndex
	a.mutateCurrent(func(p *schedule.Project) {
		if editIndex >= 0 && editIndex < len(p.Deadlines) {
			p.Deadlines[editIndex] = task
			return
		}
		p.Deadlines = append(p.Deadlines, task)
	})
	// The task's area is no longer a draft once it holds work.
	drafts := a.draftAreas[:0]
	for _, draft := range a.draftAreas {
		if draft != task.Area {
			drafts = append(drafts, draft)
		}
	}
	a.draftAreas = drafts
	a.form = nil
	a.state = statePlanner
	a.statusMsg = fmt.Sprintf("Saved task for %s in %s", task.Team, task.Area)
	refreshed, _ := a.session.Current()
	a.clampSelections(refreshed)
	return a, nil
}

func (a *App) updateLineInput(msg tea.KeyMsg, input *textinput.Model, commit func(string)) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		input.Blur()
		a.state = statePlanner
		return a, nil
	case "enter":
		commit(input.Value())
		input.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return a, cmd
}

func (a *App) commitArea(value string) {
	name := strings.TrimSpace(value)
	a.state = statePlanner
	if name == "" {
		a.statusMsg = "Area name is required"
		return
	}
	project, _ := a.session.Current()
	for i, existing := range a.areaNames(project) {
		if existing == name {
			a.areaSelection = i
			a.statusMsg = fmt.Sprintf("Area %s already exists", name)
			return
		}
	}
	a.draftAreas = append(a.draftAreas, name)
	a.areaSelection = len(a.areaNames(project)) - 1
	a.taskSelection = 0
	a.statusMsg = fmt.Sprintf("Area %s added", name)
}

func (a *App) commitRename(value string) {
	name := strings.TrimSpace(value)
	a.state = statePlanner
	if name == "" {
		a.statusMsg = "Project name is required"
		return
	}
	a.mutateCurrent(func(p *schedule.Project) {
		p.Name = name
	})
	a.statusMsg = fmt.Sprintf("Project renamed to %s", name)
}

// exportSnapshot captures a body render to the exports directory. Selection
// chrome is hidden for the capture and restored afterwards no matter what.
func (a *App) exportSnapshot(prefix string, render func() string) {
	path, err := a.exporter.Capture(prefix,
		func() { a.exporting = true },
		func() { a.exporting = false },
		func() (string, error) { return render(), nil },
	)
	if err != nil {
		a.statusMsg = fmt.Sprintf("Export failed: %v", err)
		a.logError("export %s: %v", prefix, err)
		return
	}
	a.statusMsg = fmt.Sprintf("Exported %s", path)
	a.logInfo("exported snapshot %s", path)
}

// View renders the current state to a string.
func (a *App) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⬡ CREWCAL")

	var body string
	switch a.state {
	case statePlanner:
		body = a.renderPlannerBody()
	case stateDashboard:
		body = a.renderDashboardBody()
	case stateProjectPicker:
		body = a.renderPicker()
	case stateTaskForm:
		if a.form != nil {
			body = a.form.View()
		}
	case stateAreaForm:
		body = lipgloss.JoinVertical(lipgloss.Left,
			sectionTitleStyle.Render("New Area"), a.areaInput.View(),
			noticeStyle.Render("Enter → add    Esc → cancel"))
	case stateRenameForm:
		body = lipgloss.JoinVertical(lipgloss.Left,
			sectionTitleStyle.Render("Rename Project"), a.renameInput.View(),
			noticeStyle.Render("Enter → rename    Esc → cancel"))
	case stateDayDetail:
		body = a.renderDayDetail()
	case stateConfirmDelete:
		body = a.renderDeleteConfirmation()
	}

	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	sections = append(sections, a.renderFooter())
	return strings.Join(sections, "\n")
}

func (a *App) renderPicker() string {
	view := a.projectMenu.View()
	hint := noticeStyle.Render("Enter → open    n → new project    x → delete    Esc → back")
	return lipgloss.JoinVertical(lipgloss.Left, view, hint)
}

func (a *App) renderDeleteConfirmation() string {
	project, ok := a.session.Projects[a.deleteTarget]
	if !ok {
		return "Nothing to delete."
	}
	lines := []string{
		sectionTitleStyle.Render("Delete Project"),
		fmt.Sprintf("Delete %q and its %d task(s)?", project.Name, len(project.Deadlines)),
	}
	if len(a.session.Projects) == 1 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Render("This is the last project. A blank project will take its place."))
	}
	lines = append(lines, noticeStyle.Render("y → delete    n/Esc → keep"))
	return strings.Join(lines, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("LOG · " + logbook.FileName)
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(head + "\n" + body)
}

func (a *App) renderFooter() string {
	hint := ""
	switch a.state {
	case statePlanner:
		hint = "n new · Enter edit · x remove · A/X area · r rename · p projects · d dashboard · o day · e export · q quit"
	case stateDashboard:
		hint = "↑/↓ team · ←/→ day · e export · Esc back · q quit"
	}
	parts := []string{}
	if a.statusMsg != "" {
		parts = append(parts, a.statusMsg)
	}
	if hint != "" {
		parts = append(parts, hint)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(strings.Join(parts, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
