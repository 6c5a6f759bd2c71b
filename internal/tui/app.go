package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/offwork/internal/countdown"
	"github.com/sadopc/offwork/internal/export"
)

// App is the root Bubble Tea model.
type App struct {
	engine    *countdown.Engine
	now       func() time.Time
	exportDir string

	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	countdown countdownModel
	history   historyModel
	editor    editorModel

	help      help.Model
	status    string
	statusErr bool
}

type Option func(*App)

// WithClock replaces time.Now for the first tick and for target edits.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithExportDir sets where exports are written. Defaults to the home directory.
func WithExportDir(dir string) Option {
	return func(a *App) { a.exportDir = dir }
}

func NewApp(e *countdown.Engine, opts ...Option) App {
	h := help.New()
	h.ShowAll = false

	a := App{
		engine:     e,
		now:        time.Now,
		activeView: viewCountdown,
		countdown:  newCountdownModel(e.State()),
		history:    newHistoryModel(),
		editor:     newEditorModel(),
		help:       h,
	}
	for _, opt := range opts {
		opt(&a)
	}
	if a.exportDir == "" {
		a.exportDir, _ = os.UserHomeDir()
	}
	return a
}

// Init fires one tick right away; every tick then re-arms the next.
func (a App) Init() tea.Cmd {
	now := a.now
	return func() tea.Msg { return tickMsg(now()) }
}

// tickCmd fires on whole-second boundaries of the system clock so no second
// of the countdown is skipped by drift. Ticks land just after each boundary,
// so the zero second is observed at target-1s (e.g. 17:59:59.003 for 18:00)
// and the record is stamped with the minute before the target.
func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// celebrationDelay is how long after now the current celebration ends.
func celebrationDelay(st countdown.State, now time.Time) time.Duration {
	return st.Celebration.Deadline().Sub(now)
}

func celebrationEndCmd(gen int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return celebrationDoneMsg{gen: gen}
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.countdown.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.editor.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// The editor form captures all input while open.
		if a.editor.formActive {
			var cmd tea.Cmd
			a.editor, cmd = a.editor.update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Edit):
			return a.openEditor()
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewCountdown
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewHistory
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, nil
		case key.Matches(msg, keys.Enter) && a.activeView == viewCountdown:
			return a.openEditor()
		}

	case tickMsg:
		cmds = append(cmds, tickCmd())
		now := time.Time(msg)
		out, err := a.engine.Tick(now)
		a.sync(now)
		if err != nil {
			a.setStatus(fmt.Sprintf("Could not save record: %v", err), true)
		}
		if out.Crossed {
			st := a.engine.State()
			cmds = append(cmds, celebrationEndCmd(st.Celebration.Generation(), celebrationDelay(st, now)))
			if err == nil {
				a.setStatus("Time to clock out!", false)
			}
		}
		return a, tea.Batch(cmds...)

	case celebrationDoneMsg:
		a.engine.EndCelebration(msg.gen)
		a.sync(a.now())
		return a, nil

	case targetSubmittedMsg:
		now := a.now()
		err := a.engine.SetTarget(msg.value, now)
		a.sync(now)
		switch {
		case countdown.IsStorageError(err):
			a.setStatus(fmt.Sprintf("Off-work time set to %s (not saved: %v)", a.engine.Target(), err), true)
		case err != nil:
			a.setStatus(err.Error(), true)
		default:
			a.setStatus("Off-work time set to "+a.engine.Target().String(), false)
		}
		return a, nil

	case statusMsg:
		a.setStatus(msg.text, msg.isError)
		return a, nil

	case exportDoneMsg:
		a.setStatus("Exported to "+msg.path, false)
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) openEditor() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.open(a.engine.Target())
	return a, cmd
}

// sync copies the engine state into the view models.
func (a *App) sync(now time.Time) {
	st := a.engine.State()
	a.countdown.state = st
	a.history.setData(st.Records, st.Target, now)
}

func (a *App) setStatus(text string, isError bool) {
	a.status = text
	a.statusErr = isError
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if a.editor.formActive {
		a.editor, cmd = a.editor.update(msg)
		return a, cmd
	}
	if a.activeView == viewHistory {
		a.history, cmd = a.history.update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch {
	case a.editor.formActive:
		content = a.editor.view()
	case a.activeView == viewHistory:
		content = a.history.view()
	default:
		content = a.countdown.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("offwork")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	st := a.countdown.state
	remaining := successStyle.Render(" ● " + formatDuration(st.Remaining.Duration()))
	if st.Celebration.Active() {
		remaining = accentStyle.Render(" ★ off work")
	}

	left := footerStyle.Render(helpView)
	right := remaining + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range export.Formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+string(f)))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(export.Formats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(export.Formats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format export.Format) tea.Cmd {
	records := a.engine.Records()
	target := a.engine.Target()
	path := export.Filename(a.exportDir, format, a.now())
	return func() tea.Msg {
		if err := export.Write(format, records, target, path); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
