package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/offwork/internal/countdown"
)

// editorModel is the target-time input. Submitting the form is the save.
type editorModel struct {
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form value as pointer (survives value copies)
	value *string
}

// targetSubmittedMsg carries the validated input back to the App.
type targetSubmittedMsg struct {
	value string
}

func newEditorModel() editorModel {
	v := ""
	return editorModel{value: &v}
}

func (e *editorModel) setSize(w, h int) {
	e.width = w
	e.height = h
}

func validateTarget(s string) error {
	_, err := countdown.ParseTarget(s)
	return err
}

func (e editorModel) open(current countdown.TargetTime) (editorModel, tea.Cmd) {
	*e.value = current.String()

	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Off-work time").
				Description("24-hour HH:MM").
				Placeholder("18:00").
				CharLimit(5).
				Validate(validateTarget).
				Value(e.value),
		),
	).WithShowHelp(true).WithShowErrors(true)

	e.formActive = true
	return e, e.form.Init()
}

func (e editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	if !e.formActive || e.form == nil {
		return e, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			e.formActive = false
			e.form = nil
			return e, nil
		}
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	switch e.form.State {
	case huh.StateCompleted:
		e.formActive = false
		value := *e.value
		return e, func() tea.Msg { return targetSubmittedMsg{value: value} }
	case huh.StateAborted:
		e.formActive = false
		e.form = nil
		return e, nil
	}

	return e, cmd
}

func (e editorModel) view() string {
	w := e.width - 4
	if w < 20 {
		w = 20
	}
	title := titleStyle.Render("Set off-work time")
	if e.form == nil {
		return panelStyle.Width(w).Render(title)
	}
	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", e.form.View(), "", mutedStyle.Render("enter: save  esc: cancel")),
	)
}
