package app

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"fitrack/internal/types"
)

const checkGlyph = "✓"

func (m *Model) updateWorkout(msg tea.KeyPressMsg, route types.WorkoutRoute) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.nav.Back()
		return nil
	case key.Matches(msg, m.keys.Start):
		return m.startWorkout(route)
	}
	return nil
}

func (m *Model) workoutView(route types.WorkoutRoute) string {
	name := route.ID
	description := ""
	if plan, err := m.catalog.Plan(route.ID); err == nil {
		name = plan.Name
		description = plan.Description
	}
	lines := []string{titleStyle.Render(name)}
	if route.Image != "" {
		lines = append(lines, imageRefStyle.Render(route.Image))
	}
	if description != "" {
		lines = append(lines, renderDescription(description, m.width))
	}
	snapshot := m.progress.Snapshot()
	nameWidth := 0
	for _, exercise := range route.Exercises {
		nameWidth = max(nameWidth, runewidth.StringWidth(exercise.Name))
	}
	for _, exercise := range route.Exercises {
		lines = append(lines, renderExerciseRow(exercise, nameWidth, snapshot.IsCompleted(exercise.Name)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderExerciseRow(exercise types.Exercise, nameWidth int, done bool) string {
	mark := "  "
	if done {
		mark = checkStyle.Render(checkGlyph) + " "
	}
	name := exerciseStyle.Render(runewidth.FillRight(exercise.Name, nameWidth))
	return mark + name + "  " + setsStyle.Render(fmt.Sprintf("x%d", exercise.Sets))
}
