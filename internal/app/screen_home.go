package app

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"fitrack/internal/progress"
	"fitrack/internal/types"
)

const (
	homeTitle     = "FITRACK"
	boltGlyph     = "⚡"
	cardMaxWidth  = 44
	cardMinWidth  = 16
	cardChromeCol = 4
)

func (m *Model) updateHome(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveHomeCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveHomeCursor(1)
	case key.Matches(msg, m.keys.OpenPlan):
		plan, ok := m.catalog.At(m.homeCursor)
		if !ok {
			return nil
		}
		m.nav.Navigate(types.WorkoutRoute{
			Image:     plan.Image,
			Exercises: plan.ExerciseList(),
			ID:        plan.ID,
		})
		m.clearStatus()
	case key.Matches(msg, m.keys.CopySummary):
		return copyCmd(progress.Summary(m.progress.Snapshot()))
	}
	return nil
}

func (m *Model) moveHomeCursor(delta int) {
	count := m.catalog.Len()
	if count == 0 {
		m.homeCursor = 0
		return
	}
	m.homeCursor = min(count-1, max(0, m.homeCursor+delta))
}

func (m *Model) homeView() string {
	snapshot := m.progress.Snapshot()
	lines := []string{
		titleStyle.Render(homeTitle),
		renderStats(snapshot),
		"",
	}
	cardWidth := min(cardMaxWidth, max(cardMinWidth, m.width-cardChromeCol))
	for i, plan := range m.catalog.Plans() {
		lines = append(lines, renderPlanCard(plan, cardWidth, i == m.homeCursor))
	}
	if m.catalog.Len() == 0 {
		lines = append(lines, statusStyle.Render("no workout plans"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStats(p types.Progress) string {
	parts := []string{
		statValueStyle.Render(fmt.Sprintf("%d", p.Workouts)) + statsStyle.Render(" WORKOUTS"),
		statValueStyle.Render(fmt.Sprintf("%.1f", p.Minutes)) + statsStyle.Render(" MINUTES"),
		statValueStyle.Render(fmt.Sprintf("%.1f", p.Calories)) + statsStyle.Render(" KCAL"),
	}
	return strings.Join(parts, "   ")
}

func renderPlanCard(plan types.Plan, width int, active bool) string {
	inner := width - cardChromeCol
	name := runewidth.Truncate(plan.Name, inner-runewidth.StringWidth(boltGlyph)-1, "…")
	title := boltStyle.Render(boltGlyph) + " " + cardTitleStyle.Render(runewidth.FillRight(name, inner-runewidth.StringWidth(boltGlyph)-1))
	count := setsStyle.Render(exerciseCountLabel(len(plan.Exercises)))
	body := lipgloss.JoinVertical(lipgloss.Left, title, count)
	if active {
		return cardActiveStyle.Width(width).Render(body)
	}
	return cardStyle.Width(width).Render(body)
}

func exerciseCountLabel(n int) string {
	if n == 1 {
		return "1 exercise"
	}
	return fmt.Sprintf("%d exercises", n)
}
