package app

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"fitrack/internal/session"
)

func (m *Model) updateFit(msg tea.KeyPressMsg) tea.Cmd {
	if m.flow == nil {
		if key.Matches(msg, m.keys.Back) {
			m.nav.Back()
		}
		return nil
	}
	var (
		tr session.Transition
		ok bool
	)
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.leaveSession()
	case key.Matches(msg, m.keys.Done):
		tr, ok = m.flow.Done()
	case key.Matches(msg, m.keys.Skip):
		tr, ok = m.flow.Skip()
	case key.Matches(msg, m.keys.Prev):
		tr, ok = m.flow.Prev()
	default:
		return nil
	}
	if !ok {
		return nil
	}
	return m.applyTransition(tr)
}

func (m *Model) fitView() string {
	if m.flow == nil {
		return statusStyle.Render("no active workout")
	}
	snap := m.flow.Snapshot()
	current := snap.Current
	lines := []string{}
	if current.Image != "" {
		lines = append(lines, imageRefStyle.Render(current.Image))
	}
	lines = append(lines,
		bigNameStyle.Render(current.Name),
		bigSetsStyle.Render(fmt.Sprintf("x%d", current.Sets)),
		positionStyle.Render(fmt.Sprintf("%d/%d", snap.Index+1, snap.Total)),
		m.bar.ViewAs(float64(snap.Index)/float64(max(1, snap.Total))),
		"",
		m.fitActions(),
	)
	if pending, ok := m.flow.Pending(); ok {
		label := movingOnLabel
		if pending.To >= snap.Total {
			label = finishingLabel
		}
		lines = append(lines, m.spinner.View()+" "+statusStyle.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) fitActions() string {
	done := actionStyle.Render(strings.ToUpper(m.keys.Done.Help().Desc))
	parts := []string{done}
	if m.flow.CanPrev() {
		parts = append(parts, actionMutedStyle.Render(strings.ToUpper(m.keys.Prev.Help().Desc)))
	}
	parts = append(parts, actionMutedStyle.Render(strings.ToUpper(m.keys.Skip.Help().Desc)))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
