package app

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

const restTitle = "TAKE A BREAK!"

func (m *Model) restView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		restTitleStyle.Render(restTitle),
		"",
		restCountStyle.Render(fmt.Sprintf("⏱ %d", m.rest.Remaining())),
	)
}
