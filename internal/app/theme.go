package app

import "charm.land/lipgloss/v2"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Padding(0, 1)
	statsStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	cardActiveStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("35")).Padding(0, 1)
	cardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	boltStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	exerciseStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	setsStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	checkStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	bigNameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	bigSetsStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	positionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	actionStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Padding(0, 2)
	actionMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 2)
	restTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	restCountStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	imageRefStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)
