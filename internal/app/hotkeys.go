package app

import (
	"charm.land/bubbles/v2/key"

	"fitrack/internal/types"
)

type keyMap struct {
	Quit        key.Binding
	Back        key.Binding
	Help        key.Binding
	Up          key.Binding
	Down        key.Binding
	OpenPlan    key.Binding
	CopySummary key.Binding
	Start       key.Binding
	Done        key.Binding
	Skip        key.Binding
	Prev        key.Binding
}

func newKeyMap(bindings *Keybindings) keyMap {
	if bindings == nil {
		bindings = DefaultKeybindings()
	}
	return keyMap{
		Quit:        bindings.Binding(KeyCommandQuit, "quit"),
		Back:        bindings.Binding(KeyCommandBack, "back"),
		Help:        bindings.Binding(KeyCommandHelp, "help"),
		Up:          bindings.Binding(KeyCommandUp, "up"),
		Down:        bindings.Binding(KeyCommandDown, "down"),
		OpenPlan:    bindings.Binding(KeyCommandOpenPlan, "open"),
		CopySummary: bindings.Binding(KeyCommandCopySummary, "copy stats"),
		Start:       bindings.Binding(KeyCommandStart, "start"),
		Done:        bindings.Binding(KeyCommandDone, "done"),
		Skip:        bindings.Binding(KeyCommandSkip, "skip"),
		Prev:        bindings.Binding(KeyCommandPrev, "prev"),
	}
}

// screenHelp is the help.KeyMap for whichever screen is on top.
type screenHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h screenHelp) ShortHelp() []key.Binding  { return h.short }
func (h screenHelp) FullHelp() [][]key.Binding { return h.full }

func (m *Model) helpKeys() screenHelp {
	k := m.keys
	global := []key.Binding{k.Help, k.Quit}
	var local []key.Binding
	switch m.nav.CurrentName() {
	case types.RouteHome:
		local = []key.Binding{k.Up, k.Down, k.OpenPlan, k.CopySummary}
	case types.RouteWorkout:
		local = []key.Binding{k.Start, k.Back}
	case types.RouteFit:
		prev := k.Prev
		prev.SetEnabled(m.flow != nil && m.flow.CanPrev())
		local = []key.Binding{k.Done, k.Skip, prev, k.Back}
	case types.RouteRest:
		local = nil
	}
	short := append(append([]key.Binding{}, local...), global...)
	return screenHelp{short: short, full: [][]key.Binding{local, global}}
}
