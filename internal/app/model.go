package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	progressbar "charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"fitrack/internal/catalog"
	"fitrack/internal/logging"
	"fitrack/internal/progress"
	"fitrack/internal/session"
	"fitrack/internal/types"
)

const (
	defaultWidth   = 80
	defaultHeight  = 24
	maxBarWidth    = 48
	minBodyWidth   = 20
	windowTitle    = "fitrack"
	finishingLabel = "wrapping up"
	movingOnLabel  = "next exercise coming up"
)

var (
	// ErrProgressUnavailable guards against wiring a screen without the
	// shared progress store. It is a programming error, never a runtime one.
	ErrProgressUnavailable = errors.New("progress context not available")
	ErrCatalogUnavailable  = errors.New("catalog not available")
)

type Options struct {
	Catalog     *catalog.Catalog
	Progress    *progress.Store
	Timing      session.Timing
	Keybindings *Keybindings
	Logger      logging.Logger
}

// Model is the root Bubble Tea model. It owns the navigation stack, the
// active session flow and the rest timer, and renders whichever screen is on
// top of the stack.
type Model struct {
	catalog  *catalog.Catalog
	progress *progress.Store
	timing   session.Timing
	logger   logging.Logger

	nav     *Navigator
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	bar     progressbar.Model

	flow *session.Flow
	rest *session.RestTimer

	homeCursor int
	width      int
	height     int
	status     string
	statusErr  bool
}

func New(opts Options) (*Model, error) {
	if opts.Progress == nil {
		return nil, ErrProgressUnavailable
	}
	if opts.Catalog == nil {
		return nil, ErrCatalogUnavailable
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.Timing == (session.Timing{}) {
		opts.Timing = session.DefaultTiming()
	}
	opts.Progress.Subscribe(func(p types.Progress) {
		logger.Debug("progress_updated",
			logging.F("workouts", p.Workouts),
			logging.F("minutes", p.Minutes),
			logging.F("calories", p.Calories),
			logging.F("completed", len(p.Completed)))
	})
	m := &Model{
		catalog:  opts.Catalog,
		progress: opts.Progress,
		timing:   opts.Timing,
		logger:   logger,
		nav:      NewNavigator(types.HomeRoute{}),
		keys:     newKeyMap(opts.Keybindings),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:      progressbar.New(progressbar.WithDefaultBlend()),
		rest:     session.NewRestTimer(opts.Timing.RestDuration),
	}
	m.resize(defaultWidth, defaultHeight)
	return m, nil
}

// Run starts the full-screen program and blocks until the user quits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	m.teardownSession("program_exit")
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case transitionDueMsg:
		return m, m.handleTransitionDue(msg)
	case restTickMsg:
		return m, m.handleRestTick(msg)
	case spinner.TickMsg:
		if !m.transitionPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clipboardResultMsg:
		if msg.err != nil {
			m.setError("copy failed: " + msg.err.Error())
			return m, nil
		}
		m.setStatus("stats copied (" + msg.method.String() + ")")
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(padFrame(m.render(), m.width, m.height))
	v.AltScreen = true
	v.WindowTitle = windowTitle
	return v
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardownSession("quit")
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	switch route := m.nav.Current().(type) {
	case types.HomeRoute:
		return m.updateHome(msg)
	case types.WorkoutRoute:
		return m.updateWorkout(msg, route)
	case types.FitRoute:
		return m.updateFit(msg)
	case types.RestRoute:
		// The rest step ends on its own.
		return nil
	}
	return nil
}

func (m *Model) handleTransitionDue(msg transitionDueMsg) tea.Cmd {
	if m.flow == nil || msg.sessionID != m.flow.ID() {
		return nil
	}
	outcome, ok := m.flow.Settle(msg.seq)
	if !ok {
		return nil
	}
	if outcome.Finished {
		m.finishSession()
	}
	return nil
}

func (m *Model) handleRestTick(msg restTickMsg) tea.Cmd {
	switch m.rest.Tick(msg.gen) {
	case session.TickCounted:
		return restTickCmd(msg.gen, m.timing.RestTick)
	case session.TickExpired:
		if m.nav.CurrentName() == types.RouteRest {
			m.nav.Back()
		}
		if m.transitionPending() {
			return m.spinner.Tick
		}
	}
	return nil
}

// startWorkout is the "start" action on the workout screen: it clears the
// completed names and opens a new session at the first exercise.
func (m *Model) startWorkout(route types.WorkoutRoute) tea.Cmd {
	m.teardownSession("restart")
	m.progress.BeginWorkout()
	flow, err := session.New(session.Config{
		PlanID:    route.ID,
		Exercises: route.Exercises,
		Store:     m.progress,
		Timing:    m.timing,
		Logger:    m.logger,
	})
	if err != nil {
		m.setError("cannot start workout: " + err.Error())
		return nil
	}
	m.flow = flow
	m.nav.Navigate(types.FitRoute{Exercises: types.CloneExercises(route.Exercises)})
	m.clearStatus()
	return nil
}

func (m *Model) applyTransition(tr session.Transition) tea.Cmd {
	cmds := []tea.Cmd{transitionCmd(m.flow.ID(), tr)}
	if tr.Rest {
		m.nav.Navigate(types.RestRoute{})
		gen := m.rest.Start()
		cmds = append(cmds, restTickCmd(gen, m.timing.RestTick))
	} else {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) finishSession() {
	m.rest.Stop()
	m.flow = nil
	m.nav.Navigate(types.HomeRoute{})
	m.setStatus("workout complete • " + progress.Summary(m.progress.Snapshot()))
}

// leaveSession handles a manual exit from the exercise screen. Pending
// transitions and rest ticks are discarded so nothing fires afterwards.
func (m *Model) leaveSession() tea.Cmd {
	m.teardownSession("left")
	m.nav.Back()
	return nil
}

func (m *Model) teardownSession(reason string) {
	m.rest.Stop()
	if m.flow == nil {
		return
	}
	m.flow.Cancel()
	m.logger.Info("session_closed", logging.F("session_id", m.flow.ID()), logging.F("reason", reason))
	m.flow = nil
}

func (m *Model) transitionPending() bool {
	if m.flow == nil {
		return false
	}
	_, pending := m.flow.Pending()
	return pending
}

func transitionCmd(sessionID string, tr session.Transition) tea.Cmd {
	msg := transitionDueMsg{sessionID: sessionID, seq: tr.Seq}
	return delayed(tr.Delay, msg)
}

func restTickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return delayed(interval, restTickMsg{gen: gen})
}

func delayed(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (m *Model) resize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	m.width = width
	m.height = height
	m.help.SetWidth(width)
	m.bar.SetWidth(min(maxBarWidth, max(minBodyWidth, width-4)))
}

func (m *Model) setStatus(text string) {
	m.status = strings.TrimSpace(text)
	m.statusErr = false
}

func (m *Model) setError(text string) {
	m.status = strings.TrimSpace(text)
	m.statusErr = true
	m.logger.Warn("ui_error", logging.F("status", m.status))
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

func (m *Model) render() string {
	var body string
	switch route := m.nav.Current().(type) {
	case types.HomeRoute:
		body = m.homeView()
	case types.WorkoutRoute:
		body = m.workoutView(route)
	case types.FitRoute:
		body = m.fitView()
	case types.RestRoute:
		body = m.restView()
	default:
		body = fmt.Sprintf("unknown route %T", route)
	}
	sections := []string{body}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = statusErrorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.View(m.helpKeys()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
