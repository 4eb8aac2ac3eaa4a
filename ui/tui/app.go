package tui

import (
	"errors"
	"math"
	"time"

	"orrery/internal/config"
	"orrery/internal/datectl"
	"orrery/internal/dial"
	"orrery/internal/ephemeris"
	"orrery/internal/layout"
	"orrery/internal/logging"
	"orrery/internal/output"
	"orrery/ui/tui/components"
	"orrery/ui/tui/state"
	"orrery/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
)

const traceHeight = 8

// Deps are the collaborators the shell is built from.
type Deps struct {
	Ephemeris ephemeris.Ephemeris
	Renderer  *dial.Renderer
	Clock     datectl.Clock // nil uses the system clock
	Config    config.Config
	Logger    logging.Logger
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	ctrl    *datectl.Controller
	eph     ephemeris.Ephemeris
	cfg     config.Config
	log     logging.Logger
	state   state.AppState
	dial    *components.DialWidget
	trace   *components.TraceWidget
	input   textinput.Model
	help    help.Model
	keys    keyMap
	buttons []string

	buttonCursor int
	sampledAt    int // dial redraw the trace was last sampled for
	animCursor   float64
	velocity     float64 // Physics velocity
	spring       harmonica.Spring
	dragging     bool
	quitting     bool
	width        int
	height       int
}

// Messages
type AnimateMsg time.Time

func InitialModel(d Deps) (*MainModel, error) {
	if d.Ephemeris == nil || d.Renderer == nil {
		return nil, errors.New("tui: ephemeris and renderer are required")
	}
	if d.Logger == nil {
		d.Logger = logging.Noop()
	}
	bg, err := d.Config.BackgroundColor()
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD HH:MM"
	ti.CharLimit = 20
	ti.Width = len(datectl.Layout) + 1

	buttons := []string{"Now"}
	for _, s := range datectl.StandardShifts {
		buttons = append(buttons, s.Label())
	}

	m := &MainModel{
		eph:     d.Ephemeris,
		cfg:     d.Config,
		log:     d.Logger.With(logging.String("component", "tui")),
		dial:    components.NewDialWidget(d.Renderer, bg),
		trace:   components.NewTraceWidget(30, traceHeight, d.Config.TraceDays),
		input:   ti,
		help:    help.New(),
		keys:    defaultKeyMap(),
		buttons: buttons,
		// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
		spring: harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
		state: state.AppState{
			TraceBody: ephemeris.Sun,
			Focus:     state.FocusButtons,
		},
	}

	m.ctrl, err = datectl.New(d.Ephemeris, d.Clock, m.dial, datectl.Options{
		RangeYears: d.Config.RangeYears,
		Logger:     d.Logger,
	})
	if err != nil {
		return nil, err
	}
	m.afterChange(nil)
	return m, nil
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return animateCmd()
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleTextKeyMsg(msg)
		}
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.DayBack):
		m.nudge(-smallStep)
	case key.Matches(msg, m.keys.DayForward):
		m.nudge(smallStep)
	case key.Matches(msg, m.keys.MonthBack):
		m.nudge(-largeStep)
	case key.Matches(msg, m.keys.MonthForward):
		m.nudge(largeStep)
	case key.Matches(msg, m.keys.PrevButton):
		if m.buttonCursor > 0 {
			m.buttonCursor--
		}
	case key.Matches(msg, m.keys.NextButton):
		if m.buttonCursor < len(m.buttons)-1 {
			m.buttonCursor++
		}
	case key.Matches(msg, m.keys.Press):
		m.press(m.buttonCursor)
	case key.Matches(msg, m.keys.Now):
		m.press(0)
	case key.Matches(msg, m.keys.FocusText):
		return m, m.focusInput()
	case key.Matches(msg, m.keys.PrevBody):
		m.cycleTrace(-1)
	case key.Matches(msg, m.keys.NextBody):
		m.cycleTrace(1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTextKeyMsg routes keys while the date field is being edited. Only
// ctrl+c quits; everything else not bound here is typed into the field.
func (m *MainModel) handleTextKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		err := m.ctrl.SetFromText(m.input.Value())
		m.blurInput()
		m.afterChange(err)
		return m, nil
	case tea.KeyEsc, tea.KeyTab:
		m.blurInput()
		m.input.SetValue(m.ctrl.Text())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MainModel) focusInput() tea.Cmd {
	m.state.Focus = state.FocusText
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *MainModel) blurInput() {
	m.state.Focus = state.FocusButtons
	m.input.Blur()
}

// nudge moves the slider by days.
func (m *MainModel) nudge(days float64) {
	m.afterChange(m.ctrl.SetFromSliderOffset(m.ctrl.SliderOffset() + days))
}

// press activates button i: 0 is Now, the rest are the standard shifts.
func (m *MainModel) press(i int) {
	var err error
	if i == 0 {
		err = m.ctrl.JumpToNow()
	} else if i-1 < len(datectl.StandardShifts) {
		err = m.ctrl.Shift(datectl.StandardShifts[i-1])
	}
	m.afterChange(err)
}

func (m *MainModel) cycleTrace(dir int) {
	n := ephemeris.BodyCount
	m.state.TraceBody = ephemeris.Body((int(m.state.TraceBody) + dir + n) % n)
	m.refreshTrace()
}

// afterChange copies the controller's committed state into the view state.
// The text field always shows the committed text afterwards, which reverts a
// rejected entry.
func (m *MainModel) afterChange(err error) {
	m.input.SetValue(m.ctrl.Text())
	m.state.Err = err
	if err != nil {
		m.log.Warn("update rejected", logging.Err(err))
	}

	m.state.Text = m.ctrl.Text()
	m.state.OffsetDays = m.ctrl.SliderOffset()
	m.state.Fraction = m.ctrl.SliderFraction()
	m.state.Angles = m.ctrl.Angles()
	m.state.Report = output.BuildReport(m.ctrl.Selected(), m.state.OffsetDays, m.state.Angles)
	if n := m.dial.Redraws(); n != m.sampledAt {
		m.sampledAt = n
		m.refreshTrace()
	}
}

// refreshTrace samples the traced body once a day around the selected date.
// Days the ephemeris cannot serve are left as gaps.
func (m *MainModel) refreshTrace() {
	days := m.cfg.TraceDays
	base := m.ctrl.Selected()
	samples := make([]float64, 2*days+1)
	for i := range samples {
		lon, err := m.eph.Longitude(m.state.TraceBody, base.AddDate(0, 0, i-days))
		if err != nil {
			samples[i] = math.NaN()
			continue
		}
		samples[i] = lon
	}
	m.trace.SetSamples(samples)
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.buttonCursor), v)
	m.velocity = v
	return m, animateCmd()
}

// handleWindowSizeMsg relayouts on square units: a terminal cell is about
// twice as tall as it is wide.
func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.state.Layout = layout.Relayout(layout.Size{W: msg.Width, H: msg.Height * 2})

	d := m.state.Layout.Display
	m.dial.Resize(d.W, d.H/2)

	c := m.state.Layout.Controls
	m.trace.Resize(c.W-6, traceHeight)
	m.help.Width = c.W
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if z := zone.Get(views.ZoneSlider); z.InBounds(msg) {
			m.dragging = true
			m.slideTo(msg.X-z.StartX, z.EndX-z.StartX+1)
		}

	case tea.MouseActionMotion:
		if m.dragging {
			if z := zone.Get(views.ZoneSlider); !z.IsZero() {
				m.slideTo(msg.X-z.StartX, z.EndX-z.StartX+1)
			}
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			return m, nil
		}
		for i := range m.buttons {
			if zone.Get(views.ButtonZone(i)).InBounds(msg) {
				m.buttonCursor = i
				m.press(i)
				return m, nil
			}
		}
		if zone.Get(views.ZoneInput).InBounds(msg) {
			return m, m.focusInput()
		}
	}
	return m, nil
}

// slideTo selects the offset under cell x of a slider width cells wide.
func (m *MainModel) slideTo(x, width int) {
	f := views.FractionAt(x, width)
	m.afterChange(m.ctrl.SetFromSliderOffset(m.ctrl.OffsetAtFraction(f)))
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	if m.width == 0 {
		return ""
	}

	chart := ""
	if m.state.Layout.Controls.W > 16 {
		chart = m.trace.View()
	}
	s := m.state
	if s.Err == nil {
		s.Err = m.dial.Err()
	}
	return views.RenderScreen(s, views.ViewProps{
		Width:        m.width,
		Height:       m.height,
		Buttons:      m.buttons,
		ButtonCursor: m.buttonCursor,
		AnimCursor:   m.animCursor,
		DialView:     m.dial.View(),
		InputView:    m.input.View(),
		ChartView:    chart,
		HelpView:     m.help.View(m.keys),
		TraceDays:    m.cfg.TraceDays,
	})
}

func Start(d Deps) error {
	m, err := InitialModel(d)
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
