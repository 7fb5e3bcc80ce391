// Package dragsim is an interactive terminal simulator for the snap engine:
// the keyboard moves a virtual pointer and the session reports the time it
// would drop an item at.
package dragsim

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/dragsnap/pkg/gesture"
	"tableflip.dev/dragsnap/pkg/snap"
	"tableflip.dev/dragsnap/pkg/tui/components/help"
	"tableflip.dev/dragsnap/pkg/tui/theme"
)

const (
	tickInterval = 40 * time.Millisecond
	nudgePx      = 4
	jumpPx       = 40
	maxDrops     = 5
)

type keyMap struct {
	Grab   key.Binding
	Down   key.Binding
	Up     key.Binding
	JumpDn key.Binding
	JumpUp key.Binding
	Fine   key.Binding
	Coarse key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Grab:   key.NewBinding(key.WithKeys("space", " ", "enter"), key.WithHelp("space", "grab/drop")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
		Up:     key.NewBinding(key.WithKeys("k", "up")),
		JumpDn: key.NewBinding(key.WithKeys("J", "pgdown"), key.WithHelp("J/K", "jump")),
		JumpUp: key.NewBinding(key.WithKeys("K", "pgup")),
		Fine:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f/c", "force fine/coarse")),
		Coarse: key.NewBinding(key.WithKeys("c")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type action int

const (
	actionNone action = iota
	actionGrab
	actionMove
	actionFine
	actionCoarse
	actionCancel
)

type tickMsg time.Time

// Options configures a simulator Model.
type Options struct {
	ItemID         string
	Time           string
	ViewportHeight float64
	Config         snap.Config
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the bubbletea model of the simulator.
type Model struct {
	opts  Options
	keys  keyMap
	theme theme.Theme
	help  *help.Model

	itemTime string
	pointerY float64
	dragging bool
	session  gesture.Session
	frame    *gesture.Frame
	drops    []gesture.Drop

	width  int
	height int
}

// New builds a simulator for the item scheduled at opts.Time.
func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ItemID == "" {
		opts.ItemID = "item"
	}
	return &Model{
		opts:     opts,
		keys:     defaultKeys(),
		theme:    theme.Default(),
		itemTime: snap.MinuteToTimeText(float64(snap.TimeTextToMinute(opts.Time, opts.Config)), opts.Config),
		pointerY: opts.ViewportHeight / 2,
		width:    60,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.help != nil {
			m.help.SetSize(m.width, m.height)
		}
	case tickMsg:
		// Re-sampling the still pointer lets dwell activation fire.
		if m.dragging {
			m.apply(actionMove, 0)
		}
		return m, tick()
	case tea.KeyMsg:
		if m.help != nil {
			if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit) {
				m.help = nil
				return m, nil
			}
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help = help.New(max(m.width, 40), max(m.height, 20))
		case key.Matches(msg, m.keys.Grab):
			m.apply(actionGrab, 0)
		case key.Matches(msg, m.keys.Down):
			m.apply(actionMove, nudgePx)
		case key.Matches(msg, m.keys.Up):
			m.apply(actionMove, -nudgePx)
		case key.Matches(msg, m.keys.JumpDn):
			m.apply(actionMove, jumpPx)
		case key.Matches(msg, m.keys.JumpUp):
			m.apply(actionMove, -jumpPx)
		case key.Matches(msg, m.keys.Fine):
			m.apply(actionFine, 0)
		case key.Matches(msg, m.keys.Coarse):
			m.apply(actionCoarse, 0)
		case key.Matches(msg, m.keys.Cancel):
			m.apply(actionCancel, 0)
		}
	}
	return m, nil
}

func (m *Model) apply(a action, dy float64) {
	now := m.opts.Now()
	switch a {
	case actionGrab:
		if !m.dragging {
			m.session = gesture.Begin(m.opts.ItemID, m.itemTime, m.pointerY, now, m.opts.Config, m.opts.ViewportHeight)
			m.dragging = true
			m.frame = nil
			return
		}
		drop := m.session.End()
		m.itemTime = drop.Time
		m.dragging = false
		m.frame = nil
		m.drops = append([]gesture.Drop{drop}, m.drops...)
		if len(m.drops) > maxDrops {
			m.drops = m.drops[:maxDrops]
		}
	case actionMove:
		m.pointerY += dy
		if !m.dragging {
			return
		}
		var f gesture.Frame
		m.session, f = m.session.Move(m.pointerY, now)
		m.frame = &f
	case actionFine, actionCoarse:
		if !m.dragging {
			return
		}
		mode := snap.ModeFine
		if a == actionCoarse {
			mode = snap.ModeCoarse
		}
		var f gesture.Frame
		m.session, f = m.session.WithMode(mode, m.pointerY, now)
		m.frame = &f
	case actionCancel:
		m.dragging = false
		m.frame = nil
	}
}

// Time is the currently scheduled time of the item.
func (m *Model) Time() string { return m.itemTime }

func (m *Model) View() (string, *tea.Cursor) {
	if m.help != nil {
		return m.help.View()
	}
	width := max(m.width, 30)

	header := m.theme.Header.Title.Render("dragsnap") + "  item " + m.opts.ItemID + " at " + m.theme.Header.Time.Render(m.itemTime)

	var body string
	if !m.dragging {
		body = m.theme.Footer.Help.Render("press space to grab the item")
	} else {
		mode := m.session.Mode()
		status := fmt.Sprintf("pointer y=%.0f  Δ=%+.0fpx  mode=%s  time=%s",
			m.pointerY, m.pointerY-m.session.Drag.StartClientY, mode, m.session.Time())
		if mode == snap.ModeFine {
			status = m.theme.Header.Fine.Render(status)
		} else {
			status = m.theme.Header.Coarse.Render(status)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, status, "", m.renderRail())
	}

	lines := []string{header, "", body}
	if len(m.drops) > 0 {
		lines = append(lines, "", m.theme.Panel.Title.Render("Drops"))
		for _, d := range m.drops {
			verb := "unchanged"
			if d.Changed {
				verb = "moved"
			}
			lines = append(lines, m.theme.Footer.History.Render(fmt.Sprintf("  %s %s", d.Time, verb)))
		}
	}
	lines = append(lines, "", m.helpLine())

	for i, l := range lines {
		lines[i] = truncate.StringWithTail(l, uint(width-4), "…")
	}
	return m.theme.Panel.Frame.Render(strings.Join(lines, "\n")), nil
}

func (m *Model) renderRail() string {
	rail := snap.BuildZoomRail(m.session.Mode(), m.pointerY, float64(m.session.Drag.LastSnappedMinute), m.opts.Config)
	if m.frame != nil {
		rail = m.frame.Rail
	}
	rows := make([]string, 0, len(rail.Ticks))
	for _, t := range rail.Ticks {
		label := fmt.Sprintf("%7s", t.Label)
		switch {
		case t.IsCenter:
			rows = append(rows, m.theme.Rail.Center.Render("▶ "+label+" ━━━━━━"))
		case t.IsMajor:
			rows = append(rows, m.theme.Rail.Major.Render("  "+label+" ────"))
		default:
			rows = append(rows, m.theme.Rail.Minor.Render("  "+label+" ──"))
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) helpLine() string {
	bindings := []key.Binding{m.keys.Grab, m.keys.Down, m.keys.JumpDn, m.keys.Fine, m.keys.Cancel, m.keys.Help, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.theme.Footer.Help.Render(strings.Join(parts, " · "))
}

// Run launches the simulator full screen and returns the item's final time.
func Run(opts Options) (string, error) {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return "", err
	}
	return m.Time(), nil
}
