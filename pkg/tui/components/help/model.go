package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

//go:embed help.md
var helpText string

// Model renders the help overlay inside a bordered, scrollable viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame   lipgloss.Style
	heading lipgloss.Style
}

// New constructs a help overlay model sized to the provided bounds.
func New(width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	model := &Model{
		viewport: vp,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Margin(0).
			Padding(0, 1),
		heading: lipgloss.NewStyle().Bold(true).Underline(true),
	}
	model.SetSize(width, height)
	return model
}

func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the help content inside a rounded frame.
func (m *Model) View() (string, *tea.Cursor) {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View()), nil
}

// SetSize configures the overlay dimensions and re-wraps the text to fit.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}

	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)

	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)

	m.viewport.SetContent(m.render(innerWidth))
	m.viewport.SetYOffset(0)
}

func (m *Model) render(wrap int) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(helpText), "\n") {
		switch {
		case strings.HasPrefix(line, "#"):
			b.WriteString(m.heading.Render(strings.TrimSpace(strings.TrimLeft(line, "#"))))
		case strings.HasPrefix(line, "  "):
			// key tables keep their columns
			b.WriteString(line)
		default:
			b.WriteString(wordwrap.String(line, max(wrap, 10)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
