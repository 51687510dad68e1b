// Package tui renders a running session as a bar chart in the terminal.
//
// The model follows the bubbletea update loop: a tick message arrives once per
// frame, the model takes exactly one Snapshot from the session's observer and
// View turns that snapshot into bars. The model never touches the sequence
// directly, so rendering cannot perturb the counters.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dyyynamic/sort-visualizer/types"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// toneHeight is the reference plot height used by the tone mapping.
	toneHeight = 800

	barGlyph = "█"
)

var (
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	accessedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	verifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	statusStyle   = lipgloss.NewStyle().Bold(true)
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// Host is the part of a session the model drives.
type Host interface {
	Observer() types.Observer
	Phase() types.Phase
	Elapsed() time.Duration
	Verify(ctx context.Context) error
	Cancel()
}

type keyMap struct {
	Quit key.Binding
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "cancel and quit"),
	),
}

type tickMsg time.Time

// Model is the bubbletea model for one session.
type Model struct {
	ctx       context.Context
	host      Host
	algorithm types.Algorithm
	interval  time.Duration
	keys      keyMap

	width  int
	height int

	frame           types.Snapshot
	phase           types.Phase
	elapsed         time.Duration
	verifyRequested bool
	err             error
	quitting        bool
}

// NewModel creates a model polling host once per frame.
//
// Parameters:
//   - ctx: Context handed to the verifier when the sort completes
//   - host: Session to observe and control
//   - algorithm: Algorithm shown in the status line
//   - frameRate: Frames per second (values below 1 are treated as 1)
//
// Returns:
//   - Model: Model ready for tea.NewProgram
func NewModel(ctx context.Context, host Host, algorithm types.Algorithm, frameRate int) Model {
	if frameRate < 1 {
		frameRate = 1
	}

	return Model{
		ctx:       ctx,
		host:      host,
		algorithm: algorithm,
		interval:  time.Second / time.Duration(frameRate),
		keys:      defaultKeys,
		width:     defaultWidth,
		height:    defaultHeight,
		phase:     types.PhaseIdle,
		frame:     types.Snapshot{Cursor: -1, Pivot: -1, VerifiedUpTo: -1},
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles frame ticks, key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.host.Cancel()
			m.quitting = true

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.frame = m.host.Observer().Snapshot()
		m.phase = m.host.Phase()
		m.elapsed = m.host.Elapsed()

		if m.phase == types.PhaseSorted && !m.verifyRequested {
			m.verifyRequested = true
			if err := m.host.Verify(m.ctx); err != nil && !errors.Is(err, types.ErrAlreadyStarted) {
				m.err = err
			}
		}

		return m, m.tick()
	}

	return m, nil
}

// View renders the status line followed by the bar chart.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(statusStyle.Render(m.status()))
	if line := m.detail(); line != "" {
		b.WriteString("  ")
		b.WriteString(line)
	}
	b.WriteString("\n\n")
	b.WriteString(m.bars())

	return b.String()
}

func (m Model) status() string {
	return fmt.Sprintf("%s Sort - %d comparisons, %d array accesses, %dms elapsed",
		m.algorithm.Title(), m.frame.Comparisons, m.frame.Accesses, m.elapsed.Milliseconds())
}

func (m Model) detail() string {
	switch {
	case m.err != nil:
		return failedStyle.Render(m.err.Error())
	case m.phase == types.PhaseFailed:
		return failedStyle.Render(m.phase.String())
	case m.phase.Terminal():
		return m.phase.String()
	}

	if hz, ok := m.tone(); ok {
		return fmt.Sprintf("%s  %d Hz", m.phase, hz)
	}

	return m.phase.String()
}

// tone maps the element under the cursor, or the first touched element, to
// a frequency of 2*value*toneHeight/n.
func (m Model) tone() (int, bool) {
	if m.frame.Verified || len(m.frame.Values) == 0 {
		return 0, false
	}

	idx := m.frame.Cursor
	if idx < 0 || idx >= len(m.frame.Values) {
		if len(m.frame.Accessed) == 0 {
			return 0, false
		}
		idx = m.frame.Accessed[0]
	}

	return Frequency(m.frame.Values[idx], len(m.frame.Values)), true
}

// Frequency returns the feedback tone in hertz for value in a run of n elements.
func Frequency(value, n int) int {
	if n <= 0 {
		return 0
	}

	return 2 * value * toneHeight / n
}

func (m Model) bars() string {
	values := m.frame.Values
	n := len(values)
	if n == 0 {
		return ""
	}

	rows := max(m.height-2, 1)
	cols := min(n, max(m.width, 1))

	maxValue := 1
	for _, v := range values {
		maxValue = max(maxValue, v)
	}

	accessed := make(map[int]struct{}, len(m.frame.Accessed))
	for _, idx := range m.frame.Accessed {
		accessed[idx] = struct{}{}
	}

	heights := make([]int, cols)
	styles := make([]lipgloss.Style, cols)
	for c := range cols {
		lo, hi := c*n/cols, (c+1)*n/cols
		heights[c] = max(values[lo], 0) * rows / maxValue
		styles[c] = barStyle

		if lo <= m.frame.VerifiedUpTo {
			styles[c] = verifiedStyle
		}
		for idx := lo; idx < hi; idx++ {
			if _, ok := accessed[idx]; ok || idx == m.frame.Cursor {
				styles[c] = accessedStyle
				break
			}
		}
	}

	var b strings.Builder
	for r := range rows {
		level := rows - r
		for c := 0; c < cols; {
			filled := heights[c] >= level
			run := c + 1
			for run < cols && (heights[run] >= level) == filled && sameStyle(styles[run], styles[c]) {
				run++
			}

			if filled {
				b.WriteString(styles[c].Render(strings.Repeat(barGlyph, run-c)))
			} else {
				b.WriteString(strings.Repeat(" ", run-c))
			}
			c = run
		}
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground()
}

// Run drives the model in the alternate screen until the user quits or ctx ends.
//
// Parameters:
//   - ctx: Context whose cancellation stops the program
//   - host: Session to observe and control
//   - algorithm: Algorithm shown in the status line
//   - frameRate: Frames per second
//
// Returns:
//   - error: Program error, nil on a normal quit or context cancellation
func Run(ctx context.Context, host Host, algorithm types.Algorithm, frameRate int) error {
	p := tea.NewProgram(
		NewModel(ctx, host, algorithm, frameRate),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
