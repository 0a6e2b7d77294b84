// Package tui is the headless terminal frontend: it runs the simulation at
// a fixed frame rate and shows the cursor's Z-slice, a status line and a
// population history graph.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"life3d/internal/config"
	"life3d/internal/core"
	"life3d/internal/life"
)

const historyLen = 120

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type tickMsg time.Time

type model struct {
	sim *life.Game
	cfg *config.Config

	history   []float64
	lastFrame time.Time
	width     int
	height    int
}

func newModel(cfg *config.Config) model {
	sim := life.New(cfg.ArenaSize, cfg.TickInterval)
	sim.Reset(cfg.Seed, cfg.Density)
	return model{
		sim:     sim,
		cfg:     cfg,
		history: make([]float64, 0, historyLen),
		width:   80,
		height:  24,
	}
}

func (m model) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.cfg.FrameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Now()
		if m.lastFrame.IsZero() {
			m.lastFrame = now
		}
		dt := now.Sub(m.lastFrame).Seconds()
		m.lastFrame = now

		if m.sim.Advance(dt) {
			m.history = append(m.history, float64(m.sim.Population()))
			if len(m.history) > historyLen {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left":
		m.sim.MoveCursor(core.AxisX, -1)
	case "right":
		m.sim.MoveCursor(core.AxisX, 1)
	case "up":
		m.sim.MoveCursor(core.AxisY, 1)
	case "down":
		m.sim.MoveCursor(core.AxisY, -1)
	case "pgup", "]":
		m.sim.MoveCursor(core.AxisZ, 1)
	case "pgdown", "[":
		m.sim.MoveCursor(core.AxisZ, -1)
	case "f":
		m.sim.FlipAtCursor()
	case " ", "space":
		m.sim.Ticker().TogglePause()
	case "+", "=":
		m.sim.Ticker().SpeedUp()
	case "-":
		m.sim.Ticker().SlowDown()
	case "r":
		m.sim.Reset(m.cfg.Seed, m.cfg.Density)
		m.history = m.history[:0]
	case "s":
		m.sim.Reset(time.Now().UnixNano(), m.cfg.Density)
		m.history = m.history[:0]
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	cur := m.sim.Cursor()
	b.WriteString(titleStyle.Render("life3d"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  slice z=%d/%d", cur.Z, m.sim.Grid().N()-1)))
	b.WriteString("\n\n")
	b.WriteString(m.renderSlice(cur))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderGraph())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("arrows move  [/] slice  f flip  space pause  -/+ speed  r reset  s reseed  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderSlice draws the Z-layer under the cursor, top row first so +Y
// points up, with the cursor cell marked whether alive or dead.
func (m model) renderSlice(cur life.Cursor) string {
	g := m.sim.Grid()
	n := g.N()

	var b strings.Builder
	for y := n - 1; y >= 0; y-- {
		for x := 0; x < n; x++ {
			switch {
			case x == cur.X && y == cur.Y:
				b.WriteString(cursorStyle.Render("[]"))
			case g.At(x, y, cur.Z).IsAlive():
				b.WriteString(aliveStyle.Render("██"))
			default:
				b.WriteString(deadStyle.Render("··"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderStatus() string {
	tk := m.sim.Ticker()
	state := ""
	if tk.Paused() {
		state = "  " + pausedStyle.Render("PAUSED")
	}
	return fmt.Sprintf("gen %d  pop %d  speed %dx%s",
		m.sim.Generation(), m.sim.Population(), tk.Speed(), state)
}

func (m model) renderGraph() string {
	if len(m.history) < 2 {
		return dimStyle.Render("(population history builds as generations pass)")
	}
	width := len(m.history)
	if limit := m.width - 10; limit > 10 && width > limit {
		width = limit
	}
	return asciigraph.Plot(m.history,
		asciigraph.Height(5),
		asciigraph.Width(width),
		asciigraph.Caption("population"))
}

// Run starts the terminal frontend and blocks until it exits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
