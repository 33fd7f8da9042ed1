package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blackhole/internal/config"
	"github.com/vovakirdan/tui-blackhole/internal/render"
	"github.com/vovakirdan/tui-blackhole/internal/scene"
)

// Model is the Bubble Tea model for the animated view. The lens map is
// traced once per scene; ticks only advance the phase and re-composite.
type Model struct {
	cfg   config.Scene
	sc    *scene.Params
	comp  *render.Compositor
	frame *render.Frame

	phase    float64
	paused   bool
	quitting bool

	keys KeyMap
	help help.Model
}

// NewModel creates a model for the given validated configuration and traces
// the initial lens map. Display width/height must already be resolved.
func NewModel(cfg config.Scene) Model {
	m := Model{
		cfg:  cfg,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	m.retrace()
	return m
}

// retrace rebuilds the derived scene, lens map, compositor and frame buffer.
// Called at construction and after a resize.
func (m *Model) retrace() {
	m.sc = scene.FromConfig(m.cfg)
	m.comp = render.NewCompositor(render.Trace(m.sc))
	m.frame = render.NewFrame(m.sc.Width, m.sc.Height)
	m.comp.Render(m.phase, m.frame)
}

// Init starts the animation loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Display.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	}
	return m, nil
}

// handleResize re-traces the lens map at the new terminal size, keeping one
// row for the status line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := msg.Height - 1
	if h < 1 {
		h = 1
	}
	if msg.Width == m.cfg.Display.Width && h == m.cfg.Display.Height {
		return m, nil
	}
	m.cfg.Display.Width = msg.Width
	m.cfg.Display.Height = h
	m.help.Width = msg.Width
	m.retrace()
	return m, nil
}

// handleTick advances the phase and re-composites the frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.phase += render.PhaseStep
		if m.phase > 2*math.Pi {
			m.phase -= 2 * math.Pi
		}
		m.comp.Render(m.phase, m.frame)
	}
	return m, tickCmd(m.cfg.Display.FPS)
}

// saveScreenshot writes the current frame to ~/.blackhole/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".blackhole", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blackhole_%s.txt", timestamp))
	//nolint:errcheck // Best-effort save, animation continues regardless
	os.WriteFile(path, []byte(m.frame.String()), 0o600)
}

// View renders the current frame plus a one-line status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame.String() + "\n" + m.statusLine()
}

// Run starts the Bubble Tea program for the given configuration.
func Run(cfg config.Scene) error {
	p := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
