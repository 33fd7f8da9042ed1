package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// statusLine renders the one-line status bar below the frame: observer pose,
// current phase, and key help.
func (m Model) statusLine() string {
	pose := fmt.Sprintf("inc %.0f°  fov %.0f°  r %.0fM  tilt %.0f°  phase %5.2f",
		m.cfg.Observer.InclinationDeg,
		m.cfg.Observer.FOVDeg,
		m.cfg.Observer.Radius,
		m.cfg.Disk.TiltDeg,
		m.phase,
	)
	line := statusStyle.Render(pose)
	if m.paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line + "  " + m.help.View(m.keys)
}
