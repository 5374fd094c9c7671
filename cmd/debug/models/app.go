package models

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/worldstream/cmd/debug/components"
	"github.com/VoidMesh/worldstream/internal/world"
)

// ViewType represents the different views in the debug tool
type ViewType int

const (
	MapView ViewType = iota
	StatsView
)

type frameMsg time.Time

// App is the main application model
type App struct {
	runtime       *world.Runtime
	frameInterval time.Duration

	// Current state
	currentView ViewType
	width       int
	height      int
	paused      bool
	lastFrame   time.Time

	// View models
	streamMap StreamMapModel
	stats     StatsModel

	// UI state
	showHelp bool
}

// NewApp creates a new application instance
func NewApp(runtime *world.Runtime, frameInterval time.Duration, startView string) *App {
	app := &App{
		runtime:       runtime,
		frameInterval: frameInterval,
		streamMap:     NewStreamMapModel(runtime),
		stats:         NewStatsModel(runtime),
	}

	switch startView {
	case "stats":
		app.currentView = StatsView
	default:
		app.currentView = MapView
	}

	return app
}

// Init kicks off the frame loop and streams around the starting position.
func (m *App) Init() tea.Cmd {
	log.Debug("Initializing debug tool")
	now := time.Now()
	m.lastFrame = now
	m.streamMap.Nudge(0, 0, false, now)
	return m.frameCmd()
}

// Update handles messages and updates the application state
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.streamMap.SetSize(msg.Width, msg.Height)
		m.stats.SetSize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if !m.paused {
			m.streamMap.Advance(now.Sub(m.lastFrame), now)
		}
		m.lastFrame = now
		return m, m.frameCmd()

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		now := time.Now()
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "?":
			m.showHelp = true

		case "tab":
			m.currentView = (m.currentView + 1) % 2

		case " ", "space":
			m.paused = !m.paused

		case "r":
			m.runtime.Reset()
			m.streamMap.Nudge(0, 0, false, now)

		case "up", "k":
			m.streamMap.Nudge(0, -1, false, now)
		case "down", "j":
			m.streamMap.Nudge(0, 1, false, now)
		case "left", "h":
			m.streamMap.Nudge(-1, 0, false, now)
		case "right", "l":
			m.streamMap.Nudge(1, 0, false, now)

		case "shift+up", "K":
			m.streamMap.Nudge(0, -1, true, now)
		case "shift+down", "J":
			m.streamMap.Nudge(0, 1, true, now)
		case "shift+left", "H":
			m.streamMap.Nudge(-1, 0, true, now)
		case "shift+right", "L":
			m.streamMap.Nudge(1, 0, true, now)
		}
	}

	return m, nil
}

// View renders the application
func (m *App) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var s strings.Builder
	title := "Stream Map"
	if m.currentView == StatsView {
		title = "Streaming Stats"
	}
	s.WriteString(components.TitleStyle.Render(fmt.Sprintf("%s - seed %d", title, m.runtime.Seed)) + "\n")

	switch m.currentView {
	case StatsView:
		s.WriteString(m.stats.View())
	default:
		s.WriteString(m.streamMap.View())
	}
	s.WriteString("\n" + m.renderStatusBar())

	return s.String()
}

func (m *App) renderStatusBar() string {
	view := m.runtime.Current()
	status := []string{
		fmt.Sprintf("Frame: %d", view.Frame),
		fmt.Sprintf("Chunks: %d", len(view.Snapshot.Partitions)),
		fmt.Sprintf("Entities: %d", m.runtime.World.Total()),
	}
	if m.paused {
		status = append(status, "Drift: PAUSED")
	} else {
		status = append(status, "Drift: ON")
	}
	if !view.UpdatedAt.IsZero() {
		status = append(status, fmt.Sprintf("Updated: %s", view.UpdatedAt.Format("15:04:05")))
	}

	return components.StatusBarStyle.Width(m.width).Render(strings.Join(status, " • "))
}

func (m *App) renderHelp() string {
	help := `
Stream Debugger - Help

Global Keys:
  q, Ctrl+C     Quit
  ?             Toggle this help
  Tab           Switch between map and stats

Actor:
  Arrow keys    Nudge a quarter chunk
  Shift+Arrow   Jump a whole chunk
  Space         Pause or resume drift
  r             Unload everything and restream

Press ? again to close this help
`
	return components.HelpStyle.Render(help)
}

func (m *App) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
