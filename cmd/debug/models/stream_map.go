package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/VoidMesh/worldstream/cmd/debug/components"
	"github.com/VoidMesh/worldstream/internal/world"
	"github.com/VoidMesh/worldstream/services/grid"
	"github.com/VoidMesh/worldstream/services/streaming"
)

// StreamMapModel draws the chunk grid with the loaded set and the actor.
type StreamMapModel struct {
	runtime *world.Runtime
	width   int
	height  int

	lastUpdate streaming.Update
	lastMoved  time.Time
}

func NewStreamMapModel(runtime *world.Runtime) StreamMapModel {
	return StreamMapModel{runtime: runtime}
}

// Nudge moves the actor by a fraction of a chunk, or a whole chunk when big.
func (m *StreamMapModel) Nudge(dx, dy float64, big bool, now time.Time) {
	step := m.runtime.Grid.ChunkSize / 4
	if big {
		step = m.runtime.Grid.ChunkSize
	}
	m.record(m.runtime.MoveActor(mgl64.Vec2{dx * step, dy * step}, now), now)
}

// Advance runs one frame of free drift.
func (m *StreamMapModel) Advance(dt time.Duration, now time.Time) {
	m.record(m.runtime.Frame(dt, now), now)
}

func (m *StreamMapModel) record(update streaming.Update, now time.Time) {
	if update.Crossed {
		m.lastUpdate = update
		m.lastMoved = now
	}
}

func (m StreamMapModel) View() string {
	view := m.runtime.Current()

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderGrid(view),
		m.renderInfoPanel(view),
	)
	return mainContent
}

func (m StreamMapModel) renderGrid(view world.View) string {
	snap := view.Snapshot
	live := make(map[grid.Coord]int, len(snap.Partitions))
	for _, p := range snap.Partitions {
		live[p.Coord] = p.Live
	}

	var rows []string
	for y := 0; y < snap.ChunksY; y++ {
		var row []string
		for x := 0; x < snap.ChunksX; x++ {
			coord := grid.Coord{X: x, Y: y}
			n, loaded := live[coord]

			cell := components.UnloadedSymbol
			state := components.ChunkUnloaded
			if loaded {
				cell = fmt.Sprintf("%4d", n)
				state = components.ChunkLoaded
			}
			if snap.Tracking && coord == snap.Tracked {
				cell = components.ActorSymbol
				state = components.ChunkTracked
			}
			row = append(row, components.ChunkStyle(state).Render(cell))
		}
		rows = append(rows, strings.Join(row, ""))
	}

	return components.BorderStyle.Render(strings.Join(rows, "\n"))
}

func (m StreamMapModel) renderInfoPanel(view world.View) string {
	var info strings.Builder
	snap := view.Snapshot

	info.WriteString(components.SubtitleStyle.Render("Actor") + "\n")
	info.WriteString(fmt.Sprintf("World: (%.0f, %.0f)\n", view.Actor.X(), view.Actor.Y()))
	if snap.Tracking {
		info.WriteString(fmt.Sprintf("Chunk: %s\n", snap.Tracked))
	} else {
		info.WriteString("Chunk: none\n")
	}
	info.WriteString(fmt.Sprintf("Resident: %d\n\n", len(snap.Partitions)))

	info.WriteString(components.SubtitleStyle.Render("Last crossing") + "\n")
	if m.lastMoved.IsZero() {
		info.WriteString("none yet\n")
	} else {
		info.WriteString(fmt.Sprintf("At: %s\n", m.lastMoved.Format("15:04:05")))
		info.WriteString(fmt.Sprintf("Loaded: %s\n", formatCoords(m.lastUpdate.Loaded)))
		info.WriteString(fmt.Sprintf("Unloaded: %s\n", formatCoords(m.lastUpdate.Unloaded)))
	}

	info.WriteString("\n" + components.SubtitleStyle.Render("Legend") + "\n")
	info.WriteString("@@ Actor chunk\n")
	info.WriteString(" n Loaded, n live entities\n")
	info.WriteString(".. Unloaded\n")

	info.WriteString("\n" + components.SubtitleStyle.Render("Controls") + "\n")
	info.WriteString("Arrow keys: Nudge actor\n")
	info.WriteString("Shift+Arrow: Jump a chunk\n")
	info.WriteString("space: Pause drift  r: Reset\n")
	info.WriteString("tab: Stats  q: Quit\n")

	return components.InfoPanelStyle.Render(info.String())
}

// SetSize updates the map size
func (m *StreamMapModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func formatCoords(coords []grid.Coord) string {
	if len(coords) == 0 {
		return "-"
	}
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
