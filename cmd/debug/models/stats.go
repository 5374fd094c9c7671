package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/worldstream/cmd/debug/components"
	"github.com/VoidMesh/worldstream/internal/world"
	"github.com/VoidMesh/worldstream/services/content"
)

// StatsModel shows streaming counters, live entities and per-chunk content.
type StatsModel struct {
	runtime *world.Runtime
	width   int
	height  int
}

func NewStatsModel(runtime *world.Runtime) StatsModel {
	return StatsModel{runtime: runtime}
}

func (m StatsModel) View() string {
	view := m.runtime.Current()

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCounters(view),
		m.renderPartitions(view),
	)
}

func (m StatsModel) renderCounters(view world.View) string {
	stats := view.Snapshot.Stats
	var s strings.Builder

	s.WriteString(components.SubtitleStyle.Render("Streaming") + "\n")
	rows := [][2]string{
		{"Ticks", fmt.Sprint(stats.Ticks)},
		{"Throttled", fmt.Sprint(stats.Throttled)},
		{"Crossings", fmt.Sprint(stats.Crossings)},
		{"Loaded", fmt.Sprint(stats.PartitionsLoaded)},
		{"Unloaded", fmt.Sprint(stats.PartitionsUnloaded)},
		{"Materialized", fmt.Sprint(stats.EntitiesMaterialized)},
		{"Removed", fmt.Sprint(stats.EntitiesRemoved)},
		{"Unresolved portals", fmt.Sprint(stats.UnresolvedPortals)},
	}
	for _, r := range rows {
		s.WriteString(components.LeftText(r[0], 20) + components.RightText(r[1], 8) + "\n")
	}

	s.WriteString("\n" + components.SubtitleStyle.Render("Live entities") + "\n")
	for _, kind := range content.Kinds {
		name := kind.String()
		label := lipgloss.NewStyle().Foreground(components.KindColor(name)).Render(components.LeftText(name, 20))
		s.WriteString(label + components.RightText(fmt.Sprint(view.Entities[name]), 8) + "\n")
	}

	return components.InfoPanelStyle.Render(s.String())
}

func (m StatsModel) renderPartitions(view world.View) string {
	var s strings.Builder
	header := []string{"Chunk", "Res", "Haz", "Art", "Por", "Mys", "Live"}
	for _, h := range header {
		s.WriteString(components.TableHeaderStyle.Render(components.LeftText(h, 6)))
	}
	s.WriteString("\n")

	for _, p := range view.Snapshot.Partitions {
		cells := []string{
			p.Coord.String(),
			fmt.Sprint(p.Resources),
			fmt.Sprint(p.Hazards),
			fmt.Sprint(p.Artifacts),
			fmt.Sprint(p.Portals),
			fmt.Sprint(p.Mysteries),
			fmt.Sprint(p.Live),
		}
		for _, c := range cells {
			s.WriteString(components.TableCellStyle.Render(components.LeftText(c, 6)))
		}
		s.WriteString("\n")
	}

	return components.BorderStyle.Render(s.String())
}

// SetSize updates the stats view size
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
