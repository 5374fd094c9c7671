package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#04B575")
	AccentColor    = lipgloss.Color("#FFD700")
	DangerColor    = lipgloss.Color("#F25D94")

	// Grayscale
	LightGray = lipgloss.Color("#D9D9D9")
	Gray      = lipgloss.Color("#8B8B8B")
	DarkGray  = lipgloss.Color("#383838")

	// Content kind colors
	ResourceColor = lipgloss.Color("#C0C0C0") // Silver
	HazardColor   = lipgloss.Color("#F25D94")
	ArtifactColor = lipgloss.Color("#FFD700") // Gold
	PortalColor   = lipgloss.Color("#00BFFF") // DeepSkyBlue
	MysteryColor  = lipgloss.Color("#FFA500") // Orange

	// Chunk state colors
	LoadedColor   = lipgloss.Color("#04B575")
	UnloadedColor = lipgloss.Color("#383838")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 2)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(1)

	InfoPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(1).
			Width(34)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(DarkGray).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true).
			Padding(1)

	// Grid styles (for the chunk map)
	GridCellStyle = lipgloss.NewStyle().
			Width(5).
			Height(1).
			Align(lipgloss.Center)

	GridTrackedCellStyle = lipgloss.NewStyle().
				Width(5).
				Height(1).
				Align(lipgloss.Center).
				Background(PrimaryColor).
				Foreground(lipgloss.Color("#FAFAFA")).
				Bold(true)
)

// Chunk map symbols
const (
	UnloadedSymbol = " .. "
	ActorSymbol    = " @@ "
)

// ChunkState is how a chunk appears on the map.
type ChunkState int

const (
	ChunkUnloaded ChunkState = iota
	ChunkLoaded
	ChunkTracked
)

// ChunkStyle returns the cell style for a chunk in state.
func ChunkStyle(state ChunkState) lipgloss.Style {
	switch state {
	case ChunkTracked:
		return GridTrackedCellStyle
	case ChunkLoaded:
		return GridCellStyle.Foreground(LoadedColor).Bold(true)
	default:
		return GridCellStyle.Foreground(UnloadedColor)
	}
}

// KindColor returns the legend color for a content kind name.
func KindColor(kind string) lipgloss.Color {
	switch kind {
	case "resource":
		return ResourceColor
	case "hazard":
		return HazardColor
	case "artifact":
		return ArtifactColor
	case "portal":
		return PortalColor
	case "mystery":
		return MysteryColor
	default:
		return Gray
	}
}

// Layout helpers
func LeftText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Left).Render(text)
}

func RightText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(text)
}
