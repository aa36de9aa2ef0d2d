package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

var (
	xStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#007e50", Dark: "#6afd76"})
	oStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#0003ad", Dark: "#5f61fc"})
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141", Dark: "#8f8f8f"})
)

// Painter renders boards, optionally coloring the marks.
type Painter struct {
	colored bool
}

func NewPainter(colored bool) *Painter {
	return &Painter{colored: colored}
}

func (that *Painter) Board(board entity.Board, showIndices bool) string {
	if !that.colored {
		return board.Render(showIndices)
	}

	return board.RenderWith(showIndices, paintCell)
}

func paintCell(mark entity.Mark, s string) string {
	switch mark {
	case entity.PlayerX:
		return xStyle.Render(s)
	case entity.PlayerO:
		return oStyle.Render(s)
	default:
		return indexStyle.Render(s)
	}
}
