package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"checkers/internal/checkers"
	"checkers/internal/server/game"
)

var (
	lightSquare  = lipgloss.NewStyle().Background(lipgloss.Color("#E8D8B0"))
	darkSquare   = lipgloss.NewStyle().Background(lipgloss.Color("#7A5230"))
	selectedSq   = lipgloss.NewStyle().Background(lipgloss.Color("#2E7D32"))
	targetSq     = lipgloss.NewStyle().Background(lipgloss.Color("#9E9D24"))
	cursorSq     = lipgloss.NewStyle().Background(lipgloss.Color("#1565C0"))
	redPiece     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5252")).Bold(true)
	blackPiece   = lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Bold(true)
	coordStyle   = lipgloss.NewStyle().Faint(true)
	boardPadding = "   "
)

func glyph(p checkers.Piece) string {
	switch p {
	case checkers.RedMan, checkers.BlackMan:
		return "●"
	case checkers.RedKing, checkers.BlackKing:
		return "◆"
	}
	return " "
}

// RenderBoard 画 8x8 棋盘：第 0 行（黑方底线）在上，坐标和 SquareName 一致
func RenderBoard(g *game.GameState, cursor int) string {
	targets := make(map[int]bool, len(g.ValidMoves))
	for _, m := range g.ValidMoves {
		targets[m.To] = true
	}

	var b strings.Builder
	b.WriteString(boardPadding)
	for c := 0; c < checkers.Cols; c++ {
		b.WriteString(coordStyle.Render(" " + string(rune('a'+c)) + " "))
	}
	b.WriteString("\n")

	for r := 0; r < checkers.Rows; r++ {
		b.WriteString(coordStyle.Render(" " + string(rune('0'+checkers.Rows-r)) + " "))
		for c := 0; c < checkers.Cols; c++ {
			sq := checkers.Sq(r, c)
			b.WriteString(cell(g.Pos.Board.Squares[sq], cellStyle(r, c, sq, g.Selected, cursor, targets)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cellStyle(r, c, sq, selected, cursor int, targets map[int]bool) lipgloss.Style {
	switch {
	case sq == cursor:
		return cursorSq
	case sq == selected:
		return selectedSq
	case targets[sq]:
		return targetSq
	case checkers.IsDark(r, c):
		return darkSquare
	}
	return lightSquare
}

func cell(p checkers.Piece, bg lipgloss.Style) string {
	s := glyph(p)
	switch p.Side() {
	case checkers.Red:
		s = redPiece.Inherit(bg).Render(s)
	case checkers.Black:
		s = blackPiece.Inherit(bg).Render(s)
	default:
		s = bg.Render(s)
	}
	return bg.Render(" ") + s + bg.Render(" ")
}
