package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

const BoardSize = 9

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
	StatusError      Status = "error"
)

const (
	cellSeparator = " | "
	rowSeparator  = "---+---+---"
)

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Outcome is derived from a board, it is never stored on it.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("%s wins", that.Winner)
	case StatusDraw:
		return "draw"
	case StatusError:
		return "error"
	default:
		return "in progress"
	}
}

type Board [BoardSize]Mark

// Apply puts the mark into the cell. The board is left untouched on error.
func (that *Board) Apply(cell int, mark Mark) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that Board) IsEmpty(cell int) bool {
	return cell >= 0 && cell < len(that) && that[cell] == EmptyCell
}

func (that Board) Winner() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Status: StatusWin, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that {
		if cell == EmptyCell {
			return Outcome{Status: StatusInProgress}
		}
	}

	return Outcome{Status: StatusDraw}
}

// EmptyCells returns the unoccupied indices in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Render draws the board as three rows. With showIndices an empty cell shows its index.
func (that Board) Render(showIndices bool) string {
	return that.RenderWith(showIndices, func(_ Mark, s string) string { return s })
}

// RenderWith is Render with a hook that may decorate every cell.
func (that Board) RenderWith(showIndices bool, paint func(mark Mark, s string) string) string {
	rows := make([]string, 0, 3)
	for row := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			i := row*3 + col
			cells = append(cells, paint(that[i], that.cellText(i, showIndices)))
		}
		rows = append(rows, " "+strings.Join(cells, cellSeparator))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func (that Board) cellText(i int, showIndices bool) string {
	if that[i] != EmptyCell {
		return string(that[i])
	}

	if showIndices {
		return strconv.Itoa(i)
	}

	return " "
}
