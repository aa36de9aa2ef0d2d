package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/console"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// Human reads moves from the operator. Invalid input is reported and asked again.
type Human struct {
	console     *console.Console
	gameID      int
	showIndices bool
}

func NewHuman(c *console.Console, gameID int, showIndices bool) *Human {
	return &Human{
		console:     c,
		gameID:      gameID,
		showIndices: showIndices,
	}
}

func (that *Human) NextMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error) {
	unlock := that.console.LockInput()
	defer unlock()

	for {
		that.console.Print(
			that.tag("Current board:"),
			that.console.Painter().Board(board, that.showIndices),
			that.tag(fmt.Sprintf("Player %s, enter your move (0-8):", mark)),
		)

		line, err := that.console.ReadLine(ctx)
		if err != nil && !errors.Is(err, apperror.ErrLineTooLong) {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		cell, err := strconv.Atoi(line)
		if err != nil {
			that.console.Print(that.tag("Enter a number from 0 to 8."))
			continue
		}

		if !board.IsEmpty(cell) {
			that.console.Print(that.tag("Invalid move. The cell is occupied or out of range."))
			continue
		}

		return cell, nil
	}
}

func (that *Human) tag(msg string) string {
	return fmt.Sprintf("[Game #%d] %s", that.gameID, msg)
}
