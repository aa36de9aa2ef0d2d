package search

import (
	"math"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	winScore  = 10
	drawScore = 0
)

// Random returns a uniform integer in [0, n).
type Random func(n int) int

// SearchResult pairs a cell with its minimax score. Randomly picked moves are unscored.
type SearchResult struct {
	Move  int
	Score int
}

type Engine struct {
	random Random
}

func New() *Engine {
	return NewWithRandom(frand.Intn)
}

func NewWithRandom(random Random) *Engine {
	return &Engine{random: random}
}

// BestMove picks the move for ai according to the difficulty.
// It returns false when the board has no empty cell.
func (that *Engine) BestMove(board entity.Board, ai, human entity.Mark, difficulty entity.Difficulty) (SearchResult, bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return SearchResult{}, false
	}

	switch difficulty {
	case entity.Easy:
		return that.randomMove(empty), true
	case entity.Medium:
		if that.random(2) == 0 {
			return that.randomMove(empty), true
		}
	}

	return Search(board, ai, human)
}

func (that *Engine) randomMove(empty []int) SearchResult {
	return SearchResult{Move: empty[that.random(len(empty))]}
}

// Search runs a full alpha-beta minimax for ai to move.
// Cells are tried in ascending order and the first best one wins ties.
func Search(board entity.Board, ai, human entity.Mark) (SearchResult, bool) {
	best := SearchResult{Move: -1, Score: math.MinInt}

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = ai

		score := minimax(next, 0, math.MinInt, math.MaxInt, false, ai, human)
		if score > best.Score {
			best = SearchResult{Move: cell, Score: score}
		}
	}

	if best.Move < 0 {
		return SearchResult{}, false
	}

	return best, true
}

// minimax scores board from ai's point of view. Faster wins and slower losses score higher.
func minimax(board entity.Board, depth, alpha, beta int, maximizing bool, ai, human entity.Mark) int {
	if score, ok := terminalScore(board, depth, ai, human); ok {
		return score
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range board.EmptyCells() {
			next := board
			next[cell] = ai

			best = max(best, minimax(next, depth+1, alpha, beta, false, ai, human))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = human

		best = min(best, minimax(next, depth+1, alpha, beta, true, ai, human))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

func terminalScore(board entity.Board, depth int, ai, human entity.Mark) (int, bool) {
	outcome := board.Winner()

	switch {
	case outcome.Status == entity.StatusDraw:
		return drawScore, true
	case outcome.Status != entity.StatusWin:
		return 0, false
	case outcome.Winner == ai:
		return winScore - depth, true
	case outcome.Winner == human:
		return depth - winScore, true
	default:
		return 0, false
	}
}
