package engine

import (
	"errors"
	"math"
)

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0

	centerCell = 4
	noMove     = -1
)

var (
	ErrGameDecided      = errors.New("game is already decided")
	ErrNoAvailableCells = errors.New("no available cells")
)

// Engine picks moves for one side of a game.
type Engine interface {
	BestMove(board Board, engineMark, opponentMark string) (int, error)
}

type minimaxEngine struct{}

// NewEngine - returns an engine that plays perfectly via exhaustive
// minimax search with alpha-beta pruning.
func NewEngine() Engine {
	return &minimaxEngine{}
}

// BestMove - returns the optimal cell for engineMark on the given board.
// A board that is already won or full has no legal move and yields an error.
func (that *minimaxEngine) BestMove(board Board, engineMark, opponentMark string) (int, error) {
	if board.Winner() != EmptyCell {
		return noMove, ErrGameDecided
	}

	available := board.AvailableCells()
	if len(available) == 0 {
		return noMove, ErrNoAvailableCells
	}

	// On an empty board every first move has the same value, so skip
	// the search and open in the center.
	if len(available) == len(board) {
		return centerCell, nil
	}

	_, move := that.minimax(board, true, engineMark, opponentMark, math.MinInt, math.MaxInt)
	if move == noMove {
		return available[0], nil
	}

	return move, nil
}

// minimax - exhaustive adversarial search. Scores are from the engine's
// perspective: +1 engine win, -1 opponent win, 0 draw. Each branch works on
// its own clone of the board, so no state leaks between siblings. Among
// equal-scoring moves the first one in ascending cell order is kept.
func (that *minimaxEngine) minimax(board Board, maximizing bool, engineMark, opponentMark string, alpha, beta int) (int, int) {
	switch winner := board.Winner(); winner {
	case EmptyCell:
	case engineMark:
		return scoreWin, noMove
	default:
		return scoreLoss, noMove
	}

	if board.IsFull() {
		return scoreDraw, noMove
	}

	bestMove := noMove

	if maximizing {
		bestScore := math.MinInt

		for _, cell := range board.AvailableCells() {
			next := board.Clone()
			next.Place(cell, engineMark)

			score, _ := that.minimax(next, false, engineMark, opponentMark, alpha, beta)
			if score > bestScore {
				bestScore = score
				bestMove = cell
			}

			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return bestScore, bestMove
	}

	bestScore := math.MaxInt

	for _, cell := range board.AvailableCells() {
		next := board.Clone()
		next.Place(cell, opponentMark)

		score, _ := that.minimax(next, true, engineMark, opponentMark, alpha, beta)
		if score < bestScore {
			bestScore = score
			bestMove = cell
		}

		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return bestScore, bestMove
}
